// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	httptypes "github.com/canonical/org-access-service/internal/http/types"
	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/types"
	"github.com/canonical/org-access-service/pkg/authentication"
)

func TestAPI_Endpoints(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		userID         string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		validate       func(*testing.T, *httptypes.Response)
	}{
		{
			name:   "create tenant",
			method: http.MethodPost,
			path:   "/api/v0/tenants",
			body:   `{"name":"Acme"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().CreateTenant(gomock.Any(), "Acme").Return(&types.Tenant{ID: "t1", Name: "Acme"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "create tenant without name",
			method:         http.MethodPost,
			path:           "/api/v0/tenants",
			body:           `{}`,
			setupMocks:     func(svc *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "get unknown tenant",
			method: http.MethodGet,
			path:   "/api/v0/tenants/t1",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().GetTenant(gomock.Any(), "t1").Return(nil, ErrTenantNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "patch only sends given fields",
			method: http.MethodPatch,
			path:   "/api/v0/tenants/t1",
			body:   `{"enabled":false}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().UpdateTenant(gomock.Any(), &types.Tenant{ID: "t1"}, []string{"enabled"}).Return(&types.Tenant{ID: "t1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "my tenants",
			method: http.MethodGet,
			path:   "/api/v0/me/tenants",
			userID: "u1",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ListUserTenants(gomock.Any(), "u1").Return([]*types.Tenant{{ID: "t1"}}, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, resp *httptypes.Response) {
				data, _ := resp.Data.([]any)
				if len(data) != 1 {
					t.Errorf("expected one tenant, got %v", resp.Data)
				}
			},
		},
		{
			name:           "my tenants unauthenticated",
			method:         http.MethodGet,
			path:           "/api/v0/me/tenants",
			setupMocks:     func(svc *MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "add member with bad role",
			method: http.MethodPost,
			path:   "/api/v0/tenants/t1/members",
			body:   `{"user_id":"u1","role":"owner"}`,
			setupMocks: func(svc *MockServiceInterface) {
			},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, resp *httptypes.Response) {
				if _, ok := resp.Errors["role"]; !ok {
					t.Errorf("expected role field error, got %v", resp.Errors)
				}
			},
		},
		{
			name:   "add existing member",
			method: http.MethodPost,
			path:   "/api/v0/tenants/t1/members",
			body:   `{"user_id":"u1","role":"member"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().AddMember(gomock.Any(), "t1", "u1", "member").Return(nil, ErrAlreadyMember)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "invite defaults to member",
			method: http.MethodPost,
			path:   "/api/v0/tenants/t1/members/invite",
			body:   `{"email":"jane@example.com"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().InviteMember(gomock.Any(), "t1", "jane@example.com", types.RoleMember).
					Return(&Invitation{UserID: "u1", Invite: &types.Invite{ID: "i1"}, Link: "http://link"}, nil)
			},
			expectedStatus: http.StatusCreated,
			validate: func(t *testing.T, resp *httptypes.Response) {
				data, _ := resp.Data.(map[string]any)
				if data["link"] != "http://link" {
					t.Errorf("expected link, got %v", resp.Data)
				}
			},
		},
		{
			name:           "invite with invalid email",
			method:         http.MethodPost,
			path:           "/api/v0/tenants/t1/members/invite",
			body:           `{"email":"jane"}`,
			setupMocks:     func(svc *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "update role of non member",
			method: http.MethodPatch,
			path:   "/api/v0/tenants/t1/members/u1",
			body:   `{"role":"viewer"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().UpdateMemberRole(gomock.Any(), "t1", "u1", "viewer").Return(nil, ErrNotAMember)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "remove member",
			method: http.MethodDelete,
			path:   "/api/v0/tenants/t1/members/u1",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().RemoveMember(gomock.Any(), "t1", "u1").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "list members failure",
			method: http.MethodGet,
			path:   "/api/v0/tenants/t1/members",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ListMembers(gomock.Any(), "t1").Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockSvc)

			mux := chi.NewMux()
			NewAPI(mockSvc, logging.NewNoopLogger()).RegisterEndpoints(mux)

			ctx := context.Background()
			if tt.userID != "" {
				ctx = authentication.WithUserID(ctx, tt.userID)
			}

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)).WithContext(ctx)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			var resp httptypes.Response
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, &resp)
			}
		})
	}
}
