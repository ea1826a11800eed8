// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

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

	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/pkg/authentication"
)

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Status  int             `json:"status"`
}

func TestAPI_Endpoints(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		caller         string
		setupMocks     func(*MockServiceInterface, *MockAdminCheckerInterface)
		expectedStatus int
		expectedData   string
	}{
		{
			name:   "resolve for member",
			method: http.MethodGet,
			path:   "/api/v0/tenants/t1/users/u1/access",
			setupMocks: func(svc *MockServiceInterface, admins *MockAdminCheckerInterface) {
				admins.EXPECT().IsTenantAdmin(gomock.Any(), "t1", "u1").Return(false, nil)
				svc.EXPECT().ResolveAccess(gomock.Any(), "u1", "t1").Return(Map{"hq": PermissionEditor}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedData:   `{"bypass":false,"access":{"hq":"editor"},"units":["hq"]}`,
		},
		{
			name:   "administrator bypasses the engine",
			method: http.MethodGet,
			path:   "/api/v0/tenants/t1/users/u1/access",
			setupMocks: func(svc *MockServiceInterface, admins *MockAdminCheckerInterface) {
				admins.EXPECT().IsTenantAdmin(gomock.Any(), "t1", "u1").Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedData:   `{"bypass":true}`,
		},
		{
			name:   "me uses the authenticated user",
			method: http.MethodGet,
			path:   "/api/v0/tenants/t1/me/access",
			caller: "u9",
			setupMocks: func(svc *MockServiceInterface, admins *MockAdminCheckerInterface) {
				admins.EXPECT().IsTenantAdmin(gomock.Any(), "t1", "u9").Return(false, nil)
				svc.EXPECT().ResolveAccess(gomock.Any(), "u9", "t1").Return(Map{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedData:   `{"bypass":false}`,
		},
		{
			name:           "me without identity",
			method:         http.MethodGet,
			path:           "/api/v0/tenants/t1/me/access",
			setupMocks:     func(svc *MockServiceInterface, admins *MockAdminCheckerInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "check edit",
			method: http.MethodPost,
			path:   "/api/v0/tenants/t1/users/u1/access/check",
			body:   `{"unit_id":"north","author_id":"u2","action":"edit"}`,
			setupMocks: func(svc *MockServiceInterface, admins *MockAdminCheckerInterface) {
				admins.EXPECT().IsTenantAdmin(gomock.Any(), "t1", "u1").Return(false, nil)
				svc.EXPECT().CanEdit(gomock.Any(), "u1", "t1", Record{UnitID: "north", AuthorID: "u2"}).Return(false, nil)
			},
			expectedStatus: http.StatusOK,
			expectedData:   `{"allowed":false,"bypass":false}`,
		},
		{
			name:   "check view as me",
			method: http.MethodPost,
			path:   "/api/v0/tenants/t1/me/access/check",
			body:   `{"unit_id":"north","action":"view"}`,
			caller: "u1",
			setupMocks: func(svc *MockServiceInterface, admins *MockAdminCheckerInterface) {
				admins.EXPECT().IsTenantAdmin(gomock.Any(), "t1", "u1").Return(false, nil)
				svc.EXPECT().CanView(gomock.Any(), "u1", "t1", Record{UnitID: "north"}).Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedData:   `{"allowed":true,"bypass":false}`,
		},
		{
			name:           "check with unknown action",
			method:         http.MethodPost,
			path:           "/api/v0/tenants/t1/users/u1/access/check",
			body:           `{"unit_id":"north","action":"delete"}`,
			setupMocks:     func(svc *MockServiceInterface, admins *MockAdminCheckerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "state",
			method: http.MethodGet,
			path:   "/api/v0/tenants/t1/users/u1/access/state",
			setupMocks: func(svc *MockServiceInterface, admins *MockAdminCheckerInterface) {
				svc.EXPECT().AccessState(gomock.Any(), "u1", "t1").Return([]*UnitAccess{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedData:   `[]`,
		},
		{
			name:   "admin lookup failure",
			method: http.MethodGet,
			path:   "/api/v0/tenants/t1/users/u1/access",
			setupMocks: func(svc *MockServiceInterface, admins *MockAdminCheckerInterface) {
				admins.EXPECT().IsTenantAdmin(gomock.Any(), "t1", "u1").Return(false, errors.New("fga down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			mockAdmins := NewMockAdminCheckerInterface(ctrl)
			tt.setupMocks(mockSvc, mockAdmins)

			mux := chi.NewMux()
			NewAPI(mockSvc, mockAdmins, logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.caller != "" {
				req = req.WithContext(authentication.WithUserID(context.Background(), tt.caller))
			}
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedData == "" {
				return
			}

			var resp envelope
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if string(resp.Data) != tt.expectedData {
				t.Errorf("expected data %s, got %s", tt.expectedData, resp.Data)
			}
		})
	}
}
