// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	httptypes "github.com/canonical/org-access-service/internal/http/types"
	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/types"
)

const userID = "0190a3b6-0000-7000-8000-0000000000b1"

var (
	_ ServiceInterface       = (*MockServiceInterface)(nil)
	_ SignedServiceInterface = (*MockSignedServiceInterface)(nil)
	_ ServiceInterface       = (*Service)(nil)
	_ SignedServiceInterface = (*SignedService)(nil)
	_ Redeemer               = (*SignedService)(nil)
)

func TestAPI_Endpoints(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setupMocks     func(*MockServiceInterface, *MockSignedServiceInterface)
		expectedStatus int
		validate       func(*testing.T, *httptypes.Response)
	}{
		{
			name:   "issue returns the link",
			method: http.MethodPost,
			path:   "/api/v0/tenants/t1/invites",
			body:   fmt.Sprintf(`{"user_id":%q}`, userID),
			setupMocks: func(svc *MockServiceInterface, _ *MockSignedServiceInterface) {
				invite := &types.Invite{ID: inviteID, UserID: userID, TenantID: "t1"}
				svc.EXPECT().Issue(gomock.Any(), userID, "t1", nil).Return(invite, nil)
				svc.EXPECT().Notify(gomock.Any(), invite).Return("http://x/accept?token="+inviteID, nil)
			},
			expectedStatus: http.StatusCreated,
			validate: func(t *testing.T, resp *httptypes.Response) {
				data, _ := resp.Data.(map[string]any)
				if data["state"] != "LIVE" || data["id"] != inviteID || data["link"] == "" {
					t.Errorf("unexpected payload %v", resp.Data)
				}
			},
		},
		{
			name:           "issue requires a user id",
			method:         http.MethodPost,
			path:           "/api/v0/tenants/t1/invites",
			body:           `{}`,
			setupMocks:     func(*MockServiceInterface, *MockSignedServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, resp *httptypes.Response) {
				if _, ok := resp.Errors["userid"]; !ok {
					t.Errorf("expected field error, got %v", resp.Errors)
				}
			},
		},
		{
			name:   "issue for non member",
			method: http.MethodPost,
			path:   "/api/v0/tenants/t1/invites",
			body:   fmt.Sprintf(`{"user_id":%q}`, userID),
			setupMocks: func(svc *MockServiceInterface, _ *MockSignedServiceInterface) {
				svc.EXPECT().Issue(gomock.Any(), userID, "t1", nil).Return(nil, ErrNotAMember)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "revoke of a consumed invite",
			method: http.MethodDelete,
			path:   "/api/v0/tenants/t1/invites/" + inviteID,
			setupMocks: func(svc *MockServiceInterface, _ *MockSignedServiceInterface) {
				svc.EXPECT().Revoke(gomock.Any(), "t1", inviteID).Return(ErrInviteNotLive)
			},
			expectedStatus: http.StatusGone,
		},
		{
			name:   "list",
			method: http.MethodGet,
			path:   "/api/v0/tenants/t1/invites?page=1&size=10",
			setupMocks: func(svc *MockServiceInterface, _ *MockSignedServiceInterface) {
				svc.EXPECT().ListInvites(gomock.Any(), "t1", int64(1), int64(10)).Return([]*InviteView{}, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, resp *httptypes.Response) {
				if resp.Meta == nil || resp.Meta.Size != 10 {
					t.Errorf("expected paging metadata, got %+v", resp.Meta)
				}
			},
		},
		{
			name:   "issue signed",
			method: http.MethodPost,
			path:   "/api/v0/tenants/t1/users/u1/signed-invite",
			setupMocks: func(_ *MockServiceInterface, signed *MockSignedServiceInterface) {
				signed.EXPECT().IssueSigned(gomock.Any(), "t1", "u1").Return(&SignedToken{UID: "dTE", Token: "tok"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "redeem",
			method: http.MethodPost,
			path:   "/api/v0/invites/redeem",
			body:   fmt.Sprintf(`{"token":%q,"credential":%q}`, inviteID, credential),
			setupMocks: func(svc *MockServiceInterface, _ *MockSignedServiceInterface) {
				svc.EXPECT().Redeem(gomock.Any(), inviteID, credential).Return(&Result{UserID: "u1", TenantID: "t1", InviteID: inviteID, Mechanism: MechanismStored}, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, resp *httptypes.Response) {
				data, _ := resp.Data.(map[string]any)
				if data["mechanism"] != MechanismStored {
					t.Errorf("unexpected payload %v", resp.Data)
				}
			},
		},
		{
			name:   "redeem unknown token",
			method: http.MethodPost,
			path:   "/api/v0/invites/redeem",
			body:   `{"token":"x","credential":"y"}`,
			setupMocks: func(svc *MockServiceInterface, _ *MockSignedServiceInterface) {
				svc.EXPECT().Redeem(gomock.Any(), "x", "y").Return(nil, ErrInvalidToken)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "redeem race lost",
			method: http.MethodPost,
			path:   "/api/v0/invites/redeem",
			body:   `{"token":"x","credential":"y"}`,
			setupMocks: func(svc *MockServiceInterface, _ *MockSignedServiceInterface) {
				svc.EXPECT().Redeem(gomock.Any(), "x", "y").Return(nil, fmt.Errorf("%w: %w", ErrInviteNotLive, ErrAlreadyActive))
			},
			expectedStatus: http.StatusGone,
		},
		{
			name:   "redeem signed on active account",
			method: http.MethodPost,
			path:   "/api/v0/invites/redeem-signed",
			body:   `{"uid":"dTE","token":"tok","credential":"y"}`,
			setupMocks: func(_ *MockServiceInterface, signed *MockSignedServiceInterface) {
				signed.EXPECT().RedeemSigned(gomock.Any(), "dTE", "tok", "y").Return(nil, ErrAlreadyActive)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "storage failure",
			method: http.MethodPost,
			path:   "/api/v0/invites/redeem-signed",
			body:   `{"uid":"dTE","token":"tok","credential":"y"}`,
			setupMocks: func(_ *MockServiceInterface, signed *MockSignedServiceInterface) {
				signed.EXPECT().RedeemSigned(gomock.Any(), "dTE", "tok", "y").Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			mockSigned := NewMockSignedServiceInterface(ctrl)
			tt.setupMocks(mockSvc, mockSigned)

			mux := chi.NewMux()
			api := NewAPI(mockSvc, mockSigned, logging.NewNoopLogger())
			api.RegisterEndpoints(mux)
			api.RegisterPublicEndpoints(mux)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
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
