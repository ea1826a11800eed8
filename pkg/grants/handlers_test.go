// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package grants

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	httptypes "github.com/canonical/org-access-service/internal/http/types"
	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/pkg/access"
)

func TestAPI_Endpoints(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		validate       func(*testing.T, *httptypes.Response)
	}{
		{
			name:   "replace with levels",
			method: http.MethodPut,
			path:   "/api/v0/tenants/t1/users/u1/grants",
			body:   `{"grants":{"a":"editor","b":"own"}}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ReplaceGrants(gomock.Any(), "u1", "t1", map[string]access.Permission{
					"a": access.PermissionEditor,
					"b": access.PermissionOwn,
				}).Return(2, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "replace with plain id list uses the default level",
			method: http.MethodPut,
			path:   "/api/v0/tenants/t1/users/u1/grants",
			body:   `{"unit_ids":["a","b"]}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ReplaceGrants(gomock.Any(), "u1", "t1", map[string]access.Permission{
					"a": access.DefaultPermission,
					"b": access.DefaultPermission,
				}).Return(2, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "replace rejected with offending ids",
			method: http.MethodPut,
			path:   "/api/v0/tenants/t1/users/u1/grants",
			body:   `{"unit_ids":["a","x"],"permission":"viewer"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ReplaceGrants(gomock.Any(), "u1", "t1", gomock.Any()).Return(0, &UnitNotInTenantError{IDs: []string{"x"}})
			},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, resp *httptypes.Response) {
				if !reflect.DeepEqual(resp.Details["unit_ids"], []string{"x"}) {
					t.Errorf("expected offending ids in details, got %v", resp.Details)
				}
			},
		},
		{
			name:           "replace with unknown level",
			method:         http.MethodPut,
			path:           "/api/v0/tenants/t1/users/u1/grants",
			body:           `{"grants":{"a":"manager"}}`,
			setupMocks:     func(svc *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "replace for non member",
			method: http.MethodPut,
			path:   "/api/v0/tenants/t1/users/u1/grants",
			body:   `{"unit_ids":[]}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ReplaceGrants(gomock.Any(), "u1", "t1", gomock.Any()).Return(0, ErrNotAMember)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "grant creates",
			method: http.MethodPut,
			path:   "/api/v0/tenants/t1/users/u1/grants/a",
			body:   `{"permission":"editor"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().Grant(gomock.Any(), "t1", "u1", "a", access.PermissionEditor).Return(true, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "grant without body is idempotent",
			method: http.MethodPut,
			path:   "/api/v0/tenants/t1/users/u1/grants/a",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().Grant(gomock.Any(), "t1", "u1", "a", access.DefaultPermission).Return(false, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "revoke",
			method: http.MethodDelete,
			path:   "/api/v0/tenants/t1/users/u1/grants/a",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().Revoke(gomock.Any(), "t1", "u1", "a").Return(false, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, resp *httptypes.Response) {
				data, _ := resp.Data.(map[string]any)
				if data["removed"] != false {
					t.Errorf("expected removed false, got %v", resp.Data)
				}
			},
		},
		{
			name:   "list",
			method: http.MethodGet,
			path:   "/api/v0/tenants/t1/users/u1/grants",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().DirectGrantsFor(gomock.Any(), "u1", "t1").Return(map[string]access.Permission{"a": access.PermissionOwn}, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, resp *httptypes.Response) {
				data, _ := resp.Data.(map[string]any)
				if data["a"] != "own" {
					t.Errorf("expected own level, got %v", resp.Data)
				}
			},
		},
		{
			name:   "storage failure",
			method: http.MethodGet,
			path:   "/api/v0/tenants/t1/users/u1/grants",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().DirectGrantsFor(gomock.Any(), "u1", "t1").Return(nil, errors.New("db down"))
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
