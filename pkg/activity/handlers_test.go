// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package activity

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	httptypes "github.com/canonical/org-access-service/internal/http/types"
	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/types"
)

func TestAPI_List(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:  "success",
			query: "?page=1&size=10",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().List(gomock.Any(), "t1", int64(1), int64(10)).Return(
					[]*types.ActivityEvent{{ID: "e1", Verb: VerbUnitMoved}}, nil,
				)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "service error",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().List(gomock.Any(), "t1", int64(0), int64(0)).Return(nil, errors.New("boom"))
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

			req := httptest.NewRequest(http.MethodGet, "/api/v0/tenants/t1/activity"+tt.query, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			var resp httptypes.Response
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Status != tt.expectedStatus {
				t.Errorf("expected envelope status %d, got %d", tt.expectedStatus, resp.Status)
			}
		})
	}
}
