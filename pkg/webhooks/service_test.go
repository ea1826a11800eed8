// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"testing"

	"github.com/ory/hydra/v2/oauth2"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/org-access-service/internal/storage"
	"github.com/canonical/org-access-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_webhooks.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_HandleRegistration(t *testing.T) {
	identityID := "0191e0a0-0000-7000-8000-000000000001"
	email := "user@example.com"

	testCases := []struct {
		name        string
		identityID  string
		email       string
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface)
		expectedErr bool
	}{
		{
			name:       "success",
			identityID: identityID,
			email:      email,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				mockStorage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) (*types.User, error) {
						if u.ID != identityID || u.Email != email {
							return nil, errors.New("wrong user")
						}
						if !u.Active {
							return nil, errors.New("self registered users should be active")
						}
						return u, nil
					})
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any())
			},
		},
		{
			name:       "already registered",
			identityID: identityID,
			email:      email,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).Times(2)
				mockStorage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
		},
		{
			name:       "error - empty email",
			identityID: identityID,
			email:      "  ",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
			},
			expectedErr: true,
		},
		{
			name:       "error - empty identity id",
			identityID: "",
			email:      email,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
			},
			expectedErr: true,
		},
		{
			name:       "error - storage",
			identityID: identityID,
			email:      email,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				mockStorage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, errors.New("storage error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockAuthz := NewMockAuthorizerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockAuthz, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "webhooks.Service.HandleRegistration").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			err := s.HandleRegistration(context.Background(), tc.identityID, tc.email)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_HandleTokenHook(t *testing.T) {
	userID := "user-123"
	tenants := []*types.Tenant{
		{ID: "tenant-1", Name: "Tenant 1", Enabled: true},
		{ID: "tenant-2", Name: "Tenant 2", Enabled: true},
	}

	testCases := []struct {
		name         string
		request      *oauth2.TokenHookRequest
		setupMocks   func(*MockStorageInterface, *MockAuthorizerInterface, *MockLoggerInterface)
		expectedErr  error
		validateResp func(*testing.T, *TokenHookResponse)
	}{
		{
			name:    "user with tenants",
			request: &oauth2.TokenHookRequest{Session: oauth2.NewSession(userID)},
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				mockStorage.EXPECT().ListActiveTenantsByUserID(gomock.Any(), userID).Return(tenants, nil)
				mockAuthz.EXPECT().IsPrivilegedAdmin(gomock.Any(), userID).Return(false, nil)
			},
			validateResp: func(t *testing.T, resp *TokenHookResponse) {
				tenantList, ok := resp.Session.IDToken[tenantsClaim].([]string)
				if !ok || len(tenantList) != 2 {
					t.Errorf("expected 2 tenants in ID token, got %v", resp.Session.IDToken[tenantsClaim])
				}
				if resp.Session.AccessToken[tenantsClaim] == nil {
					t.Error("expected tenants in access token")
				}
				if _, ok := resp.Session.AccessToken[privilegedClaim]; ok {
					t.Error("expected no privileged claim")
				}
			},
		},
		{
			name:    "privileged user with no tenants",
			request: &oauth2.TokenHookRequest{Session: oauth2.NewSession(userID)},
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				mockStorage.EXPECT().ListActiveTenantsByUserID(gomock.Any(), userID).Return([]*types.Tenant{}, nil)
				mockAuthz.EXPECT().IsPrivilegedAdmin(gomock.Any(), userID).Return(true, nil)
			},
			validateResp: func(t *testing.T, resp *TokenHookResponse) {
				if resp.Session.IDToken[tenantsClaim] != nil {
					t.Error("expected no tenants key in ID token for empty list")
				}
				if resp.Session.AccessToken[privilegedClaim] != true {
					t.Errorf("expected privileged claim, got %v", resp.Session.AccessToken)
				}
			},
		},
		{
			name:        "no subject",
			request:     &oauth2.TokenHookRequest{Session: oauth2.NewSession("")},
			setupMocks:  func(*MockStorageInterface, *MockAuthorizerInterface, *MockLoggerInterface) {},
			expectedErr: ErrMissingSubject,
		},
		{
			name:        "nil session",
			request:     &oauth2.TokenHookRequest{},
			setupMocks:  func(*MockStorageInterface, *MockAuthorizerInterface, *MockLoggerInterface) {},
			expectedErr: ErrMissingSubject,
		},
		{
			name:    "storage error",
			request: &oauth2.TokenHookRequest{Session: oauth2.NewSession(userID)},
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				mockStorage.EXPECT().ListActiveTenantsByUserID(gomock.Any(), userID).Return(nil, errors.New("storage error"))
			},
			expectedErr: errors.New("storage error"),
		},
		{
			name:    "authorizer error",
			request: &oauth2.TokenHookRequest{Session: oauth2.NewSession(userID)},
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				mockStorage.EXPECT().ListActiveTenantsByUserID(gomock.Any(), userID).Return(tenants, nil)
				mockAuthz.EXPECT().IsPrivilegedAdmin(gomock.Any(), userID).Return(false, errors.New("fga down"))
			},
			expectedErr: errors.New("fga down"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockAuthz := NewMockAuthorizerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockAuthz, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "webhooks.Service.HandleTokenHook").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockAuthz, mockLogger)

			resp, err := s.HandleTokenHook(context.Background(), tc.request)

			if tc.expectedErr != nil {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if errors.Is(tc.expectedErr, ErrMissingSubject) && !errors.Is(err, ErrMissingSubject) {
					t.Errorf("expected %v, got %v", ErrMissingSubject, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp == nil {
				t.Fatal("expected response but got nil")
			}
			tc.validateResp(t, resp)
		})
	}
}
