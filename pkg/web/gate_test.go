// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/tracing"
	"github.com/canonical/org-access-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package web -destination ./mock_interfaces.go -source=./interfaces.go

const (
	gateTenant = "0191e0a0-0000-7000-8000-0000000000aa"
	gateUser   = "0191e0a0-0000-7000-8000-0000000000bb"
)

func TestGate(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		anonymous  bool
		setupMocks func(*MockRoleResolverInterface, *MockPrivilegeCheckerInterface)
		expected   int
	}{
		{
			name:      "anonymous",
			method:    http.MethodGet,
			path:      "/api/v0/me/tenants",
			anonymous: true,
			expected:  http.StatusUnauthorized,
		},
		{
			name:   "own tenants",
			method: http.MethodGet,
			path:   "/api/v0/me/tenants",
			setupMocks: func(_ *MockRoleResolverInterface, p *MockPrivilegeCheckerInterface) {
				p.EXPECT().IsPrivilegedAdmin(gomock.Any(), gateUser).Return(false, nil)
			},
			expected: http.StatusOK,
		},
		{
			name:   "create tenant needs privileged",
			method: http.MethodPost,
			path:   "/api/v0/tenants",
			setupMocks: func(_ *MockRoleResolverInterface, p *MockPrivilegeCheckerInterface) {
				p.EXPECT().IsPrivilegedAdmin(gomock.Any(), gateUser).Return(false, nil)
			},
			expected: http.StatusForbidden,
		},
		{
			name:   "privileged creates tenant",
			method: http.MethodPost,
			path:   "/api/v0/tenants",
			setupMocks: func(_ *MockRoleResolverInterface, p *MockPrivilegeCheckerInterface) {
				p.EXPECT().IsPrivilegedAdmin(gomock.Any(), gateUser).Return(true, nil)
			},
			expected: http.StatusOK,
		},
		{
			name:     "invalid tenant id",
			method:   http.MethodGet,
			path:     "/api/v0/tenants/not-a-uuid/units",
			expected: http.StatusBadRequest,
		},
		{
			name:   "member lists units",
			method: http.MethodGet,
			path:   "/api/v0/tenants/" + gateTenant + "/units",
			setupMocks: func(r *MockRoleResolverInterface, _ *MockPrivilegeCheckerInterface) {
				r.EXPECT().IsTenantAdmin(gomock.Any(), gateTenant, gateUser).Return(false, nil)
				r.EXPECT().IsMember(gomock.Any(), gateTenant, gateUser).Return(true, nil)
			},
			expected: http.StatusOK,
		},
		{
			name:   "member checks own access",
			method: http.MethodPost,
			path:   "/api/v0/tenants/" + gateTenant + "/me/access/check",
			setupMocks: func(r *MockRoleResolverInterface, _ *MockPrivilegeCheckerInterface) {
				r.EXPECT().IsTenantAdmin(gomock.Any(), gateTenant, gateUser).Return(false, nil)
				r.EXPECT().IsMember(gomock.Any(), gateTenant, gateUser).Return(true, nil)
			},
			expected: http.StatusOK,
		},
		{
			name:   "member cannot move units",
			method: http.MethodPost,
			path:   "/api/v0/tenants/" + gateTenant + "/units/0191e0a0-0000-7000-8000-0000000000cc/move",
			setupMocks: func(r *MockRoleResolverInterface, _ *MockPrivilegeCheckerInterface) {
				r.EXPECT().IsTenantAdmin(gomock.Any(), gateTenant, gateUser).Return(false, nil)
				r.EXPECT().IsMember(gomock.Any(), gateTenant, gateUser).Return(true, nil)
			},
			expected: http.StatusForbidden,
		},
		{
			name:   "member cannot replace grants",
			method: http.MethodPut,
			path:   "/api/v0/tenants/" + gateTenant + "/users/" + gateUser + "/grants",
			setupMocks: func(r *MockRoleResolverInterface, _ *MockPrivilegeCheckerInterface) {
				r.EXPECT().IsTenantAdmin(gomock.Any(), gateTenant, gateUser).Return(false, nil)
				r.EXPECT().IsMember(gomock.Any(), gateTenant, gateUser).Return(true, nil)
			},
			expected: http.StatusForbidden,
		},
		{
			name:   "admin replaces grants",
			method: http.MethodPut,
			path:   "/api/v0/tenants/" + gateTenant + "/users/" + gateUser + "/grants",
			setupMocks: func(r *MockRoleResolverInterface, _ *MockPrivilegeCheckerInterface) {
				r.EXPECT().IsTenantAdmin(gomock.Any(), gateTenant, gateUser).Return(true, nil)
			},
			expected: http.StatusOK,
		},
		{
			name:   "admin revokes invite",
			method: http.MethodDelete,
			path:   "/api/v0/tenants/" + gateTenant + "/invites/0191e0a0-0000-7000-8000-0000000000dd",
			setupMocks: func(r *MockRoleResolverInterface, _ *MockPrivilegeCheckerInterface) {
				r.EXPECT().IsTenantAdmin(gomock.Any(), gateTenant, gateUser).Return(true, nil)
			},
			expected: http.StatusOK,
		},
		{
			name:   "outsider reads tenant",
			method: http.MethodGet,
			path:   "/api/v0/tenants/" + gateTenant,
			setupMocks: func(r *MockRoleResolverInterface, _ *MockPrivilegeCheckerInterface) {
				r.EXPECT().IsTenantAdmin(gomock.Any(), gateTenant, gateUser).Return(false, nil)
				r.EXPECT().IsMember(gomock.Any(), gateTenant, gateUser).Return(false, nil)
			},
			expected: http.StatusForbidden,
		},
		{
			name:   "resolver error",
			method: http.MethodGet,
			path:   "/api/v0/tenants/" + gateTenant,
			setupMocks: func(r *MockRoleResolverInterface, _ *MockPrivilegeCheckerInterface) {
				r.EXPECT().IsTenantAdmin(gomock.Any(), gateTenant, gateUser).Return(false, errors.New("db down"))
			},
			expected: http.StatusInternalServerError,
		},
	}

	enforcer, err := NewEnforcer("", "")
	if err != nil {
		t.Fatalf("failed to load embedded policy: %v", err)
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			roles := NewMockRoleResolverInterface(ctrl)
			privileges := NewMockPrivilegeCheckerInterface(ctrl)
			if test.setupMocks != nil {
				test.setupMocks(roles, privileges)
			}

			logger := logging.NewNoopLogger()
			gate := NewGate(enforcer, roles, privileges, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

			handler := gate.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(test.method, test.path, nil)
			if !test.anonymous {
				req = req.WithContext(authentication.WithUserID(context.Background(), gateUser))
			}

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != test.expected {
				t.Errorf("expected status %d, got %d", test.expected, w.Code)
			}
		})
	}
}

func TestTenantFromPath(t *testing.T) {
	tests := []struct {
		path     string
		tenantID string
		scoped   bool
	}{
		{path: "/api/v0/tenants", scoped: false},
		{path: "/api/v0/tenants/", scoped: false},
		{path: "/api/v0/tenants/abc", tenantID: "abc", scoped: true},
		{path: "/api/v0/tenants/abc/units/x", tenantID: "abc", scoped: true},
		{path: "/api/v0/me/tenants", scoped: false},
	}

	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			tenantID, scoped := tenantFromPath(test.path)
			if tenantID != test.tenantID || scoped != test.scoped {
				t.Errorf("expected (%q, %v), got (%q, %v)", test.tenantID, test.scoped, tenantID, scoped)
			}
		})
	}
}
