// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/tracing"
)

func TestTokenClaimsPrincipal(t *testing.T) {
	claims := &tokenClaims{
		Subject:    "user-1",
		Scope:      "openid org-access",
		Scopes:     []string{"org-access", "offline"},
		Tenants:    []string{"t1", "t2"},
		Privileged: true,
	}

	p := claims.principal()

	if !reflect.DeepEqual(p.Scopes, []string{"openid", "org-access", "offline"}) {
		t.Errorf("unexpected scopes %v", p.Scopes)
	}
	if !p.HasScope("offline") || p.HasScope("admin") {
		t.Errorf("unexpected scope lookup result for %v", p.Scopes)
	}
	if !p.Privileged || len(p.Tenants) != 2 {
		t.Errorf("hook claims not carried over: %+v", p)
	}
}

func TestJWTVerifierAdmit(t *testing.T) {
	tests := []struct {
		name     string
		subjects []string
		scope    string
		p        *Principal
		expected error
	}{
		{
			name:     "no policy",
			p:        &Principal{Subject: "user-1"},
			expected: ErrNoAccessPolicy,
		},
		{
			name:     "allowed subject",
			subjects: []string{"service-a"},
			p:        &Principal{Subject: "service-a"},
		},
		{
			name:  "required scope",
			scope: "org-access",
			p:     &Principal{Subject: "user-1", Scopes: []string{"openid", "org-access"}},
		},
		{
			name:     "subject not allowed and scope missing",
			subjects: []string{"service-a"},
			scope:    "org-access",
			p:        &Principal{Subject: "user-1", Scopes: []string{"openid"}},
			expected: ErrNotAllowed,
		},
	}

	logger := logging.NewNoopLogger()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v := NewJWTVerifier(nil, test.subjects, test.scope, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

			if err := v.admit(test.p); !errors.Is(err, test.expected) {
				t.Errorf("expected %v, got %v", test.expected, err)
			}
		})
	}
}

func TestNewJWTAuthenticatorRequiresPolicy(t *testing.T) {
	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	if _, err := NewJWTAuthenticator(context.Background(), "", "", "", nil, "scope", tracer, monitor, logger); err == nil {
		t.Error("expected error without issuer")
	}
	if _, err := NewJWTAuthenticator(context.Background(), "https://issuer", "https://issuer/jwks", "", nil, "", tracer, monitor, logger); !errors.Is(err, ErrNoAccessPolicy) {
		t.Errorf("expected %v, got %v", ErrNoAccessPolicy, err)
	}

	v, err := NewJWTAuthenticator(context.Background(), "https://issuer", "https://issuer/jwks", "", nil, "org-access", tracer, monitor, logger)
	if err != nil || v == nil {
		t.Fatalf("expected verifier, got %v", err)
	}
}

func TestWithPrincipal(t *testing.T) {
	ctx := WithPrincipal(context.Background(), &Principal{Subject: "user-1"})

	if id, ok := GetUserID(ctx); !ok || id != "user-1" {
		t.Errorf("expected user-1, got %q", id)
	}
	if _, ok := GetPrincipal(WithUserID(context.Background(), "user-2")); ok {
		t.Error("header based identities carry no principal")
	}
}
