// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/tracing"
)

var (
	ErrNoAccessPolicy = errors.New("unauthorized: no access policy configured")
	ErrNotAllowed     = errors.New("unauthorized: missing required scope or subject not allowed")
)

// JWTVerifier admits tokens whose subject is allow-listed or that carry the required scope.
type JWTVerifier struct {
	verifier        *oidc.IDTokenVerifier
	allowedSubjects []string
	requiredScope   string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (*Principal, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, err
	}

	claims := new(tokenClaims)
	if err := token.Claims(claims); err != nil {
		v.logger.Debugf("failed to extract claims: %v", err)
		return nil, fmt.Errorf("invalid token claims: %w", err)
	}

	p := claims.principal()
	if err := v.admit(p); err != nil {
		v.logger.Security().AuthzFailure(p.Subject, "jwt_api_access")
		return nil, err
	}

	return p, nil
}

func (v *JWTVerifier) admit(p *Principal) error {
	if len(v.allowedSubjects) == 0 && v.requiredScope == "" {
		return ErrNoAccessPolicy
	}
	if slices.Contains(v.allowedSubjects, p.Subject) {
		return nil
	}
	if v.requiredScope != "" && p.HasScope(v.requiredScope) {
		return nil
	}
	return ErrNotAllowed
}

// NewJWTVerifier wraps an already configured oidc verifier, see NewProvider and NewKeySetVerifier.
func NewJWTVerifier(
	verifier *oidc.IDTokenVerifier,
	allowedSubjects []string,
	requiredScope string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	return &JWTVerifier{
		verifier:        verifier,
		allowedSubjects: allowedSubjects,
		requiredScope:   requiredScope,
		tracer:          tracer,
		monitor:         monitor,
		logger:          logger,
	}
}
