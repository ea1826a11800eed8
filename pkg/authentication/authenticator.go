// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"

	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/tracing"
)

// NewJWTAuthenticator returns a verifier for issuer, keys come from jwksURL when set and
// from OIDC discovery otherwise. A non-empty audience must appear in the aud claim.
func NewJWTAuthenticator(
	ctx context.Context,
	issuer string,
	jwksURL string,
	audience string,
	allowedSubjects []string,
	requiredScope string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (TokenVerifierInterface, error) {
	if issuer == "" {
		return nil, errors.New("issuer is required for JWT authentication")
	}
	if len(allowedSubjects) == 0 && requiredScope == "" {
		return nil, ErrNoAccessPolicy
	}

	if jwksURL != "" {
		logger.Infof("JWT authentication enabled, keys from %s", jwksURL)
		return NewJWTVerifier(NewKeySetVerifier(ctx, issuer, jwksURL, audience), allowedSubjects, requiredScope, tracer, monitor, logger), nil
	}

	provider, err := NewProvider(ctx, issuer)
	if err != nil {
		return nil, err
	}
	logger.Infof("JWT authentication enabled, keys discovered from %s", issuer)

	return NewJWTVerifier(NewProviderVerifier(provider, audience), allowedSubjects, requiredScope, tracer, monitor, logger), nil
}
