// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"strings"

	httptypes "github.com/canonical/org-access-service/internal/http/types"
	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/tracing"
	"github.com/canonical/org-access-service/pkg/authentication"
)

// HeaderName carries the identity id set by the authenticating proxy in front of the service.
const HeaderName = "X-Kratos-Authenticated-Identity-Id"

type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HTTPMiddleware trusts the identity header and rejects requests without one.
func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		userID := strings.TrimSpace(r.Header.Get(HeaderName))
		if userID == "" {
			httptypes.WriteError(w, http.StatusUnauthorized, "missing identity header")
			return
		}

		ctx = authentication.WithUserID(ctx, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
