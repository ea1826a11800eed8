// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/org-access-service/internal/db"
	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/tracing"
	"github.com/canonical/org-access-service/pkg/access"
	"github.com/canonical/org-access-service/pkg/activity"
	"github.com/canonical/org-access-service/pkg/grants"
	"github.com/canonical/org-access-service/pkg/invites"
	"github.com/canonical/org-access-service/pkg/metrics"
	"github.com/canonical/org-access-service/pkg/orgunit"
	"github.com/canonical/org-access-service/pkg/status"
	"github.com/canonical/org-access-service/pkg/tenant"
	"github.com/canonical/org-access-service/pkg/webhooks"
)

// APIs groups the handlers mounted by the router.
type APIs struct {
	Tenants  *tenant.API
	Units    *orgunit.API
	Grants   *grants.API
	Access   *access.API
	Invites  *invites.API
	Activity *activity.API
	Webhooks *webhooks.API
	Status   *status.API
	Metrics  *metrics.API
}

func NewRouter(
	apis APIs,
	authenticate func(http.Handler) http.Handler,
	gate *Gate,
	origins []string,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(origins),
	)

	router.Use(middlewares...)

	apis.Metrics.RegisterEndpoints(router)
	apis.Status.RegisterEndpoints(router)

	router.Group(func(r chi.Router) {
		r.Use(db.TransactionMiddleware(dbClient, logger))

		apis.Invites.RegisterPublicEndpoints(r)
		apis.Webhooks.RegisterEndpoints(r)
	})

	router.Group(func(r chi.Router) {
		r.Use(authenticate, gate.Middleware, db.TransactionMiddleware(dbClient, logger))

		apis.Tenants.RegisterEndpoints(r)
		apis.Units.RegisterEndpoints(r)
		apis.Grants.RegisterEndpoints(r)
		apis.Access.RegisterEndpoints(r)
		apis.Invites.RegisterEndpoints(r)
		apis.Activity.RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
