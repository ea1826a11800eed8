// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/org-access-service/internal/http/types"
	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/tracing"
	"github.com/canonical/org-access-service/internal/version"
)

type Status struct {
	Version string `json:"version"`
}

type API struct {
	db PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(r chi.Router) {
	r.Get("/api/v0/status", a.alive)
	r.Get("/api/v0/ready", a.ready)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	types.WriteJSON(w, http.StatusOK, "alive", Status{Version: version.Version})
}

// ready fails while the database is unreachable.
func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	if err := a.db.Ping(ctx); err != nil {
		a.logger.Errorf("readiness check failed: %v", err)
		types.WriteError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	types.WriteJSON(w, http.StatusOK, "ready", Status{Version: version.Version})
}

func NewAPI(db PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.db = db
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
