// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package activity

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/org-access-service/internal/http/types"
	"github.com/canonical/org-access-service/internal/logging"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(r chi.Router) {
	r.Get("/api/v0/tenants/{tenantID}/activity", a.list)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	size, _ := strconv.ParseInt(r.URL.Query().Get("size"), 10, 64)

	events, err := a.service.List(r.Context(), chi.URLParam(r, "tenantID"), page, size)
	if err != nil {
		a.logger.Errorf("failed to list activity: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "failed to list activity")
		return
	}

	types.WritePage(w, "List of activity events", events, page, size)
}
