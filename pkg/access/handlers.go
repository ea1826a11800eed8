// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/org-access-service/internal/http/types"
	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/pkg/authentication"
)

type checkRequest struct {
	UnitID   string `json:"unit_id" validate:"required"`
	AuthorID string `json:"author_id"`
	Action   string `json:"action" validate:"required,oneof=view edit"`
}

type accessResponse struct {
	Bypass bool     `json:"bypass"`
	Access Map      `json:"access,omitempty"`
	Units  []string `json:"units,omitempty"`
}

type checkResponse struct {
	Allowed bool `json:"allowed"`
	Bypass  bool `json:"bypass"`
}

type API struct {
	service ServiceInterface
	admins  AdminCheckerInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, admins AdminCheckerInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		admins:  admins,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(r chi.Router) {
	r.Get("/api/v0/tenants/{tenantID}/me/access", a.me)
	r.Post("/api/v0/tenants/{tenantID}/me/access/check", a.checkMe)
	r.Get("/api/v0/tenants/{tenantID}/users/{userID}/access", a.user)
	r.Get("/api/v0/tenants/{tenantID}/users/{userID}/access/state", a.state)
	r.Post("/api/v0/tenants/{tenantID}/users/{userID}/access/check", a.checkUser)
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok || userID == "" {
		types.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}
	a.resolve(w, r, chi.URLParam(r, "tenantID"), userID)
}

func (a *API) user(w http.ResponseWriter, r *http.Request) {
	a.resolve(w, r, chi.URLParam(r, "tenantID"), chi.URLParam(r, "userID"))
}

func (a *API) resolve(w http.ResponseWriter, r *http.Request, tenantID, userID string) {
	ctx := r.Context()

	admin, err := a.admins.IsTenantAdmin(ctx, tenantID, userID)
	if err != nil {
		a.internalError(w, err)
		return
	}
	if admin {
		types.WriteJSON(w, http.StatusOK, "Administrator access", &accessResponse{Bypass: true})
		return
	}

	m, err := a.service.ResolveAccess(ctx, userID, tenantID)
	if err != nil {
		a.internalError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "Resolved access", &accessResponse{Access: m, Units: m.UnitIDs()})
}

func (a *API) state(w http.ResponseWriter, r *http.Request) {
	state, err := a.service.AccessState(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "tenantID"))
	if err != nil {
		a.internalError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "Access state", state)
}

func (a *API) checkMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok || userID == "" {
		types.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}
	a.check(w, r, chi.URLParam(r, "tenantID"), userID)
}

func (a *API) checkUser(w http.ResponseWriter, r *http.Request) {
	a.check(w, r, chi.URLParam(r, "tenantID"), chi.URLParam(r, "userID"))
}

func (a *API) check(w http.ResponseWriter, r *http.Request, tenantID, userID string) {
	var req checkRequest
	fields, err := types.DecodeAndValidate(r, &req)
	if err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if fields != nil {
		types.WriteValidationError(w, fields)
		return
	}

	ctx := r.Context()

	admin, err := a.admins.IsTenantAdmin(ctx, tenantID, userID)
	if err != nil {
		a.internalError(w, err)
		return
	}
	if admin {
		types.WriteJSON(w, http.StatusOK, "Administrator access", &checkResponse{Allowed: true, Bypass: true})
		return
	}

	rec := Record{UnitID: req.UnitID, AuthorID: req.AuthorID}

	var allowed bool
	if req.Action == "edit" {
		allowed, err = a.service.CanEdit(ctx, userID, tenantID, rec)
	} else {
		allowed, err = a.service.CanView(ctx, userID, tenantID, rec)
	}
	if err != nil {
		a.internalError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "Access check", &checkResponse{Allowed: allowed})
}

func (a *API) internalError(w http.ResponseWriter, err error) {
	a.logger.Errorf("access request failed: %v", err)
	types.WriteError(w, http.StatusInternalServerError, "internal error")
}
