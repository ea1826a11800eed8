// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package grants

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/org-access-service/internal/http/types"
	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/pkg/access"
)

// replaceRequest accepts either explicit levels per unit or a plain id list sharing one
// level, entries in Grants win over UnitIDs.
type replaceRequest struct {
	Grants     map[string]access.Permission `json:"grants"`
	UnitIDs    []string                     `json:"unit_ids" validate:"omitempty,dive,required"`
	Permission *access.Permission           `json:"permission"`
}

type grantRequest struct {
	Permission *access.Permission `json:"permission"`
}

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
	r.Get("/api/v0/tenants/{tenantID}/users/{userID}/grants", a.list)
	r.Put("/api/v0/tenants/{tenantID}/users/{userID}/grants", a.replace)
	r.Put("/api/v0/tenants/{tenantID}/users/{userID}/grants/{unitID}", a.grant)
	r.Delete("/api/v0/tenants/{tenantID}/users/{userID}/grants/{unitID}", a.revoke)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	grants, err := a.service.DirectGrantsFor(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "tenantID"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "Direct grants", grants)
}

func (a *API) replace(w http.ResponseWriter, r *http.Request) {
	var req replaceRequest
	fields, err := types.DecodeAndValidate(r, &req)
	if err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if fields != nil {
		types.WriteValidationError(w, fields)
		return
	}

	level := access.DefaultPermission
	if req.Permission != nil {
		level = *req.Permission
	}

	set := make(map[string]access.Permission, len(req.UnitIDs)+len(req.Grants))
	for _, id := range req.UnitIDs {
		set[id] = level
	}
	for id, p := range req.Grants {
		set[id] = p
	}

	n, err := a.service.ReplaceGrants(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "tenantID"), set)
	if err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "Grants replaced", map[string]int{"count": n})
}

func (a *API) grant(w http.ResponseWriter, r *http.Request) {
	var req grantRequest
	if r.ContentLength != 0 {
		if _, err := types.DecodeAndValidate(r, &req); err != nil {
			types.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	level := access.DefaultPermission
	if req.Permission != nil {
		level = *req.Permission
	}

	created, err := a.service.Grant(
		r.Context(),
		chi.URLParam(r, "tenantID"),
		chi.URLParam(r, "userID"),
		chi.URLParam(r, "unitID"),
		level,
	)
	if err != nil {
		a.writeError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	types.WriteJSON(w, status, "Grant applied", map[string]bool{"created": created})
}

func (a *API) revoke(w http.ResponseWriter, r *http.Request) {
	removed, err := a.service.Revoke(
		r.Context(),
		chi.URLParam(r, "tenantID"),
		chi.URLParam(r, "userID"),
		chi.URLParam(r, "unitID"),
	)
	if err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "Grant revoked", map[string]bool{"removed": removed})
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	var notInTenant *UnitNotInTenantError

	switch {
	case errors.As(err, &notInTenant):
		types.WriteErrorDetails(w, http.StatusBadRequest, ErrUnitNotInTenant.Error(), map[string][]string{"unit_ids": notInTenant.IDs})
	case errors.Is(err, ErrNotAMember):
		types.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, access.ErrUnknownPermission):
		types.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		a.logger.Errorf("grant request failed: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
