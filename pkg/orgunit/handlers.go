// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package orgunit

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/org-access-service/internal/http/types"
	"github.com/canonical/org-access-service/internal/logging"
)

type createUnitRequest struct {
	Name     string  `json:"name" validate:"required,max=255"`
	Code     string  `json:"code" validate:"required,max=32"`
	ParentID *string `json:"parent_id" validate:"omitempty,uuid"`
}

type moveUnitRequest struct {
	ParentID *string `json:"parent_id" validate:"omitempty,uuid"`
}

type renameUnitRequest struct {
	Name string `json:"name" validate:"required,max=255"`
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
	r.Get("/api/v0/tenants/{tenantID}/units", a.list)
	r.Post("/api/v0/tenants/{tenantID}/units", a.create)
	r.Get("/api/v0/tenants/{tenantID}/units/{unitID}", a.get)
	r.Patch("/api/v0/tenants/{tenantID}/units/{unitID}", a.rename)
	r.Delete("/api/v0/tenants/{tenantID}/units/{unitID}", a.delete)
	r.Post("/api/v0/tenants/{tenantID}/units/{unitID}/move", a.move)
	r.Get("/api/v0/tenants/{tenantID}/units/{unitID}/ancestors", a.ancestors)
	r.Get("/api/v0/tenants/{tenantID}/units/{unitID}/descendants", a.descendants)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	units, err := a.service.ListUnits(r.Context(), chi.URLParam(r, "tenantID"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "List of org units", units)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	var req createUnitRequest
	fields, err := types.DecodeAndValidate(r, &req)
	if err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if fields != nil {
		types.WriteValidationError(w, fields)
		return
	}

	unit, err := a.service.CreateUnit(r.Context(), chi.URLParam(r, "tenantID"), req.Name, req.Code, req.ParentID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusCreated, "Org unit created", unit)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	unit, err := a.service.GetUnit(r.Context(), chi.URLParam(r, "tenantID"), chi.URLParam(r, "unitID"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "Org unit", unit)
}

func (a *API) rename(w http.ResponseWriter, r *http.Request) {
	var req renameUnitRequest
	fields, err := types.DecodeAndValidate(r, &req)
	if err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if fields != nil {
		types.WriteValidationError(w, fields)
		return
	}

	unit, err := a.service.RenameUnit(r.Context(), chi.URLParam(r, "tenantID"), chi.URLParam(r, "unitID"), req.Name)
	if err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "Org unit renamed", unit)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	n, err := a.service.DeleteUnit(r.Context(), chi.URLParam(r, "tenantID"), chi.URLParam(r, "unitID"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "Org unit deleted", map[string]int{"removed": n})
}

func (a *API) move(w http.ResponseWriter, r *http.Request) {
	var req moveUnitRequest
	fields, err := types.DecodeAndValidate(r, &req)
	if err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if fields != nil {
		types.WriteValidationError(w, fields)
		return
	}

	if err := a.service.MoveUnit(r.Context(), chi.URLParam(r, "tenantID"), chi.URLParam(r, "unitID"), req.ParentID); err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "Org unit moved", nil)
}

func (a *API) ancestors(w http.ResponseWriter, r *http.Request) {
	units, err := a.service.Ancestors(r.Context(), chi.URLParam(r, "tenantID"), chi.URLParam(r, "unitID"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "Ancestors, nearest first", units)
}

func (a *API) descendants(w http.ResponseWriter, r *http.Request) {
	units, err := a.service.Descendants(r.Context(), chi.URLParam(r, "tenantID"), chi.URLParam(r, "unitID"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "Descendants", units)
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidCode), errors.Is(err, ErrInvalidName), errors.Is(err, ErrCrossTenantParent):
		types.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUnitNotFound), errors.Is(err, ErrTenantNotFound):
		types.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrDuplicateCode), errors.Is(err, ErrCycleDetected):
		types.WriteError(w, http.StatusConflict, err.Error())
	default:
		a.logger.Errorf("org unit request failed: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
