// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/org-access-service/internal/http/types"
	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/types"
	"github.com/canonical/org-access-service/pkg/authentication"
)

type createTenantRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type updateTenantRequest struct {
	Name    *string `json:"name" validate:"omitempty,max=255"`
	Enabled *bool   `json:"enabled"`
}

type memberRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Role   string `json:"role" validate:"required,oneof=admin member viewer"`
}

type roleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin member viewer"`
}

type inviteRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=admin member viewer"`
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
	r.Get("/api/v0/tenants", a.listTenants)
	r.Post("/api/v0/tenants", a.createTenant)
	r.Get("/api/v0/tenants/{tenantID}", a.getTenant)
	r.Patch("/api/v0/tenants/{tenantID}", a.updateTenant)

	r.Get("/api/v0/me/tenants", a.listMyTenants)
	r.Get("/api/v0/users/{userID}/tenants", a.listUserTenants)

	r.Get("/api/v0/tenants/{tenantID}/members", a.listMembers)
	r.Post("/api/v0/tenants/{tenantID}/members", a.addMember)
	r.Post("/api/v0/tenants/{tenantID}/members/invite", a.inviteMember)
	r.Patch("/api/v0/tenants/{tenantID}/members/{userID}", a.updateMember)
	r.Delete("/api/v0/tenants/{tenantID}/members/{userID}", a.removeMember)
}

func (a *API) listTenants(w http.ResponseWriter, r *http.Request) {
	tenants, err := a.service.ListTenants(r.Context())
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, "Tenants", tenants)
}

func (a *API) createTenant(w http.ResponseWriter, r *http.Request) {
	var req createTenantRequest
	if !decode(w, r, &req) {
		return
	}

	t, err := a.service.CreateTenant(r.Context(), req.Name)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, "Tenant created", t)
}

func (a *API) getTenant(w http.ResponseWriter, r *http.Request) {
	t, err := a.service.GetTenant(r.Context(), chi.URLParam(r, "tenantID"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, "Tenant", t)
}

func (a *API) updateTenant(w http.ResponseWriter, r *http.Request) {
	var req updateTenantRequest
	if !decode(w, r, &req) {
		return
	}

	t := &types.Tenant{ID: chi.URLParam(r, "tenantID")}
	var paths []string

	if req.Name != nil {
		t.Name = *req.Name
		paths = append(paths, "name")
	}
	if req.Enabled != nil {
		t.Enabled = *req.Enabled
		paths = append(paths, "enabled")
	}

	updated, err := a.service.UpdateTenant(r.Context(), t, paths)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, "Tenant updated", updated)
}

func (a *API) listMyTenants(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	tenants, err := a.service.ListUserTenants(r.Context(), userID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, "Tenants", tenants)
}

func (a *API) listUserTenants(w http.ResponseWriter, r *http.Request) {
	tenants, err := a.service.ListUserTenants(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, "Tenants", tenants)
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	users, err := a.service.ListMembers(r.Context(), chi.URLParam(r, "tenantID"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, "Members", users)
}

func (a *API) addMember(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if !decode(w, r, &req) {
		return
	}

	m, err := a.service.AddMember(r.Context(), chi.URLParam(r, "tenantID"), req.UserID, req.Role)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, "Member added", m)
}

func (a *API) inviteMember(w http.ResponseWriter, r *http.Request) {
	var req inviteRequest
	if !decode(w, r, &req) {
		return
	}

	role := req.Role
	if role == "" {
		role = types.RoleMember
	}

	inv, err := a.service.InviteMember(r.Context(), chi.URLParam(r, "tenantID"), req.Email, role)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, "Member invited", inv)
}

func (a *API) updateMember(w http.ResponseWriter, r *http.Request) {
	var req roleRequest
	if !decode(w, r, &req) {
		return
	}

	m, err := a.service.UpdateMemberRole(r.Context(), chi.URLParam(r, "tenantID"), chi.URLParam(r, "userID"), req.Role)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, "Member updated", m)
}

func (a *API) removeMember(w http.ResponseWriter, r *http.Request) {
	if err := a.service.RemoveMember(r.Context(), chi.URLParam(r, "tenantID"), chi.URLParam(r, "userID")); err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, "Member removed", nil)
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	fields, err := httptypes.DecodeAndValidate(r, dst)
	if err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, err.Error())
		return false
	}
	if fields != nil {
		httptypes.WriteValidationError(w, fields)
		return false
	}

	return true
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidName), errors.Is(err, ErrInvalidRole), errors.Is(err, ErrInvalidEmail):
		httptypes.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrTenantNotFound), errors.Is(err, ErrNotAMember), errors.Is(err, ErrUserNotFound):
		httptypes.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrAlreadyMember):
		httptypes.WriteError(w, http.StatusConflict, err.Error())
	default:
		a.logger.Errorf("tenant request failed: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
