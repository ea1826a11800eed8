// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/org-access-service/internal/http/types"
	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/pkg/authentication"
)

type issueRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

type redeemRequest struct {
	Token      string `json:"token" validate:"required"`
	Credential string `json:"credential" validate:"required"`
}

type redeemSignedRequest struct {
	UID        string `json:"uid" validate:"required"`
	Token      string `json:"token" validate:"required"`
	Credential string `json:"credential" validate:"required"`
}

type issueResponse struct {
	*InviteView
	Link string `json:"link"`
}

type API struct {
	service ServiceInterface
	signed  SignedServiceInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, signed SignedServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		signed:  signed,
		logger:  logger,
	}
}

// RegisterEndpoints mounts the tenant administration routes.
func (a *API) RegisterEndpoints(r chi.Router) {
	r.Get("/api/v0/tenants/{tenantID}/invites", a.list)
	r.Post("/api/v0/tenants/{tenantID}/invites", a.issue)
	r.Delete("/api/v0/tenants/{tenantID}/invites/{inviteID}", a.revoke)
	r.Post("/api/v0/tenants/{tenantID}/users/{userID}/signed-invite", a.issueSigned)
}

// RegisterPublicEndpoints mounts the redemption routes, the token is the only credential
// a pending user holds.
func (a *API) RegisterPublicEndpoints(r chi.Router) {
	r.Post("/api/v0/invites/redeem", a.redeem)
	r.Post("/api/v0/invites/redeem-signed", a.redeemSigned)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	size, _ := strconv.ParseInt(r.URL.Query().Get("size"), 10, 64)

	invites, err := a.service.ListInvites(r.Context(), chi.URLParam(r, "tenantID"), page, size)
	if err != nil {
		a.writeError(w, err)
		return
	}

	types.WritePage(w, "Invites", invites, page, size)
}

func (a *API) issue(w http.ResponseWriter, r *http.Request) {
	var req issueRequest
	fields, err := types.DecodeAndValidate(r, &req)
	if err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if fields != nil {
		types.WriteValidationError(w, fields)
		return
	}

	var creator *string
	if id, ok := authentication.GetUserID(r.Context()); ok {
		creator = &id
	}

	invite, err := a.service.Issue(r.Context(), req.UserID, chi.URLParam(r, "tenantID"), creator)
	if err != nil {
		a.writeError(w, err)
		return
	}

	link, err := a.service.Notify(r.Context(), invite)
	if err != nil {
		a.logger.Errorf("failed to deliver invite %s: %v", invite.ID, err)
	}

	types.WriteJSON(w, http.StatusCreated, "Invite issued", issueResponse{
		InviteView: &InviteView{Invite: invite, State: invite.State()},
		Link:       link,
	})
}

func (a *API) revoke(w http.ResponseWriter, r *http.Request) {
	if err := a.service.Revoke(r.Context(), chi.URLParam(r, "tenantID"), chi.URLParam(r, "inviteID")); err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "Invite revoked", nil)
}

func (a *API) issueSigned(w http.ResponseWriter, r *http.Request) {
	token, err := a.signed.IssueSigned(r.Context(), chi.URLParam(r, "tenantID"), chi.URLParam(r, "userID"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusCreated, "Signed invite issued", token)
}

func (a *API) redeem(w http.ResponseWriter, r *http.Request) {
	var req redeemRequest
	fields, err := types.DecodeAndValidate(r, &req)
	if err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if fields != nil {
		types.WriteValidationError(w, fields)
		return
	}

	res, err := a.service.Redeem(r.Context(), req.Token, req.Credential)
	if err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "Account activated", res)
}

func (a *API) redeemSigned(w http.ResponseWriter, r *http.Request) {
	var req redeemSignedRequest
	fields, err := types.DecodeAndValidate(r, &req)
	if err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if fields != nil {
		types.WriteValidationError(w, fields)
		return
	}

	res, err := a.signed.RedeemSigned(r.Context(), req.UID, req.Token, req.Credential)
	if err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "Account activated", res)
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrWeakCredential):
		types.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInviteNotFound), errors.Is(err, ErrUserNotFound):
		types.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInviteNotLive):
		types.WriteError(w, http.StatusGone, ErrInviteNotLive.Error())
	case errors.Is(err, ErrAlreadyActive), errors.Is(err, ErrNotAMember):
		types.WriteError(w, http.StatusConflict, err.Error())
	default:
		a.logger.Errorf("invite request failed: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
