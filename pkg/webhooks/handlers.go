// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ory/hydra/v2/oauth2"

	httptypes "github.com/canonical/org-access-service/internal/http/types"
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
	r.Post("/webhooks/registration", a.registration)
	r.Post("/webhooks/token", a.tokenHook)
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	var identity KratosIdentity
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil {
		a.logger.Errorf("failed to decode registration payload: %v", err)
		httptypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.service.HandleRegistration(r.Context(), identity.ID, identity.Traits.Email); err != nil {
		a.logger.Errorf("registration hook failed: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	w.WriteHeader(http.StatusOK)
}

// tokenHook answers with the bare session document hydra merges into the tokens.
func (a *API) tokenHook(w http.ResponseWriter, r *http.Request) {
	var req oauth2.TokenHookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.logger.Errorf("failed to decode token hook payload: %v", err)
		httptypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := a.service.HandleTokenHook(r.Context(), &req)
	if errors.Is(err, ErrMissingSubject) {
		httptypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		a.logger.Errorf("token hook failed: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "token hook failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}
