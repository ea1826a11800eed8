// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// KratosIdentity is the payload posted by the registration after-hook.
type KratosIdentity struct {
	ID     string       `json:"id"`
	Traits KratosTraits `json:"traits"`
}

type KratosTraits struct {
	Email string `json:"email"`
}

type TokenHookSession struct {
	IDToken     map[string]interface{} `json:"id_token,omitempty"`
	AccessToken map[string]interface{} `json:"access_token,omitempty"`
}

// TokenHookResponse is merged by hydra into the issued tokens.
type TokenHookResponse struct {
	Session TokenHookSession `json:"session"`
}
