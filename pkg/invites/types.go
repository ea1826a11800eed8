// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"time"

	"github.com/canonical/org-access-service/internal/types"
)

const (
	MechanismStored = "stored"
	MechanismSigned = "signed"
)

// Result describes a successful redemption.
type Result struct {
	UserID    string `json:"user_id"`
	TenantID  string `json:"tenant_id,omitempty"`
	InviteID  string `json:"invite_id,omitempty"`
	Mechanism string `json:"mechanism"`
}

type InviteView struct {
	*types.Invite
	State types.InviteState `json:"state"`
}

// SignedToken is the legacy link pair, uid identifies the account and token carries the
// signed claim.
type SignedToken struct {
	UID       string    `json:"uid"`
	Token     string    `json:"token"`
	Link      string    `json:"link"`
	ExpiresAt time.Time `json:"expires_at"`
}
