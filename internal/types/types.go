// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
	RoleViewer = "viewer"
)

type Tenant struct {
	ID         string    `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	ExternalID *string   `db:"external_id" json:"external_id,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	Enabled    bool      `db:"enabled" json:"enabled"`
}

type Membership struct {
	ID        string    `db:"id" json:"id"`
	TenantID  string    `db:"tenant_id" json:"tenant_id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Role      string    `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// User is the account record gated by the activation flag, a pending user has Active false
// and no usable password hash.
type User struct {
	ID                string    `db:"id" json:"id"`
	Email             string    `db:"email" json:"email"`
	Active            bool      `db:"active" json:"active"`
	PasswordHash      *string   `db:"password_hash" json:"-"`
	CredentialVersion int64     `db:"credential_version" json:"-"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

type OrgUnit struct {
	ID        string    `db:"id" json:"id"`
	TenantID  string    `db:"tenant_id" json:"tenant_id"`
	Name      string    `db:"name" json:"name"`
	Code      string    `db:"code" json:"code"`
	ParentID  *string   `db:"parent_id" json:"parent_id,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type AccessGrant struct {
	ID         string    `db:"id" json:"id"`
	UserID     string    `db:"user_id" json:"user_id"`
	TenantID   string    `db:"tenant_id" json:"tenant_id"`
	OrgUnitID  string    `db:"org_unit_id" json:"org_unit_id"`
	Permission string    `db:"permission" json:"permission"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type InviteState string

const (
	InviteLive     InviteState = "LIVE"
	InviteRevoked  InviteState = "REVOKED"
	InviteAccepted InviteState = "ACCEPTED"
)

type Invite struct {
	ID         string     `db:"id" json:"id"`
	UserID     string     `db:"user_id" json:"user_id"`
	TenantID   string     `db:"tenant_id" json:"tenant_id"`
	CreatedBy  *string    `db:"created_by" json:"created_by,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	RevokedAt  *time.Time `db:"revoked_at" json:"revoked_at,omitempty"`
	AcceptedAt *time.Time `db:"accepted_at" json:"accepted_at,omitempty"`
}

// State derives the lifecycle state, accepted takes precedence as both terminal
// timestamps are never set together.
func (i *Invite) State() InviteState {
	switch {
	case i.AcceptedAt != nil:
		return InviteAccepted
	case i.RevokedAt != nil:
		return InviteRevoked
	default:
		return InviteLive
	}
}

type ActivityEvent struct {
	ID        string         `db:"id" json:"id"`
	TenantID  string         `db:"tenant_id" json:"tenant_id"`
	ActorID   *string        `db:"actor_id" json:"actor_id,omitempty"`
	Verb      string         `db:"verb" json:"verb"`
	Meta      map[string]any `db:"meta" json:"meta,omitempty"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}

type TenantUser struct {
	UserID        string `json:"user_id"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	Active        bool   `json:"active"`
	PendingInvite bool   `json:"pending_invite"`
}
