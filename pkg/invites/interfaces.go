// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"

	"github.com/canonical/org-access-service/internal/types"
)

type ServiceInterface interface {
	Issue(ctx context.Context, userID, tenantID string, creatorID *string) (*types.Invite, error)
	Revoke(ctx context.Context, tenantID, inviteID string) error
	ListInvites(ctx context.Context, tenantID string, page, size int64) ([]*InviteView, error)
	Notify(ctx context.Context, invite *types.Invite) (string, error)
	Redeemer
}

type SignedServiceInterface interface {
	IssueSigned(ctx context.Context, tenantID, userID string) (*SignedToken, error)
	RedeemSigned(ctx context.Context, uid, token, credential string) (*Result, error)
}

// Redeemer turns a token and a new credential into an active account.
type Redeemer interface {
	Redeem(ctx context.Context, token, credential string) (*Result, error)
}

type StorageInterface interface {
	GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	LockUser(ctx context.Context, id string) (*types.User, error)
	DeactivateUser(ctx context.Context, id string) error
	CreateInvite(ctx context.Context, invite *types.Invite) (*types.Invite, error)
	GetInvite(ctx context.Context, id string) (*types.Invite, error)
	ListInvitesByTenantID(ctx context.Context, tenantID string, offset, limit uint64) ([]*types.Invite, error)
	RevokeLiveInvites(ctx context.Context, userID string, tenantID *string) (int64, error)
	RevokeInvite(ctx context.Context, id string) (bool, error)
	AcceptInvite(ctx context.Context, id string) (*types.Invite, error)
}

// UserStorageInterface is all the signed path reads, the token itself replaces the row.
type UserStorageInterface interface {
	GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
}

type ActivationStorageInterface interface {
	ActivateUser(ctx context.Context, id, passwordHash string, expectedVersion *int64) (bool, error)
	RevokeLiveInvites(ctx context.Context, userID string, tenantID *string) (int64, error)
}

// ActivatorInterface is the account activation both redemption paths end in.
type ActivatorInterface interface {
	HashCredential(credential string) (string, error)
	Activate(ctx context.Context, userID, credentialHash string, expectedVersion *int64) error
}

type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
	AfterCommit(ctx context.Context, fn func(context.Context))
}

type ActivityInterface interface {
	Record(ctx context.Context, tenantID, verb string, meta map[string]any) error
}

// MailerInterface delivers a rendered activation link.
type MailerInterface interface {
	SendActivation(ctx context.Context, email, link string) error
}
