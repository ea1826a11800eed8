// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"

	"github.com/canonical/org-access-service/internal/types"
)

type ServiceInterface interface {
	CreateTenant(ctx context.Context, name string) (*types.Tenant, error)
	GetTenant(ctx context.Context, id string) (*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	ListUserTenants(ctx context.Context, userID string) ([]*types.Tenant, error)

	AddMember(ctx context.Context, tenantID, userID, role string) (*types.Membership, error)
	UpdateMemberRole(ctx context.Context, tenantID, userID, role string) (*types.Membership, error)
	RemoveMember(ctx context.Context, tenantID, userID string) error
	ListMembers(ctx context.Context, tenantID string) ([]*types.TenantUser, error)
	IsMember(ctx context.Context, tenantID, userID string) (bool, error)
	IsTenantAdmin(ctx context.Context, tenantID, userID string) (bool, error)
	InviteMember(ctx context.Context, tenantID, email, role string) (*Invitation, error)
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	ListTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error)

	AddMember(ctx context.Context, tenantID, userID, role string) (string, error)
	GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
	UpdateMember(ctx context.Context, tenantID, userID, role string) error
	RemoveMember(ctx context.Context, tenantID, userID string) error
	ListTenantUsers(ctx context.Context, tenantID string) ([]*types.TenantUser, error)

	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	RevokeLiveInvites(ctx context.Context, userID string, tenantID *string) (int64, error)
}

// AuthzInterface mirrors membership roles into OpenFGA and answers tenant checks
// against the relations derived from them.
type AuthzInterface interface {
	AssignTenantRole(ctx context.Context, tenantID, userID, role string) error
	RemoveTenantRole(ctx context.Context, tenantID, userID, role string) error
	LinkTenantToPrivileged(ctx context.Context, tenantID, privilegedID string) error
	CheckTenantAccess(ctx context.Context, tenantID, userID, relation string) (bool, error)
}

// IdentityInterface resolves e-mail addresses to identity provider ids.
type IdentityInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	CreateIdentity(ctx context.Context, email string) (string, error)
}

type InvitesInterface interface {
	Issue(ctx context.Context, userID, tenantID string, creatorID *string) (*types.Invite, error)
	Notify(ctx context.Context, invite *types.Invite) (string, error)
}

type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type ActivityInterface interface {
	Record(ctx context.Context, tenantID, verb string, meta map[string]any) error
}
