// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/org-access-service/internal/types"
)

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	LockTenant(ctx context.Context, id string) error
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	ListTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error)
	ListActiveTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error

	AddMember(ctx context.Context, tenantID, userID, role string) (string, error)
	UpdateMember(ctx context.Context, tenantID, userID, role string) error
	RemoveMember(ctx context.Context, tenantID, userID string) error
	GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
	LockMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
	ListTenantUsers(ctx context.Context, tenantID string) ([]*types.TenantUser, error)

	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	LockUser(ctx context.Context, id string) (*types.User, error)
	DeactivateUser(ctx context.Context, id string) error
	ActivateUser(ctx context.Context, id, passwordHash string, expectedVersion *int64) (bool, error)

	CreateOrgUnit(ctx context.Context, u *types.OrgUnit) (*types.OrgUnit, error)
	GetOrgUnit(ctx context.Context, id string) (*types.OrgUnit, error)
	ListOrgUnits(ctx context.Context, tenantID string) ([]*types.OrgUnit, error)
	ListOrgUnitIDs(ctx context.Context, tenantID string, ids []string) ([]string, error)
	UpdateOrgUnitParent(ctx context.Context, id string, parentID *string) error
	UpdateOrgUnitName(ctx context.Context, id, name string) error
	DeleteOrgUnit(ctx context.Context, id string) error

	ListGrants(ctx context.Context, userID, tenantID string) ([]*types.AccessGrant, error)
	InsertGrants(ctx context.Context, grants []*types.AccessGrant) error
	DeleteGrants(ctx context.Context, userID, tenantID string) (int64, error)
	CreateGrant(ctx context.Context, g *types.AccessGrant) (bool, error)
	DeleteGrant(ctx context.Context, userID, unitID string) (bool, error)

	CreateInvite(ctx context.Context, invite *types.Invite) (*types.Invite, error)
	GetInvite(ctx context.Context, id string) (*types.Invite, error)
	ListInvitesByTenantID(ctx context.Context, tenantID string, offset, limit uint64) ([]*types.Invite, error)
	RevokeLiveInvites(ctx context.Context, userID string, tenantID *string) (int64, error)
	RevokeInvite(ctx context.Context, id string) (bool, error)
	AcceptInvite(ctx context.Context, id string) (*types.Invite, error)

	CreateActivityEvent(ctx context.Context, e *types.ActivityEvent) error
	ListActivityEvents(ctx context.Context, tenantID string, offset, limit uint64) ([]*types.ActivityEvent, error)
}
