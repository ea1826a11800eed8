// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package grants

import (
	"context"

	"github.com/canonical/org-access-service/internal/types"
	"github.com/canonical/org-access-service/pkg/access"
)

type ServiceInterface interface {
	ReplaceGrants(ctx context.Context, userID, tenantID string, grants map[string]access.Permission) (int, error)
	Grant(ctx context.Context, tenantID, userID, unitID string, perm access.Permission) (bool, error)
	Revoke(ctx context.Context, tenantID, userID, unitID string) (bool, error)
	DirectGrantsFor(ctx context.Context, userID, tenantID string) (map[string]access.Permission, error)
}

type StorageInterface interface {
	LockMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
	GetOrgUnit(ctx context.Context, id string) (*types.OrgUnit, error)
	ListOrgUnitIDs(ctx context.Context, tenantID string, ids []string) ([]string, error)
	ListGrants(ctx context.Context, userID, tenantID string) ([]*types.AccessGrant, error)
	InsertGrants(ctx context.Context, grants []*types.AccessGrant) error
	DeleteGrants(ctx context.Context, userID, tenantID string) (int64, error)
	CreateGrant(ctx context.Context, g *types.AccessGrant) (bool, error)
	DeleteGrant(ctx context.Context, userID, unitID string) (bool, error)
}

type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type ActivityInterface interface {
	Record(ctx context.Context, tenantID, verb string, meta map[string]any) error
}
