// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package orgunit

import (
	"context"

	"github.com/canonical/org-access-service/internal/types"
)

type ServiceInterface interface {
	CreateUnit(ctx context.Context, tenantID, name, code string, parentID *string) (*types.OrgUnit, error)
	GetUnit(ctx context.Context, tenantID, unitID string) (*types.OrgUnit, error)
	ListUnits(ctx context.Context, tenantID string) ([]*UnitView, error)
	LoadForest(ctx context.Context, tenantID string) (*Forest, error)
	Ancestors(ctx context.Context, tenantID, unitID string) ([]*types.OrgUnit, error)
	Descendants(ctx context.Context, tenantID, unitID string) ([]*types.OrgUnit, error)
	MoveUnit(ctx context.Context, tenantID, unitID string, parentID *string) error
	RenameUnit(ctx context.Context, tenantID, unitID, name string) (*types.OrgUnit, error)
	DeleteUnit(ctx context.Context, tenantID, unitID string) (int, error)
}

type StorageInterface interface {
	LockTenant(ctx context.Context, id string) error
	CreateOrgUnit(ctx context.Context, u *types.OrgUnit) (*types.OrgUnit, error)
	GetOrgUnit(ctx context.Context, id string) (*types.OrgUnit, error)
	ListOrgUnits(ctx context.Context, tenantID string) ([]*types.OrgUnit, error)
	UpdateOrgUnitParent(ctx context.Context, id string, parentID *string) error
	UpdateOrgUnitName(ctx context.Context, id, name string) error
	DeleteOrgUnit(ctx context.Context, id string) error
}

type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type ActivityInterface interface {
	Record(ctx context.Context, tenantID, verb string, meta map[string]any) error
}
