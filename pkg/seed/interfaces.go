// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package seed

import (
	"context"

	"github.com/canonical/org-access-service/internal/types"
	"github.com/canonical/org-access-service/pkg/access"
)

type UsersInterface interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
}

type TenantsInterface interface {
	CreateTenant(ctx context.Context, name string) (*types.Tenant, error)
	AddMember(ctx context.Context, tenantID, userID, role string) (*types.Membership, error)
}

type UnitsInterface interface {
	CreateUnit(ctx context.Context, tenantID, name, code string, parentID *string) (*types.OrgUnit, error)
}

type GrantsInterface interface {
	ReplaceGrants(ctx context.Context, userID, tenantID string, grants map[string]access.Permission) (int, error)
}

type AdminsInterface interface {
	AssignPrivilegedAdmin(ctx context.Context, privilegedId, userId string) error
}

type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
