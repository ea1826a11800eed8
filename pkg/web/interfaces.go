// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"context"
)

// RoleResolverInterface answers the tenant scoped questions of the gate.
type RoleResolverInterface interface {
	IsTenantAdmin(ctx context.Context, tenantID, userID string) (bool, error)
	IsMember(ctx context.Context, tenantID, userID string) (bool, error)
}

type PrivilegeCheckerInterface interface {
	IsPrivilegedAdmin(ctx context.Context, userID string) (bool, error)
}
