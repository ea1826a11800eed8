// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"

	"github.com/canonical/org-access-service/pkg/orgunit"
)

type ServiceInterface interface {
	ResolveAccess(ctx context.Context, userID, tenantID string) (Map, error)
	AccessibleUnitIDs(ctx context.Context, userID, tenantID string) ([]string, error)
	CanView(ctx context.Context, userID, tenantID string, rec Record) (bool, error)
	CanEdit(ctx context.Context, userID, tenantID string, rec Record) (bool, error)
	AccessState(ctx context.Context, userID, tenantID string) ([]*UnitAccess, error)
}

type TreeInterface interface {
	LoadForest(ctx context.Context, tenantID string) (*orgunit.Forest, error)
}

type GrantsInterface interface {
	DirectGrantsFor(ctx context.Context, userID, tenantID string) (map[string]Permission, error)
}

// AdminCheckerInterface decides the administrator bypass before the engine is consulted.
type AdminCheckerInterface interface {
	IsTenantAdmin(ctx context.Context, tenantID, userID string) (bool, error)
}
