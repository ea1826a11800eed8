// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package activity

import (
	"context"

	"github.com/canonical/org-access-service/internal/types"
)

type ServiceInterface interface {
	Record(ctx context.Context, tenantID, verb string, meta map[string]any) error
	List(ctx context.Context, tenantID string, page, size int64) ([]*types.ActivityEvent, error)
}

type StorageInterface interface {
	CreateActivityEvent(ctx context.Context, e *types.ActivityEvent) error
	ListActivityEvents(ctx context.Context, tenantID string, offset, limit uint64) ([]*types.ActivityEvent, error)
}
