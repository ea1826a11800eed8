// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/org-access-service/internal/types"
)

// StorageInterface is the subset of internal/storage used by the webhooks.
type StorageInterface interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	ListActiveTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error)
}

// AuthorizerInterface is the subset of internal/authorization used by the token hook.
type AuthorizerInterface interface {
	IsPrivilegedAdmin(ctx context.Context, userID string) (bool, error)
}

type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identityID, email string) error
	HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error)
}
