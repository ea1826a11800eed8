// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import "errors"

var (
	ErrTenantNotFound = errors.New("tenant not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrNotAMember     = errors.New("user is not a member of the tenant")
	ErrAlreadyMember  = errors.New("user is already a member of the tenant")
	ErrInvalidRole    = errors.New("invalid membership role")
	ErrInvalidName    = errors.New("invalid tenant name")
	ErrInvalidEmail   = errors.New("invalid email address")
)
