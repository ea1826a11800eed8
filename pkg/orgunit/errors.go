// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package orgunit

import "errors"

var (
	ErrDuplicateCode     = errors.New("unit code already exists in tenant")
	ErrCrossTenantParent = errors.New("parent unit belongs to a different tenant")
	ErrCycleDetected     = errors.New("move would make the unit its own ancestor")
	ErrUnitNotFound      = errors.New("org unit not found")
	ErrTenantNotFound    = errors.New("tenant not found")
	ErrInvalidCode       = errors.New("unit code must be 1-32 characters of A-Z, 0-9, '_' or '-'")
	ErrInvalidName       = errors.New("unit name must not be empty")
)
