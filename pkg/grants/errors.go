// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package grants

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotAMember      = errors.New("user is not a member of the tenant")
	ErrUnitNotInTenant = errors.New("unit does not belong to the tenant")
)

// UnitNotInTenantError lists every requested unit id that is not part of the tenant.
type UnitNotInTenantError struct {
	IDs []string
}

func (e *UnitNotInTenantError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnitNotInTenant, strings.Join(e.IDs, ", "))
}

func (e *UnitNotInTenantError) Unwrap() error {
	return ErrUnitNotInTenant
}
