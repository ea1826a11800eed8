// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package orgunit

import "github.com/canonical/org-access-service/internal/types"

// UnitView decorates a unit with its position in the tenant tree.
type UnitView struct {
	*types.OrgUnit
	Level    int    `json:"level"`
	FullPath string `json:"full_path"`
}
