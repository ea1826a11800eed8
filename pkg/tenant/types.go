// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import "github.com/canonical/org-access-service/internal/types"

// Invitation is the outcome of inviting an e-mail address into a tenant.
type Invitation struct {
	UserID   string        `json:"user_id"`
	Invite   *types.Invite `json:"invite"`
	Link     string        `json:"link,omitempty"`
	NewUser  bool          `json:"new_user"`
	Enrolled bool          `json:"enrolled"`
}

func validRole(role string) bool {
	switch role {
	case types.RoleAdmin, types.RoleMember, types.RoleViewer:
		return true
	default:
		return false
	}
}
