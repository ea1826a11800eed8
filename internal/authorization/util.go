// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

const (
	ADMIN_RELATION  = "admin"
	MEMBER_RELATION = "member"
	VIEWER_RELATION = "viewer"

	PRIVILEGED_RELATION = "privileged"

	CAN_VIEW_PERMISSION   = "can_view"
	CAN_MANAGE_PERMISSION = "can_manage"

	// GlobalPrivilegedGroup is the privileged group every tenant is linked to on creation.
	GlobalPrivilegedGroup = "global"
)

func UserTuple(userId string) string {
	return "user:" + userId
}

func TenantTuple(tenantId string) string {
	return "tenant:" + tenantId
}

func PrivilegedTuple(privilegedId string) string {
	return "privileged:" + privilegedId
}

// RoleRelation maps a membership role onto the tenant relation mirroring it.
func RoleRelation(role string) (string, bool) {
	switch role {
	case ADMIN_RELATION, MEMBER_RELATION, VIEWER_RELATION:
		return role, true
	default:
		return "", false
	}
}
