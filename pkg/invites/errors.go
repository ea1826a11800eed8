// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import "errors"

var (
	ErrInvalidToken   = errors.New("invalid activation token")
	ErrInviteNotLive  = errors.New("invite has been revoked or already accepted")
	ErrAlreadyActive  = errors.New("user is already active")
	ErrInviteNotFound = errors.New("invite not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrNotAMember     = errors.New("user is not a member of the tenant")
	ErrWeakCredential = errors.New("credential does not meet the minimum length")
)
