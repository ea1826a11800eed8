// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"testing"
	"time"
)

func TestInviteState(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name     string
		invite   Invite
		expected InviteState
	}{
		{name: "live", invite: Invite{}, expected: InviteLive},
		{name: "revoked", invite: Invite{RevokedAt: &now}, expected: InviteRevoked},
		{name: "accepted", invite: Invite{AcceptedAt: &now}, expected: InviteAccepted},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.invite.State(); got != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, got)
			}
		})
	}
}
