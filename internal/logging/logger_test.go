// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestSecurityEventsDoNotPanic(t *testing.T) {
	l := NewLogger("debug")
	s := l.Security()

	s.SystemStartup()
	s.AuthzFailure("user-1", "tenant-1", WithRequest("/api/v0/tenants", "127.0.0.1"))
	s.AuthzAdmin("user-1", "tenant-1", WithContext("admin bypass"))
	s.InviteIssued("user-1", "tenant-1")
	s.InviteRevoked("user-1", "tenant-1")
	s.InviteAccepted("user-1", "tenant-1")
	s.UserActivated("user-1")
	s.SystemShutdown()
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	if l.Security() == nil {
		t.Fatalf("expected a security logger")
	}
	l.Infof("noop %s", "works")
}
