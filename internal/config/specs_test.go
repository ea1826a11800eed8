// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"fmt"
	"strings"
	"testing"
)

func TestEnvSpecRedacted(t *testing.T) {
	specs := EnvSpec{
		DSN:                 "postgres://org:s3cret-pw@db:5432/org_access?sslmode=disable",
		SignedTokenHashKey:  "hash-key-material",
		SignedTokenBlockKey: "block-key-material",
		InviteBaseURL:       "https://portal.example.com/invites/accept",
		AuthorizationSpec: AuthorizationSpec{
			OpenfgaApiHost:  "openfga:8080",
			OpenfgaApiToken: "fga-token",
		},
	}

	out := fmt.Sprintf("%+v", specs.Redacted())

	for _, secret := range []string{"s3cret-pw", "hash-key-material", "block-key-material", "fga-token"} {
		if strings.Contains(out, secret) {
			t.Errorf("redacted specs leak %q: %s", secret, out)
		}
	}
	for _, kept := range []string{"postgres://org:REDACTED@db:5432/org_access", "openfga:8080", "https://portal.example.com/invites/accept"} {
		if !strings.Contains(out, kept) {
			t.Errorf("expected %q in %s", kept, out)
		}
	}

	if specs.SignedTokenHashKey != "hash-key-material" || specs.OpenfgaApiToken != "fga-token" {
		t.Errorf("Redacted modified the original specs")
	}
}

func TestRedactDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "postgres://org@db/org_access", want: "postgres://org@db/org_access"},
		{in: "postgres://org:pw@db/org_access", want: "postgres://org:REDACTED@db/org_access"},
		{in: "host=db user=org password=pw", want: "REDACTED"},
	}

	for _, tt := range tests {
		if got := redactDSN(tt.in); got != tt.want {
			t.Errorf("redactDSN(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
