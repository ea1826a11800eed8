// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientCredentialsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		if r.Form.Get("grant_type") != "client_credentials" || r.Form.Get("scope") != "org-access" {
			t.Errorf("unexpected token request %v", r.Form)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"access_token": "abc", "token_type": "bearer", "expires_in": 3600})
	}))
	defer srv.Close()

	token, err := clientCredentialsToken(context.Background(), "id", "secret", srv.URL, "", []string{"org-access"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	buf := new(bytes.Buffer)
	if err := printToken(buf, token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "abc\n" {
		t.Errorf("expected bare token, got %q", buf.String())
	}
}

func TestClientCredentialsTokenRequiresEndpoint(t *testing.T) {
	if _, err := clientCredentialsToken(context.Background(), "id", "secret", "", "", nil); err == nil {
		t.Fatal("expected error")
	}
}
