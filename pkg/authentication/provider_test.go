// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
)

const testIssuer = "https://issuer.example.com"

func signedToken(t *testing.T, key *rsa.PrivateKey, claims map[string]any) string {
	t.Helper()

	header, _ := json.Marshal(map[string]string{"alg": "RS256", "typ": "JWT"})
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("failed to marshal claims: %v", err)
	}

	enc := base64.RawURLEncoding
	signingInput := enc.EncodeToString(header) + "." + enc.EncodeToString(payload)

	digest := sha256.Sum256([]byte(signingInput))
	sig, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, digest[:])
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	return signingInput + "." + enc.EncodeToString(sig)
}

func TestVerifierConfigAudience(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	keySet := &oidc.StaticKeySet{PublicKeys: []crypto.PublicKey{&key.PublicKey}}

	tests := []struct {
		name     string
		audience string
		aud      any
		wantErr  bool
	}{
		{name: "no audience configured", audience: "", aud: "someone-else"},
		{name: "matching audience", audience: "org-access", aud: "org-access"},
		{name: "audience among several", audience: "org-access", aud: []string{"portal", "org-access"}},
		{name: "foreign audience", audience: "org-access", aud: "someone-else", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := signedToken(t, key, map[string]any{
				"iss": testIssuer,
				"sub": "user-1",
				"aud": tt.aud,
				"exp": time.Now().Add(time.Hour).Unix(),
			})

			v := oidc.NewVerifier(testIssuer, keySet, verifierConfig(tt.audience))

			_, err := v.Verify(context.Background(), token)
			if (err != nil) != tt.wantErr {
				t.Errorf("Verify() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
