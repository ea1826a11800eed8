// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var otelHTTPClient = http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

// verifierConfig checks the aud claim against audience, an empty audience accepts tokens
// minted for any resource server.
func verifierConfig(audience string) *oidc.Config {
	if audience == "" {
		return &oidc.Config{SkipClientIDCheck: true}
	}
	return &oidc.Config{ClientID: audience}
}

// NewProvider discovers the issuer's configuration through its well-known endpoint.
func NewProvider(ctx context.Context, issuer string) (*oidc.Provider, error) {
	provider, err := oidc.NewProvider(oidc.ClientContext(ctx, &otelHTTPClient), issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %v", err)
	}

	return provider, nil
}

// NewProviderVerifier builds a token verifier from a discovered provider.
func NewProviderVerifier(provider ProviderInterface, audience string) *oidc.IDTokenVerifier {
	return provider.Verifier(verifierConfig(audience))
}

// NewKeySetVerifier skips discovery and fetches signing keys from jwksURL.
func NewKeySetVerifier(ctx context.Context, issuer, jwksURL, audience string) *oidc.IDTokenVerifier {
	keySet := oidc.NewRemoteKeySet(oidc.ClientContext(ctx, &otelHTTPClient), jwksURL)
	return oidc.NewVerifier(issuer, keySet, verifierConfig(audience))
}
