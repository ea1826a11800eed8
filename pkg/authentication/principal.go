// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"slices"
	"strings"
)

type contextKey int

const (
	userIDKey contextKey = iota
	principalKey
)

// Principal is the caller behind a verified bearer token. Tenants and Privileged mirror
// the claims added by the token hook, they are informational and never replace a lookup.
type Principal struct {
	Subject    string
	Scopes     []string
	Tenants    []string
	Privileged bool
}

// HasScope reports whether scope was granted to the token.
func (p *Principal) HasScope(scope string) bool {
	return p != nil && slices.Contains(p.Scopes, scope)
}

type tokenClaims struct {
	Subject    string   `json:"sub"`
	Scope      string   `json:"scope"`
	Scopes     []string `json:"scp"`
	Tenants    []string `json:"tenants"`
	Privileged bool     `json:"privileged"`
}

func (c *tokenClaims) principal() *Principal {
	scopes := strings.Fields(c.Scope)
	for _, s := range c.Scopes {
		if !slices.Contains(scopes, s) {
			scopes = append(scopes, s)
		}
	}

	return &Principal{
		Subject:    c.Subject,
		Scopes:     scopes,
		Tenants:    c.Tenants,
		Privileged: c.Privileged,
	}
}

// WithUserID returns a copy of ctx carrying the caller's user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID returns the caller's user id, false when the request is anonymous.
func GetUserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// WithPrincipal stores p and its subject as the caller's user id.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(WithUserID(ctx, p.Subject), principalKey, p)
}

func GetPrincipal(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey).(*Principal)
	return p, ok
}
