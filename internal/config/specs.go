// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"net/url"
	"time"
)

const redacted = "REDACTED"

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	// KratosAdminURL is optional, when unset invited users are looked up by email locally only
	KratosAdminURL string `envconfig:"kratos_admin_url"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	AuthenticationEnabled bool   `envconfig:"authentication_enabled" default:"false"`
	OIDCIssuer            string `envconfig:"oidc_issuer"`
	OIDCJWKSURL           string `envconfig:"oidc_jwks_url"`
	OIDCAudience          string `envconfig:"oidc_audience"`

	// AllowedSubjects and RequiredScope admit bearer tokens, one of the two must match
	AllowedSubjects []string `envconfig:"authentication_allowed_subjects"`
	RequiredScope   string   `envconfig:"authentication_required_scope" default:"org-access"`

	AuthorizationSpec

	// InviteBaseURL is the public page redeeming activation tokens, the token is appended as a query parameter
	InviteBaseURL string `envconfig:"invite_base_url" default:"http://localhost:8080/invites/accept"`
	// SignedTokenHashKey and SignedTokenBlockKey protect the legacy stateless activation links
	SignedTokenHashKey  string        `envconfig:"signed_token_hash_key" required:"true"`
	SignedTokenBlockKey string        `envconfig:"signed_token_block_key"`
	SignedTokenMaxAge   time.Duration `envconfig:"signed_token_max_age" default:"72h"`
	PasswordHashCost    int           `envconfig:"password_hash_cost" default:"12"`
	MinPasswordLength   int           `envconfig:"min_password_length" default:"8"`

	// CasbinModelPath overrides the embedded role policy model
	CasbinModelPath  string `envconfig:"casbin_model_path"`
	CasbinPolicyPath string `envconfig:"casbin_policy_path"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`
}

// AuthorizationSpec holds the OpenFGA settings shared by every command talking to the authorization model
type AuthorizationSpec struct {
	AuthorizationEnabled bool   `envconfig:"authorization_enabled" default:"false"`
	OpenfgaApiScheme     string `envconfig:"openfga_api_scheme" default:""`
	OpenfgaApiHost       string `envconfig:"openfga_api_host"`
	OpenfgaApiToken      string `envconfig:"openfga_api_token"`
	OpenfgaStoreId       string `envconfig:"openfga_store_id"`
	OpenfgaModelId       string `envconfig:"openfga_authorization_model_id" default:""`

	// NoopPrivilegedUsers are user ids treated as privileged admins while authorization is disabled
	NoopPrivilegedUsers []string `envconfig:"noop_privileged_users"`
}

// SeedSpec is the environment needed by the seed command, the DSN comes from a flag
type SeedSpec struct {
	AuthorizationSpec

	LogLevel string `envconfig:"log_level" default:"info"`
	Debug    bool   `envconfig:"debug" default:"false"`
}

// Redacted returns a copy safe to log, with keys, tokens and the DSN password masked.
func (s EnvSpec) Redacted() EnvSpec {
	s.DSN = redactDSN(s.DSN)
	s.SignedTokenHashKey = mask(s.SignedTokenHashKey)
	s.SignedTokenBlockKey = mask(s.SignedTokenBlockKey)
	s.AuthorizationSpec = s.AuthorizationSpec.Redacted()
	return s
}

func (s AuthorizationSpec) Redacted() AuthorizationSpec {
	s.OpenfgaApiToken = mask(s.OpenfgaApiToken)
	return s
}

func mask(v string) string {
	if v == "" {
		return ""
	}
	return redacted
}

// redactDSN masks the password of a URL DSN, key/value DSNs are masked whole.
func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.Scheme == "" {
		return mask(dsn)
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), redacted)
	}
	return u.String()
}
