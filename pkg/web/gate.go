// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"
	"github.com/google/uuid"

	"github.com/canonical/org-access-service/internal/http/types"
	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/tracing"
	"github.com/canonical/org-access-service/pkg/authentication"
)

const (
	RolePrivileged = "role:privileged"
	RoleAdmin      = "role:admin"
	RoleMember     = "role:member"
	RoleUser       = "role:user"

	tenantsPrefix = "/api/v0/tenants/"
)

//go:embed policy/model.conf
var embeddedModel string

//go:embed policy/policy.csv
var embeddedPolicy string

// Gate maps the caller to a coarse role and enforces the route policy.
// Fine grained unit access is decided by the access engine, not here.
type Gate struct {
	enforcer   *casbin.Enforcer
	roles      RoleResolverInterface
	privileges PrivilegeCheckerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// NewEnforcer loads the role policy from the given files, or the embedded defaults when unset.
func NewEnforcer(modelPath, policyPath string) (*casbin.Enforcer, error) {
	if modelPath != "" && policyPath != "" {
		return casbin.NewEnforcer(modelPath, policyPath)
	}

	m, err := model.NewModelFromString(embeddedModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse policy model: %w", err)
	}

	return casbin.NewEnforcer(m, stringadapter.NewAdapter(embeddedPolicy))
}

func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := g.tracer.Start(r.Context(), "web.Gate.Middleware")
		defer span.End()

		userID, ok := authentication.GetUserID(ctx)
		if !ok || userID == "" {
			types.WriteError(w, http.StatusUnauthorized, "unauthenticated")
			return
		}

		tenantID, scoped := tenantFromPath(r.URL.Path)
		if scoped {
			if _, err := uuid.Parse(tenantID); err != nil {
				types.WriteError(w, http.StatusBadRequest, "invalid tenant id")
				return
			}
		}

		role, err := g.role(ctx, userID, tenantID, scoped)
		if err != nil {
			g.logger.Errorf("failed to resolve role of %s: %v", userID, err)
			types.WriteError(w, http.StatusInternalServerError, "failed to authorize request")
			return
		}

		allowed, err := g.enforcer.Enforce(role, r.URL.Path, r.Method)
		if err != nil {
			g.logger.Errorf("policy evaluation failed: %v", err)
			types.WriteError(w, http.StatusInternalServerError, "failed to authorize request")
			return
		}

		if !allowed {
			g.logger.Security().AuthzFailure(userID, r.Method+" "+r.URL.Path, logging.WithRequest(r.URL.Path, r.RemoteAddr))
			types.WriteError(w, http.StatusForbidden, "forbidden")
			return
		}

		if r.Method != http.MethodGet && (role == RoleAdmin || role == RolePrivileged) {
			g.logger.Security().AuthzAdmin(userID, r.Method+" "+r.URL.Path, logging.WithRequest(r.URL.Path, r.RemoteAddr))
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (g *Gate) role(ctx context.Context, userID, tenantID string, scoped bool) (string, error) {
	if !scoped {
		ok, err := g.privileges.IsPrivilegedAdmin(ctx, userID)
		if err != nil {
			return "", err
		}
		if ok {
			return RolePrivileged, nil
		}
		return RoleUser, nil
	}

	admin, err := g.roles.IsTenantAdmin(ctx, tenantID, userID)
	if err != nil {
		return "", err
	}
	if admin {
		return RoleAdmin, nil
	}

	member, err := g.roles.IsMember(ctx, tenantID, userID)
	if err != nil {
		return "", err
	}
	if member {
		return RoleMember, nil
	}

	return RoleUser, nil
}

// tenantFromPath extracts the tenant segment of /api/v0/tenants/{tenantID}/... paths.
func tenantFromPath(path string) (string, bool) {
	rest, ok := strings.CutPrefix(path, tenantsPrefix)
	if !ok || rest == "" {
		return "", false
	}

	tenantID, _, _ := strings.Cut(rest, "/")
	return tenantID, tenantID != ""
}

func NewGate(
	enforcer *casbin.Enforcer,
	roles RoleResolverInterface,
	privileges PrivilegeCheckerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Gate {
	g := new(Gate)
	g.enforcer = enforcer
	g.roles = roles
	g.privileges = privileges
	g.tracer = tracer
	g.monitor = monitor
	g.logger = logger

	return g
}
