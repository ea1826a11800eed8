// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"

	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/openfga"
	"github.com/canonical/org-access-service/internal/tracing"
)

var ErrInvalidAuthModel = fmt.Errorf("invalid authorization model schema")

type Authorizer struct {
	client AuthzClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) Check(ctx context.Context, user string, relation string, object string, contextualTuples ...openfga.Tuple) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Check")
	defer span.End()

	return a.client.Check(ctx, user, relation, object, contextualTuples...)
}

func (a *Authorizer) ValidateModel(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ValidateModel")
	defer span.End()

	v0AuthzModel := NewAuthorizationModelProvider("v0")
	model := *v0AuthzModel.GetModel()

	eq, err := a.client.CompareModel(ctx, model)
	if err != nil {
		return err
	}
	if !eq {
		return ErrInvalidAuthModel
	}
	return nil
}

func (a *Authorizer) AssignTenantRole(ctx context.Context, tenantId, userId, role string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignTenantRole")
	defer span.End()

	relation, ok := RoleRelation(role)
	if !ok {
		return fmt.Errorf("unknown role %q", role)
	}

	return a.client.WriteTuple(ctx, UserTuple(userId), relation, TenantTuple(tenantId))
}

func (a *Authorizer) RemoveTenantRole(ctx context.Context, tenantId, userId, role string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveTenantRole")
	defer span.End()

	relation, ok := RoleRelation(role)
	if !ok {
		return fmt.Errorf("unknown role %q", role)
	}

	return a.client.DeleteTuple(ctx, UserTuple(userId), relation, TenantTuple(tenantId))
}

func (a *Authorizer) AssignPrivilegedAdmin(ctx context.Context, privilegedId, userId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignPrivilegedAdmin")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userId), ADMIN_RELATION, PrivilegedTuple(privilegedId))
}

func (a *Authorizer) LinkTenantToPrivileged(ctx context.Context, tenantId, privilegedId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.LinkTenantToPrivileged")
	defer span.End()

	return a.client.WriteTuple(ctx, PrivilegedTuple(privilegedId), PRIVILEGED_RELATION, TenantTuple(tenantId))
}

// IsPrivilegedAdmin reports whether the user administers the global privileged group,
// which grants admin on every linked tenant.
func (a *Authorizer) IsPrivilegedAdmin(ctx context.Context, userId string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.IsPrivilegedAdmin")
	defer span.End()

	return a.client.Check(ctx, UserTuple(userId), ADMIN_RELATION, PrivilegedTuple(GlobalPrivilegedGroup))
}

func (a *Authorizer) CheckTenantAccess(ctx context.Context, tenantId, userId, relation string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckTenantAccess")
	defer span.End()

	return a.Check(ctx, UserTuple(userId), relation, TenantTuple(tenantId))
}

func NewAuthorizer(client AuthzClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.client = client
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
