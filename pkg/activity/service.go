// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package activity

import (
	"context"
	"fmt"

	"github.com/canonical/org-access-service/internal/db"
	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/tracing"
	"github.com/canonical/org-access-service/internal/types"
	"github.com/canonical/org-access-service/pkg/authentication"
)

const (
	VerbUnitCreated    = "unit_created"
	VerbUnitMoved      = "unit_moved"
	VerbUnitRenamed    = "unit_renamed"
	VerbUnitDeleted    = "unit_deleted"
	VerbGrantsReplaced = "grants_replaced"
	VerbGrantAdded     = "grant_added"
	VerbGrantRevoked   = "grant_revoked"
	VerbInviteIssued   = "invite_issued"
	VerbInviteRevoked  = "invite_revoked"
	VerbInviteAccepted = "invite_accepted"
	VerbMemberAdded    = "member_added"
	VerbMemberUpdated  = "member_updated"
	VerbMemberRemoved  = "member_removed"
	VerbTenantCreated  = "tenant_created"
	VerbTenantUpdated  = "tenant_updated"
)

// Service appends audit events to the tenant activity log. The actor is taken from the
// authenticated user carried by the context, events recorded outside a request have none.
type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) Record(ctx context.Context, tenantID, verb string, meta map[string]any) error {
	ctx, span := s.tracer.Start(ctx, "activity.Service.Record")
	defer span.End()

	e := &types.ActivityEvent{
		TenantID: tenantID,
		Verb:     verb,
		Meta:     meta,
	}

	if actor, ok := authentication.GetUserID(ctx); ok && actor != "" {
		e.ActorID = &actor
	}

	if err := s.storage.CreateActivityEvent(ctx, e); err != nil {
		return fmt.Errorf("failed to record %s: %w", verb, err)
	}

	return nil
}

func (s *Service) List(ctx context.Context, tenantID string, page, size int64) ([]*types.ActivityEvent, error) {
	ctx, span := s.tracer.Start(ctx, "activity.Service.List")
	defer span.End()

	limit := db.PageSize(size)

	events, err := s.storage.ListActivityEvents(ctx, tenantID, db.Offset(page, limit), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}

	return events, nil
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
