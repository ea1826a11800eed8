// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package grants

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/storage"
	"github.com/canonical/org-access-service/internal/tracing"
	"github.com/canonical/org-access-service/internal/types"
	"github.com/canonical/org-access-service/pkg/access"
	"github.com/canonical/org-access-service/pkg/activity"
	"github.com/canonical/org-access-service/pkg/orgunit"
)

type Service struct {
	storage  StorageInterface
	tx       TxInterface
	activity ActivityInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ReplaceGrants swaps the user's whole grant set in the tenant for the given one. Either
// every unit is validated and the new set is written, or nothing changes.
func (s *Service) ReplaceGrants(ctx context.Context, userID, tenantID string, grants map[string]access.Permission) (int, error) {
	ctx, span := s.tracer.Start(ctx, "grants.Service.ReplaceGrants")
	defer span.End()

	canonical := make(map[string]access.Permission, len(grants))
	for id, p := range grants {
		if !p.Valid() {
			return 0, fmt.Errorf("%w: %d", access.ErrUnknownPermission, p)
		}
		canonical[orgunit.NormalizeID(id)] = p
	}

	ids := make([]string, 0, len(canonical))
	for id := range canonical {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.lockMembership(ctx, tenantID, userID); err != nil {
			return err
		}

		if err := s.checkUnits(ctx, tenantID, ids); err != nil {
			return err
		}

		removed, err := s.storage.DeleteGrants(ctx, userID, tenantID)
		if err != nil {
			return fmt.Errorf("failed to clear grants: %w", err)
		}

		rows := make([]*types.AccessGrant, 0, len(ids))
		for _, id := range ids {
			rows = append(rows, &types.AccessGrant{
				UserID:     userID,
				TenantID:   tenantID,
				OrgUnitID:  id,
				Permission: canonical[id].String(),
			})
		}

		if len(rows) > 0 {
			if err := s.storage.InsertGrants(ctx, rows); err != nil {
				return fmt.Errorf("failed to insert grants: %w", err)
			}
		}

		return s.activity.Record(ctx, tenantID, activity.VerbGrantsReplaced, map[string]any{
			"user_id": userID,
			"removed": removed,
			"granted": len(rows),
		})
	})
	if err != nil {
		return 0, err
	}

	return len(ids), nil
}

// Grant adds a single grant. An existing grant on the same unit is left as it is and
// reported with created false.
func (s *Service) Grant(ctx context.Context, tenantID, userID, unitID string, perm access.Permission) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "grants.Service.Grant")
	defer span.End()

	if !perm.Valid() {
		return false, fmt.Errorf("%w: %d", access.ErrUnknownPermission, perm)
	}

	unitID = orgunit.NormalizeID(unitID)

	var created bool

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.lockMembership(ctx, tenantID, userID); err != nil {
			return err
		}

		if err := s.checkUnits(ctx, tenantID, []string{unitID}); err != nil {
			return err
		}

		var err error
		created, err = s.storage.CreateGrant(ctx, &types.AccessGrant{
			UserID:     userID,
			TenantID:   tenantID,
			OrgUnitID:  unitID,
			Permission: perm.String(),
		})
		if err != nil {
			return fmt.Errorf("failed to create grant: %w", err)
		}

		if !created {
			return nil
		}

		return s.activity.Record(ctx, tenantID, activity.VerbGrantAdded, map[string]any{
			"user_id":    userID,
			"unit_id":    unitID,
			"permission": perm.String(),
		})
	})
	if err != nil {
		return false, err
	}

	return created, nil
}

// Revoke removes a single grant, revoking a grant that does not exist reports removed false.
func (s *Service) Revoke(ctx context.Context, tenantID, userID, unitID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "grants.Service.Revoke")
	defer span.End()

	unitID = orgunit.NormalizeID(unitID)

	var removed bool

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.lockMembership(ctx, tenantID, userID); err != nil {
			return err
		}

		if err := s.checkUnits(ctx, tenantID, []string{unitID}); err != nil {
			return err
		}

		var err error
		removed, err = s.storage.DeleteGrant(ctx, userID, unitID)
		if err != nil {
			return fmt.Errorf("failed to delete grant: %w", err)
		}

		if !removed {
			return nil
		}

		return s.activity.Record(ctx, tenantID, activity.VerbGrantRevoked, map[string]any{
			"user_id": userID,
			"unit_id": unitID,
		})
	})
	if err != nil {
		return false, err
	}

	return removed, nil
}

// DirectGrantsFor maps every directly granted unit to its level.
func (s *Service) DirectGrantsFor(ctx context.Context, userID, tenantID string) (map[string]access.Permission, error) {
	ctx, span := s.tracer.Start(ctx, "grants.Service.DirectGrantsFor")
	defer span.End()

	rows, err := s.storage.ListGrants(ctx, userID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list grants: %w", err)
	}

	out := make(map[string]access.Permission, len(rows))
	for _, g := range rows {
		p, err := access.ParsePermission(g.Permission)
		if err != nil {
			s.logger.Warnf("grant %s has an unreadable permission %q, using default", g.ID, g.Permission)
			p = access.DefaultPermission
		}
		out[g.OrgUnitID] = p
	}

	return out, nil
}

func (s *Service) lockMembership(ctx context.Context, tenantID, userID string) error {
	if _, err := s.storage.LockMembership(ctx, tenantID, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotAMember
		}
		return fmt.Errorf("failed to check membership: %w", err)
	}
	return nil
}

// checkUnits fails with a *UnitNotInTenantError naming every id outside the tenant.
func (s *Service) checkUnits(ctx context.Context, tenantID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	var bad, wellFormed []string
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			bad = append(bad, id)
			continue
		}
		wellFormed = append(wellFormed, id)
	}

	if len(wellFormed) > 0 {
		found, err := s.storage.ListOrgUnitIDs(ctx, tenantID, wellFormed)
		if err != nil {
			return fmt.Errorf("failed to validate units: %w", err)
		}

		known := make(map[string]bool, len(found))
		for _, id := range found {
			known[id] = true
		}
		for _, id := range wellFormed {
			if !known[id] {
				bad = append(bad, id)
			}
		}
	}

	if len(bad) > 0 {
		sort.Strings(bad)
		return &UnitNotInTenantError{IDs: bad}
	}

	return nil
}

func NewService(
	storage StorageInterface,
	tx TxInterface,
	recorder ActivityInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		tx:       tx,
		activity: recorder,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
