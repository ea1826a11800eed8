// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package orgunit

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/storage"
	"github.com/canonical/org-access-service/internal/tracing"
	"github.com/canonical/org-access-service/internal/types"
	"github.com/canonical/org-access-service/pkg/activity"
)

type Service struct {
	storage  StorageInterface
	tx       TxInterface
	activity ActivityInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// CreateUnit adds a unit to the tenant tree, as a root when parentID is nil.
func (s *Service) CreateUnit(ctx context.Context, tenantID, name, code string, parentID *string) (*types.OrgUnit, error) {
	ctx, span := s.tracer.Start(ctx, "orgunit.Service.CreateUnit")
	defer span.End()

	code, err := NormalizeCode(code)
	if err != nil {
		return nil, err
	}

	name, err = NormalizeName(name)
	if err != nil {
		return nil, err
	}

	parentID = normalizeParentID(parentID)

	var created *types.OrgUnit

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.lockTenant(ctx, tenantID); err != nil {
			return err
		}

		if parentID != nil {
			parent, err := s.storage.GetOrgUnit(ctx, *parentID)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					return ErrUnitNotFound
				}
				return fmt.Errorf("failed to load parent unit: %w", err)
			}
			if parent.TenantID != tenantID {
				return ErrCrossTenantParent
			}
		}

		u, err := s.storage.CreateOrgUnit(ctx, &types.OrgUnit{
			TenantID: tenantID,
			Name:     name,
			Code:     code,
			ParentID: parentID,
		})
		switch {
		case errors.Is(err, storage.ErrDuplicateKey):
			return ErrDuplicateCode
		case errors.Is(err, storage.ErrForeignKeyViolation):
			// the composite (parent_id, tenant_id) key rejected the parent
			return ErrCrossTenantParent
		case err != nil:
			return fmt.Errorf("failed to create unit: %w", err)
		}

		created = u

		return s.activity.Record(ctx, tenantID, activity.VerbUnitCreated, map[string]any{
			"unit_id":   created.ID,
			"code":      created.Code,
			"parent_id": parentID,
		})
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetUnit returns the unit only if it belongs to tenantID.
func (s *Service) GetUnit(ctx context.Context, tenantID, unitID string) (*types.OrgUnit, error) {
	ctx, span := s.tracer.Start(ctx, "orgunit.Service.GetUnit")
	defer span.End()

	unitID = NormalizeID(unitID)

	u, err := s.storage.GetOrgUnit(ctx, unitID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUnitNotFound
		}
		return nil, fmt.Errorf("failed to get unit: %w", err)
	}

	if u.TenantID != tenantID {
		return nil, ErrUnitNotFound
	}

	return u, nil
}

// LoadForest reads the whole tenant tree in one query and indexes it.
func (s *Service) LoadForest(ctx context.Context, tenantID string) (*Forest, error) {
	ctx, span := s.tracer.Start(ctx, "orgunit.Service.LoadForest")
	defer span.End()

	units, err := s.storage.ListOrgUnits(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}

	return NewForest(units), nil
}

// ListUnits returns the tenant tree in depth-first order with level and path.
func (s *Service) ListUnits(ctx context.Context, tenantID string) ([]*UnitView, error) {
	ctx, span := s.tracer.Start(ctx, "orgunit.Service.ListUnits")
	defer span.End()

	f, err := s.LoadForest(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	views := make([]*UnitView, 0, f.Len())
	for _, root := range f.Roots() {
		for _, id := range f.Subtree(root) {
			u, _ := f.Unit(id)
			views = append(views, &UnitView{
				OrgUnit:  u,
				Level:    f.Level(id),
				FullPath: f.FullPath(id),
			})
		}
	}

	return views, nil
}

func (s *Service) Ancestors(ctx context.Context, tenantID, unitID string) ([]*types.OrgUnit, error) {
	ctx, span := s.tracer.Start(ctx, "orgunit.Service.Ancestors")
	defer span.End()

	unitID = NormalizeID(unitID)

	f, err := s.LoadForest(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if !f.Contains(unitID) {
		return nil, ErrUnitNotFound
	}

	return f.Ancestors(unitID), nil
}

func (s *Service) Descendants(ctx context.Context, tenantID, unitID string) ([]*types.OrgUnit, error) {
	ctx, span := s.tracer.Start(ctx, "orgunit.Service.Descendants")
	defer span.End()

	unitID = NormalizeID(unitID)

	f, err := s.LoadForest(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if !f.Contains(unitID) {
		return nil, ErrUnitNotFound
	}

	ids := f.Descendants(unitID)
	out := make([]*types.OrgUnit, 0, len(ids))
	for _, id := range ids {
		u, _ := f.Unit(id)
		out = append(out, u)
	}

	return out, nil
}

// MoveUnit reparents a unit, a nil parentID makes it a root. The tenant row is locked
// before the tree is read so concurrent moves in the same tenant are serialised and the
// cycle check runs against the tree the update is applied to.
func (s *Service) MoveUnit(ctx context.Context, tenantID, unitID string, parentID *string) error {
	ctx, span := s.tracer.Start(ctx, "orgunit.Service.MoveUnit")
	defer span.End()

	unitID = NormalizeID(unitID)
	parentID = normalizeParentID(parentID)

	return s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.lockTenant(ctx, tenantID); err != nil {
			return err
		}

		f, err := s.LoadForest(ctx, tenantID)
		if err != nil {
			return err
		}

		u, ok := f.Unit(unitID)
		if !ok {
			return ErrUnitNotFound
		}

		if parentID != nil && !f.Contains(*parentID) {
			return s.foreignParentError(ctx, *parentID)
		}

		if f.WouldCycle(unitID, parentID) {
			return ErrCycleDetected
		}

		if samePointer(u.ParentID, parentID) {
			return nil
		}

		if err := s.storage.UpdateOrgUnitParent(ctx, unitID, parentID); err != nil {
			return fmt.Errorf("failed to move unit: %w", err)
		}

		return s.activity.Record(ctx, tenantID, activity.VerbUnitMoved, map[string]any{
			"unit_id":       unitID,
			"old_parent_id": u.ParentID,
			"new_parent_id": parentID,
		})
	})
}

func (s *Service) RenameUnit(ctx context.Context, tenantID, unitID, name string) (*types.OrgUnit, error) {
	ctx, span := s.tracer.Start(ctx, "orgunit.Service.RenameUnit")
	defer span.End()

	unitID = NormalizeID(unitID)

	name, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}

	var renamed *types.OrgUnit

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		u, err := s.GetUnit(ctx, tenantID, unitID)
		if err != nil {
			return err
		}

		if err := s.storage.UpdateOrgUnitName(ctx, unitID, name); err != nil {
			return fmt.Errorf("failed to rename unit: %w", err)
		}

		old := u.Name
		u.Name = name
		renamed = u

		return s.activity.Record(ctx, tenantID, activity.VerbUnitRenamed, map[string]any{
			"unit_id":  unitID,
			"old_name": old,
			"new_name": name,
		})
	})
	if err != nil {
		return nil, err
	}

	return renamed, nil
}

// DeleteUnit removes a unit with its subtree and every grant on it, returning how many
// units were removed.
func (s *Service) DeleteUnit(ctx context.Context, tenantID, unitID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "orgunit.Service.DeleteUnit")
	defer span.End()

	unitID = NormalizeID(unitID)

	var removed int

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.lockTenant(ctx, tenantID); err != nil {
			return err
		}

		f, err := s.LoadForest(ctx, tenantID)
		if err != nil {
			return err
		}

		u, ok := f.Unit(unitID)
		if !ok {
			return ErrUnitNotFound
		}

		// descendants and grants go with the FK cascades
		if err := s.storage.DeleteOrgUnit(ctx, unitID); err != nil {
			return fmt.Errorf("failed to delete unit: %w", err)
		}

		removed = len(f.Subtree(unitID))

		return s.activity.Record(ctx, tenantID, activity.VerbUnitDeleted, map[string]any{
			"unit_id": unitID,
			"code":    u.Code,
			"removed": removed,
		})
	})
	if err != nil {
		return 0, err
	}

	return removed, nil
}

func (s *Service) lockTenant(ctx context.Context, tenantID string) error {
	if err := s.storage.LockTenant(ctx, tenantID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrTenantNotFound
		}
		return fmt.Errorf("failed to lock tenant: %w", err)
	}
	return nil
}

// foreignParentError tells a parent living in another tenant apart from one that does not
// exist at all.
func (s *Service) foreignParentError(ctx context.Context, parentID string) error {
	_, err := s.storage.GetOrgUnit(ctx, parentID)
	switch {
	case err == nil:
		return ErrCrossTenantParent
	case errors.Is(err, storage.ErrNotFound):
		return ErrUnitNotFound
	default:
		return fmt.Errorf("failed to load parent unit: %w", err)
	}
}

func samePointer(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
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
