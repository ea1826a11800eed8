// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/org-access-service/internal/types"
)

var orgUnitColumns = []string{"id", "tenant_id", "name", "code", "parent_id", "created_at"}

func (s *Storage) CreateOrgUnit(ctx context.Context, u *types.OrgUnit) (*types.OrgUnit, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOrgUnit")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate org unit ID: %w", err)
	}

	var created types.OrgUnit
	err = s.db.Statement(ctx).
		Insert("org_units").
		Columns("id", "tenant_id", "name", "code", "parent_id").
		Values(id.String(), u.TenantID, u.Name, u.Code, u.ParentID).
		Suffix("RETURNING id, tenant_id, name, code, parent_id, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.TenantID, &created.Name, &created.Code, &created.ParentID, &created.CreatedAt)

	if err != nil {
		return nil, classify(err, "insert org unit")
	}

	return &created, nil
}

func (s *Storage) GetOrgUnit(ctx context.Context, id string) (*types.OrgUnit, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrgUnit")
	defer span.End()

	var u types.OrgUnit
	err := s.db.Statement(ctx).
		Select(orgUnitColumns...).
		From("org_units").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.TenantID, &u.Name, &u.Code, &u.ParentID, &u.CreatedAt)

	if err != nil {
		if IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get org unit: %w", err)
	}

	return &u, nil
}

// ListOrgUnits returns every unit of the tenant in a single query, callers index them in memory.
func (s *Storage) ListOrgUnits(ctx context.Context, tenantID string) ([]*types.OrgUnit, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOrgUnits")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(orgUnitColumns...).
		From("org_units").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("name", "code").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list org units: %w", err)
	}
	defer rows.Close()

	var units []*types.OrgUnit
	for rows.Next() {
		var u types.OrgUnit
		if err := rows.Scan(&u.ID, &u.TenantID, &u.Name, &u.Code, &u.ParentID, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan org unit: %w", err)
		}
		units = append(units, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return units, nil
}

// ListOrgUnitIDs returns the subset of ids that belong to the tenant.
func (s *Storage) ListOrgUnitIDs(ctx context.Context, tenantID string, ids []string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOrgUnitIDs")
	defer span.End()

	if len(ids) == 0 {
		return []string{}, nil
	}

	rows, err := s.db.Statement(ctx).
		Select("id").
		From("org_units").
		Where(sq.Eq{"tenant_id": tenantID, "id": ids}).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list org unit ids: %w", err)
	}
	defer rows.Close()

	found := make([]string, 0, len(ids))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan org unit id: %w", err)
		}
		found = append(found, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return found, nil
}

func (s *Storage) UpdateOrgUnitParent(ctx context.Context, id string, parentID *string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateOrgUnitParent")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("org_units").
		Set("parent_id", parentID).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return classify(err, "update org unit parent")
	}

	return expectOne(res, "org unit")
}

func (s *Storage) UpdateOrgUnitName(ctx context.Context, id, name string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateOrgUnitName")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("org_units").
		Set("name", name).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to rename org unit: %w", err)
	}

	return expectOne(res, "org unit")
}

// DeleteOrgUnit removes the unit, descendants and grants referencing any of them cascade.
func (s *Storage) DeleteOrgUnit(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteOrgUnit")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("org_units").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete org unit: %w", err)
	}

	return expectOne(res, "org unit")
}
