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

func (s *Storage) ListGrants(ctx context.Context, userID, tenantID string) ([]*types.AccessGrant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListGrants")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "user_id", "tenant_id", "org_unit_id", "permission", "created_at").
		From("access_grants").
		Where(sq.Eq{"user_id": userID, "tenant_id": tenantID}).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list grants: %w", err)
	}
	defer rows.Close()

	var grants []*types.AccessGrant
	for rows.Next() {
		var g types.AccessGrant
		if err := rows.Scan(&g.ID, &g.UserID, &g.TenantID, &g.OrgUnitID, &g.Permission, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan grant: %w", err)
		}
		grants = append(grants, &g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return grants, nil
}

// InsertGrants writes all grants with a single multi row statement.
func (s *Storage) InsertGrants(ctx context.Context, grants []*types.AccessGrant) error {
	ctx, span := s.tracer.Start(ctx, "storage.InsertGrants")
	defer span.End()

	if len(grants) == 0 {
		return nil
	}

	query := s.db.Statement(ctx).
		Insert("access_grants").
		Columns("id", "user_id", "tenant_id", "org_unit_id", "permission")

	for _, g := range grants {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate grant ID: %w", err)
		}
		query = query.Values(id.String(), g.UserID, g.TenantID, g.OrgUnitID, g.Permission)
	}

	if _, err := query.ExecContext(ctx); err != nil {
		return classify(err, "insert grants")
	}

	return nil
}

func (s *Storage) DeleteGrants(ctx context.Context, userID, tenantID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteGrants")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("access_grants").
		Where(sq.Eq{"user_id": userID, "tenant_id": tenantID}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to delete grants: %w", err)
	}

	return res.RowsAffected()
}

// CreateGrant inserts the grant unless the (user, unit) pair already has one, in which
// case the existing row is left untouched and false is returned.
func (s *Storage) CreateGrant(ctx context.Context, g *types.AccessGrant) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateGrant")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return false, fmt.Errorf("failed to generate grant ID: %w", err)
	}

	res, err := s.db.Statement(ctx).
		Insert("access_grants").
		Columns("id", "user_id", "tenant_id", "org_unit_id", "permission").
		Values(id.String(), g.UserID, g.TenantID, g.OrgUnitID, g.Permission).
		Suffix("ON CONFLICT (user_id, org_unit_id) DO NOTHING").
		ExecContext(ctx)

	if err != nil {
		return false, classify(err, "insert grant")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows == 1, nil
}

func (s *Storage) DeleteGrant(ctx context.Context, userID, unitID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteGrant")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("access_grants").
		Where(sq.Eq{"user_id": userID, "org_unit_id": unitID}).
		ExecContext(ctx)

	if err != nil {
		return false, fmt.Errorf("failed to delete grant: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows > 0, nil
}
