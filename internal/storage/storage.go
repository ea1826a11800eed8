// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/org-access-service/internal/db"
	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/tracing"
	"github.com/canonical/org-access-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var tenantColumns = []string{"id", "name", "external_id", "created_at", "enabled"}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	var newTenant types.Tenant
	err = s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "name", "external_id", "enabled").
		Values(id.String(), t.Name, t.ExternalID, t.Enabled).
		Suffix("RETURNING id, name, external_id, created_at, enabled").
		QueryRowContext(ctx).
		Scan(&newTenant.ID, &newTenant.Name, &newTenant.ExternalID, &newTenant.CreatedAt, &newTenant.Enabled)

	if err != nil {
		return nil, classify(err, "insert tenant")
	}

	return &newTenant, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	var t types.Tenant
	err := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Name, &t.ExternalID, &t.CreatedAt, &t.Enabled)

	if err != nil {
		if IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return &t, nil
}

// LockTenant takes a row lock on the tenant, serializing tree mutations within it
// until the surrounding transaction ends.
func (s *Storage) LockTenant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.LockTenant")
	defer span.End()

	var locked string
	err := s.db.Statement(ctx).
		Select("id").
		From("tenants").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		QueryRowContext(ctx).
		Scan(&locked)

	if err != nil {
		if IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to lock tenant: %w", err)
	}

	return nil
}

func (s *Storage) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		OrderBy("name")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		var t types.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.ExternalID, &t.CreatedAt, &t.Enabled); err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenant rows: %w", err)
	}

	return tenants, nil
}

func (s *Storage) ListActiveTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error) {
	return s.listTenantsByUserID(ctx, userID, false)
}

func (s *Storage) ListTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error) {
	return s.listTenantsByUserID(ctx, userID, true)
}

func (s *Storage) listTenantsByUserID(ctx context.Context, userID string, showDisabled bool) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenantsByUserID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("t.id", "t.name", "t.external_id", "t.created_at", "t.enabled").
		From("tenants t").
		Join("memberships m ON t.id = m.tenant_id").
		Where(sq.Eq{"m.user_id": userID}).
		OrderBy("t.name")

	if !showDisabled {
		query = query.Where(sq.Eq{"t.enabled": true})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		var t types.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.ExternalID, &t.CreatedAt, &t.Enabled); err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tenants, nil
}

// UpdateTenant updates fields specified in paths.
// Here we follow typical PATCH semantics: update only what's in paths.
// If paths contains "name", update name.
// If paths contains "enabled", update enabled status.
func (s *Storage) UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenant")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = tenant.Name
		case "enabled":
			updateMap["enabled"] = tenant.Enabled
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	res, err := s.db.Statement(ctx).
		Update("tenants").
		SetMap(updateMap).
		Where(sq.Eq{"id": tenant.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update tenant: %w", err)
	}

	return expectOne(res, "tenant")
}
