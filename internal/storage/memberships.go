// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/org-access-service/internal/types"
)

func (s *Storage) AddMember(ctx context.Context, tenantID, userID, role string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddMember")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate membership ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("memberships").
		Columns("id", "tenant_id", "user_id", "role").
		Values(id.String(), tenantID, userID, role).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return "", ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return "", ErrForeignKeyViolation
		}
		return "", fmt.Errorf("failed to add member: %w", err)
	}

	return id.String(), nil
}

func (s *Storage) UpdateMember(ctx context.Context, tenantID, userID, role string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("memberships").
		Set("role", role).
		Where(sq.Eq{
			"tenant_id": tenantID,
			"user_id":   userID,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}

	return expectOne(res, "member")
}

// RemoveMember deletes the membership, grants held in the tenant go with it through the
// foreign key cascade.
func (s *Storage) RemoveMember(ctx context.Context, tenantID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("memberships").
		Where(sq.Eq{
			"tenant_id": tenantID,
			"user_id":   userID,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	return expectOne(res, "member")
}

func (s *Storage) GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	return s.getMembership(ctx, tenantID, userID, false)
}

// LockMembership reads the membership with a row lock held until the surrounding
// transaction ends.
func (s *Storage) LockMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.LockMembership")
	defer span.End()

	return s.getMembership(ctx, tenantID, userID, true)
}

func (s *Storage) getMembership(ctx context.Context, tenantID, userID string, forUpdate bool) (*types.Membership, error) {
	q := s.db.Statement(ctx).
		Select("id", "tenant_id", "user_id", "role", "created_at").
		From("memberships").
		Where(sq.Eq{"tenant_id": tenantID, "user_id": userID})

	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}

	var m types.Membership
	err := q.QueryRowContext(ctx).
		Scan(&m.ID, &m.TenantID, &m.UserID, &m.Role, &m.CreatedAt)

	if err != nil {
		if IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}

// ListTenantUsers joins memberships with accounts and flags members holding a live invite.
func (s *Storage) ListTenantUsers(ctx context.Context, tenantID string) ([]*types.TenantUser, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenantUsers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(
			"u.id", "u.email", "m.role", "u.active",
			"EXISTS (SELECT 1 FROM invites i WHERE i.user_id = m.user_id AND i.tenant_id = m.tenant_id AND i.revoked_at IS NULL AND i.accepted_at IS NULL)",
		).
		From("memberships m").
		Join("users u ON u.id = m.user_id").
		Where(sq.Eq{"m.tenant_id": tenantID}).
		OrderBy("u.email").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list tenant users: %w", err)
	}
	defer rows.Close()

	var users []*types.TenantUser
	for rows.Next() {
		var u types.TenantUser
		if err := rows.Scan(&u.UserID, &u.Email, &u.Role, &u.Active, &u.PendingInvite); err != nil {
			return nil, fmt.Errorf("failed to scan tenant user: %w", err)
		}
		users = append(users, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}

func expectOne(res sql.Result, resource string) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%s: %w", resource, ErrNotFound)
	}

	return nil
}
