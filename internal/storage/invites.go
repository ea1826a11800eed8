// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/org-access-service/internal/types"
)

var inviteColumns = []string{"id", "user_id", "tenant_id", "created_by", "created_at", "revoked_at", "accepted_at"}

var liveInvite = sq.Eq{"revoked_at": nil, "accepted_at": nil}

func scanInvite(row sq.RowScanner) (*types.Invite, error) {
	var i types.Invite
	if err := row.Scan(&i.ID, &i.UserID, &i.TenantID, &i.CreatedBy, &i.CreatedAt, &i.RevokedAt, &i.AcceptedAt); err != nil {
		return nil, err
	}

	return &i, nil
}

func (s *Storage) CreateInvite(ctx context.Context, invite *types.Invite) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvite")
	defer span.End()

	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite ID: %w", err)
	}

	created, err := scanInvite(
		s.db.Statement(ctx).
			Insert("invites").
			Columns("id", "user_id", "tenant_id", "created_by").
			Values(id.String(), invite.UserID, invite.TenantID, invite.CreatedBy).
			Suffix("RETURNING " + strings.Join(inviteColumns, ", ")).
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, classify(err, "insert invite")
	}

	return created, nil
}

func (s *Storage) GetInvite(ctx context.Context, id string) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvite")
	defer span.End()

	invite, err := scanInvite(
		s.db.Statement(ctx).
			Select(inviteColumns...).
			From("invites").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)

	if err != nil {
		if IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	return invite, nil
}

func (s *Storage) ListInvitesByTenantID(ctx context.Context, tenantID string, offset, limit uint64) ([]*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvitesByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(inviteColumns...).
		From("invites").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(limit).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	defer rows.Close()

	var invites []*types.Invite
	for rows.Next() {
		i, err := scanInvite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invite: %w", err)
		}
		invites = append(invites, i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invites, nil
}

// RevokeLiveInvites sweeps the user's live invites to revoked, restricted to one tenant
// when tenantID is set.
func (s *Storage) RevokeLiveInvites(ctx context.Context, userID string, tenantID *string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RevokeLiveInvites")
	defer span.End()

	where := sq.And{sq.Eq{"user_id": userID}, liveInvite}
	if tenantID != nil {
		where = append(where, sq.Eq{"tenant_id": *tenantID})
	}

	res, err := s.db.Statement(ctx).
		Update("invites").
		Set("revoked_at", sq.Expr("now()")).
		Where(where).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to revoke invites: %w", err)
	}

	return res.RowsAffected()
}

// RevokeInvite moves a live invite to revoked, false means it was not live.
func (s *Storage) RevokeInvite(ctx context.Context, id string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RevokeInvite")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("invites").
		Set("revoked_at", sq.Expr("now()")).
		Where(sq.And{sq.Eq{"id": id}, liveInvite}).
		ExecContext(ctx)

	if err != nil {
		return false, fmt.Errorf("failed to revoke invite: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows == 1, nil
}

// AcceptInvite is the compare-and-set moving a live invite to accepted.
// ErrNotFound is returned when no live invite with that id exists.
func (s *Storage) AcceptInvite(ctx context.Context, id string) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AcceptInvite")
	defer span.End()

	invite, err := scanInvite(
		s.db.Statement(ctx).
			Update("invites").
			Set("accepted_at", sq.Expr("now()")).
			Where(sq.And{sq.Eq{"id": id}, liveInvite}).
			Suffix("RETURNING " + strings.Join(inviteColumns, ", ")).
			QueryRowContext(ctx),
	)

	if err != nil {
		if IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to accept invite: %w", err)
	}

	return invite, nil
}
