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

var userColumns = []string{"id", "email", "active", "password_hash", "credential_version", "created_at"}

func scanUser(row sq.RowScanner) (*types.User, error) {
	var u types.User
	if err := row.Scan(&u.ID, &u.Email, &u.Active, &u.PasswordHash, &u.CredentialVersion, &u.CreatedAt); err != nil {
		return nil, err
	}

	return &u, nil
}

// CreateUser inserts a pending account, the identity provider id is reused when present.
func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id := u.ID
	if id == "" {
		v7, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("failed to generate user ID: %w", err)
		}
		id = v7.String()
	}

	created, err := scanUser(
		s.db.Statement(ctx).
			Insert("users").
			Columns("id", "email", "active").
			Values(id, strings.ToLower(u.Email), u.Active).
			Suffix("RETURNING " + strings.Join(userColumns, ", ")).
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, classify(err, "insert user")
	}

	return created, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"id": id}, false)
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"email": strings.ToLower(email)}, false)
}

// LockUser reads the account under a row lock, concurrent invite issuance for the
// same user queues behind it.
func (s *Storage) LockUser(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.LockUser")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"id": id}, true)
}

func (s *Storage) getUser(ctx context.Context, where sq.Eq, forUpdate bool) (*types.User, error) {
	query := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(where)

	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	u, err := scanUser(query.QueryRowContext(ctx))
	if err != nil {
		if IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// DeactivateUser puts the account back in the pending state: inactive, no usable password,
// and a bumped credential version so outstanding signed activation links stop verifying.
func (s *Storage) DeactivateUser(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeactivateUser")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("active", false).
		Set("password_hash", nil).
		Set("credential_version", sq.Expr("credential_version + 1")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}

	return expectOne(res, "user")
}

// ActivateUser flips a pending account to active with the given password hash.
// The update only applies while the account is still inactive and, when expectedVersion
// is set, still at that credential version; false means another activation won.
func (s *Storage) ActivateUser(ctx context.Context, id, passwordHash string, expectedVersion *int64) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ActivateUser")
	defer span.End()

	where := sq.Eq{"id": id, "active": false}
	if expectedVersion != nil {
		where["credential_version"] = *expectedVersion
	}

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("active", true).
		Set("password_hash", passwordHash).
		Set("credential_version", sq.Expr("credential_version + 1")).
		Where(where).
		ExecContext(ctx)

	if err != nil {
		return false, fmt.Errorf("failed to activate user: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows == 1, nil
}
