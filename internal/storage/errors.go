// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateKey        = errors.New("duplicate key violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

// IsNoRows checks if the error reports an empty result set, from either database/sql or pgx.
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

// PostgreSQL error codes
const (
	pgErrCodeUniqueViolation           = "23505"
	pgErrCodeForeignKeyViolation       = "23503"
	pgErrCodeInvalidTextRepresentation = "22P02"
)

// IsNotFound reports an empty result set or a key Postgres could not parse, such as a
// malformed uuid, which no row can match either.
func IsNotFound(err error) bool {
	if IsNoRows(err) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeInvalidTextRepresentation
}

// IsDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeUniqueViolation
	}
	return false
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeForeignKeyViolation
	}
	return false
}

// WrapDuplicateKeyError wraps a duplicate key error with context about which constraint was violated.
func WrapDuplicateKeyError(err error, context string) error {
	if !IsDuplicateKeyError(err) {
		return err
	}
	return fmt.Errorf("%s: %w", context, ErrDuplicateKey)
}

// WrapForeignKeyError wraps a foreign key violation with context.
func WrapForeignKeyError(err error, context string) error {
	if !IsForeignKeyViolation(err) {
		return err
	}
	return fmt.Errorf("%s: %w", context, ErrForeignKeyViolation)
}

// classify maps constraint violations onto the storage sentinels and wraps anything else.
func classify(err error, op string) error {
	switch {
	case IsDuplicateKeyError(err):
		return WrapDuplicateKeyError(err, op)
	case IsForeignKeyViolation(err):
		return WrapForeignKeyError(err, op)
	default:
		return fmt.Errorf("failed to %s: %w", op, err)
	}
}
