// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/canonical/org-access-service/internal/db"
	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/tracing"
	"github.com/canonical/org-access-service/internal/types"
)

func newTestStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	return NewStorage(db.NewDBClientFromDB(conn, tracer, monitor, logger), tracer, monitor, logger), mock
}

func strPtr(s string) *string { return &s }

func TestStorage_CreateOrgUnit(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name        string
		unit        *types.OrgUnit
		setupMocks  func(sqlmock.Sqlmock)
		expectedErr error
	}{
		{
			name: "root unit",
			unit: &types.OrgUnit{TenantID: "t1", Name: "HQ", Code: "HQ1"},
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO org_units").
					WillReturnRows(
						sqlmock.NewRows([]string{"id", "tenant_id", "name", "code", "parent_id", "created_at"}).
							AddRow("u1", "t1", "HQ", "HQ1", nil, now),
					)
			},
		},
		{
			name: "duplicate code",
			unit: &types.OrgUnit{TenantID: "t1", Name: "HQ", Code: "HQ1"},
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO org_units").
					WillReturnError(&pgconn.PgError{Code: pgErrCodeUniqueViolation, ConstraintName: "org_units_tenant_id_code_key"})
			},
			expectedErr: ErrDuplicateKey,
		},
		{
			name: "parent in another tenant",
			unit: &types.OrgUnit{TenantID: "t1", Name: "Sales", Code: "SA1", ParentID: strPtr("foreign")},
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO org_units").
					WillReturnError(&pgconn.PgError{Code: pgErrCodeForeignKeyViolation})
			},
			expectedErr: ErrForeignKeyViolation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mock := newTestStorage(t)
			tc.setupMocks(mock)

			unit, err := s.CreateOrgUnit(context.Background(), tc.unit)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if unit.ID != "u1" || unit.ParentID != nil {
					t.Errorf("unexpected unit %+v", unit)
				}
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestStorage_LockTenant(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(`SELECT id FROM tenants WHERE id = \$1 FOR UPDATE`).
		WithArgs("t1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("t1"))
	mock.ExpectQuery(`SELECT id FROM tenants WHERE id = \$1 FOR UPDATE`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if err := s.LockTenant(context.Background(), "t1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.LockTenant(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStorage_LockMembership(t *testing.T) {
	s, mock := newTestStorage(t)
	now := time.Now()

	mock.ExpectQuery(`FROM memberships WHERE .*tenant_id = \$1 AND user_id = \$2.* FOR UPDATE`).
		WithArgs("t1", "u1").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "tenant_id", "user_id", "role", "created_at"}).
				AddRow("m1", "t1", "u1", types.RoleMember, now),
		)
	mock.ExpectQuery(`FROM memberships WHERE .*tenant_id = \$1 AND user_id = \$2.* FOR UPDATE`).
		WithArgs("t1", "stranger").
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "user_id", "role", "created_at"}))

	m, err := s.LockMembership(context.Background(), "t1", "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Role != types.RoleMember {
		t.Errorf("expected member role, got %s", m.Role)
	}

	if _, err := s.LockMembership(context.Background(), "t1", "stranger"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStorage_ListOrgUnitIDs(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(`SELECT id FROM org_units WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("u1"))

	found, err := s.ListOrgUnitIDs(context.Background(), "t1", []string{"u1", "u9"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 1 || found[0] != "u1" {
		t.Errorf("unexpected ids %v", found)
	}

	empty, err := s.ListOrgUnitIDs(context.Background(), "t1", nil)
	if err != nil || len(empty) != 0 {
		t.Errorf("expected no query and no ids, got %v %v", empty, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStorage_Grants(t *testing.T) {
	s, mock := newTestStorage(t)
	ctx := context.Background()

	mock.ExpectExec(`INSERT INTO access_grants .* VALUES \(\$1,\$2,\$3,\$4,\$5\),\(\$6,\$7,\$8,\$9,\$10\)`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`INSERT INTO access_grants .* ON CONFLICT \(user_id, org_unit_id\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM access_grants WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM access_grants WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	err := s.InsertGrants(ctx, []*types.AccessGrant{
		{UserID: "u", TenantID: "t", OrgUnitID: "a", Permission: "viewer"},
		{UserID: "u", TenantID: "t", OrgUnitID: "b", Permission: "editor"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	created, err := s.CreateGrant(ctx, &types.AccessGrant{UserID: "u", TenantID: "t", OrgUnitID: "a", Permission: "viewer"})
	if err != nil || created {
		t.Errorf("expected existing grant to be a no-op, got created=%v err=%v", created, err)
	}

	removed, err := s.DeleteGrant(ctx, "u", "z")
	if err != nil || removed {
		t.Errorf("expected removed=false, got %v %v", removed, err)
	}

	count, err := s.DeleteGrants(ctx, "u", "t")
	if err != nil || count != 3 {
		t.Errorf("expected 3 deleted grants, got %d %v", count, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStorage_AcceptInvite(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name        string
		setupMocks  func(sqlmock.Sqlmock)
		expectedErr error
	}{
		{
			name: "live invite is accepted",
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE invites SET accepted_at = now\(\) WHERE \(id = \$1 AND .*accepted_at IS NULL AND revoked_at IS NULL.*\) RETURNING`).
					WithArgs("i1").
					WillReturnRows(
						sqlmock.NewRows(inviteColumns).AddRow("i1", "u1", "t1", nil, now, nil, now),
					)
			},
		},
		{
			name: "invite not live",
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE invites SET accepted_at`).
					WithArgs("i1").
					WillReturnRows(sqlmock.NewRows(inviteColumns))
			},
			expectedErr: ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mock := newTestStorage(t)
			tc.setupMocks(mock)

			invite, err := s.AcceptInvite(context.Background(), "i1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if invite.State() != types.InviteAccepted {
					t.Errorf("expected accepted invite, got %s", invite.State())
				}
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestStorage_RevokeLiveInvites(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectExec(`UPDATE invites SET revoked_at = now\(\) WHERE \(user_id = \$1 AND .*revoked_at IS NULL.* AND tenant_id = \$2\)`).
		WithArgs("u1", "t1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE invites SET revoked_at = now\(\) WHERE \(user_id = \$1 AND .*revoked_at IS NULL`).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 2))

	tenantID := "t1"
	if n, err := s.RevokeLiveInvites(context.Background(), "u1", &tenantID); err != nil || n != 1 {
		t.Errorf("expected one revoked invite, got %d %v", n, err)
	}
	if n, err := s.RevokeLiveInvites(context.Background(), "u1", nil); err != nil || n != 2 {
		t.Errorf("expected two revoked invites, got %d %v", n, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStorage_ActivateUser(t *testing.T) {
	s, mock := newTestStorage(t)
	version := int64(3)

	mock.ExpectExec(`UPDATE users SET active = \$1, password_hash = \$2, credential_version = credential_version \+ 1 WHERE \(?active = \$3 AND credential_version = \$4 AND id = \$5`).
		WithArgs(true, "hash", false, version, "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE users SET active = \$1, password_hash = \$2, credential_version = credential_version \+ 1 WHERE \(?active = \$3 AND id = \$4`).
		WithArgs(true, "hash", false, "u1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := s.ActivateUser(context.Background(), "u1", "hash", &version)
	if err != nil || !ok {
		t.Errorf("expected activation, got %v %v", ok, err)
	}

	ok, err = s.ActivateUser(context.Background(), "u1", "hash", nil)
	if err != nil || ok {
		t.Errorf("expected already active user to be left alone, got %v %v", ok, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStorage_DeactivateUser(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectExec(`UPDATE users SET active = \$1, password_hash = \$2, credential_version = credential_version \+ 1 WHERE id = \$3`).
		WithArgs(false, nil, "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE users SET active`).
		WithArgs(false, nil, "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.DeactivateUser(context.Background(), "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.DeactivateUser(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStorage_GetTenantByID(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(`SELECT id, name, external_id, created_at, enabled FROM tenants WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(tenantColumns))

	if _, err := s.GetTenantByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStorage_GetOrgUnitMalformedID(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(`SELECT .+ FROM org_units WHERE id = \$1`).
		WithArgs("not-a-uuid").
		WillReturnError(&pgconn.PgError{Code: pgErrCodeInvalidTextRepresentation})

	if _, err := s.GetOrgUnit(context.Background(), "not-a-uuid"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStorage_ActivityEvents(t *testing.T) {
	s, mock := newTestStorage(t)
	now := time.Now()

	mock.ExpectExec(`INSERT INTO activity_events`).
		WithArgs(sqlmock.AnyArg(), "t1", "actor", "unit_created", `{"code":"HQ1"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT id, tenant_id, actor_id, verb, meta, created_at FROM activity_events WHERE tenant_id = \$1 ORDER BY created_at DESC LIMIT 10 OFFSET 0`).
		WithArgs("t1").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "tenant_id", "actor_id", "verb", "meta", "created_at"}).
				AddRow("e1", "t1", "actor", "unit_created", []byte(`{"code":"HQ1"}`), now),
		)

	err := s.CreateActivityEvent(context.Background(), &types.ActivityEvent{
		TenantID: "t1",
		ActorID:  strPtr("actor"),
		Verb:     "unit_created",
		Meta:     map[string]any{"code": "HQ1"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events, err := s.ListActivityEvents(context.Background(), "t1", 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 || events[0].Meta["code"] != "HQ1" {
		t.Errorf("unexpected events %+v", events)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
