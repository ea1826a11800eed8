// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/tracing"
)

func newTestClient(t *testing.T) (*DBClient, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	logger := logging.NewNoopLogger()

	return NewDBClientFromDB(conn, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger), mock
}

func TestOffsetAndPageSize(t *testing.T) {
	if got := Offset(0, 10); got != 0 {
		t.Errorf("expected offset 0, got %d", got)
	}
	if got := Offset(3, 10); got != 20 {
		t.Errorf("expected offset 20, got %d", got)
	}
	if got := PageSize(0); got != defaultPageSize {
		t.Errorf("expected default page size, got %d", got)
	}
	if got := PageSize(5); got != 5 {
		t.Errorf("expected page size 5, got %d", got)
	}
}

func TestWithTx(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(sqlmock.Sqlmock)
		fn          func(*DBClient) func(context.Context) error
		expectedErr bool
	}{
		{
			name: "commits when fn succeeds",
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE tenants").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			fn: func(d *DBClient) func(context.Context) error {
				return func(ctx context.Context) error {
					_, err := d.Statement(ctx).Update("tenants").Set("name", "acme").ExecContext(ctx)
					return err
				}
			},
		},
		{
			name: "rolls back when fn fails",
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE tenants").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectRollback()
			},
			fn: func(d *DBClient) func(context.Context) error {
				return func(ctx context.Context) error {
					if _, err := d.Statement(ctx).Update("tenants").Set("name", "acme").ExecContext(ctx); err != nil {
						return err
					}
					return errors.New("boom")
				}
			},
			expectedErr: true,
		},
		{
			name:       "no statement means no transaction",
			setupMocks: func(mock sqlmock.Sqlmock) {},
			fn: func(d *DBClient) func(context.Context) error {
				return func(ctx context.Context) error { return nil }
			},
		},
		{
			name: "nested calls join the outer transaction",
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE tenants").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			fn: func(d *DBClient) func(context.Context) error {
				return func(ctx context.Context) error {
					if _, err := d.Statement(ctx).Update("tenants").Set("name", "acme").ExecContext(ctx); err != nil {
						return err
					}
					return d.WithTx(ctx, func(inner context.Context) error {
						_, err := d.Statement(inner).Update("users").Set("active", true).ExecContext(inner)
						return err
					})
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, mock := newTestClient(t)
			tc.setupMocks(mock)

			err := d.WithTx(context.Background(), tc.fn(d))

			if tc.expectedErr && err == nil {
				t.Fatalf("expected error but got none")
			}
			if !tc.expectedErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestAfterCommit(t *testing.T) {
	testCases := []struct {
		name       string
		setupMocks func(sqlmock.Sqlmock)
		fail       bool
		expected   []string
	}{
		{
			name: "runs after the commit",
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE tenants").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			expected: []string{"exec", "hook"},
		},
		{
			name: "dropped on rollback",
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE tenants").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectRollback()
			},
			fail:     true,
			expected: []string{"exec"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, mock := newTestClient(t)
			tc.setupMocks(mock)

			var calls []string
			_ = d.WithTx(context.Background(), func(ctx context.Context) error {
				d.AfterCommit(ctx, func(context.Context) { calls = append(calls, "hook") })

				if _, err := d.Statement(ctx).Update("tenants").Set("name", "acme").ExecContext(ctx); err != nil {
					return err
				}
				calls = append(calls, "exec")

				if tc.fail {
					return errors.New("boom")
				}
				return nil
			})

			if !reflect.DeepEqual(calls, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, calls)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestAfterCommitWithoutTransaction(t *testing.T) {
	d, _ := newTestClient(t)

	ran := false
	d.AfterCommit(context.Background(), func(context.Context) { ran = true })

	if !ran {
		t.Errorf("expected hook to run immediately")
	}
}

func TestTransactionMiddlewareRunsHooksAfterCommit(t *testing.T) {
	d, mock := newTestClient(t)

	committed := false
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO invites").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	handler := TransactionMiddleware(d, logging.NewNoopLogger())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if _, err := d.Statement(ctx).Insert("invites").Columns("id").Values("i1").ExecContext(ctx); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			d.AfterCommit(ctx, func(context.Context) {
				committed = mock.ExpectationsWereMet() == nil
			})
			w.WriteHeader(http.StatusCreated)
		}),
	)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v0/tenants/t1/invites", nil))

	if !committed {
		t.Errorf("expected hook to run once the commit went through")
	}
}

func TestTransactionMiddleware(t *testing.T) {
	d, mock := newTestClient(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM access_grants").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectRollback()

	handler := TransactionMiddleware(d, logging.NewNoopLogger())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := d.Statement(r.Context()).Delete("access_grants").ExecContext(r.Context()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			w.WriteHeader(http.StatusBadRequest)
		}),
	)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/v0/tenants/t1/users/u1/grants", nil))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPing(t *testing.T) {
	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer conn.Close()

	logger := logging.NewNoopLogger()
	d := NewDBClientFromDB(conn, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	mock.ExpectPing().WillReturnError(errors.New("down"))

	if err := d.Ping(context.Background()); err == nil {
		t.Errorf("expected ping error")
	}
}
