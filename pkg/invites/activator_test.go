// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/tracing"
)

func newTestActivator(t *testing.T) (*Activator, *MockActivationStorageInterface) {
	ctrl := gomock.NewController(t)
	st := NewMockActivationStorageInterface(ctrl)

	logger := logging.NewNoopLogger()
	return NewActivator(st, bcrypt.MinCost, 8, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger), st
}

func TestActivator_HashCredential(t *testing.T) {
	a, _ := newTestActivator(t)

	if _, err := a.HashCredential("short"); !errors.Is(err, ErrWeakCredential) {
		t.Fatalf("expected weak credential error, got %v", err)
	}

	// eight runes, more bytes
	hash, err := a.HashCredential("pässwörd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("pässwörd")); err != nil {
		t.Errorf("hash does not verify: %v", err)
	}
}

func TestNewActivator_InvalidCost(t *testing.T) {
	logger := logging.NewNoopLogger()
	a := NewActivator(nil, 99, 8, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	if a.cost != bcrypt.DefaultCost {
		t.Errorf("expected default cost, got %d", a.cost)
	}
}

func TestActivator_Activate(t *testing.T) {
	version := int64(4)

	tests := []struct {
		name       string
		version    *int64
		setupMocks func(*MockActivationStorageInterface)
		wantErr    error
	}{
		{
			name: "activates and sweeps remaining invites",
			setupMocks: func(st *MockActivationStorageInterface) {
				gomock.InOrder(
					st.EXPECT().ActivateUser(gomock.Any(), "u1", "hash", nil).Return(true, nil),
					st.EXPECT().RevokeLiveInvites(gomock.Any(), "u1", nil).Return(int64(2), nil),
				)
			},
		},
		{
			name:    "version guard is passed through",
			version: &version,
			setupMocks: func(st *MockActivationStorageInterface) {
				st.EXPECT().ActivateUser(gomock.Any(), "u1", "hash", &version).Return(true, nil)
				st.EXPECT().RevokeLiveInvites(gomock.Any(), "u1", nil).Return(int64(0), nil)
			},
		},
		{
			name: "lost the race",
			setupMocks: func(st *MockActivationStorageInterface) {
				st.EXPECT().ActivateUser(gomock.Any(), "u1", "hash", nil).Return(false, nil)
			},
			wantErr: ErrAlreadyActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, st := newTestActivator(t)
			tt.setupMocks(st)

			err := a.Activate(context.Background(), "u1", "hash", tt.version)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
