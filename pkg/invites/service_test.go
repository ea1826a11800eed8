// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/storage"
	"github.com/canonical/org-access-service/internal/tracing"
	"github.com/canonical/org-access-service/internal/types"
	"github.com/canonical/org-access-service/pkg/activity"
)

//go:generate mockgen -build_flags=--mod=mod -package invites -destination ./mock_interfaces.go -source=./interfaces.go

const (
	inviteID    = "0190a3b6-0000-7000-8000-0000000000a1"
	otherInvite = "0190a3b6-0000-7000-8000-0000000000a2"
	credential  = "correct horse battery"
)

type mocks struct {
	storage   *MockStorageInterface
	activator *MockActivatorInterface
	tx        *MockTxInterface
	activity  *MockActivityInterface
	mailer    *MockMailerInterface
}

func setup(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)

	m := &mocks{
		storage:   NewMockStorageInterface(ctrl),
		activator: NewMockActivatorInterface(ctrl),
		tx:        NewMockTxInterface(ctrl),
		activity:  NewMockActivityInterface(ctrl),
		mailer:    NewMockMailerInterface(ctrl),
	}

	m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	m.tx.EXPECT().AfterCommit(gomock.Any(), gomock.Any()).Do(
		func(ctx context.Context, fn func(context.Context)) {
			fn(ctx)
		},
	).AnyTimes()

	logger := logging.NewNoopLogger()
	svc := NewService(
		m.storage,
		m.activator,
		m.tx,
		m.activity,
		m.mailer,
		"https://portal.example.com/invites/accept?lang=en",
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test", logger),
		logger,
	)

	return svc, m
}

func TestService_Issue(t *testing.T) {
	creator := "admin-1"

	tests := []struct {
		name       string
		setupMocks func(*mocks)
		wantErr    error
	}{
		{
			name: "supersedes live invite and resets the account",
			setupMocks: func(m *mocks) {
				tenant := "t1"
				gomock.InOrder(
					m.storage.EXPECT().LockUser(gomock.Any(), "u1").Return(&types.User{ID: "u1", Active: true}, nil),
					m.storage.EXPECT().GetMembership(gomock.Any(), "t1", "u1").Return(&types.Membership{}, nil),
					m.storage.EXPECT().RevokeLiveInvites(gomock.Any(), "u1", &tenant).Return(int64(1), nil),
					m.storage.EXPECT().CreateInvite(gomock.Any(), &types.Invite{UserID: "u1", TenantID: "t1", CreatedBy: &creator}).
						Return(&types.Invite{ID: inviteID, UserID: "u1", TenantID: "t1", CreatedBy: &creator}, nil),
					m.storage.EXPECT().DeactivateUser(gomock.Any(), "u1").Return(nil),
					m.activity.EXPECT().Record(gomock.Any(), "t1", activity.VerbInviteIssued, gomock.Any()).Return(nil),
				)
			},
		},
		{
			name: "unknown user",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().LockUser(gomock.Any(), "u1").Return(nil, storage.ErrNotFound)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "user outside the tenant",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().LockUser(gomock.Any(), "u1").Return(&types.User{ID: "u1"}, nil)
				m.storage.EXPECT().GetMembership(gomock.Any(), "t1", "u1").Return(nil, storage.ErrNotFound)
			},
			wantErr: ErrNotAMember,
		},
		{
			name: "reset failure aborts",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().LockUser(gomock.Any(), "u1").Return(&types.User{ID: "u1"}, nil)
				m.storage.EXPECT().GetMembership(gomock.Any(), "t1", "u1").Return(&types.Membership{}, nil)
				m.storage.EXPECT().RevokeLiveInvites(gomock.Any(), "u1", gomock.Any()).Return(int64(0), nil)
				m.storage.EXPECT().CreateInvite(gomock.Any(), gomock.Any()).Return(&types.Invite{ID: inviteID}, nil)
				m.storage.EXPECT().DeactivateUser(gomock.Any(), "u1").Return(storage.ErrNotFound)
			},
			wantErr: storage.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := setup(t)
			tt.setupMocks(m)

			invite, err := svc.Issue(context.Background(), "u1", "t1", &creator)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if invite.ID != inviteID || invite.State() != types.InviteLive {
				t.Errorf("unexpected invite %+v", invite)
			}
		})
	}
}

func TestService_Revoke(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name       string
		tenantID   string
		inviteID   string
		setupMocks func(*mocks)
		wantErr    error
	}{
		{
			name:     "revokes a live invite",
			tenantID: "t1",
			inviteID: inviteID,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetInvite(gomock.Any(), inviteID).Return(&types.Invite{ID: inviteID, UserID: "u1", TenantID: "t1"}, nil)
				m.storage.EXPECT().RevokeInvite(gomock.Any(), inviteID).Return(true, nil)
				m.activity.EXPECT().Record(gomock.Any(), "t1", activity.VerbInviteRevoked, gomock.Any()).Return(nil)
			},
		},
		{
			name:       "malformed id",
			tenantID:   "t1",
			inviteID:   "nope",
			setupMocks: func(m *mocks) {},
			wantErr:    ErrInviteNotFound,
		},
		{
			name:     "invite of another tenant",
			tenantID: "t2",
			inviteID: inviteID,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetInvite(gomock.Any(), inviteID).Return(&types.Invite{ID: inviteID, TenantID: "t1"}, nil)
			},
			wantErr: ErrInviteNotFound,
		},
		{
			name:     "already accepted",
			tenantID: "t1",
			inviteID: inviteID,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetInvite(gomock.Any(), inviteID).Return(&types.Invite{ID: inviteID, TenantID: "t1", AcceptedAt: &now}, nil)
				m.storage.EXPECT().RevokeInvite(gomock.Any(), inviteID).Return(false, nil)
			},
			wantErr: ErrInviteNotLive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := setup(t)
			tt.setupMocks(m)

			err := svc.Revoke(context.Background(), tt.tenantID, tt.inviteID)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestService_ListInvites(t *testing.T) {
	svc, m := setup(t)
	now := time.Now()

	m.storage.EXPECT().ListInvitesByTenantID(gomock.Any(), "t1", uint64(50), uint64(50)).Return([]*types.Invite{
		{ID: inviteID},
		{ID: otherInvite, RevokedAt: &now},
	}, nil)

	views, err := svc.ListInvites(context.Background(), "t1", 2, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(views) != 2 {
		t.Fatalf("expected 2 invites, got %d", len(views))
	}
	if views[0].State != types.InviteLive || views[1].State != types.InviteRevoked {
		t.Errorf("unexpected states %s, %s", views[0].State, views[1].State)
	}
}

func TestService_Notify(t *testing.T) {
	svc, m := setup(t)

	m.storage.EXPECT().GetUserByID(gomock.Any(), "u1").Return(&types.User{ID: "u1", Email: "jane@example.com"}, nil)
	m.mailer.EXPECT().SendActivation(gomock.Any(), "jane@example.com", gomock.Any()).Return(nil)

	link, err := svc.Notify(context.Background(), &types.Invite{ID: inviteID, UserID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(link, "https://portal.example.com/invites/accept?") {
		t.Errorf("unexpected link %s", link)
	}
	if !strings.Contains(link, "token="+inviteID) || !strings.Contains(link, "lang=en") {
		t.Errorf("expected token and original query in %s", link)
	}
}

func TestService_NotifySendsAfterCommit(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := NewMockStorageInterface(ctrl)
	tx := NewMockTxInterface(ctrl)
	mailer := NewMockMailerInterface(ctrl)

	logger := logging.NewNoopLogger()
	svc := NewService(
		store,
		NewMockActivatorInterface(ctrl),
		tx,
		NewMockActivityInterface(ctrl),
		mailer,
		"https://portal.example.com/invites/accept",
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test", logger),
		logger,
	)

	var hooks []func(context.Context)
	store.EXPECT().GetUserByID(gomock.Any(), "u1").Return(&types.User{ID: "u1", Email: "jane@example.com"}, nil)
	tx.EXPECT().AfterCommit(gomock.Any(), gomock.Any()).Do(
		func(_ context.Context, fn func(context.Context)) {
			hooks = append(hooks, fn)
		},
	)

	link, err := svc.Notify(context.Background(), &types.Invite{ID: inviteID, UserID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if link == "" {
		t.Fatalf("expected the link before the commit")
	}
	if len(hooks) != 1 {
		t.Fatalf("expected one deferred delivery, got %d", len(hooks))
	}

	// a failed delivery is logged, the hook has nothing to return it to
	mailer.EXPECT().SendActivation(gomock.Any(), "jane@example.com", link).Return(errors.New("smtp down"))
	hooks[0](context.Background())
}

func TestService_Redeem(t *testing.T) {
	now := time.Now()
	accepted := &types.Invite{ID: inviteID, UserID: "u1", TenantID: "t1", AcceptedAt: &now}

	tests := []struct {
		name       string
		token      string
		setupMocks func(*mocks)
		wantErr    []error
	}{
		{
			name:  "activates the account",
			token: inviteID,
			setupMocks: func(m *mocks) {
				gomock.InOrder(
					m.activator.EXPECT().HashCredential(credential).Return("hash", nil),
					m.storage.EXPECT().AcceptInvite(gomock.Any(), inviteID).Return(accepted, nil),
					m.activator.EXPECT().Activate(gomock.Any(), "u1", "hash", nil).Return(nil),
					m.activity.EXPECT().Record(gomock.Any(), "t1", activity.VerbInviteAccepted, gomock.Any()).Return(nil),
				)
			},
		},
		{
			name:       "token is not an invite id",
			token:      "garbage",
			setupMocks: func(m *mocks) {},
			wantErr:    []error{ErrInvalidToken},
		},
		{
			name:  "weak credential is rejected before any write",
			token: inviteID,
			setupMocks: func(m *mocks) {
				m.activator.EXPECT().HashCredential(credential).Return("", ErrWeakCredential)
			},
			wantErr: []error{ErrWeakCredential},
		},
		{
			name:  "unknown token",
			token: inviteID,
			setupMocks: func(m *mocks) {
				m.activator.EXPECT().HashCredential(credential).Return("hash", nil)
				m.storage.EXPECT().AcceptInvite(gomock.Any(), inviteID).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetInvite(gomock.Any(), inviteID).Return(nil, storage.ErrNotFound)
			},
			wantErr: []error{ErrInvalidToken},
		},
		{
			name:  "revoked or accepted invite",
			token: inviteID,
			setupMocks: func(m *mocks) {
				m.activator.EXPECT().HashCredential(credential).Return("hash", nil)
				m.storage.EXPECT().AcceptInvite(gomock.Any(), inviteID).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetInvite(gomock.Any(), inviteID).Return(accepted, nil)
			},
			wantErr: []error{ErrInviteNotLive},
		},
		{
			name:  "account already active",
			token: inviteID,
			setupMocks: func(m *mocks) {
				m.activator.EXPECT().HashCredential(credential).Return("hash", nil)
				m.storage.EXPECT().AcceptInvite(gomock.Any(), inviteID).Return(accepted, nil)
				m.activator.EXPECT().Activate(gomock.Any(), "u1", "hash", nil).Return(ErrAlreadyActive)
			},
			wantErr: []error{ErrInviteNotLive, ErrAlreadyActive},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := setup(t)
			tt.setupMocks(m)

			res, err := svc.Redeem(context.Background(), tt.token, credential)

			if len(tt.wantErr) > 0 {
				for _, want := range tt.wantErr {
					if !errors.Is(err, want) {
						t.Errorf("expected error %v, got %v", want, err)
					}
				}
				if res != nil {
					t.Errorf("expected no result, got %+v", res)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			expected := Result{UserID: "u1", TenantID: "t1", InviteID: inviteID, Mechanism: MechanismStored}
			if *res != expected {
				t.Errorf("expected %+v, got %+v", expected, *res)
			}
		})
	}
}
