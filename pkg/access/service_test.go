// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_interfaces.go -source=./interfaces.go

func newTestService(t *testing.T) (*Service, *MockTreeInterface, *MockGrantsInterface) {
	ctrl := gomock.NewController(t)

	tree := NewMockTreeInterface(ctrl)
	grants := NewMockGrantsInterface(ctrl)

	logger := logging.NewNoopLogger()
	svc := NewService(tree, grants, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	return svc, tree, grants
}

func TestService_ResolveAccess(t *testing.T) {
	svc, tree, grants := newTestService(t)

	grants.EXPECT().DirectGrantsFor(gomock.Any(), "u1", "t1").Return(map[string]Permission{"sales": PermissionEditor}, nil)
	tree.EXPECT().LoadForest(gomock.Any(), "t1").Return(sampleForest(), nil)

	m, err := svc.ResolveAccess(context.Background(), "u1", "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Map{"sales": PermissionEditor, "north": PermissionEditor, "south": PermissionEditor}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("expected %v, got %v", want, m)
	}
}

func TestService_AccessibleUnitIDs(t *testing.T) {
	svc, tree, grants := newTestService(t)

	grants.EXPECT().DirectGrantsFor(gomock.Any(), "u1", "t1").Return(map[string]Permission{}, nil)
	tree.EXPECT().LoadForest(gomock.Any(), "t1").Return(sampleForest(), nil)

	ids, err := svc.AccessibleUnitIDs(context.Background(), "u1", "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected no access without grants, got %v", ids)
	}
}

func TestService_Checks(t *testing.T) {
	tests := []struct {
		name    string
		direct  map[string]Permission
		rec     Record
		canView bool
		canEdit bool
	}{
		{
			name:    "inherited viewer",
			direct:  map[string]Permission{"hq": PermissionViewer},
			rec:     Record{UnitID: "it", AuthorID: "someone"},
			canView: true,
		},
		{
			name:    "own grant on foreign record",
			direct:  map[string]Permission{"ops": PermissionOwn},
			rec:     Record{UnitID: "it", AuthorID: "someone"},
			canView: false,
		},
		{
			name:    "own grant on authored record",
			direct:  map[string]Permission{"ops": PermissionOwn},
			rec:     Record{UnitID: "it", AuthorID: "u1"},
			canView: true,
			canEdit: true,
		},
		{
			name:    "sibling unit",
			direct:  map[string]Permission{"north": PermissionEditor},
			rec:     Record{UnitID: "south", AuthorID: "u1"},
			canView: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, tree, grants := newTestService(t)

			grants.EXPECT().DirectGrantsFor(gomock.Any(), "u1", "t1").Return(tt.direct, nil).Times(2)
			tree.EXPECT().LoadForest(gomock.Any(), "t1").Return(sampleForest(), nil).Times(2)

			view, err := svc.CanView(context.Background(), "u1", "t1", tt.rec)
			if err != nil || view != tt.canView {
				t.Errorf("CanView = %v, %v, want %v", view, err, tt.canView)
			}

			edit, err := svc.CanEdit(context.Background(), "u1", "t1", tt.rec)
			if err != nil || edit != tt.canEdit {
				t.Errorf("CanEdit = %v, %v, want %v", edit, err, tt.canEdit)
			}
		})
	}
}

func TestService_AccessState(t *testing.T) {
	svc, tree, grants := newTestService(t)

	grants.EXPECT().DirectGrantsFor(gomock.Any(), "u1", "t1").Return(
		map[string]Permission{"sales": PermissionViewer, "north": PermissionEditor}, nil,
	)
	tree.EXPECT().LoadForest(gomock.Any(), "t1").Return(sampleForest(), nil)

	state, err := svc.AccessState(context.Background(), "u1", "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []struct {
		id     string
		perm   Permission
		direct bool
		path   string
	}{
		{"sales", PermissionViewer, true, "hq > sales"},
		{"north", PermissionEditor, true, "hq > sales > north"},
		{"south", PermissionViewer, false, "hq > sales > south"},
	}

	if len(state) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(state))
	}
	for i, w := range want {
		got := state[i]
		if got.UnitID != w.id || got.Permission != w.perm || got.Direct != w.direct || got.FullPath != w.path {
			t.Errorf("row %d = %+v, want %+v", i, got, w)
		}
	}
}

func TestService_Errors(t *testing.T) {
	svc, tree, grants := newTestService(t)

	boom := errors.New("db down")

	grants.EXPECT().DirectGrantsFor(gomock.Any(), "u1", "t1").Return(nil, boom)
	if _, err := svc.ResolveAccess(context.Background(), "u1", "t1"); !errors.Is(err, boom) {
		t.Errorf("expected grants error, got %v", err)
	}

	grants.EXPECT().DirectGrantsFor(gomock.Any(), "u1", "t1").Return(map[string]Permission{}, nil)
	tree.EXPECT().LoadForest(gomock.Any(), "t1").Return(nil, boom)
	if _, err := svc.AccessibleUnitIDs(context.Background(), "u1", "t1"); !errors.Is(err, boom) {
		t.Errorf("expected tree error, got %v", err)
	}
}
