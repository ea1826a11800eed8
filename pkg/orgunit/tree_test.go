// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package orgunit

import (
	"fmt"
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"github.com/canonical/org-access-service/internal/types"
)

func ptr(s string) *string {
	return &s
}

func unit(id, name string, parent *string) *types.OrgUnit {
	return &types.OrgUnit{ID: id, TenantID: "t1", Name: name, Code: id, ParentID: parent}
}

// hq
// ├── sales
// │   └── north
// └── ops
// lab (second root)
func sampleUnits() []*types.OrgUnit {
	return []*types.OrgUnit{
		unit("hq", "HQ", nil),
		unit("sales", "Sales", ptr("hq")),
		unit("north", "SalesNorth", ptr("sales")),
		unit("ops", "Ops", ptr("hq")),
		unit("lab", "Lab", nil),
	}
}

func sorted(ids []string) []string {
	out := append([]string(nil), ids...)
	sort.Strings(out)
	return out
}

func ids(units []*types.OrgUnit) []string {
	out := make([]string, 0, len(units))
	for _, u := range units {
		out = append(out, u.ID)
	}
	return out
}

func TestForest_Descendants(t *testing.T) {
	f := NewForest(sampleUnits())

	tests := []struct {
		id   string
		want []string
	}{
		{id: "hq", want: []string{"sales", "north", "ops"}},
		{id: "sales", want: []string{"north"}},
		{id: "north", want: nil},
		{id: "lab", want: nil},
		{id: "missing", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got := f.Descendants(tt.id)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Descendants(%s) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestForest_Ancestors(t *testing.T) {
	f := NewForest(sampleUnits())

	if got := ids(f.Ancestors("north")); !reflect.DeepEqual(got, []string{"sales", "hq"}) {
		t.Errorf("expected nearest-first ancestors [sales hq], got %v", got)
	}
	if got := f.Ancestors("hq"); len(got) != 0 {
		t.Errorf("expected root to have no ancestors, got %v", ids(got))
	}
	if got := f.Ancestors("missing"); got != nil {
		t.Errorf("expected nil for unknown unit, got %v", ids(got))
	}
}

func TestForest_LevelAndFullPath(t *testing.T) {
	f := NewForest(sampleUnits())

	tests := []struct {
		id    string
		level int
		path  string
	}{
		{id: "hq", level: 0, path: "HQ"},
		{id: "sales", level: 1, path: "HQ > Sales"},
		{id: "north", level: 2, path: "HQ > Sales > SalesNorth"},
		{id: "lab", level: 0, path: "Lab"},
	}

	for _, tt := range tests {
		if got := f.Level(tt.id); got != tt.level {
			t.Errorf("Level(%s) = %d, want %d", tt.id, got, tt.level)
		}
		if got := f.FullPath(tt.id); got != tt.path {
			t.Errorf("FullPath(%s) = %q, want %q", tt.id, got, tt.path)
		}
	}
}

func TestForest_WouldCycle(t *testing.T) {
	f := NewForest(sampleUnits())

	tests := []struct {
		name   string
		unit   string
		parent *string
		want   bool
	}{
		{name: "to root", unit: "sales", parent: nil, want: false},
		{name: "onto itself", unit: "sales", parent: ptr("sales"), want: true},
		{name: "onto child", unit: "sales", parent: ptr("north"), want: true},
		{name: "root onto grandchild", unit: "hq", parent: ptr("north"), want: true},
		{name: "onto sibling", unit: "sales", parent: ptr("ops"), want: false},
		{name: "onto other root", unit: "hq", parent: ptr("lab"), want: false},
		{name: "leaf onto ancestor", unit: "north", parent: ptr("hq"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.WouldCycle(tt.unit, tt.parent); got != tt.want {
				t.Errorf("WouldCycle(%s) = %v, want %v", tt.unit, got, tt.want)
			}
		})
	}
}

func TestForest_Roots(t *testing.T) {
	f := NewForest(sampleUnits())

	if got := f.Roots(); !reflect.DeepEqual(got, []string{"hq", "lab"}) {
		t.Errorf("expected roots [hq lab], got %v", got)
	}
	if got := f.Children(rootKey); got != nil {
		t.Errorf("expected no children for the root key, got %v", got)
	}
	if got := f.Children("hq"); !reflect.DeepEqual(got, []string{"sales", "ops"}) {
		t.Errorf("expected children [sales ops], got %v", got)
	}
}

func TestForest_DanglingParentIsRoot(t *testing.T) {
	f := NewForest([]*types.OrgUnit{unit("a", "A", ptr("elsewhere"))})

	if got := f.Roots(); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("expected a to be indexed as root, got %v", got)
	}
	if got := f.Ancestors("a"); len(got) != 0 {
		t.Errorf("expected no ancestors, got %v", ids(got))
	}
}

func TestForest_CorruptCycleTerminates(t *testing.T) {
	f := NewForest([]*types.OrgUnit{
		unit("a", "A", ptr("b")),
		unit("b", "B", ptr("a")),
	})

	if got := ids(f.Ancestors("a")); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("expected walk to stop after b, got %v", got)
	}
	if got := f.Descendants("a"); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("expected descendants [b], got %v", got)
	}
}

// move applies a reparent to the snapshot the way the database would.
func move(units []*types.OrgUnit, id string, parent *string) {
	for _, u := range units {
		if u.ID == id {
			u.ParentID = parent
		}
	}
}

func TestForest_RandomMovesKeepTreeSound(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	const n = 40
	units := []*types.OrgUnit{unit("u0", "U0", nil)}
	for i := 1; i < n; i++ {
		parent := fmt.Sprintf("u%d", rng.Intn(i))
		units = append(units, unit(fmt.Sprintf("u%d", i), fmt.Sprintf("U%d", i), ptr(parent)))
	}

	for step := 0; step < 500; step++ {
		f := NewForest(units)

		id := fmt.Sprintf("u%d", rng.Intn(n))
		var parent *string
		if rng.Intn(10) > 0 {
			parent = ptr(fmt.Sprintf("u%d", rng.Intn(n)))
		}

		subtree := map[string]bool{}
		for _, d := range f.Subtree(id) {
			subtree[d] = true
		}
		wantCycle := parent != nil && subtree[*parent]

		if got := f.WouldCycle(id, parent); got != wantCycle {
			t.Fatalf("step %d: WouldCycle(%s, %v) = %v, want %v", step, id, parent, got, wantCycle)
		}
		if wantCycle {
			continue
		}

		move(units, id, parent)
		f = NewForest(units)

		// every unit reaches a root and every root covers the whole tenant
		total := 0
		for _, r := range f.Roots() {
			total += len(f.Subtree(r))
		}
		if total != n {
			t.Fatalf("step %d: roots cover %d units, want %d", step, total, n)
		}

		for _, u := range units {
			chain := f.Ancestors(u.ID)
			if len(chain) > 0 && chain[len(chain)-1].ParentID != nil {
				t.Fatalf("step %d: ancestors of %s do not end at a root", step, u.ID)
			}
		}

		if parent != nil {
			if got := f.Ancestors(id); len(got) == 0 || got[0].ID != *parent {
				t.Fatalf("step %d: move of %s under %s not reflected", step, id, *parent)
			}
		}
	}
}

func TestForest_RootDescendantsCoverTenant(t *testing.T) {
	units := sampleUnits()[:4]
	f := NewForest(units)

	got := sorted(f.Descendants("hq"))
	want := []string{"north", "ops", "sales"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "hq1", want: "HQ1"},
		{in: "  sa-1_x ", want: "SA-1_X"},
		{in: "", wantErr: true},
		{in: "bad code", wantErr: true},
		{in: "ÄB", wantErr: true},
		{in: "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456", wantErr: true},
	}

	for _, tt := range tests {
		got, err := NormalizeCode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("NormalizeCode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "Sales", want: "Sales"},
		{in: " R&D ", want: "R&D"},
		{in: "<b>Ops</b>", want: "Ops"},
		{in: "<script>alert(1)</script>", wantErr: true},
		{in: "   ", wantErr: true},
	}

	for _, tt := range tests {
		got, err := NormalizeName(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("NormalizeName(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "6F9619FF-8B86-D011-B42D-00C04FC964FF", want: "6f9619ff-8b86-d011-b42d-00c04fc964ff"},
		{in: " 6f9619ff-8b86-d011-b42d-00c04fc964ff ", want: "6f9619ff-8b86-d011-b42d-00c04fc964ff"},
		{in: "{6F9619FF-8B86-D011-B42D-00C04FC964FF}", want: "6f9619ff-8b86-d011-b42d-00c04fc964ff"},
		{in: "not-a-uuid", want: "not-a-uuid"},
		{in: "hq", want: "hq"},
	}

	for _, tt := range tests {
		if got := NormalizeID(tt.in); got != tt.want {
			t.Errorf("NormalizeID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
