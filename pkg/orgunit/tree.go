// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package orgunit

import (
	"strings"

	"github.com/canonical/org-access-service/internal/types"
)

// PathSeparator joins unit names in FullPath.
const PathSeparator = " > "

// rootKey indexes the units without a parent.
const rootKey = ""

// Forest is an in-memory snapshot of one tenant's org units, indexed once so that every
// traversal is linear in the number of units it visits.
type Forest struct {
	units    map[string]*types.OrgUnit
	children map[string][]string
}

// NewForest indexes units by id and by parent id. Children keep the order of the input
// slice. Parent pointers that do not resolve inside the slice are indexed as roots.
func NewForest(units []*types.OrgUnit) *Forest {
	f := &Forest{
		units:    make(map[string]*types.OrgUnit, len(units)),
		children: make(map[string][]string),
	}

	for _, u := range units {
		f.units[u.ID] = u
	}

	for _, u := range units {
		key := rootKey
		if u.ParentID != nil {
			if _, ok := f.units[*u.ParentID]; ok {
				key = *u.ParentID
			}
		}
		f.children[key] = append(f.children[key], u.ID)
	}

	return f
}

func (f *Forest) Len() int {
	return len(f.units)
}

func (f *Forest) Unit(id string) (*types.OrgUnit, bool) {
	u, ok := f.units[id]
	return u, ok
}

func (f *Forest) Contains(id string) bool {
	_, ok := f.units[id]
	return ok
}

// Roots returns the ids of the units without a parent.
func (f *Forest) Roots() []string {
	return f.children[rootKey]
}

func (f *Forest) Children(id string) []string {
	if id == rootKey {
		return nil
	}
	return f.children[id]
}

// Descendants returns every unit below id in depth-first pre-order, id itself excluded.
// Unknown ids have no descendants.
func (f *Forest) Descendants(id string) []string {
	if !f.Contains(id) {
		return nil
	}

	var out []string
	seen := map[string]bool{}
	stack := []string{id}

	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]

		if seen[cur] {
			continue
		}
		seen[cur] = true
		if cur != id {
			out = append(out, cur)
		}

		kids := f.children[cur]
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}

	return out
}

// Subtree returns id followed by its descendants.
func (f *Forest) Subtree(id string) []string {
	if !f.Contains(id) {
		return nil
	}
	return append([]string{id}, f.Descendants(id)...)
}

// Ancestors returns the parent chain of id, nearest first, ending at a root. The walk
// stops early if it meets a unit twice, so a corrupt snapshot cannot loop forever.
func (f *Forest) Ancestors(id string) []*types.OrgUnit {
	u, ok := f.units[id]
	if !ok {
		return nil
	}

	var out []*types.OrgUnit
	seen := map[string]bool{id: true}

	for u.ParentID != nil {
		parent, ok := f.units[*u.ParentID]
		if !ok || seen[parent.ID] {
			break
		}
		seen[parent.ID] = true
		out = append(out, parent)
		u = parent
	}

	return out
}

// Level is the number of ancestors, roots are at level 0.
func (f *Forest) Level(id string) int {
	return len(f.Ancestors(id))
}

// FullPath joins the names from the root down to id.
func (f *Forest) FullPath(id string) string {
	u, ok := f.units[id]
	if !ok {
		return ""
	}

	ancestors := f.Ancestors(id)
	names := make([]string, 0, len(ancestors)+1)
	for i := len(ancestors) - 1; i >= 0; i-- {
		names = append(names, ancestors[i].Name)
	}
	names = append(names, u.Name)

	return strings.Join(names, PathSeparator)
}

// WouldCycle reports whether making newParentID the parent of id would put id below
// itself. A nil parent never cycles.
func (f *Forest) WouldCycle(id string, newParentID *string) bool {
	if newParentID == nil {
		return false
	}
	if *newParentID == id {
		return true
	}

	for _, a := range f.Ancestors(*newParentID) {
		if a.ID == id {
			return true
		}
	}

	return false
}
