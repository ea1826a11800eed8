// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"sort"

	"github.com/canonical/org-access-service/pkg/orgunit"
)

// Map is the resolved access of one user in one tenant, keyed by unit id. A missing key
// means no access.
type Map map[string]Permission

// Record is anything guarded by a unit and attributed to an author.
type Record struct {
	UnitID   string
	AuthorID string
}

// Resolve propagates every direct grant to the subtree below it and keeps the strongest
// level per unit. Grants on units missing from the forest are ignored.
//
// Grants are applied strongest first. A unit already holding an equal or stronger level
// got it from a grant whose propagation covered its whole subtree, so the walk stops
// there and every unit is visited a bounded number of times.
func Resolve(f *orgunit.Forest, direct map[string]Permission) Map {
	out := make(Map)

	type grant struct {
		unit string
		perm Permission
	}

	grants := make([]grant, 0, len(direct))
	for id, p := range direct {
		if f.Contains(id) {
			grants = append(grants, grant{unit: id, perm: p})
		}
	}

	sort.Slice(grants, func(i, j int) bool {
		if grants[i].perm != grants[j].perm {
			return grants[i].perm > grants[j].perm
		}
		return grants[i].unit < grants[j].unit
	})

	for _, g := range grants {
		stack := []string{g.unit}
		for len(stack) > 0 {
			n := len(stack) - 1
			cur := stack[n]
			stack = stack[:n]

			if have, ok := out[cur]; ok && have >= g.perm {
				continue
			}
			out[cur] = g.perm

			stack = append(stack, f.Children(cur)...)
		}
	}

	return out
}

// UnitIDs returns the accessible unit ids in lexical order.
func (m Map) UnitIDs() []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// CanView reports whether userID may see rec, an own grant only covers the user's records.
func (m Map) CanView(userID string, rec Record) bool {
	p, ok := m[orgunit.NormalizeID(rec.UnitID)]
	if !ok {
		return false
	}
	return p != PermissionOwn || rec.AuthorID == userID
}

// CanEdit is CanView without viewer grants.
func (m Map) CanEdit(userID string, rec Record) bool {
	p, ok := m[orgunit.NormalizeID(rec.UnitID)]
	if !ok || p == PermissionViewer {
		return false
	}
	return p != PermissionOwn || rec.AuthorID == userID
}
