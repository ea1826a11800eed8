// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"errors"
	"fmt"
)

// Permission is the level carried by a grant. The numeric value is the merge rank:
// own < viewer < editor.
type Permission uint8

const (
	// PermissionOwn restricts visibility to records the grantee authored.
	PermissionOwn Permission = iota
	PermissionViewer
	PermissionEditor
)

// DefaultPermission applies to grants created without an explicit level.
const DefaultPermission = PermissionViewer

var ErrUnknownPermission = errors.New("unknown permission")

var permissionNames = [...]string{
	PermissionOwn:    "own",
	PermissionViewer: "viewer",
	PermissionEditor: "editor",
}

func (p Permission) Rank() int {
	return int(p)
}

func (p Permission) Valid() bool {
	return int(p) < len(permissionNames)
}

func (p Permission) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Permission(%d)", p)
	}
	return permissionNames[p]
}

// ParsePermission maps a stored or submitted name to a Permission, the empty string
// selects DefaultPermission.
func ParsePermission(s string) (Permission, error) {
	if s == "" {
		return DefaultPermission, nil
	}
	for i, name := range permissionNames {
		if name == s {
			return Permission(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPermission, s)
}

// Max returns the higher ranked of a and b.
func Max(a, b Permission) Permission {
	if b > a {
		return b
	}
	return a
}

func (p Permission) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPermission, p)
	}
	return []byte(p.String()), nil
}

func (p *Permission) UnmarshalText(b []byte) error {
	v, err := ParsePermission(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
