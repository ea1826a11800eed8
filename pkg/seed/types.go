// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package seed

// File is the bootstrap document read by the seed command.
type File struct {
	PrivilegedAdmins []string `yaml:"privileged_admins"`
	Users            []User   `yaml:"users"`
	Tenants          []Tenant `yaml:"tenants"`
}

type User struct {
	ID     string `yaml:"id"`
	Email  string `yaml:"email"`
	Active bool   `yaml:"active"`
}

type Tenant struct {
	Name    string   `yaml:"name"`
	Units   []Unit   `yaml:"units"`
	Members []Member `yaml:"members"`
}

// Unit nests its children, codes are unique within the tenant.
type Unit struct {
	Code     string `yaml:"code"`
	Name     string `yaml:"name"`
	Children []Unit `yaml:"children"`
}

// Member grants are keyed by unit code, an empty level selects the default permission.
type Member struct {
	Email  string            `yaml:"email"`
	Role   string            `yaml:"role"`
	Grants map[string]string `yaml:"grants"`
}

// Report counts what Apply created.
type Report struct {
	Users   int `json:"users"`
	Tenants int `json:"tenants"`
	Units   int `json:"units"`
	Members int `json:"members"`
	Grants  int `json:"grants"`
}
