// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"encoding/json"
	"fmt"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/language/pkg/go/transformer"
)

var authModelV0 = `model
  schema 1.1

type user

type privileged
  relations
    define admin: [user]

type tenant
  relations
    define privileged: [privileged]
    define admin: [user] or admin from privileged
    define member: [user] or admin
    define viewer: [user] or member
    define can_manage: admin
    define can_view: viewer
`

type AuthorizationModelProvider struct {
	version string
}

func (a *AuthorizationModelProvider) GetModel() *fga.AuthorizationModel {
	model, err := a.parse()
	if err != nil {
		panic(err)
	}

	return model
}

func (a *AuthorizationModelProvider) parse() (*fga.AuthorizationModel, error) {
	var dsl string

	switch a.version {
	case "v0":
		dsl = authModelV0
	default:
		return nil, fmt.Errorf("unknown authorization model version %q", a.version)
	}

	raw, err := transformer.TransformDSLToJSON(dsl)
	if err != nil {
		return nil, fmt.Errorf("failed to transform authorization model: %w", err)
	}

	model := new(fga.AuthorizationModel)
	if err := json.Unmarshal([]byte(raw), model); err != nil {
		return nil, fmt.Errorf("failed to decode authorization model: %w", err)
	}

	return model, nil
}

func NewAuthorizationModelProvider(version string) *AuthorizationModelProvider {
	a := new(AuthorizationModelProvider)
	a.version = version

	return a
}
