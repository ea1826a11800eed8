// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"github.com/openfga/go-sdk/client"
)

type Tuple struct {
	User     string
	Relation string
	Object   string
}

func (t *Tuple) Values() (string, string, string) {
	return t.User, t.Relation, t.Object
}

func NewTuple(user, relation, object string) *Tuple {
	t := new(Tuple)

	t.User = user
	t.Relation = relation
	t.Object = object

	return t
}

type TupleWithContext struct {
	Tuple

	ContextualTuples []Tuple
}

func NewTupleWithContext(user, relation, object string, contextualTuples ...Tuple) *TupleWithContext {
	t := new(TupleWithContext)

	t.User = user
	t.Relation = relation
	t.Object = object
	t.ContextualTuples = contextualTuples

	return t
}

func contextualKeys(tuples []Tuple) []client.ClientContextualTupleKey {
	keys := make([]client.ClientContextualTupleKey, 0, len(tuples))
	for _, t := range tuples {
		keys = append(keys, client.ClientContextualTupleKey{User: t.User, Relation: t.Relation, Object: t.Object})
	}
	return keys
}
