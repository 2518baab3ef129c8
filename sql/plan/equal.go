// Copyright 2024 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package plan

import (
	"reflect"

	"github.com/dolthub/go-logical-plan/sql"
	"github.com/dolthub/go-logical-plan/sql/expression"
	"github.com/dolthub/go-logical-plan/sql/hash"
)

// Equal returns whether both plans are structurally equal: same kind of node,
// equal properties and equal children, recursively. The source of the nodes
// is not taken into account.
func Equal(a, b sql.Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if a == b {
		return true
	}

	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	ia, ib := a.Info(), b.Info()
	if ia.Kind() != ib.Kind() {
		return false
	}

	pa, pb := ia.Properties(), ib.Properties()
	if len(pa) != len(pb) {
		return false
	}
	for i := range pa {
		if !propertyEqual(pa[i], pb[i]) {
			return false
		}
	}

	ca, cb := ia.Children(), ib.Children()
	if len(ca) != len(cb) {
		return false
	}
	for i := range ca {
		if !Equal(ca[i], cb[i]) {
			return false
		}
	}

	return true
}

// Hash returns the hash of the plan, combining the hash of the node
// properties with the hash of its children. Plans that are Equal have the
// same hash.
func Hash(n sql.Node) uint64 {
	if n == nil {
		return 0
	}

	info := n.Info()
	props := info.Properties()
	propHashes := make([]uint64, len(props))
	for i, p := range props {
		propHashes[i] = propertyHash(p)
	}

	children := info.Children()
	childHashes := make([]uint64, len(children))
	for i, c := range children {
		childHashes[i] = Hash(c)
	}

	return hash.Of(info.Kind(), propHashes, childHashes)
}

func propertyEqual(a, b interface{}) bool {
	switch a := a.(type) {
	case sql.Expression:
		e, ok := b.(sql.Expression)
		return ok && expression.Equal(a, e)
	case []sql.Expression:
		e, ok := b.([]sql.Expression)
		return ok && expression.ExpressionsEqual(a, e)
	case []sql.NamedExpression:
		e, ok := b.([]sql.NamedExpression)
		return ok && expression.NamedExpressionsEqual(a, e)
	case sql.Schema:
		s, ok := b.(sql.Schema)
		return ok && a.Equals(s)
	default:
		return reflect.DeepEqual(a, b)
	}
}

func propertyHash(p interface{}) uint64 {
	switch p := p.(type) {
	case sql.Expression:
		return p.Hash()
	case []sql.Expression:
		return hash.Of(expression.Hashes(p...))
	case []sql.NamedExpression:
		return hash.Of(expression.Hashes(expression.ToExpressions(p)...))
	case sql.Schema:
		hashes := make([]uint64, len(p))
		for i, a := range p {
			hashes[i] = a.Hash()
		}
		return hash.Of(hashes)
	default:
		return hash.Of(p)
	}
}
