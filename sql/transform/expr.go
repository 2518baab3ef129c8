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

package transform

import (
	"github.com/dolthub/go-logical-plan/sql"
)

// Expr rewrites the expression tree bottom up, the same way Node does with
// plans.
func Expr(e sql.Expression, f ExprFunc) (sql.Expression, TreeIdentity, error) {
	children, identity, err := Exprs(e.Children(), f)
	if err != nil {
		return nil, SameTree, err
	}

	if !identity {
		if e, err = e.WithChildren(children...); err != nil {
			return nil, SameTree, err
		}
	}

	result, same, err := f(e)
	if err != nil {
		return nil, SameTree, err
	}
	return result, identity && same, nil
}

// Exprs rewrites every expression of the list with Expr. The list itself is
// returned when none of them changed.
func Exprs(exprs []sql.Expression, f ExprFunc) ([]sql.Expression, TreeIdentity, error) {
	result := exprs
	identity := SameTree
	for i, e := range exprs {
		ne, same, err := Expr(e, f)
		if err != nil {
			return nil, SameTree, err
		}
		if same {
			continue
		}
		if identity {
			result = append([]sql.Expression(nil), exprs...)
			identity = NewTree
		}
		result[i] = ne
	}
	return result, identity, nil
}

// InspectExpr calls f on every expression of the tree, children first. It
// stops as soon as f returns true and reports whether that happened.
func InspectExpr(e sql.Expression, f func(sql.Expression) bool) bool {
	for _, c := range e.Children() {
		if InspectExpr(c, f) {
			return true
		}
	}
	return f(e)
}
