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

package expression

import (
	"github.com/dolthub/go-logical-plan/sql"
)

// IsUnary returns whether the expression is unary or not.
func IsUnary(e sql.Expression) bool {
	return len(e.Children()) == 1
}

// IsBinary returns whether the expression is binary or not.
func IsBinary(e sql.Expression) bool {
	return len(e.Children()) == 2
}

// UnaryExpression is an expression that has only one children.
type UnaryExpression struct {
	Child sql.Expression
}

// Children implements the Expression interface.
func (p *UnaryExpression) Children() []sql.Expression {
	return []sql.Expression{p.Child}
}

// Resolved implements the Expression interface.
func (p *UnaryExpression) Resolved() bool {
	return p.Child.Resolved()
}

// Nullable returns whether the expression can be null.
func (p *UnaryExpression) Nullable() bool {
	return p.Child.Nullable()
}

// BinaryExpression is an expression that has two children.
type BinaryExpression struct {
	Left  sql.Expression
	Right sql.Expression
}

// Children implements the Expression interface.
func (p *BinaryExpression) Children() []sql.Expression {
	return []sql.Expression{p.Left, p.Right}
}

// Resolved implements the Expression interface.
func (p *BinaryExpression) Resolved() bool {
	return p.Left.Resolved() && p.Right.Resolved()
}

// Nullable returns whether the expression can be null.
func (p *BinaryExpression) Nullable() bool {
	return p.Left.Nullable() || p.Right.Nullable()
}

// ExpressionsResolved returns whether all the given expressions are resolved.
func ExpressionsResolved(exprs ...sql.Expression) bool {
	for _, e := range exprs {
		if !e.Resolved() {
			return false
		}
	}
	return true
}

// NamedExpressionsResolved returns whether all the given named expressions
// are resolved.
func NamedExpressionsResolved(exprs ...sql.NamedExpression) bool {
	for _, e := range exprs {
		if !e.Resolved() {
			return false
		}
	}
	return true
}

// AsAttributes returns the attribute view of every named expression, in the
// same order.
func AsAttributes(exprs []sql.NamedExpression) sql.Schema {
	attrs := make(sql.Schema, len(exprs))
	for i, e := range exprs {
		attrs[i] = e.ToAttribute()
	}
	return attrs
}

// Equal returns whether both expressions are structurally equal. Nil
// expressions are only equal to each other.
func Equal(a, b sql.Expression) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// ExpressionsEqual returns whether both lists contain equal expressions in the
// same order.
func ExpressionsEqual(a, b []sql.Expression) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// NamedExpressionsEqual returns whether both lists contain equal named
// expressions in the same order.
func NamedExpressionsEqual(a, b []sql.NamedExpression) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Hashes returns the hashes of the given expressions, in order.
func Hashes(exprs ...sql.Expression) []uint64 {
	hashes := make([]uint64, len(exprs))
	for i, e := range exprs {
		if e != nil {
			hashes[i] = e.Hash()
		}
	}
	return hashes
}

// ToExpressions converts a list of named expressions to plain expressions.
func ToExpressions(exprs []sql.NamedExpression) []sql.Expression {
	result := make([]sql.Expression, len(exprs))
	for i, e := range exprs {
		result[i] = e
	}
	return result
}

// ToNamedExpressions converts a list of expressions to named expressions. It
// returns false if any of them is not a named expression.
func ToNamedExpressions(exprs []sql.Expression) ([]sql.NamedExpression, bool) {
	result := make([]sql.NamedExpression, len(exprs))
	for i, e := range exprs {
		ne, ok := e.(sql.NamedExpression)
		if !ok {
			return nil, false
		}
		result[i] = ne
	}
	return result, true
}

// References returns the attributes referenced anywhere inside the given
// expression.
func References(e sql.Expression) []sql.Attribute {
	var refs []sql.Attribute
	var visit func(sql.Expression)
	visit = func(e sql.Expression) {
		if a, ok := e.(sql.Attribute); ok {
			refs = append(refs, a)
			return
		}
		for _, c := range e.Children() {
			visit(c)
		}
	}
	visit(e)
	return refs
}
