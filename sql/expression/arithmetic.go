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
	"fmt"

	"github.com/dolthub/go-logical-plan/sql"
	"github.com/dolthub/go-logical-plan/sql/hash"
)

// Arithmetic operators.
const (
	PlusOp  = "+"
	MinusOp = "-"
	MultOp  = "*"
	DivOp   = "/"
)

// Arithmetic expressions (+, -, *, /)
type Arithmetic struct {
	BinaryExpression
	Op string
}

var _ sql.Expression = (*Arithmetic)(nil)

// NewArithmetic creates a new Arithmetic sql.Expression.
func NewArithmetic(left, right sql.Expression, op string) *Arithmetic {
	return &Arithmetic{BinaryExpression{Left: left, Right: right}, op}
}

// NewPlus creates a new Arithmetic + sql.Expression.
func NewPlus(left, right sql.Expression) *Arithmetic {
	return NewArithmetic(left, right, PlusOp)
}

// NewMinus creates a new Arithmetic - sql.Expression.
func NewMinus(left, right sql.Expression) *Arithmetic {
	return NewArithmetic(left, right, MinusOp)
}

// NewMult creates a new Arithmetic * sql.Expression.
func NewMult(left, right sql.Expression) *Arithmetic {
	return NewArithmetic(left, right, MultOp)
}

// NewDiv creates a new Arithmetic / sql.Expression.
func NewDiv(left, right sql.Expression) *Arithmetic {
	return NewArithmetic(left, right, DivOp)
}

// Type returns the widest numeric type of both operands.
func (a *Arithmetic) Type() sql.Type {
	lt, rt := a.Left.Type(), a.Right.Type()
	switch {
	case lt == sql.Double || rt == sql.Double:
		return sql.Double
	case lt == sql.Long || rt == sql.Long:
		return sql.Long
	case sql.IsNumeric(lt):
		return lt
	case sql.IsNumeric(rt):
		return rt
	default:
		return sql.Unsupported
	}
}

// WithChildren implements the Expression interface.
func (a *Arithmetic) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 2 {
		return nil, sql.ErrInvalidChildrenNumber.New(a, len(children), 2)
	}
	return NewArithmetic(children[0], children[1], a.Op), nil
}

// Equal implements the Expression interface.
func (a *Arithmetic) Equal(e sql.Expression) bool {
	o, ok := e.(*Arithmetic)
	if !ok {
		return false
	}
	return a.Op == o.Op && Equal(a.Left, o.Left) && Equal(a.Right, o.Right)
}

// Hash implements the Expression interface.
func (a *Arithmetic) Hash() uint64 {
	return hash.Of("Arithmetic", a.Op, a.Left.Hash(), a.Right.Hash())
}

func (a *Arithmetic) String() string {
	return fmt.Sprintf("%s %s %s", a.Left, a.Op, a.Right)
}
