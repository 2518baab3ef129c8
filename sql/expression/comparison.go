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

// Comparison operators.
const (
	EqualsOp      = "="
	NotEqualsOp   = "!="
	LessThanOp    = "<"
	GreaterThanOp = ">"
)

// Comparison is a binary expression that compares both operands and returns
// a boolean.
type Comparison struct {
	BinaryExpression
	Op string
}

var _ sql.Expression = (*Comparison)(nil)

// NewComparison creates a new comparison between two expressions.
func NewComparison(left, right sql.Expression, op string) *Comparison {
	return &Comparison{BinaryExpression{Left: left, Right: right}, op}
}

// NewEquals returns a new Equals expression.
func NewEquals(left sql.Expression, right sql.Expression) *Comparison {
	return NewComparison(left, right, EqualsOp)
}

// NewNotEquals returns a new NotEquals expression.
func NewNotEquals(left sql.Expression, right sql.Expression) *Comparison {
	return NewComparison(left, right, NotEqualsOp)
}

// NewLessThan creates a LessThan expression.
func NewLessThan(left sql.Expression, right sql.Expression) *Comparison {
	return NewComparison(left, right, LessThanOp)
}

// NewGreaterThan creates a new GreaterThan expression.
func NewGreaterThan(left sql.Expression, right sql.Expression) *Comparison {
	return NewComparison(left, right, GreaterThanOp)
}

// Type implements the Expression interface.
func (*Comparison) Type() sql.Type {
	return sql.Boolean
}

// WithChildren implements the Expression interface.
func (c *Comparison) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 2 {
		return nil, sql.ErrInvalidChildrenNumber.New(c, len(children), 2)
	}
	return NewComparison(children[0], children[1], c.Op), nil
}

// Equal implements the Expression interface.
func (c *Comparison) Equal(e sql.Expression) bool {
	o, ok := e.(*Comparison)
	if !ok {
		return false
	}
	return c.Op == o.Op && Equal(c.Left, o.Left) && Equal(c.Right, o.Right)
}

// Hash implements the Expression interface.
func (c *Comparison) Hash() uint64 {
	return hash.Of("Comparison", c.Op, c.Left.Hash(), c.Right.Hash())
}

func (c *Comparison) String() string {
	return fmt.Sprintf("%s %s %s", c.Left, c.Op, c.Right)
}
