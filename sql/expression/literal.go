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
	"reflect"

	"github.com/spf13/cast"

	"github.com/dolthub/go-logical-plan/sql"
	"github.com/dolthub/go-logical-plan/sql/hash"
)

// Literal represents a literal expression (string, number, bool, ...).
type Literal struct {
	value interface{}
	typ   sql.Type
}

var _ sql.Expression = (*Literal)(nil)

// NewLiteral creates a new Literal expression.
func NewLiteral(value interface{}, typ sql.Type) *Literal {
	return &Literal{value: value, typ: typ}
}

// Value returns the literal value.
func (l *Literal) Value() interface{} { return l.value }

// Resolved implements the Expression interface.
func (*Literal) Resolved() bool { return true }

// Type implements the Expression interface.
func (l *Literal) Type() sql.Type { return l.typ }

// Nullable implements the Expression interface.
func (l *Literal) Nullable() bool { return l.value == nil }

// Children implements the Expression interface.
func (*Literal) Children() []sql.Expression { return nil }

// WithChildren implements the Expression interface.
func (l *Literal) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(l, len(children), 0)
	}
	return l, nil
}

// Equal implements the Expression interface.
func (l *Literal) Equal(e sql.Expression) bool {
	o, ok := e.(*Literal)
	if !ok {
		return false
	}
	return l.typ == o.typ && reflect.DeepEqual(l.value, o.value)
}

// Hash implements the Expression interface.
func (l *Literal) Hash() uint64 {
	return hash.Of("Literal", int(l.typ), l.value)
}

func (l *Literal) String() string {
	if l.value == nil {
		return "null"
	}

	s, err := cast.ToStringE(l.value)
	if err != nil {
		s = fmt.Sprint(l.value)
	}

	if sql.IsString(l.typ) {
		return fmt.Sprintf("%q", s)
	}
	return s
}
