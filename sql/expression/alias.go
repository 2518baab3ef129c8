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

// Alias gives a name and an identity to an expression.
type Alias struct {
	UnaryExpression
	id   sql.NameID
	name string
}

var _ sql.NamedExpression = (*Alias)(nil)

// NewAlias returns a new Alias node with a fresh identity.
func NewAlias(name string, expr sql.Expression) *Alias {
	return NewAliasWithID(sql.NewNameID(), name, expr)
}

// NewAliasWithID returns a new Alias node with the given identity.
func NewAliasWithID(id sql.NameID, name string, expr sql.Expression) *Alias {
	return &Alias{UnaryExpression{expr}, id, name}
}

// Name implements the Nameable interface.
func (e *Alias) Name() string { return e.name }

// ID implements the NamedExpression interface.
func (e *Alias) ID() sql.NameID { return e.id }

// Type returns the type of the expression.
func (e *Alias) Type() sql.Type {
	return e.Child.Type()
}

// ToAttribute implements the NamedExpression interface. While the aliased
// expression is unresolved the attribute is an unresolved placeholder with the
// same name and identity.
func (e *Alias) ToAttribute() sql.Attribute {
	if !e.Resolved() {
		return NewUnresolvedAttributeWithID(e.id, e.name)
	}
	return NewReferenceAttributeWithID(e.id, e.name, e.Child.Type(), e.Child.Nullable())
}

// WithChildren implements the Expression interface.
func (e *Alias) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(e, len(children), 1)
	}
	return NewAliasWithID(e.id, e.name, children[0]), nil
}

// Equal implements the Expression interface.
func (e *Alias) Equal(o sql.Expression) bool {
	oa, ok := o.(*Alias)
	if !ok {
		return false
	}
	return e.id == oa.id && e.name == oa.name && Equal(e.Child, oa.Child)
}

// Hash implements the Expression interface.
func (e *Alias) Hash() uint64 {
	return hash.Of("Alias", uint64(e.id), e.name, e.Child.Hash())
}

func (e *Alias) String() string {
	return fmt.Sprintf("%s = %s", e.name, e.Child)
}
