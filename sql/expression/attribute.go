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
	"github.com/dolthub/go-logical-plan/sql/hash"
)

// ReferenceAttribute is a resolved reference to a column produced by some
// node of the plan.
type ReferenceAttribute struct {
	sql.AttributeMarker
	id       sql.NameID
	name     string
	typ      sql.Type
	nullable bool
}

var _ sql.Attribute = (*ReferenceAttribute)(nil)

// NewReferenceAttribute creates a new attribute with a fresh identity.
func NewReferenceAttribute(name string, typ sql.Type, nullable bool) *ReferenceAttribute {
	return NewReferenceAttributeWithID(sql.NewNameID(), name, typ, nullable)
}

// NewReferenceAttributeWithID creates a new attribute with the given identity.
func NewReferenceAttributeWithID(id sql.NameID, name string, typ sql.Type, nullable bool) *ReferenceAttribute {
	return &ReferenceAttribute{id: id, name: name, typ: typ, nullable: nullable}
}

// Name implements the Nameable interface.
func (a *ReferenceAttribute) Name() string { return a.name }

// ID implements the NamedExpression interface.
func (a *ReferenceAttribute) ID() sql.NameID { return a.id }

// Type implements the Expression interface.
func (a *ReferenceAttribute) Type() sql.Type { return a.typ }

// Nullable implements the Expression interface.
func (a *ReferenceAttribute) Nullable() bool { return a.nullable }

// Resolved implements the Expression interface.
func (*ReferenceAttribute) Resolved() bool { return true }

// Children implements the Expression interface.
func (*ReferenceAttribute) Children() []sql.Expression { return nil }

// WithChildren implements the Expression interface.
func (a *ReferenceAttribute) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(a, len(children), 0)
	}
	return a, nil
}

// ToAttribute implements the NamedExpression interface.
func (a *ReferenceAttribute) ToAttribute() sql.Attribute { return a }

// WithName returns a copy of the attribute with another name and the same
// identity.
func (a *ReferenceAttribute) WithName(name string) *ReferenceAttribute {
	na := *a
	na.name = name
	return &na
}

// Equal implements the Expression interface.
func (a *ReferenceAttribute) Equal(e sql.Expression) bool {
	o, ok := e.(*ReferenceAttribute)
	if !ok {
		return false
	}
	return a.id == o.id && a.name == o.name && a.typ == o.typ && a.nullable == o.nullable
}

// Hash implements the Expression interface.
func (a *ReferenceAttribute) Hash() uint64 {
	return hash.Of("ReferenceAttribute", uint64(a.id), a.name, int(a.typ), a.nullable)
}

func (a *ReferenceAttribute) String() string {
	return a.name
}

// DebugString returns the attribute along with its identity and type.
func (a *ReferenceAttribute) DebugString() string {
	return a.name + "#" + a.id.String() + ":" + a.typ.String()
}
