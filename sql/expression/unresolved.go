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

// UnresolvedAttribute is a reference to a column that is not yet resolved.
// This is a placeholder node, so its methods Type and Nullable are not
// supposed to be called.
type UnresolvedAttribute struct {
	sql.AttributeMarker
	id      sql.NameID
	name    string
	message string
}

var _ sql.Attribute = (*UnresolvedAttribute)(nil)

// NewUnresolvedAttribute creates a new UnresolvedAttribute expression.
func NewUnresolvedAttribute(name string) *UnresolvedAttribute {
	return &UnresolvedAttribute{id: sql.NewNameID(), name: name}
}

// NewUnresolvedAttributeWithID creates a new UnresolvedAttribute expression
// that stands for the named expression with the given identity.
func NewUnresolvedAttributeWithID(id sql.NameID, name string) *UnresolvedAttribute {
	return &UnresolvedAttribute{id: id, name: name}
}

// Name implements the Nameable interface.
func (ua *UnresolvedAttribute) Name() string { return ua.name }

// ID implements the NamedExpression interface.
func (ua *UnresolvedAttribute) ID() sql.NameID { return ua.id }

// Message returns why the attribute could not be resolved, if known.
func (ua *UnresolvedAttribute) Message() string { return ua.message }

// WithMessage returns a copy of the attribute with the reason it could not be
// resolved.
func (ua *UnresolvedAttribute) WithMessage(msg string) *UnresolvedAttribute {
	nua := *ua
	nua.message = msg
	return &nua
}

// Resolved implements the Expression interface.
func (*UnresolvedAttribute) Resolved() bool { return false }

// Type implements the Expression interface.
func (*UnresolvedAttribute) Type() sql.Type {
	panic("unresolved attribute is a placeholder node, but Type was called")
}

// Nullable implements the Expression interface.
func (*UnresolvedAttribute) Nullable() bool {
	panic("unresolved attribute is a placeholder node, but Nullable was called")
}

// Children implements the Expression interface.
func (*UnresolvedAttribute) Children() []sql.Expression { return nil }

// WithChildren implements the Expression interface.
func (ua *UnresolvedAttribute) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(ua, len(children), 0)
	}
	return ua, nil
}

// ToAttribute implements the NamedExpression interface.
func (ua *UnresolvedAttribute) ToAttribute() sql.Attribute { return ua }

// Equal implements the Expression interface. Placeholders are equal when they
// refer to the same name.
func (ua *UnresolvedAttribute) Equal(e sql.Expression) bool {
	o, ok := e.(*UnresolvedAttribute)
	return ok && ua.name == o.name
}

// Hash implements the Expression interface.
func (ua *UnresolvedAttribute) Hash() uint64 {
	return hash.Of("UnresolvedAttribute", ua.name)
}

func (ua *UnresolvedAttribute) String() string {
	return "?" + ua.name
}
