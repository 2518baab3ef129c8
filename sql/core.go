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

package sql

import "fmt"

// Nameable is something that has a name.
type Nameable interface {
	// Name returns the name.
	Name() string
}

// Resolvable is something that can be resolved or not.
type Resolvable interface {
	// Resolved returns whether the node is resolved.
	Resolved() bool
}

// Expression is a combination of one or more SQL expressions.
type Expression interface {
	Resolvable
	fmt.Stringer
	// Type returns the expression type. Unresolved expressions panic when asked
	// for their type.
	Type() Type
	// Nullable returns whether the expression can be null.
	Nullable() bool
	// Children returns the children expressions of this expression.
	Children() []Expression
	// WithChildren returns a copy of the expression with children replaced.
	// It will return an error if the number of children is different than
	// the current number of children. They must be given in the same order
	// as they are returned by Children.
	WithChildren(children ...Expression) (Expression, error)
	// Equal returns whether the given expression is structurally equal to
	// this one.
	Equal(Expression) bool
	// Hash returns a hash consistent with Equal.
	Hash() uint64
}

// NamedExpression is an expression that has a name and an identity, such as a
// column reference or an aliased computation.
type NamedExpression interface {
	Expression
	Nameable
	// ID returns the identity of the expression, which is distinct from its
	// name.
	ID() NameID
	// ToAttribute returns the attribute that references the result of this
	// expression.
	ToAttribute() Attribute
}

// Attribute is a reference to a column produced by some node of the plan.
type Attribute interface {
	NamedExpression
	// isAttribute is a marker so that any named expression can't be mistaken
	// for a column reference.
	isAttribute()
}

// AttributeMarker can be embedded to implement the Attribute interface.
type AttributeMarker struct{}

func (AttributeMarker) isAttribute() {}

// Node is a node in the logical plan tree. Nodes are immutable: every method
// that returns a node returns a new one and leaves the receiver untouched, so
// the same subtree can be shared by several plans and read concurrently.
type Node interface {
	fmt.Stringer
	// Source returns the provenance of the node in the original query.
	Source() Source
	// Schema returns the ordered attributes produced by this node.
	Schema() Schema
	// ExpressionsResolved returns whether all expressions held directly by
	// this node are resolved. Children are not inspected.
	ExpressionsResolved() bool
	// Children returns the children nodes of this node.
	Children() []Node
	// WithChildren returns a copy of the node with children replaced.
	// It will return an error if the number of children is different than
	// the current number of children. They must be given in the same order
	// as they are returned by Children.
	WithChildren(children ...Node) (Node, error)
	// Info returns the constituent parts of the node so it can be compared,
	// hashed and rebuilt without knowing its concrete type.
	Info() NodeInfo
}

// UnaryNode is a node with exactly one child.
type UnaryNode interface {
	Node
	// Child returns the single child of the node.
	Child() Node
	// ReplaceChild returns a new node of the same kind with the same
	// properties and the given child.
	ReplaceChild(child Node) UnaryNode
}
