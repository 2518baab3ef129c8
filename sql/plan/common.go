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

import "github.com/dolthub/go-logical-plan/sql"

// IsUnary returns whether the node is unary or not.
func IsUnary(node sql.Node) bool {
	return len(node.Children()) == 1
}

// IsBinary returns whether the node is binary or not.
func IsBinary(node sql.Node) bool {
	return len(node.Children()) == 2
}

// NillaryWithChildren is a common WithChildren implementation for all nodes
// that have no children.
func NillaryWithChildren(node sql.Node, children ...sql.Node) (sql.Node, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(node, len(children), 0)
	}
	return node, nil
}

// UnaryNode is the common part of every node that has only one child. The
// child is shared, never copied, so a subtree may hang from several plans.
type UnaryNode struct {
	source sql.Source
	child  sql.Node
}

// NewUnaryNode returns the common part of a unary node of the given kind.
// It panics if the child is nil.
func NewUnaryNode(kind string, source sql.Source, child sql.Node) UnaryNode {
	if child == nil {
		panic(sql.ErrNilChild.New(kind))
	}
	return UnaryNode{source: source, child: child}
}

// Source implements the Node interface.
func (n UnaryNode) Source() sql.Source {
	return n.source
}

// Child implements the UnaryNode interface.
func (n UnaryNode) Child() sql.Node {
	return n.child
}

// Children implements the Node interface.
func (n UnaryNode) Children() []sql.Node {
	return []sql.Node{n.child}
}

// Schema implements the Node interface. Nodes that don't change the columns
// of their child can use it as is.
func (n UnaryNode) Schema() sql.Schema {
	return n.child.Schema()
}

func checkUnaryChildren(node sql.Node, children []sql.Node) error {
	if len(children) != 1 {
		return sql.ErrInvalidChildrenNumber.New(node, len(children), 1)
	}
	return nil
}

// Resolved returns whether the expressions of the node and all of its
// descendants are resolved.
func Resolved(node sql.Node) bool {
	if !node.ExpressionsResolved() {
		return false
	}
	for _, child := range node.Children() {
		if !Resolved(child) {
			return false
		}
	}
	return true
}
