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

// TreeIdentity reports whether a rewrite left a tree untouched (SameTree)
// or returned a different one (NewTree).
type TreeIdentity bool

const (
	SameTree TreeIdentity = true
	NewTree  TreeIdentity = false
)

// NodeFunc rewrites a single node. It returns SameTree together with the
// very node it was given when there is nothing to change.
type NodeFunc func(n sql.Node) (sql.Node, TreeIdentity, error)

// ExprFunc rewrites a single expression, following the same convention as
// NodeFunc.
type ExprFunc func(e sql.Expression) (sql.Expression, TreeIdentity, error)

// Node rewrites the plan bottom up: every child is rewritten before its
// parent is handed to f. A parent whose children all came back untouched is
// not rebuilt, so unchanged subtrees are shared by the input and the output.
func Node(node sql.Node, f NodeFunc) (sql.Node, TreeIdentity, error) {
	return walkNode(node, nil, f)
}

// NodeWithPrune is like Node, but it does not go below the nodes for which
// descend returns false. Those nodes are still handed to f.
func NodeWithPrune(node sql.Node, descend func(sql.Node) bool, f NodeFunc) (sql.Node, TreeIdentity, error) {
	return walkNode(node, descend, f)
}

func walkNode(node sql.Node, descend func(sql.Node) bool, f NodeFunc) (sql.Node, TreeIdentity, error) {
	if descend != nil && !descend(node) {
		return f(node)
	}

	children := node.Children()
	rewritten := children
	identity := SameTree
	for i, child := range children {
		c, same, err := walkNode(child, descend, f)
		if err != nil {
			return nil, SameTree, err
		}
		if same {
			continue
		}
		if identity {
			rewritten = append([]sql.Node(nil), children...)
			identity = NewTree
		}
		rewritten[i] = c
	}

	if !identity {
		var err error
		if node, err = node.WithChildren(rewritten...); err != nil {
			return nil, SameTree, err
		}
	}

	result, same, err := f(node)
	if err != nil {
		return nil, SameTree, err
	}
	return result, identity && same, nil
}

// NodeExprs applies a transformation function to all expressions
// on the given plan tree from the bottom up.
func NodeExprs(node sql.Node, f ExprFunc) (sql.Node, TreeIdentity, error) {
	return Node(node, func(n sql.Node) (sql.Node, TreeIdentity, error) {
		return OneNodeExprs(n, f)
	})
}

// OneNodeExprs applies a transformation function to all expressions held
// directly by the given node, rebuilding it from its NodeInfo if any of them
// changed. Children are not visited.
func OneNodeExprs(n sql.Node, f ExprFunc) (sql.Node, TreeIdentity, error) {
	info := n.Info()
	props := info.Properties()

	var newProps []interface{}
	for i, p := range props {
		np, same, err := propertyExprs(info.Kind(), i, p, f)
		if err != nil {
			return nil, SameTree, err
		}
		if !same {
			if newProps == nil {
				newProps = make([]interface{}, len(props))
				copy(newProps, props)
			}
			newProps[i] = np
		}
	}

	if newProps == nil {
		return n, SameTree, nil
	}

	nn, err := info.Rebuild(info.Children(), newProps)
	if err != nil {
		return nil, SameTree, err
	}
	return nn, NewTree, nil
}

func propertyExprs(kind string, idx int, p interface{}, f ExprFunc) (interface{}, TreeIdentity, error) {
	switch p := p.(type) {
	case sql.Expression:
		return Expr(p, f)
	case []sql.Expression:
		return Exprs(p, f)
	case []sql.NamedExpression:
		var result []sql.NamedExpression
		for i, e := range p {
			ne, same, err := Expr(e, f)
			if err != nil {
				return nil, SameTree, err
			}
			if same {
				continue
			}
			named, ok := ne.(sql.NamedExpression)
			if !ok {
				return nil, SameTree, sql.ErrInvalidPropertyType.New(kind, idx, ne)
			}
			if result == nil {
				result = make([]sql.NamedExpression, len(p))
				copy(result, p)
			}
			result[i] = named
		}
		if result == nil {
			return p, SameTree, nil
		}
		return result, NewTree, nil
	default:
		return p, SameTree, nil
	}
}
