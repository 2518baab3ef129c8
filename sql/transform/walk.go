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

// Visitor is called by Walk for every node of a plan.
type Visitor interface {
	// Visit is called with each node, and once with nil after the children
	// of that node were walked. Returning nil skips the children.
	Visit(node sql.Node) Visitor
}

// Walk visits node and then, using the visitor returned for it, each of
// its children depth first.
func Walk(v Visitor, node sql.Node) {
	next := v.Visit(node)
	if next == nil {
		return
	}
	for _, child := range node.Children() {
		Walk(next, child)
	}
	next.Visit(nil)
}

type inspector func(sql.Node) bool

func (f inspector) Visit(node sql.Node) Visitor {
	if node != nil && f(node) {
		return f
	}
	return nil
}

// Inspect calls f on node and, while f keeps returning true, on all of its
// descendants in pre-order. It returns false if the traversal was cut short.
func Inspect(node sql.Node, f func(sql.Node) bool) bool {
	if !f(node) {
		return false
	}
	if u, ok := node.(sql.UnaryNode); ok {
		return Inspect(u.Child(), f)
	}
	for _, child := range node.Children() {
		if !Inspect(child, f) {
			return false
		}
	}
	return true
}

// Expressions returns the expressions held directly by the node, flattening
// list properties.
func Expressions(node sql.Node) []sql.Expression {
	var exprs []sql.Expression
	for _, p := range node.Info().Properties() {
		switch p := p.(type) {
		case sql.Expression:
			exprs = append(exprs, p)
		case []sql.Expression:
			exprs = append(exprs, p...)
		case []sql.NamedExpression:
			for _, e := range p {
				exprs = append(exprs, e)
			}
		}
	}
	return exprs
}

// InspectExpressions traverses the plan and calls f on every expression it
// finds, top down. Traversal of an expression tree stops when f returns false.
func InspectExpressions(node sql.Node, f func(sql.Expression) bool) {
	Inspect(node, func(node sql.Node) bool {
		for _, e := range Expressions(node) {
			inspectExprTopDown(e, f)
		}
		return true
	})
}

func inspectExprTopDown(e sql.Expression, f func(sql.Expression) bool) {
	if !f(e) {
		return
	}
	for _, c := range e.Children() {
		inspectExprTopDown(c, f)
	}
}
