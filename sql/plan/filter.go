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

import (
	"github.com/dolthub/go-logical-plan/sql"
)

// Filter skips rows that don't match a certain expression.
type Filter struct {
	UnaryNode
	expression sql.Expression
}

var _ sql.UnaryNode = (*Filter)(nil)

// NewFilter creates a new filter node.
func NewFilter(source sql.Source, expression sql.Expression, child sql.Node) *Filter {
	return &Filter{
		UnaryNode:  NewUnaryNode("Filter", source, child),
		expression: expression,
	}
}

// Expression returns the filter condition.
func (p *Filter) Expression() sql.Expression {
	return p.expression
}

// ExpressionsResolved implements the Node interface.
func (p *Filter) ExpressionsResolved() bool {
	return p.expression.Resolved()
}

// ReplaceChild implements the UnaryNode interface.
func (p *Filter) ReplaceChild(child sql.Node) sql.UnaryNode {
	return NewFilter(p.source, p.expression, child)
}

// WithChildren implements the Node interface.
func (p *Filter) WithChildren(children ...sql.Node) (sql.Node, error) {
	if err := checkUnaryChildren(p, children); err != nil {
		return nil, err
	}
	return p.ReplaceChild(children[0]), nil
}

// Info implements the Node interface.
func (p *Filter) Info() sql.NodeInfo {
	return sql.NewNodeInfo("Filter", p.rebuild, p.Children(), p.expression)
}

func (p *Filter) rebuild(children []sql.Node, properties []interface{}) (sql.Node, error) {
	if err := checkUnaryChildren(p, children); err != nil {
		return nil, err
	}
	cond, ok := properties[0].(sql.Expression)
	if !ok {
		return nil, sql.ErrInvalidPropertyType.New("Filter", 0, properties[0])
	}
	return NewFilter(p.source, cond, children[0]), nil
}

func (p *Filter) String() string {
	pr := sql.NewTreePrinter()
	_ = pr.WriteNode("Filter(%s)", p.expression)
	_ = pr.WriteChildren(p.child.String())
	return pr.String()
}
