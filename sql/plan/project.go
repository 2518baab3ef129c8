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
	"strings"

	"github.com/dolthub/go-logical-plan/sql"
	"github.com/dolthub/go-logical-plan/sql/expression"
)

// Project is a projection of certain expression from the children node.
type Project struct {
	UnaryNode
	// Projections are the named expressions projected, in output order.
	Projections []sql.NamedExpression
}

var _ sql.UnaryNode = (*Project)(nil)

// NewProject creates a new projection.
func NewProject(source sql.Source, projections []sql.NamedExpression, child sql.Node) *Project {
	return &Project{
		UnaryNode:   NewUnaryNode("Project", source, child),
		Projections: projections,
	}
}

// Schema implements the Node interface.
func (p *Project) Schema() sql.Schema {
	return expression.AsAttributes(p.Projections)
}

// ExpressionsResolved implements the Node interface.
func (p *Project) ExpressionsResolved() bool {
	return expression.NamedExpressionsResolved(p.Projections...)
}

// ReplaceChild implements the UnaryNode interface.
func (p *Project) ReplaceChild(child sql.Node) sql.UnaryNode {
	return NewProject(p.source, p.Projections, child)
}

// WithChildren implements the Node interface.
func (p *Project) WithChildren(children ...sql.Node) (sql.Node, error) {
	if err := checkUnaryChildren(p, children); err != nil {
		return nil, err
	}
	return p.ReplaceChild(children[0]), nil
}

// Info implements the Node interface.
func (p *Project) Info() sql.NodeInfo {
	return sql.NewNodeInfo("Project", p.rebuild, p.Children(), p.Projections)
}

func (p *Project) rebuild(children []sql.Node, properties []interface{}) (sql.Node, error) {
	if err := checkUnaryChildren(p, children); err != nil {
		return nil, err
	}
	projections, ok := properties[0].([]sql.NamedExpression)
	if !ok {
		return nil, sql.ErrInvalidPropertyType.New("Project", 0, properties[0])
	}
	return NewProject(p.source, projections, children[0]), nil
}

func (p *Project) String() string {
	pr := sql.NewTreePrinter()
	var exprs = make([]string, len(p.Projections))
	for i, expr := range p.Projections {
		exprs[i] = expr.String()
	}
	_ = pr.WriteNode("Project(%s)", strings.Join(exprs, ", "))
	_ = pr.WriteChildren(p.child.String())
	return pr.String()
}
