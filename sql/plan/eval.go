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

// Eval derives new columns from expressions over the columns of its child.
// A field with the same name as a child column replaces it, and every field
// is appended after the remaining child columns in the order they are given.
type Eval struct {
	UnaryNode
	fields []sql.NamedExpression
}

var _ sql.UnaryNode = (*Eval)(nil)

// NewEval creates a new Eval node. An Eval with no fields is legal and
// produces the same columns as its child.
func NewEval(source sql.Source, child sql.Node, fields []sql.NamedExpression) *Eval {
	return &Eval{
		UnaryNode: NewUnaryNode("Eval", source, child),
		fields:    fields,
	}
}

// Fields returns the named expressions computed by the node, in order.
func (e *Eval) Fields() []sql.NamedExpression {
	return e.fields
}

// Schema implements the Node interface.
func (e *Eval) Schema() sql.Schema {
	return MergeOutput(e.child.Schema(), e.fields)
}

// MergeOutput returns the columns of a child schema followed by the given
// fields. Child columns with the same name as any of the fields are dropped.
// Fields are not deduplicated among themselves.
func MergeOutput(child sql.Schema, fields []sql.NamedExpression) sql.Schema {
	names := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		names[f.Name()] = struct{}{}
	}

	output := make(sql.Schema, 0, len(child)+len(fields))
	for _, a := range child {
		if _, ok := names[a.Name()]; !ok {
			output = append(output, a)
		}
	}

	return append(output, expression.AsAttributes(fields)...)
}

// ExpressionsResolved implements the Node interface.
func (e *Eval) ExpressionsResolved() bool {
	return expression.NamedExpressionsResolved(e.fields...)
}

// ReplaceChild implements the UnaryNode interface.
func (e *Eval) ReplaceChild(child sql.Node) sql.UnaryNode {
	return NewEval(e.source, child, e.fields)
}

// WithChildren implements the Node interface.
func (e *Eval) WithChildren(children ...sql.Node) (sql.Node, error) {
	if err := checkUnaryChildren(e, children); err != nil {
		return nil, err
	}
	return e.ReplaceChild(children[0]), nil
}

// WithFields returns a copy of the node with the given fields.
func (e *Eval) WithFields(fields []sql.NamedExpression) *Eval {
	return NewEval(e.source, e.child, fields)
}

// Info implements the Node interface.
func (e *Eval) Info() sql.NodeInfo {
	return sql.NewNodeInfo("Eval", e.rebuild, e.Children(), e.fields)
}

func (e *Eval) rebuild(children []sql.Node, properties []interface{}) (sql.Node, error) {
	if err := checkUnaryChildren(e, children); err != nil {
		return nil, err
	}
	fields, ok := properties[0].([]sql.NamedExpression)
	if !ok {
		return nil, sql.ErrInvalidPropertyType.New("Eval", 0, properties[0])
	}
	return NewEval(e.source, children[0], fields), nil
}

func (e *Eval) String() string {
	fields := make([]string, len(e.fields))
	for i, f := range e.fields {
		fields[i] = f.String()
	}

	p := sql.NewTreePrinter()
	_ = p.WriteNode("Eval(%s)", strings.Join(fields, ", "))
	_ = p.WriteChildren(e.child.String())
	return p.String()
}
