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

// Limit is a node that only allows up to N rows to be retrieved.
type Limit struct {
	UnaryNode
	Limit int64
}

var _ sql.UnaryNode = (*Limit)(nil)

// NewLimit creates a new Limit node with the given size.
func NewLimit(source sql.Source, size int64, child sql.Node) *Limit {
	return &Limit{
		UnaryNode: NewUnaryNode("Limit", source, child),
		Limit:     size,
	}
}

// ExpressionsResolved implements the Node interface.
func (*Limit) ExpressionsResolved() bool {
	return true
}

// ReplaceChild implements the UnaryNode interface.
func (l *Limit) ReplaceChild(child sql.Node) sql.UnaryNode {
	return NewLimit(l.source, l.Limit, child)
}

// WithChildren implements the Node interface.
func (l *Limit) WithChildren(children ...sql.Node) (sql.Node, error) {
	if err := checkUnaryChildren(l, children); err != nil {
		return nil, err
	}
	return l.ReplaceChild(children[0]), nil
}

// Info implements the Node interface.
func (l *Limit) Info() sql.NodeInfo {
	return sql.NewNodeInfo("Limit", l.rebuild, l.Children(), l.Limit)
}

func (l *Limit) rebuild(children []sql.Node, properties []interface{}) (sql.Node, error) {
	if err := checkUnaryChildren(l, children); err != nil {
		return nil, err
	}
	size, ok := properties[0].(int64)
	if !ok {
		return nil, sql.ErrInvalidPropertyType.New("Limit", 0, properties[0])
	}
	return NewLimit(l.source, size, children[0]), nil
}

func (l *Limit) String() string {
	pr := sql.NewTreePrinter()
	_ = pr.WriteNode("Limit(%d)", l.Limit)
	_ = pr.WriteChildren(l.child.String())
	return pr.String()
}
