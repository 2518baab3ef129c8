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

// Relation is a source of rows with a known schema, such as a table from the
// catalog.
type Relation struct {
	source sql.Source
	name   string
	schema sql.Schema
}

var _ sql.Node = (*Relation)(nil)

// NewRelation creates a new Relation node.
func NewRelation(source sql.Source, name string, schema sql.Schema) *Relation {
	return &Relation{source: source, name: name, schema: schema}
}

// Name implements the Nameable interface.
func (r *Relation) Name() string { return r.name }

// Source implements the Node interface.
func (r *Relation) Source() sql.Source { return r.source }

// Schema implements the Node interface.
func (r *Relation) Schema() sql.Schema { return r.schema }

// ExpressionsResolved implements the Node interface.
func (r *Relation) ExpressionsResolved() bool { return r.schema.Resolved() }

// Children implements the Node interface.
func (*Relation) Children() []sql.Node { return nil }

// WithChildren implements the Node interface.
func (r *Relation) WithChildren(children ...sql.Node) (sql.Node, error) {
	return NillaryWithChildren(r, children...)
}

// Info implements the Node interface.
func (r *Relation) Info() sql.NodeInfo {
	return sql.NewNodeInfo("Relation", r.rebuild, nil, r.name, r.schema)
}

func (r *Relation) rebuild(children []sql.Node, properties []interface{}) (sql.Node, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(r, len(children), 0)
	}
	name, ok := properties[0].(string)
	if !ok {
		return nil, sql.ErrInvalidPropertyType.New("Relation", 0, properties[0])
	}
	schema, ok := properties[1].(sql.Schema)
	if !ok {
		return nil, sql.ErrInvalidPropertyType.New("Relation", 1, properties[1])
	}
	return NewRelation(r.source, name, schema), nil
}

func (r *Relation) String() string {
	return "Relation(" + r.name + ")[" + r.schema.String() + "]"
}

// UnresolvedRelation is a relation that has not been looked up in the catalog
// yet. It produces no columns.
type UnresolvedRelation struct {
	source sql.Source
	name   string
}

var _ sql.Node = (*UnresolvedRelation)(nil)

// NewUnresolvedRelation creates a new UnresolvedRelation node.
func NewUnresolvedRelation(source sql.Source, name string) *UnresolvedRelation {
	return &UnresolvedRelation{source: source, name: name}
}

// Name implements the Nameable interface.
func (r *UnresolvedRelation) Name() string { return r.name }

// Source implements the Node interface.
func (r *UnresolvedRelation) Source() sql.Source { return r.source }

// Schema implements the Node interface.
func (*UnresolvedRelation) Schema() sql.Schema { return nil }

// ExpressionsResolved implements the Node interface.
func (*UnresolvedRelation) ExpressionsResolved() bool { return false }

// Children implements the Node interface.
func (*UnresolvedRelation) Children() []sql.Node { return nil }

// WithChildren implements the Node interface.
func (r *UnresolvedRelation) WithChildren(children ...sql.Node) (sql.Node, error) {
	return NillaryWithChildren(r, children...)
}

// Info implements the Node interface.
func (r *UnresolvedRelation) Info() sql.NodeInfo {
	return sql.NewNodeInfo("UnresolvedRelation", r.rebuild, nil, r.name)
}

func (r *UnresolvedRelation) rebuild(children []sql.Node, properties []interface{}) (sql.Node, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(r, len(children), 0)
	}
	name, ok := properties[0].(string)
	if !ok {
		return nil, sql.ErrInvalidPropertyType.New("UnresolvedRelation", 0, properties[0])
	}
	return NewUnresolvedRelation(r.source, name), nil
}

func (r *UnresolvedRelation) String() string {
	return "UnresolvedRelation(" + r.name + ")"
}
