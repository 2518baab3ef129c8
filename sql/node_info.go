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

// RebuildFunc creates a node of some kind from its children and properties.
type RebuildFunc func(children []Node, properties []interface{}) (Node, error)

// NodeInfo describes the shape of a node: the name of its kind, its children
// and its own properties in constructor order, and a function to build a new
// node of the same kind out of them. Generic tree utilities use it to compare,
// hash, print and rewrite nodes without a catalogue of node kinds.
//
// Properties are one of Expression, []Expression, []NamedExpression, Schema
// or a comparable value such as a string or an int.
type NodeInfo struct {
	kind       string
	children   []Node
	properties []interface{}
	rebuild    RebuildFunc
}

// NewNodeInfo returns the NodeInfo of a node of the given kind.
func NewNodeInfo(kind string, rebuild RebuildFunc, children []Node, properties ...interface{}) NodeInfo {
	return NodeInfo{
		kind:       kind,
		children:   children,
		properties: properties,
		rebuild:    rebuild,
	}
}

// Kind returns the name of the kind of node.
func (i NodeInfo) Kind() string { return i.kind }

// Children returns the children of the node.
func (i NodeInfo) Children() []Node { return i.children }

// Properties returns the properties of the node, not including its children.
func (i NodeInfo) Properties() []interface{} { return i.properties }

// Rebuild returns a new node of the same kind with the given children and
// properties.
func (i NodeInfo) Rebuild(children []Node, properties []interface{}) (Node, error) {
	if len(properties) != len(i.properties) {
		return nil, ErrInvalidPropertiesNumber.New(i.kind, len(properties), len(i.properties))
	}
	return i.rebuild(children, properties)
}
