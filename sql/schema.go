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

import "strings"

// Schema is the ordered list of attributes produced by a node.
type Schema []Attribute

// Names returns the names of the attributes in the schema, in order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, a := range s {
		names[i] = a.Name()
	}
	return names
}

// IndexOf returns the index of the first attribute with the given name or -1
// if it's not present.
func (s Schema) IndexOf(name string) int {
	for i, a := range s {
		if a.Name() == name {
			return i
		}
	}
	return -1
}

// Contains returns whether the schema contains an attribute with the given
// name.
func (s Schema) Contains(name string) bool {
	return s.IndexOf(name) >= 0
}

// ContainsID returns whether the schema contains the attribute with the given
// identity.
func (s Schema) ContainsID(id NameID) bool {
	for _, a := range s {
		if a.ID() == id {
			return true
		}
	}
	return false
}

// Resolved returns whether all attributes in the schema are resolved.
func (s Schema) Resolved() bool {
	for _, a := range s {
		if !a.Resolved() {
			return false
		}
	}
	return true
}

// Equals checks whether the given schema is equal to this one.
func (s Schema) Equals(s2 Schema) bool {
	if len(s) != len(s2) {
		return false
	}

	for i := range s {
		if !s[i].Equal(s2[i]) {
			return false
		}
	}

	return true
}

func (s Schema) String() string {
	return strings.Join(s.Names(), ", ")
}
