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

import (
	"sort"
	"strings"

	"github.com/puzpuzpuz/xsync/v3"
)

// Catalog holds the schemas of the relations queries can read from. It is
// safe for concurrent use.
type Catalog struct {
	tables *xsync.MapOf[string, Schema]
}

// NewCatalog returns a new empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{tables: xsync.NewMapOf[string, Schema]()}
}

// AddTable registers a relation with the given schema. Names are case
// insensitive.
func (c *Catalog) AddTable(name string, schema Schema) error {
	if _, loaded := c.tables.LoadOrStore(strings.ToLower(name), schema); loaded {
		return ErrTableAlreadyExists.New(name)
	}
	return nil
}

// Table returns the schema of the relation with the given name.
func (c *Catalog) Table(name string) (Schema, error) {
	schema, ok := c.tables.Load(strings.ToLower(name))
	if !ok {
		return nil, ErrTableNotFound.New(name)
	}
	return schema, nil
}

// TableNames returns the sorted names of all registered relations.
func (c *Catalog) TableNames() []string {
	names := make([]string, 0, c.tables.Size())
	c.tables.Range(func(name string, _ Schema) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}
