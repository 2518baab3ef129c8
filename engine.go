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

package logicalplan

import (
	"context"

	"github.com/dolthub/go-logical-plan/sql"
	"github.com/dolthub/go-logical-plan/sql/analyzer"
)

// Engine analyzes logical plans against a catalog of relations.
type Engine struct {
	Catalog  *sql.Catalog
	Analyzer *analyzer.Analyzer
	cache    *analyzer.PlanCache
}

// New creates a new Engine over the given catalog. A plan cache is used when
// the configuration has a positive cache size.
func New(c *sql.Catalog, cfg analyzer.Config) (*Engine, error) {
	b := analyzer.NewBuilder(c).WithConfig(cfg)

	var cache *analyzer.PlanCache
	if cfg.PlanCacheSize > 0 {
		var err error
		cache, err = analyzer.NewPlanCache(cfg.PlanCacheSize)
		if err != nil {
			return nil, err
		}
		b = b.WithPlanCache(cache)
	}

	return &Engine{Catalog: c, Analyzer: b.Build(), cache: cache}, nil
}

// NewDefault creates a new Engine with an empty catalog and the default
// configuration.
func NewDefault() *Engine {
	e, err := New(sql.NewCatalog(), analyzer.DefaultConfig())
	if err != nil {
		panic(err)
	}
	return e
}

// AddTable registers a relation in the catalog of the engine. Cached plans
// are dropped, since they may have been analyzed without it.
func (e *Engine) AddTable(name string, schema sql.Schema) error {
	if err := e.Catalog.AddTable(name, schema); err != nil {
		return err
	}
	if e.cache != nil {
		e.cache.Purge()
	}
	return nil
}

// Analyze resolves, validates and optimizes the given plan.
func (e *Engine) Analyze(ctx context.Context, n sql.Node) (sql.Node, error) {
	return e.Analyzer.Analyze(ctx, n)
}
