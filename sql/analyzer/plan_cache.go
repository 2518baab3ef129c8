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

package analyzer

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dolthub/go-logical-plan/sql"
	"github.com/dolthub/go-logical-plan/sql/plan"
)

type cachedPlan struct {
	key      sql.Node
	analyzed sql.Node
}

// PlanCache keeps the analyzed version of recently analyzed plans. Plans are
// looked up by structure, so two equal plans built separately share the
// same entry.
type PlanCache struct {
	mu    sync.Mutex
	plans *lru.Cache[uint64, []cachedPlan]
}

// NewPlanCache creates a cache holding up to size distinct plan hashes.
func NewPlanCache(size int) (*PlanCache, error) {
	plans, err := lru.New[uint64, []cachedPlan](size)
	if err != nil {
		return nil, err
	}
	return &PlanCache{plans: plans}, nil
}

// Get returns the analyzed version of a plan equal to the given one.
func (c *PlanCache) Get(n sql.Node) (sql.Node, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	bucket, ok := c.plans.Get(plan.Hash(n))
	if !ok {
		return nil, false
	}
	for _, p := range bucket {
		if plan.Equal(p.key, n) {
			return p.analyzed, true
		}
	}
	return nil, false
}

// Put stores the analyzed version of the given plan, replacing any previous
// entry for an equal plan.
func (c *PlanCache) Put(n, analyzed sql.Node) {
	h := plan.Hash(n)

	c.mu.Lock()
	defer c.mu.Unlock()

	bucket, _ := c.plans.Peek(h)
	for i, p := range bucket {
		if plan.Equal(p.key, n) {
			updated := make([]cachedPlan, len(bucket))
			copy(updated, bucket)
			updated[i].analyzed = analyzed
			c.plans.Add(h, updated)
			return
		}
	}

	updated := make([]cachedPlan, len(bucket), len(bucket)+1)
	copy(updated, bucket)
	c.plans.Add(h, append(updated, cachedPlan{key: n, analyzed: analyzed}))
}

// Len returns the number of distinct plan hashes in the cache.
func (c *PlanCache) Len() int {
	return c.plans.Len()
}

// Purge removes every plan from the cache.
func (c *PlanCache) Purge() {
	c.plans.Purge()
}
