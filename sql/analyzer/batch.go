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
	"context"

	opentracing "github.com/opentracing/opentracing-go"

	"github.com/dolthub/go-logical-plan/sql"
	"github.com/dolthub/go-logical-plan/sql/plan"
	"github.com/dolthub/go-logical-plan/sql/transform"
)

// RuleFunc rewrites a plan. It reports SameTree when it returned the plan
// it was given.
type RuleFunc func(context.Context, *Analyzer, sql.Node) (sql.Node, transform.TreeIdentity, error)

// Rule is a named plan rewrite.
type Rule struct {
	Name  string
	Apply RuleFunc
}

// Batch is a group of rules applied in order, pass after pass, until a pass
// leaves the plan as it was or Iterations passes have run.
type Batch struct {
	Desc       string
	Iterations int
	Rules      []Rule
}

// Eval runs the batch over n. When the plan is still changing after the last
// allowed pass, the plan produced by that pass is returned together with
// ErrMaxAnalysisIters.
func (b *Batch) Eval(ctx context.Context, a *Analyzer, n sql.Node) (sql.Node, error) {
	if b.Iterations == 0 || len(b.Rules) == 0 {
		return n, nil
	}

	span, ctx := opentracing.StartSpanFromContext(ctx, "analyze.batch")
	span.SetTag("batch", b.Desc)
	defer span.Finish()

	cur := n
	for pass := 1; ; pass++ {
		next, same, err := b.evalOnce(ctx, a, cur)
		if err != nil {
			return nil, err
		}

		if bool(same) || b.Iterations == 1 || plan.Equal(cur, next) {
			span.SetTag("iterations", pass)
			return next, nil
		}

		if pass >= b.Iterations {
			span.SetTag("iterations", pass)
			return next, ErrMaxAnalysisIters.New(b.Iterations)
		}
		cur = next
	}
}

func (b *Batch) evalOnce(ctx context.Context, a *Analyzer, n sql.Node) (sql.Node, transform.TreeIdentity, error) {
	identity := transform.SameTree
	for _, rule := range b.Rules {
		a.PushDebugContext(rule.Name)
		next, same, err := rule.Apply(ctx, a, n)
		if err != nil {
			a.PopDebugContext()
			return nil, transform.SameTree, err
		}
		if !same {
			identity = transform.NewTree
			a.LogNode(next)
		}
		a.PopDebugContext()
		n = next
	}
	return n, identity, nil
}
