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
	"github.com/dolthub/go-logical-plan/sql/expression"
	"github.com/dolthub/go-logical-plan/sql/plan"
	"github.com/dolthub/go-logical-plan/sql/transform"
)

// pushDownLimitPastEval moves a Limit below the Eval it sits on, so fewer
// rows get their fields computed.
func pushDownLimitPastEval(ctx context.Context, a *Analyzer, n sql.Node) (sql.Node, transform.TreeIdentity, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, pushDownLimitPastEvalRule)
	defer span.Finish()

	return transform.Node(n, func(n sql.Node) (sql.Node, transform.TreeIdentity, error) {
		limit, ok := n.(*plan.Limit)
		if !ok {
			return n, transform.SameTree, nil
		}
		eval, ok := limit.Child().(*plan.Eval)
		if !ok {
			return n, transform.SameTree, nil
		}

		a.Log("pushing down limit %d past eval", limit.Limit)
		return eval.ReplaceChild(limit.ReplaceChild(eval.Child())), transform.NewTree, nil
	})
}

// pushDownFilterPastEval moves a Filter below the Eval it sits on when the
// condition only uses columns the Eval's child already produces.
func pushDownFilterPastEval(ctx context.Context, a *Analyzer, n sql.Node) (sql.Node, transform.TreeIdentity, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, pushDownFilterPastEvalRule)
	defer span.Finish()

	return transform.Node(n, func(n sql.Node) (sql.Node, transform.TreeIdentity, error) {
		filter, ok := n.(*plan.Filter)
		if !ok {
			return n, transform.SameTree, nil
		}
		eval, ok := filter.Child().(*plan.Eval)
		if !ok {
			return n, transform.SameTree, nil
		}

		available := eval.Child().Schema()
		for _, ref := range expression.References(filter.Expression()) {
			if !available.ContainsID(ref.ID()) {
				return n, transform.SameTree, nil
			}
		}

		a.Log("pushing down filter %s past eval", filter.Expression())
		return eval.ReplaceChild(filter.ReplaceChild(eval.Child())), transform.NewTree, nil
	})
}

// combineEvals merges an Eval whose child is another Eval into a single
// node. It is only done when no outer field shadows an inner one, since the
// inner field would otherwise disappear from the merged output.
func combineEvals(ctx context.Context, a *Analyzer, n sql.Node) (sql.Node, transform.TreeIdentity, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, combineEvalsRule)
	defer span.Finish()

	return transform.Node(n, func(n sql.Node) (sql.Node, transform.TreeIdentity, error) {
		outer, ok := n.(*plan.Eval)
		if !ok {
			return n, transform.SameTree, nil
		}
		inner, ok := outer.Child().(*plan.Eval)
		if !ok {
			return n, transform.SameTree, nil
		}

		names := make(map[string]struct{}, len(inner.Fields()))
		for _, f := range inner.Fields() {
			names[f.Name()] = struct{}{}
		}
		for _, f := range outer.Fields() {
			if _, ok := names[f.Name()]; ok {
				return n, transform.SameTree, nil
			}
		}

		fields := make([]sql.NamedExpression, 0, len(inner.Fields())+len(outer.Fields()))
		fields = append(fields, inner.Fields()...)
		fields = append(fields, outer.Fields()...)

		a.Log("combining evals with %d and %d fields", len(inner.Fields()), len(outer.Fields()))
		return inner.WithFields(fields), transform.NewTree, nil
	})
}

// removeEmptyEval replaces an Eval without fields with its child.
func removeEmptyEval(ctx context.Context, a *Analyzer, n sql.Node) (sql.Node, transform.TreeIdentity, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, removeEmptyEvalRule)
	defer span.Finish()

	return transform.Node(n, func(n sql.Node) (sql.Node, transform.TreeIdentity, error) {
		eval, ok := n.(*plan.Eval)
		if !ok || len(eval.Fields()) > 0 {
			return n, transform.SameTree, nil
		}

		a.Log("removing empty eval")
		return eval.Child(), transform.NewTree, nil
	})
}

// pruneEvalFields drops the fields of an Eval right below a Project that
// neither the projection nor any other kept field uses.
func pruneEvalFields(ctx context.Context, a *Analyzer, n sql.Node) (sql.Node, transform.TreeIdentity, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, pruneEvalFieldsRule)
	defer span.Finish()

	return transform.Node(n, func(n sql.Node) (sql.Node, transform.TreeIdentity, error) {
		project, ok := n.(*plan.Project)
		if !ok {
			return n, transform.SameTree, nil
		}
		eval, ok := project.Child().(*plan.Eval)
		if !ok {
			return n, transform.SameTree, nil
		}

		used := make(map[sql.NameID]struct{})
		for _, p := range project.Projections {
			for _, ref := range expression.References(p) {
				used[ref.ID()] = struct{}{}
			}
		}

		fields := eval.Fields()
		kept := make([]sql.NamedExpression, 0, len(fields))
		for i := len(fields) - 1; i >= 0; i-- {
			if _, ok := used[fields[i].ID()]; !ok {
				continue
			}
			kept = append(kept, fields[i])
			for _, ref := range expression.References(fields[i]) {
				used[ref.ID()] = struct{}{}
			}
		}

		if len(kept) == len(fields) {
			return n, transform.SameTree, nil
		}

		for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
			kept[i], kept[j] = kept[j], kept[i]
		}

		a.Log("pruned %d unused eval fields", len(fields)-len(kept))
		return project.ReplaceChild(eval.WithFields(kept)), transform.NewTree, nil
	})
}
