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
	"fmt"
	"strings"

	opentracing "github.com/opentracing/opentracing-go"
	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/go-logical-plan/sql"
	"github.com/dolthub/go-logical-plan/sql/expression"
	"github.com/dolthub/go-logical-plan/sql/plan"
	"github.com/dolthub/go-logical-plan/sql/transform"
)

// ErrUnresolvedPlan is returned when a plan still has unresolved parts after
// all the resolution rules have been applied.
var ErrUnresolvedPlan = errors.NewKind("plan is not resolved: %s")

func validateIsResolved(ctx context.Context, a *Analyzer, n sql.Node) (sql.Node, transform.TreeIdentity, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, validateResolvedRule)
	defer span.Finish()

	if plan.Resolved(n) {
		return n, transform.SameTree, nil
	}

	var problems []string
	transform.Inspect(n, func(n sql.Node) bool {
		if r, ok := n.(*plan.UnresolvedRelation); ok {
			problems = append(problems, fmt.Sprintf("unknown relation [%s]", r.Name()))
		}
		return true
	})
	transform.InspectExpressions(n, func(e sql.Expression) bool {
		if ua, ok := e.(*expression.UnresolvedAttribute); ok {
			msg := ua.Message()
			if msg == "" {
				msg = fmt.Sprintf("unresolved reference [%s]", ua.Name())
			}
			problems = append(problems, msg)
		}
		return true
	})

	if len(problems) == 0 {
		problems = append(problems, n.String())
	}

	return nil, transform.SameTree, ErrUnresolvedPlan.New(strings.Join(problems, "; "))
}
