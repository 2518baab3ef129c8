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

	opentracing "github.com/opentracing/opentracing-go"

	"github.com/dolthub/go-logical-plan/sql"
	"github.com/dolthub/go-logical-plan/sql/expression"
	"github.com/dolthub/go-logical-plan/sql/plan"
	"github.com/dolthub/go-logical-plan/sql/transform"
)

// resolveReferences binds every unresolved attribute to the column with the
// same name in the output of the child of the node holding it. Fields of an
// Eval are bound one at a time, so a field can see the ones before it.
func resolveReferences(ctx context.Context, a *Analyzer, n sql.Node) (sql.Node, transform.TreeIdentity, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, resolveReferencesRule)
	defer span.Finish()

	return transform.Node(n, func(n sql.Node) (sql.Node, transform.TreeIdentity, error) {
		if n.ExpressionsResolved() {
			return n, transform.SameTree, nil
		}

		switch n := n.(type) {
		case *plan.Eval:
			return resolveEvalReferences(a, n)
		case sql.UnaryNode:
			return transform.OneNodeExprs(n, bindAttributes(a, n.Child().Schema()))
		default:
			return n, transform.SameTree, nil
		}
	})
}

func resolveEvalReferences(a *Analyzer, e *plan.Eval) (sql.Node, transform.TreeIdentity, error) {
	scope := e.Child().Schema()
	fields := make([]sql.NamedExpression, len(e.Fields()))
	same := transform.SameTree
	for i, f := range e.Fields() {
		resolved, s, err := transform.Expr(f, bindAttributes(a, scope))
		if err != nil {
			return nil, transform.SameTree, err
		}

		field, ok := resolved.(sql.NamedExpression)
		if !ok {
			return nil, transform.SameTree, sql.ErrInvalidPropertyType.New("Eval", 0, resolved)
		}

		fields[i] = field
		same = same && s
		scope = plan.MergeOutput(scope, fields[i:i+1])
	}

	if same {
		return e, transform.SameTree, nil
	}
	return e.WithFields(fields), transform.NewTree, nil
}

// bindAttributes returns a function replacing unresolved attributes with the
// column of the given schema that has the same name. References that match
// no column, or more than one, stay unresolved with a message saying why.
func bindAttributes(a *Analyzer, scope sql.Schema) transform.ExprFunc {
	return func(e sql.Expression) (sql.Expression, transform.TreeIdentity, error) {
		ua, ok := e.(*expression.UnresolvedAttribute)
		if !ok {
			return e, transform.SameTree, nil
		}

		var matches []sql.Attribute
		for _, attr := range scope {
			if attr.Name() != ua.Name() || containsID(matches, attr.ID()) {
				continue
			}
			matches = append(matches, attr)
		}

		switch len(matches) {
		case 0:
			return withMessage(ua, fmt.Sprintf("unknown column [%s]", ua.Name()))
		case 1:
			if !matches[0].Resolved() {
				return ua, transform.SameTree, nil
			}
			a.Log("resolved reference %q", ua.Name())
			return matches[0], transform.NewTree, nil
		default:
			return withMessage(ua, fmt.Sprintf("ambiguous reference [%s]", ua.Name()))
		}
	}
}

func withMessage(ua *expression.UnresolvedAttribute, msg string) (sql.Expression, transform.TreeIdentity, error) {
	if ua.Message() == msg {
		return ua, transform.SameTree, nil
	}
	return ua.WithMessage(msg), transform.NewTree, nil
}

func containsID(attrs []sql.Attribute, id sql.NameID) bool {
	for _, a := range attrs {
		if a.ID() == id {
			return true
		}
	}
	return false
}
