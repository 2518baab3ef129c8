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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-logical-plan/sql"
	"github.com/dolthub/go-logical-plan/sql/expression"
	"github.com/dolthub/go-logical-plan/sql/plan"
	"github.com/dolthub/go-logical-plan/sql/transform"
)

var empty = sql.EmptySource

func attr(name string) *expression.ReferenceAttribute {
	return expression.NewReferenceAttribute(name, sql.Long, false)
}

func unresolved(name string) *expression.UnresolvedAttribute {
	return expression.NewUnresolvedAttribute(name)
}

func lit(n int64) sql.Expression {
	return expression.NewLiteral(n, sql.Long)
}

func alias(name string, e sql.Expression) *expression.Alias {
	return expression.NewAlias(name, e)
}

func fields(exprs ...sql.NamedExpression) []sql.NamedExpression {
	return exprs
}

func eval(child sql.Node, exprs ...sql.NamedExpression) *plan.Eval {
	return plan.NewEval(empty, child, exprs)
}

// testCatalog returns a catalog with a single table t(id, value).
func testCatalog(t *testing.T) (*sql.Catalog, sql.Schema) {
	t.Helper()
	schema := sql.Schema{attr("id"), attr("value")}
	c := sql.NewCatalog()
	require.NoError(t, c.AddTable("t", schema))
	return c, schema
}

type ruleTest struct {
	name     string
	node     sql.Node
	expected sql.Node
	same     transform.TreeIdentity
}

func runRuleTests(t *testing.T, rule RuleFunc, tests []ruleTest) {
	t.Helper()
	a := NewDefault(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			result, same, err := rule(context.Background(), a, tt.node)
			require.NoError(err)
			require.Equal(tt.same, same)
			if !plan.Equal(tt.expected, result) {
				require.Fail("plans differ", "expected:\n%s\ngot:\n%s", tt.expected, result)
			}
		})
	}
}
