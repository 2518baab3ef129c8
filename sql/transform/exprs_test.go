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

package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-logical-plan/sql"
	"github.com/dolthub/go-logical-plan/sql/expression"
	"github.com/dolthub/go-logical-plan/sql/plan"
)

func resolveByName(attrs ...sql.Attribute) ExprFunc {
	return func(e sql.Expression) (sql.Expression, TreeIdentity, error) {
		ua, ok := e.(*expression.UnresolvedAttribute)
		if !ok {
			return e, SameTree, nil
		}
		for _, a := range attrs {
			if a.Name() == ua.Name() {
				return a, NewTree, nil
			}
		}
		return e, SameTree, nil
	}
}

func TestNodeExprs(t *testing.T) {
	require := require.New(t)

	a := expression.NewReferenceAttribute("a", sql.Long, false)
	b := expression.NewReferenceAttribute("b", sql.Long, false)
	relation := plan.NewRelation(sql.EmptySource, "t", sql.Schema{a, b})

	x := expression.NewAlias("x", expression.NewPlus(expression.NewUnresolvedAttribute("a"), expression.NewLiteral(int64(1), sql.Long)))
	eval := plan.NewEval(sql.EmptySource, relation, []sql.NamedExpression{x, b})
	filter := plan.NewFilter(sql.EmptySource, expression.NewGreaterThan(expression.NewUnresolvedAttribute("b"), expression.NewLiteral(int64(0), sql.Long)), eval)
	require.False(plan.Resolved(filter))

	result, same, err := NodeExprs(filter, resolveByName(a, b))
	require.NoError(err)
	require.Equal(NewTree, same)
	require.True(plan.Resolved(result))
	require.False(plan.Resolved(filter))

	newEval := result.(*plan.Filter).Child().(*plan.Eval)
	require.Equal(x.ID(), newEval.Fields()[0].ID())
	require.True(newEval.Fields()[1] == sql.NamedExpression(b))
	require.True(newEval.Child() == sql.Node(relation))

	result2, same, err := NodeExprs(result, resolveByName(a, b))
	require.NoError(err)
	require.Equal(SameTree, same)
	require.True(result2 == result)
}

func TestOneNodeExprs(t *testing.T) {
	require := require.New(t)

	a := expression.NewReferenceAttribute("a", sql.Long, false)
	relation := plan.NewRelation(sql.EmptySource, "t", sql.Schema{a})
	inner := plan.NewFilter(sql.EmptySource, expression.NewUnresolvedAttribute("a"), relation)
	outer := plan.NewFilter(sql.EmptySource, expression.NewUnresolvedAttribute("a"), inner)

	result, same, err := OneNodeExprs(outer, resolveByName(a))
	require.NoError(err)
	require.Equal(NewTree, same)
	require.True(result.ExpressionsResolved())
	require.True(result.(*plan.Filter).Child() == sql.Node(inner))
	require.False(plan.Resolved(result))
}

func TestOneNodeExprsNamedExpressionType(t *testing.T) {
	require := require.New(t)

	a := expression.NewReferenceAttribute("a", sql.Long, false)
	relation := plan.NewRelation(sql.EmptySource, "t", sql.Schema{a})
	eval := plan.NewEval(sql.EmptySource, relation, []sql.NamedExpression{a})

	_, _, err := OneNodeExprs(eval, func(e sql.Expression) (sql.Expression, TreeIdentity, error) {
		if e == sql.Expression(a) {
			return expression.NewLiteral(1, sql.Integer), NewTree, nil
		}
		return e, SameTree, nil
	})
	require.True(sql.ErrInvalidPropertyType.Is(err))
}

func TestExprs(t *testing.T) {
	require := require.New(t)

	a := expression.NewReferenceAttribute("a", sql.Long, false)
	one := expression.NewLiteral(int64(1), sql.Long)
	exprs := []sql.Expression{one, expression.NewPlus(expression.NewUnresolvedAttribute("a"), one)}

	result, same, err := Exprs(exprs, resolveByName(a))
	require.NoError(err)
	require.Equal(NewTree, same)
	require.True(result[0] == exprs[0])
	require.True(result[1].Resolved())
	require.False(exprs[1].Resolved())

	result, same, err = Exprs(result, resolveByName(a))
	require.NoError(err)
	require.Equal(SameTree, same)
}

func TestInspectExpr(t *testing.T) {
	require := require.New(t)

	a := expression.NewReferenceAttribute("a", sql.Long, false)
	e := expression.NewPlus(expression.NewMult(a, expression.NewLiteral(int64(2), sql.Long)), expression.NewUnresolvedAttribute("b"))

	require.True(InspectExpr(e, func(e sql.Expression) bool {
		return !e.Resolved()
	}))
	require.False(InspectExpr(a, func(e sql.Expression) bool {
		return !e.Resolved()
	}))
}

func TestInspectAndWalk(t *testing.T) {
	require := require.New(t)

	a := expression.NewReferenceAttribute("a", sql.Long, false)
	relation := plan.NewRelation(sql.EmptySource, "t", sql.Schema{a})
	eval := plan.NewEval(sql.EmptySource, relation, []sql.NamedExpression{expression.NewAlias("x", a)})
	limit := plan.NewLimit(sql.EmptySource, 1, eval)

	var kinds []string
	Inspect(limit, func(n sql.Node) bool {
		kinds = append(kinds, n.Info().Kind())
		return true
	})
	require.Equal([]string{"Limit", "Eval", "Relation"}, kinds)

	kinds = nil
	Inspect(limit, func(n sql.Node) bool {
		kinds = append(kinds, n.Info().Kind())
		_, ok := n.(*plan.Eval)
		return !ok
	})
	require.Equal([]string{"Limit", "Eval"}, kinds)

	kinds = nil
	Walk(inspector(func(n sql.Node) bool {
		kinds = append(kinds, n.Info().Kind())
		return true
	}), limit)
	require.Equal([]string{"Limit", "Eval", "Relation"}, kinds)

	var exprs []string
	InspectExpressions(limit, func(e sql.Expression) bool {
		exprs = append(exprs, e.String())
		return true
	})
	require.Equal([]string{"x = a", "a"}, exprs)

	require.Len(Expressions(limit), 0)
	require.Len(Expressions(eval), 1)
	require.Len(Expressions(relation), 0)
}

func TestNodeWithPrune(t *testing.T) {
	require := require.New(t)

	a := expression.NewReferenceAttribute("a", sql.Long, false)
	relation := plan.NewRelation(sql.EmptySource, "t", sql.Schema{a})
	inner := plan.NewLimit(sql.EmptySource, 5, relation)
	eval := plan.NewEval(sql.EmptySource, inner, nil)
	outer := plan.NewLimit(sql.EmptySource, 10, eval)

	double := func(n sql.Node) (sql.Node, TreeIdentity, error) {
		if l, ok := n.(*plan.Limit); ok {
			return plan.NewLimit(l.Source(), l.Limit*2, l.Child()), NewTree, nil
		}
		return n, SameTree, nil
	}

	result, same, err := NodeWithPrune(outer, func(n sql.Node) bool {
		_, ok := n.(*plan.Eval)
		return !ok
	}, double)
	require.NoError(err)
	require.Equal(NewTree, same)
	require.Equal(int64(20), result.(*plan.Limit).Limit)
	require.True(result.(*plan.Limit).Child() == sql.Node(eval))

	result, _, err = Node(outer, double)
	require.NoError(err)
	require.Equal(int64(20), result.(*plan.Limit).Limit)
	require.Equal(int64(10), result.(*plan.Limit).Child().(*plan.Eval).Child().(*plan.Limit).Limit)
	require.Equal(int64(5), inner.Limit)
}
