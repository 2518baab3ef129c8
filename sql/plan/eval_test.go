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

package plan

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-logical-plan/sql"
	"github.com/dolthub/go-logical-plan/sql/expression"
)

func TestEvalSchemaShadowing(t *testing.T) {
	require := require.New(t)

	a := expression.NewReferenceAttribute("a", sql.Long, false)
	b := expression.NewReferenceAttribute("b", sql.Long, false)
	c := expression.NewReferenceAttribute("c", sql.Long, false)
	child := NewRelation(sql.EmptySource, "t", sql.Schema{a, b, c})

	newB := expression.NewAlias("b", expression.NewPlus(a, expression.NewLiteral(int64(1), sql.Long)))
	eval := NewEval(sql.EmptySource, child, []sql.NamedExpression{newB})

	schema := eval.Schema()
	require.Equal([]string{"a", "c", "b"}, schema.Names())
	require.True(schema[0] == sql.Attribute(a))
	require.True(schema[1] == sql.Attribute(c))
	require.Equal(newB.ID(), schema[2].ID())
	require.NotEqual(b.ID(), schema[2].ID())
	require.False(schema.ContainsID(b.ID()))
}

func TestEvalSchemaExample(t *testing.T) {
	require := require.New(t)

	id := expression.NewReferenceAttribute("id", sql.Long, false)
	value := expression.NewReferenceAttribute("value", sql.Long, false)
	child := NewRelation(sql.EmptySource, "t", sql.Schema{id, value})

	two := expression.NewLiteral(int64(2), sql.Long)
	newValue := expression.NewAlias("value", expression.NewMult(value, two))
	doubled := expression.NewAlias("doubled", expression.NewMult(value, two))
	eval := NewEval(sql.EmptySource, child, []sql.NamedExpression{newValue, doubled})

	schema := eval.Schema()
	require.Equal([]string{"id", "value", "doubled"}, schema.Names())
	require.True(schema[0] == sql.Attribute(id))
	require.Equal(newValue.ID(), schema[1].ID())
	require.Equal(doubled.ID(), schema[2].ID())
	require.Equal(sql.Long, schema[2].Type())

	require.Equal(`Eval(value = value * 2, doubled = value * 2)
 └─ Relation(t)[id, value]
`, eval.String())
}

func TestEvalEmptyFieldsIsIdentity(t *testing.T) {
	require := require.New(t)

	a := expression.NewReferenceAttribute("a", sql.Long, false)
	b := expression.NewReferenceAttribute("b", sql.Keyword, true)
	child := NewRelation(sql.EmptySource, "t", sql.Schema{a, b})

	for _, fields := range [][]sql.NamedExpression{nil, {}} {
		eval := NewEval(sql.EmptySource, child, fields)
		schema := eval.Schema()
		require.True(schema.Equals(child.Schema()))
		require.Len(schema, 2)
		require.True(schema[0] == sql.Attribute(a))
		require.True(schema[1] == sql.Attribute(b))
		require.True(eval.ExpressionsResolved())
	}
}

func TestEvalDuplicateFieldNames(t *testing.T) {
	require := require.New(t)

	a := expression.NewReferenceAttribute("a", sql.Long, false)
	x := expression.NewReferenceAttribute("x", sql.Long, false)
	child := NewRelation(sql.EmptySource, "t", sql.Schema{a, x})

	x1 := expression.NewAlias("x", expression.NewLiteral(int64(1), sql.Long))
	x2 := expression.NewAlias("x", expression.NewLiteral(int64(2), sql.Long))
	eval := NewEval(sql.EmptySource, child, []sql.NamedExpression{x1, x2})

	schema := eval.Schema()
	require.Equal([]string{"a", "x", "x"}, schema.Names())
	require.Equal(x1.ID(), schema[1].ID())
	require.Equal(x2.ID(), schema[2].ID())
}

func TestEvalExpressionsResolved(t *testing.T) {
	require := require.New(t)

	a := expression.NewReferenceAttribute("a", sql.Long, false)
	child := NewRelation(sql.EmptySource, "t", sql.Schema{a})

	resolved := expression.NewAlias("x", expression.NewPlus(a, a))
	unresolved := expression.NewAlias("y", expression.NewUnresolvedAttribute("b"))

	eval := NewEval(sql.EmptySource, child, []sql.NamedExpression{resolved})
	require.True(eval.ExpressionsResolved())
	require.True(Resolved(eval))

	eval = eval.WithFields([]sql.NamedExpression{resolved, unresolved})
	require.False(eval.ExpressionsResolved())
	require.False(Resolved(eval))

	// the state of the child does not matter
	eval = NewEval(sql.EmptySource, NewUnresolvedRelation(sql.EmptySource, "t"), []sql.NamedExpression{resolved})
	require.True(eval.ExpressionsResolved())
	require.False(Resolved(eval))
}

func TestEvalSchemaUnresolved(t *testing.T) {
	require := require.New(t)

	a := expression.NewReferenceAttribute("a", sql.Long, false)
	child := NewRelation(sql.EmptySource, "t", sql.Schema{a})
	y := expression.NewAlias("y", expression.NewUnresolvedAttribute("b"))
	eval := NewEval(sql.EmptySource, child, []sql.NamedExpression{y})

	schema := eval.Schema()
	require.Equal([]string{"a", "y"}, schema.Names())
	require.False(schema[1].Resolved())
	require.Equal(y.ID(), schema[1].ID())
	require.True(schema.Equals(eval.Schema()))
}

func TestEvalEqualAndHash(t *testing.T) {
	require := require.New(t)

	a := expression.NewReferenceAttribute("a", sql.Long, false)
	x := expression.NewAlias("x", expression.NewPlus(a, expression.NewLiteral(int64(1), sql.Long)))
	y := expression.NewAlias("y", expression.NewMult(a, expression.NewLiteral(int64(2), sql.Long)))

	relation := func() sql.Node {
		return NewRelation(sql.Source{Line: 1, Column: 1, Text: "FROM t"}, "t", sql.Schema{a})
	}

	e1 := NewEval(sql.EmptySource, relation(), []sql.NamedExpression{x, y})
	e2 := NewEval(sql.Source{Line: 1, Column: 8, Text: "EVAL x = a + 1"}, relation(), []sql.NamedExpression{x, y})
	require.True(Equal(e1, e2))
	require.True(Equal(e2, e1))
	require.Equal(Hash(e1), Hash(e2))

	reordered := NewEval(sql.EmptySource, relation(), []sql.NamedExpression{y, x})
	require.False(Equal(e1, reordered))
	require.Equal(e1.Schema().Names(), []string{"a", "x", "y"})
	require.Equal(reordered.Schema().Names(), []string{"a", "y", "x"})

	otherChild := NewEval(sql.EmptySource, NewRelation(sql.EmptySource, "u", sql.Schema{a}), []sql.NamedExpression{x, y})
	require.False(Equal(e1, otherChild))

	filter := NewFilter(sql.EmptySource, expression.NewEquals(a, a), relation())
	require.False(Equal(e1, filter))
	require.False(Equal(e1, nil))
	require.True(Equal(nil, nil))
}

func TestEvalReplaceChild(t *testing.T) {
	require := require.New(t)

	a := expression.NewReferenceAttribute("a", sql.Long, false)
	b := expression.NewReferenceAttribute("b", sql.Long, false)
	c1 := NewRelation(sql.EmptySource, "t", sql.Schema{a})
	c2 := NewRelation(sql.EmptySource, "u", sql.Schema{b})
	x := expression.NewAlias("x", expression.NewLiteral(int64(1), sql.Long))

	n := NewEval(sql.Source{Line: 2, Column: 3}, c1, []sql.NamedExpression{x})
	n2 := n.ReplaceChild(c2)

	require.True(n.Child() == sql.Node(c1))
	require.True(n2.Child() == sql.Node(c2))
	require.IsType(&Eval{}, n2)
	require.Equal(n.Source(), n2.Source())
	require.Equal(n.Fields(), n2.(*Eval).Fields())
	require.Equal([]string{"a", "x"}, n.Schema().Names())
	require.Equal([]string{"b", "x"}, n2.Schema().Names())

	wc, err := n.WithChildren(c2)
	require.NoError(err)
	require.True(Equal(n2, wc))

	_, err = n.WithChildren(c1, c2)
	require.True(sql.ErrInvalidChildrenNumber.Is(err))
	_, err = n.WithChildren()
	require.True(sql.ErrInvalidChildrenNumber.Is(err))

	require.Panics(func() { n.ReplaceChild(nil) })
	require.Panics(func() { NewEval(sql.EmptySource, nil, nil) })
}

func TestEvalInfo(t *testing.T) {
	require := require.New(t)

	a := expression.NewReferenceAttribute("a", sql.Long, false)
	child := NewRelation(sql.EmptySource, "t", sql.Schema{a})
	x := expression.NewAlias("x", expression.NewLiteral(int64(1), sql.Long))
	eval := NewEval(sql.EmptySource, child, []sql.NamedExpression{x})

	info := eval.Info()
	require.Equal("Eval", info.Kind())
	require.Len(info.Children(), 1)
	require.Len(info.Properties(), 1)

	rebuilt, err := info.Rebuild(info.Children(), info.Properties())
	require.NoError(err)
	require.True(Equal(eval, rebuilt))
	require.False(rebuilt == sql.Node(eval))

	_, err = info.Rebuild(info.Children(), []interface{}{"x"})
	require.True(sql.ErrInvalidPropertyType.Is(err))
	_, err = info.Rebuild(info.Children(), nil)
	require.True(sql.ErrInvalidPropertiesNumber.Is(err))
	_, err = info.Rebuild(nil, info.Properties())
	require.True(sql.ErrInvalidChildrenNumber.Is(err))
}

func TestEvalConcurrentReaders(t *testing.T) {
	a := expression.NewReferenceAttribute("a", sql.Long, false)
	child := NewRelation(sql.EmptySource, "t", sql.Schema{a})
	x := expression.NewAlias("a", expression.NewPlus(a, a))
	eval := NewEval(sql.EmptySource, child, []sql.NamedExpression{x})
	expectedHash := Hash(eval)
	expectedSchema := eval.Schema()

	var wg sync.WaitGroup
	errs := make(chan string, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if Hash(eval) != expectedHash {
				errs <- "hash"
			}
			if !eval.Schema().Equals(expectedSchema) {
				errs <- "schema"
			}
			other := eval.ReplaceChild(child)
			if !Equal(eval, other) {
				errs <- "equal"
			}
		}()
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Errorf("concurrent %s mismatch", e)
	}
}
