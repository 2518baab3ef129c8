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

package expression

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-logical-plan/sql"
)

func TestArithmeticType(t *testing.T) {
	testCases := []struct {
		name     string
		left     sql.Type
		right    sql.Type
		expected sql.Type
	}{
		{"int and int", sql.Integer, sql.Integer, sql.Integer},
		{"int and long", sql.Integer, sql.Long, sql.Long},
		{"long and double", sql.Long, sql.Double, sql.Double},
		{"null and long", sql.Null, sql.Long, sql.Long},
		{"keyword and keyword", sql.Keyword, sql.Keyword, sql.Unsupported},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			e := NewPlus(
				NewReferenceAttribute("l", tt.left, false),
				NewReferenceAttribute("r", tt.right, false),
			)
			require.Equal(t, tt.expected, e.Type())
		})
	}
}

func TestArithmeticEqual(t *testing.T) {
	require := require.New(t)

	a := NewReferenceAttribute("a", sql.Long, false)
	two := NewLiteral(int64(2), sql.Long)

	require.True(NewMult(a, two).Equal(NewMult(a, NewLiteral(int64(2), sql.Long))))
	require.Equal(NewMult(a, two).Hash(), NewMult(a, NewLiteral(int64(2), sql.Long)).Hash())
	require.False(NewMult(a, two).Equal(NewPlus(a, two)))
	require.False(NewMult(a, two).Equal(NewMult(two, a)))
	require.False(NewMult(a, two).Equal(NewGreaterThan(a, two)))
	require.Equal("a * 2", NewMult(a, two).String())
}

func TestArithmeticWithChildren(t *testing.T) {
	require := require.New(t)

	a := NewUnresolvedAttribute("a")
	e := NewDiv(a, NewLiteral(2.5, sql.Double))
	require.False(e.Resolved())

	ra := NewReferenceAttribute("a", sql.Double, true)
	ne, err := e.WithChildren(ra, NewLiteral(2.5, sql.Double))
	require.NoError(err)
	require.True(ne.Resolved())
	require.True(ne.Nullable())
	require.Equal(DivOp, ne.(*Arithmetic).Op)
	require.False(e.Resolved())

	_, err = e.WithChildren(ra)
	require.True(sql.ErrInvalidChildrenNumber.Is(err))
}

func TestComparison(t *testing.T) {
	require := require.New(t)

	a := NewReferenceAttribute("a", sql.Keyword, false)
	eq := NewEquals(a, NewLiteral("x", sql.Keyword))
	require.Equal(sql.Boolean, eq.Type())
	require.Equal(`a = "x"`, eq.String())
	require.True(eq.Equal(NewEquals(a, NewLiteral("x", sql.Keyword))))
	require.False(eq.Equal(NewNotEquals(a, NewLiteral("x", sql.Keyword))))
	require.False(eq.Equal(NewEquals(a, NewLiteral("y", sql.Keyword))))

	lt, err := NewLessThan(a, a).WithChildren(a, NewLiteral("z", sql.Keyword))
	require.NoError(err)
	require.Equal(LessThanOp, lt.(*Comparison).Op)
}

func TestLiteral(t *testing.T) {
	require := require.New(t)

	require.Equal("null", NewLiteral(nil, sql.Null).String())
	require.True(NewLiteral(nil, sql.Null).Nullable())
	require.Equal("42", NewLiteral(int64(42), sql.Long).String())
	require.Equal("true", NewLiteral(true, sql.Boolean).String())
	require.Equal(`"foo"`, NewLiteral("foo", sql.Keyword).String())

	require.True(NewLiteral(int64(1), sql.Long).Equal(NewLiteral(int64(1), sql.Long)))
	require.False(NewLiteral(int64(1), sql.Long).Equal(NewLiteral(int64(1), sql.Integer)))
	require.False(NewLiteral(int64(1), sql.Long).Equal(NewLiteral(int64(2), sql.Long)))
	require.Equal(NewLiteral("a", sql.Text).Hash(), NewLiteral("a", sql.Text).Hash())
}
