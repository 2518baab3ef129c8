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

func TestAliasToAttribute(t *testing.T) {
	require := require.New(t)

	value := NewReferenceAttribute("value", sql.Long, false)
	alias := NewAlias("doubled", NewMult(value, NewLiteral(int64(2), sql.Long)))
	require.True(alias.Resolved())
	require.Equal(sql.Long, alias.Type())
	require.Equal("doubled = value * 2", alias.String())

	attr := alias.ToAttribute()
	require.True(attr.Resolved())
	require.Equal("doubled", attr.Name())
	require.Equal(alias.ID(), attr.ID())
	require.Equal(sql.Long, attr.Type())
	require.False(attr.Nullable())
	require.True(attr.Equal(alias.ToAttribute()))
}

func TestAliasToAttributeUnresolved(t *testing.T) {
	require := require.New(t)

	alias := NewAlias("doubled", NewMult(NewUnresolvedAttribute("value"), NewLiteral(int64(2), sql.Long)))
	require.False(alias.Resolved())

	attr := alias.ToAttribute()
	require.False(attr.Resolved())
	require.IsType(&UnresolvedAttribute{}, attr)
	require.Equal("doubled", attr.Name())
	require.Equal(alias.ID(), attr.ID())
	require.True(attr.Equal(alias.ToAttribute()))
}

func TestAliasWithChildren(t *testing.T) {
	require := require.New(t)

	alias := NewAlias("x", NewUnresolvedAttribute("a"))
	a := NewReferenceAttribute("a", sql.Integer, true)

	e, err := alias.WithChildren(a)
	require.NoError(err)
	na := e.(*Alias)
	require.Equal(alias.ID(), na.ID())
	require.Equal("x", na.Name())
	require.True(na.Resolved())
	require.False(alias.Resolved())

	_, err = alias.WithChildren(a, a)
	require.True(sql.ErrInvalidChildrenNumber.Is(err))
}

func TestAliasEqual(t *testing.T) {
	require := require.New(t)

	a := NewReferenceAttribute("a", sql.Integer, false)
	alias := NewAlias("x", NewPlus(a, NewLiteral(1, sql.Integer)))
	same := NewAliasWithID(alias.ID(), "x", NewPlus(a, NewLiteral(1, sql.Integer)))
	other := NewAlias("x", NewPlus(a, NewLiteral(1, sql.Integer)))

	require.True(alias.Equal(same))
	require.Equal(alias.Hash(), same.Hash())
	require.False(alias.Equal(other))
	require.False(alias.Equal(alias.ToAttribute()))
}
