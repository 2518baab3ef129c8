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

package sql

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrTableAlreadyExists is thrown when someone tries to register a
	// table with a name of an existing one
	ErrTableAlreadyExists = errors.NewKind("table with name %s already exists")

	// ErrTableNotFound is returned when the table is not available from the
	// catalog.
	ErrTableNotFound = errors.NewKind("table not found: %s")

	// ErrInvalidChildrenNumber is returned when the WithChildren method of a
	// node or expression is called with an invalid number of arguments.
	ErrInvalidChildrenNumber = errors.NewKind("%T: invalid children number, got %d, expected %d")

	// ErrInvalidChildType is returned when the WithChildren method of a
	// node or expression is called with an invalid child type. This error is indicative of a bug.
	ErrInvalidChildType = errors.NewKind("%T: invalid child type, got %T, expected %T")

	// ErrInvalidPropertiesNumber is returned when a node is rebuilt from its
	// NodeInfo with the wrong number of properties.
	ErrInvalidPropertiesNumber = errors.NewKind("%s: invalid properties number, got %d, expected %d")

	// ErrInvalidPropertyType is returned when a node is rebuilt from its
	// NodeInfo with a property of the wrong type.
	ErrInvalidPropertyType = errors.NewKind("%s: invalid property %d type, got %T")

	// ErrNilChild is the panic value of node constructors given a nil child.
	ErrNilChild = errors.NewKind("%s: child node cannot be nil")
)
