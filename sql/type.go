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

// Type is the data type of an expression. The plan only needs to carry types
// around; how values of each type behave is up to the execution layer.
type Type byte

const (
	// Unsupported is the type of columns the planner doesn't know about.
	Unsupported Type = iota
	// Null is the type of the NULL literal.
	Null
	// Boolean is a true/false value.
	Boolean
	// Integer is a 32-bit signed integer.
	Integer
	// Long is a 64-bit signed integer.
	Long
	// Double is a 64-bit floating point number.
	Double
	// Keyword is a string that is not analyzed.
	Keyword
	// Text is an analyzed string.
	Text
)

var typeNames = map[Type]string{
	Unsupported: "unsupported",
	Null:        "null",
	Boolean:     "boolean",
	Integer:     "integer",
	Long:        "long",
	Double:      "double",
	Keyword:     "keyword",
	Text:        "text",
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return typeNames[Unsupported]
}

// IsNumeric returns whether the type is a numeric one.
func IsNumeric(t Type) bool {
	return t == Integer || t == Long || t == Double
}

// IsString returns whether the type is a string one.
func IsString(t Type) bool {
	return t == Keyword || t == Text
}
