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

import "fmt"

// Source is the location of a node in the query text it was parsed from. It's
// carried along for error messages and never takes part in plan equality.
type Source struct {
	Line   int
	Column int
	Text   string
}

// EmptySource is used for nodes that don't come from any query text, such as
// the ones created by the analyzer.
var EmptySource = Source{}

// IsEmpty returns whether the source has no location.
func (s Source) IsEmpty() bool {
	return s == EmptySource
}

func (s Source) String() string {
	if s.IsEmpty() {
		return "<synthetic>"
	}
	return fmt.Sprintf("line %d:%d: %s", s.Line, s.Column, s.Text)
}
