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

import (
	"strconv"
	"sync/atomic"
)

// NameID is the identity of a named expression. Two attributes may share a
// name and still refer to different columns; they never share a NameID.
type NameID uint64

var lastNameID uint64

// NewNameID returns a NameID that has never been returned before in this
// process.
func NewNameID() NameID {
	return NameID(atomic.AddUint64(&lastNameID, 1))
}

func (id NameID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}
