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

package hash

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/mitchellh/hashstructure"
)

var digestPool = sync.Pool{
	New: func() interface{} {
		return xxhash.New()
	},
}

// Of returns the hash of the given values, written one after the other. It is
// safe to call concurrently.
func Of(values ...interface{}) uint64 {
	digest := digestPool.Get().(*xxhash.Digest)
	digest.Reset()
	defer digestPool.Put(digest)

	for i, v := range values {
		if i > 0 {
			// separate each value with a nil byte
			_, _ = digest.Write([]byte{0})
		}
		writeValue(digest, v)
	}
	return digest.Sum64()
}

// Strings returns the hash of a list of strings.
func Strings(values ...string) uint64 {
	digest := digestPool.Get().(*xxhash.Digest)
	digest.Reset()
	defer digestPool.Put(digest)

	for i, v := range values {
		if i > 0 {
			_, _ = digest.Write([]byte{0})
		}
		_, _ = digest.WriteString(v)
	}
	return digest.Sum64()
}

func writeValue(digest *xxhash.Digest, v interface{}) {
	var buf [8]byte
	switch v := v.(type) {
	case nil:
		_, _ = digest.Write([]byte{0xff})
	case string:
		_, _ = digest.WriteString(v)
	case uint64:
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = digest.Write(buf[:])
	case int:
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = digest.Write(buf[:])
	case bool:
		if v {
			_, _ = digest.Write([]byte{1})
		} else {
			_, _ = digest.Write([]byte{2})
		}
	case []uint64:
		for _, h := range v {
			binary.LittleEndian.PutUint64(buf[:], h)
			_, _ = digest.Write(buf[:])
		}
	default:
		h, err := hashstructure.Hash(v, nil)
		if err != nil {
			// values hashstructure can't walk still get a stable hash from
			// their Go representation
			_, _ = fmt.Fprintf(digest, "%#v", v)
			return
		}
		binary.LittleEndian.PutUint64(buf[:], h)
		_, _ = digest.Write(buf[:])
	}
}
