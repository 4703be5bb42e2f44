// Copyright 2026 go-sorts Authors
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

package sorts

import "math"

// StructuralHash returns the fixed per-type hash used for bucket
// distribution: the numeric value itself for integers, the IEEE-754 bit
// pattern for floats (folded to 32 bits for float64), and a 31-polynomial
// over bytes for strings.
//
// The hash is structural, not rank-preserving: two values that compare in a
// given order may hash in the opposite order. Sorters that derive bucket
// indices from it inherit that limitation.
//
// Named types defined on top of the supported kinds hash to 0, which places
// all of their values in a single bucket.
func StructuralHash[T Ordered](v T) int {
	switch x := any(v).(type) {
	case int:
		return x
	case int8:
		return int(x)
	case int16:
		return int(x)
	case int32:
		return int(x)
	case int64:
		return int(x)
	case uint:
		return int(x)
	case uint8:
		return int(x)
	case uint16:
		return int(x)
	case uint32:
		return int(int32(x))
	case uint64:
		return int(x)
	case uintptr:
		return int(x)
	case float32:
		return int(int32(math.Float32bits(x)))
	case float64:
		return int(fold64(math.Float64bits(x)))
	case string:
		var h int32
		for i := 0; i < len(x); i++ {
			h = 31*h + int32(x[i])
		}
		return int(h)
	}
	return 0
}

// fold64 collapses a 64-bit value into 32 bits by xoring its halves.
func fold64(bits uint64) int32 {
	return int32(bits ^ bits>>32)
}
