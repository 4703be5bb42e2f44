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

// Comparator is a total-order comparison function. It returns a negative
// value if a sorts before b, zero if they compare equal, and a positive
// value if a sorts after b.
type Comparator[T any] func(a, b T) int

// ComparatorFor resolves the ordering strategy for T's concrete type.
// The strategy is selected once, not per comparison: floats get the
// NaN/Infinity rules, strings get the empty-first rule, everything else
// gets its natural order. Named types defined on top of float32/float64
// fall through to natural order, where NaN has no defined position.
func ComparatorFor[T Ordered]() Comparator[T] {
	var zero T
	switch any(zero).(type) {
	case float64:
		return func(a, b T) int {
			return compareFloat64(any(a).(float64), any(b).(float64))
		}
	case float32:
		return func(a, b T) int {
			return compareFloat32(any(a).(float32), any(b).(float32))
		}
	case string:
		return func(a, b T) int {
			return compareString(any(a).(string), any(b).(string))
		}
	}
	return compareNatural[T]
}

// compareNatural orders values by the built-in < operator.
func compareNatural[T Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case b < a:
		return 1
	}
	return 0
}

// compareFloat64 applies the floating-point ordering rules: NaN sorts after
// every non-NaN value and two NaNs compare equal. Infinities need no special
// case beyond that; they order correctly under <.
func compareFloat64(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFloat32(a, b float32) int {
	return compareFloat64(float64(a), float64(b))
}

// compareString orders the empty string before all non-empty strings, then
// falls back to byte-wise lexicographic order.
func compareString(a, b string) int {
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	case b == "":
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
