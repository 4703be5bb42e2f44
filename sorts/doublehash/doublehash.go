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

//go:generate go run ../../cmd/sortgen -pkg doublehash -func Sort -types int,int32,int64,float32,float64,string -output z_doublehash_types.go

package doublehash

import (
	"errors"
	"math"

	"github.com/PauLopNun/go-sorts/sorts"
)

// maxBucketCount caps the number of hash buckets; inputs shorter than the
// cap get one bucket per element.
const maxBucketCount = 10

// ErrMissingValue is returned by SortPtrs when the input contains a nil
// element. The input is left as it was; there is no partial output.
var ErrMissingValue = errors.New("input contains a missing value")

// Sort sorts data in place in non-decreasing order under the ordering policy
// and returns it. A nil slice returns nil; a slice of length <= 1 is returned
// unchanged. See the package documentation for the bucket-monotonicity
// limitation of the hash formula.
func Sort[T sorts.Ordered](data []T) []T {
	if data == nil {
		return nil
	}
	if len(data) <= 1 {
		return data
	}

	bucketCount := min(len(data), maxBucketCount)
	buckets := make([][]T, bucketCount)
	for _, v := range data {
		i := bucketIndex(v, bucketCount)
		buckets[i] = append(buckets[i], v)
	}

	cmp := sorts.ComparatorFor[T]()
	out := 0
	for _, bucket := range buckets {
		sorts.InsertionSortFunc(bucket, cmp)
		out += copy(data[out:], bucket)
	}
	return data
}

// SortPtrs sorts a slice of pointers by pointee order. A nil slice returns
// nil and a slice of length <= 1 is returned unchanged; otherwise any nil
// element is a missing value and the call fails with ErrMissingValue.
func SortPtrs[T sorts.Ordered](data []*T) ([]*T, error) {
	if data == nil {
		return nil, nil
	}
	if len(data) <= 1 {
		return data, nil
	}
	for _, p := range data {
		if p == nil {
			return nil, ErrMissingValue
		}
	}

	bucketCount := min(len(data), maxBucketCount)
	buckets := make([][]*T, bucketCount)
	for _, p := range data {
		i := bucketIndex(*p, bucketCount)
		buckets[i] = append(buckets[i], p)
	}

	cmp := sorts.ComparatorFor[T]()
	out := 0
	for _, bucket := range buckets {
		sorts.InsertionSortFunc(bucket, func(a, b *T) int { return cmp(*a, *b) })
		out += copy(data[out:], bucket)
	}
	return data, nil
}

// bucketIndex computes the documented two-hash bucket assignment.
func bucketIndex[T sorts.Ordered](v T, bucketCount int) int {
	h := absHash(sorts.StructuralHash(v))
	h1 := h % bucketCount
	h2 := 7 - h%7
	return (h1 + h2) % bucketCount
}

// absHash returns a non-negative hash. The sign bit is cleared after
// negation so that MinInt cannot produce a negative bucket index.
func absHash(h int) int {
	if h < 0 {
		h = -h
	}
	return h & math.MaxInt
}
