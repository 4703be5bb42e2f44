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

//go:generate go run ../../cmd/sortgen -pkg library -func Sort -types int,int32,int64,float32,float64,string -output z_library_types.go

package library

import "github.com/PauLopNun/go-sorts/sorts"

// gapFactor scales the working buffer relative to the input length.
const gapFactor = 2.0

// Sort sorts data in non-decreasing order under the ordering policy and
// returns it. A nil slice returns nil; a slice of length <= 1 is returned
// unchanged. The call always succeeds: if the gapped buffer cannot place an
// element even after a rebalance, the remainder of the call runs as a plain
// insertion sort over the original slice.
func Sort[T sorts.Ordered](data []T) []T {
	if data == nil {
		return nil
	}
	n := len(data)
	if n <= 1 {
		return data
	}

	cmp := sorts.ComparatorFor[T]()
	buf := newGappedBuffer(int(float64(n)*gapFactor), cmp)
	buf.place(len(buf.values)/2, data[0])

	for i := 1; i < n; i++ {
		if buf.insert(data[i]) {
			continue
		}
		buf.rebalance()
		if buf.insert(data[i]) {
			continue
		}
		// Gap search exhausted even after rebalancing: commit to the dense
		// phase for the rest of the call. The buffer's contents are
		// discarded; the fallback works on the original slice.
		return insertionSortFrom(data, i, cmp)
	}

	buf.compact(data)
	return data
}

// insertionSortFrom runs a stable insertion sort over data starting at
// index start.
func insertionSortFrom[T any](data []T, start int, cmp sorts.Comparator[T]) []T {
	for i := start; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && cmp(data[j], key) > 0 {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
	return data
}
