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

// InsertionSortFunc sorts data in place under cmp. It is stable: elements
// that compare equal keep their relative input order. Intended for small
// slices such as hash buckets.
func InsertionSortFunc[T any](data []T, cmp Comparator[T]) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && cmp(data[j], key) > 0 {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}
