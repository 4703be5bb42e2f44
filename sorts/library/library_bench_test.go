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

package library

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"
)

var benchSizes = []int{100, 1000, 10000}

func generateInts(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = rand.Intn(100000) - 50000
	}
	return data
}

func BenchmarkSort(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := generateInts(n)
			data := make([]int, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(data, src)
				Sort(data)
			}
		})
	}
}

func BenchmarkSortPresorted(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := generateInts(n)
			slices.Sort(src)
			data := make([]int, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(data, src)
				Sort(data)
			}
		})
	}
}

func BenchmarkStdlibSort(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := generateInts(n)
			data := make([]int, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(data, src)
				slices.Sort(data)
			}
		})
	}
}
