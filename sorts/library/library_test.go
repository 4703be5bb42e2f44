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
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/PauLopNun/go-sorts/sorts"
)

func TestSortNil(t *testing.T) {
	var data []int
	if got := Sort(data); got != nil {
		t.Errorf("Sort(nil) = %v, want nil", got)
	}
}

func TestSortEmpty(t *testing.T) {
	data := []int{}
	got := Sort(data)
	if got == nil || len(got) != 0 {
		t.Errorf("Sort(empty) = %v, want empty", got)
	}
}

func TestSortSingle(t *testing.T) {
	data := []int{42}
	got := Sort(data)
	if len(got) != 1 || got[0] != 42 {
		t.Errorf("Sort([42]) = %v, want [42]", got)
	}
}

func TestSortTwoElements(t *testing.T) {
	data := []int{5, 2}
	want := []int{2, 5}
	if got := Sort(data); !slices.Equal(got, want) {
		t.Errorf("Sort = %v, want %v", got, want)
	}
}

func TestSortAllSame(t *testing.T) {
	data := []int{7, 7, 7, 7, 7}
	want := []int{7, 7, 7, 7, 7}
	if got := Sort(data); !slices.Equal(got, want) {
		t.Errorf("Sort = %v, want %v", got, want)
	}
}

func TestSortAlreadySorted(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	want := slices.Clone(data)
	if got := Sort(data); !slices.Equal(got, want) {
		t.Errorf("Sort(sorted) = %v, want %v", got, want)
	}
}

func TestSortReverse(t *testing.T) {
	data := []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if got := Sort(data); !slices.Equal(got, want) {
		t.Errorf("Sort(reverse) = %v, want %v", got, want)
	}
}

func TestSortRandomVector(t *testing.T) {
	data := []int{64, 34, 25, 12, 22, 11, 90}
	want := []int{11, 12, 22, 25, 34, 64, 90}
	if got := Sort(data); !slices.Equal(got, want) {
		t.Errorf("Sort = %v, want %v", got, want)
	}
}

func TestSortDuplicates(t *testing.T) {
	data := []int{5, 2, 8, 2, 9, 1, 5, 4}
	want := []int{1, 2, 2, 4, 5, 5, 8, 9}
	if got := Sort(data); !slices.Equal(got, want) {
		t.Errorf("Sort = %v, want %v", got, want)
	}
}

func TestSortNegatives(t *testing.T) {
	data := []int{-5, -1, -10, -3, -8}
	want := []int{-10, -8, -5, -3, -1}
	if got := Sort(data); !slices.Equal(got, want) {
		t.Errorf("Sort = %v, want %v", got, want)
	}
}

func TestSortMixedSigns(t *testing.T) {
	data := []int{-3, 5, -1, 8, 0, -7, 2}
	want := []int{-7, -3, -1, 0, 2, 5, 8}
	if got := Sort(data); !slices.Equal(got, want) {
		t.Errorf("Sort = %v, want %v", got, want)
	}
}

// TestSortRebalanceStress interleaves high and low values so insertions
// cluster at both ends of the buffer and force rebalancing.
func TestSortRebalanceStress(t *testing.T) {
	data := []int{100, 1, 99, 2, 98, 3, 97, 4, 96, 5, 95, 6, 94, 7, 93, 8}
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 93, 94, 95, 96, 97, 98, 99, 100}
	if got := Sort(data); !slices.Equal(got, want) {
		t.Errorf("Sort = %v, want %v", got, want)
	}
}

func TestSortLargerVector(t *testing.T) {
	data := []int{23, 45, 16, 37, 3, 99, 22, 55, 33, 12, 67, 89, 8, 41, 77}
	want := []int{3, 8, 12, 16, 22, 23, 33, 37, 41, 45, 55, 67, 77, 89, 99}
	if got := Sort(data); !slices.Equal(got, want) {
		t.Errorf("Sort = %v, want %v", got, want)
	}
}

// TestSortPseudoRandomPattern stresses rebalancing with 50 patterned values.
func TestSortPseudoRandomPattern(t *testing.T) {
	data := make([]int, 50)
	for i := range data {
		data[i] = (i*17 + 13) % 100
	}
	want := slices.Clone(data)
	slices.Sort(want)

	if got := Sort(data); !slices.Equal(got, want) {
		t.Errorf("Sort(patterned) = %v, want %v", got, want)
	}
}

func TestSortFloatSentinels(t *testing.T) {
	data := []float64{math.NaN(), 1.0, math.NaN(), math.Inf(-1), math.Inf(1)}
	got := Sort(data)

	if !math.IsInf(got[0], -1) {
		t.Errorf("got[0] = %v, want -Inf", got[0])
	}
	if got[1] != 1.0 {
		t.Errorf("got[1] = %v, want 1.0", got[1])
	}
	if !math.IsInf(got[2], 1) {
		t.Errorf("got[2] = %v, want +Inf", got[2])
	}
	if !math.IsNaN(got[3]) || !math.IsNaN(got[4]) {
		t.Errorf("got[3:] = %v, want two NaNs", got[3:])
	}
}

func TestSortStrings(t *testing.T) {
	tests := []struct {
		name string
		data []string
		want []string
	}{
		{
			"plain",
			[]string{"banana", "apple", "cherry", "date", "elderberry"},
			[]string{"apple", "banana", "cherry", "date", "elderberry"},
		},
		{
			"empty_first",
			[]string{"", "banana", "apple", ""},
			[]string{"", "", "apple", "banana"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sort(tt.data); !slices.Equal(got, tt.want) {
				t.Errorf("Sort = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestSortIdempotent sorts twice; the second pass must be a no-op.
func TestSortIdempotent(t *testing.T) {
	data := []int{64, 34, 25, 12, 22, 11, 90}
	Sort(data)
	want := slices.Clone(data)
	Sort(data)
	if !slices.Equal(data, want) {
		t.Errorf("second Sort = %v, want %v", data, want)
	}
}

// TestSortReturnsSameSlice checks the ownership contract: the result is the
// caller's slice, compacted in place.
func TestSortReturnsSameSlice(t *testing.T) {
	data := []int{3, 1, 2}
	got := Sort(data)
	if &got[0] != &data[0] {
		t.Error("Sort returned a different backing array")
	}
}

func TestSortRandom(t *testing.T) {
	sizes := []int{2, 3, 7, 8, 15, 16, 31, 32, 63, 64, 100, 256, 1000}
	for _, n := range sizes {
		data := make([]int, n)
		for i := range data {
			data[i] = rand.Intn(10000) - 5000
		}
		want := slices.Clone(data)
		slices.Sort(want)

		if got := Sort(data); !slices.Equal(got, want) {
			t.Errorf("Sort(random, n=%d) not sorted", n)
		}
	}
}

func TestSortRandomFloat64(t *testing.T) {
	sizes := []int{2, 16, 100, 1000}
	for _, n := range sizes {
		data := make([]float64, n)
		for i := range data {
			data[i] = rand.Float64()*2000 - 1000
		}
		want := slices.Clone(data)
		slices.Sort(want)

		if got := Sort(data); !slices.Equal(got, want) {
			t.Errorf("Sort(random float64, n=%d) not sorted", n)
		}
	}
}

// TestInsertionSortFrom pins the dense-phase semantics: the pass runs over
// the whole slice starting at the given index, so an unsorted prefix is not
// repaired, exactly as the fallback contract states.
func TestInsertionSortFrom(t *testing.T) {
	cmp := sorts.ComparatorFor[int]()

	data := []int{3, 1, 2, 5, 4}
	got := insertionSortFrom(data, 3, cmp)
	want := []int{3, 1, 2, 4, 5}
	if !slices.Equal(got, want) {
		t.Errorf("insertionSortFrom(_, 3) = %v, want %v", got, want)
	}

	// From index 1 it behaves as a full stable insertion sort.
	data = []int{9, 4, 7, 1}
	got = insertionSortFrom(data, 1, cmp)
	want = []int{1, 4, 7, 9}
	if !slices.Equal(got, want) {
		t.Errorf("insertionSortFrom(_, 1) = %v, want %v", got, want)
	}
}

// TestGappedBufferInvariant drives the buffer directly and checks that the
// occupied slots stay non-decreasing after every insertion and rebalance.
func TestGappedBufferInvariant(t *testing.T) {
	cmp := sorts.ComparatorFor[int]()
	buf := newGappedBuffer(16, cmp)
	buf.place(8, 50)

	values := []int{10, 90, 30, 70, 20, 80, 40}
	for _, v := range values {
		if !buf.insert(v) {
			buf.rebalance()
			if !buf.insert(v) {
				t.Fatalf("insert(%d) failed after rebalance", v)
			}
		}
		checkBufferOrdered(t, buf)
	}

	buf.rebalance()
	checkBufferOrdered(t, buf)
	if buf.count != len(values)+1 {
		t.Errorf("count = %d, want %d", buf.count, len(values)+1)
	}

	out := make([]int, buf.count)
	buf.compact(out)
	want := []int{10, 20, 30, 40, 50, 70, 80, 90}
	if !slices.Equal(out, want) {
		t.Errorf("compact = %v, want %v", out, want)
	}
}

func checkBufferOrdered(t *testing.T, buf *gappedBuffer[int]) {
	t.Helper()
	prev, have := 0, false
	for i, occ := range buf.occupied {
		if !occ {
			continue
		}
		if have && buf.values[i] < prev {
			t.Fatalf("buffer order violated at slot %d: %d after %d", i, buf.values[i], prev)
		}
		prev, have = buf.values[i], true
	}
}
