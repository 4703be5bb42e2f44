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

import "github.com/PauLopNun/go-sorts/sorts"

// gappedBuffer is the sparse working array: a slot array plus a parallel
// occupancy marker. Invariant: the occupied slots, read left to right, are
// non-decreasing under cmp.
type gappedBuffer[T any] struct {
	values   []T
	occupied []bool
	cmp      sorts.Comparator[T]
	count    int
}

func newGappedBuffer[T any](size int, cmp sorts.Comparator[T]) *gappedBuffer[T] {
	return &gappedBuffer[T]{
		values:   make([]T, size),
		occupied: make([]bool, size),
		cmp:      cmp,
	}
}

// place writes v into slot pos unconditionally.
func (g *gappedBuffer[T]) place(pos int, v T) {
	g.values[pos] = v
	g.occupied[pos] = true
	g.count++
}

// insert finds an order-consistent empty slot for v and places it there.
// It reports false when no such slot exists.
func (g *gappedBuffer[T]) insert(v T) bool {
	pos := g.findSlot(v)
	if pos < 0 {
		return false
	}
	g.place(pos, v)
	return true
}

// findSlot binary-searches for an insertion slot. An empty midpoint is taken
// when its occupied neighbors bracket v; an occupied midpoint narrows the
// range as usual. If the search converges without landing on a valid empty
// slot, nearestGap widens out from the final midpoint.
func (g *gappedBuffer[T]) findSlot(v T) int {
	left, right := 0, len(g.values)-1
	for left <= right {
		mid := left + (right-left)/2
		if !g.occupied[mid] {
			if g.fits(v, mid) {
				return mid
			}
			if g.searchLeft(v, mid) {
				right = mid - 1
			} else {
				left = mid + 1
			}
			continue
		}
		if g.cmp(v, g.values[mid]) < 0 {
			right = mid - 1
		} else {
			left = mid + 1
		}
	}
	return g.nearestGap(v, left)
}

// fits reports whether slot pos is empty-neighbor-consistent for v: v must
// be >= the nearest occupied value to the left and <= the nearest occupied
// value to the right.
func (g *gappedBuffer[T]) fits(v T, pos int) bool {
	for i := pos - 1; i >= 0; i-- {
		if g.occupied[i] {
			if g.cmp(v, g.values[i]) < 0 {
				return false
			}
			break
		}
	}
	for i := pos + 1; i < len(g.values); i++ {
		if g.occupied[i] {
			if g.cmp(v, g.values[i]) > 0 {
				return false
			}
			break
		}
	}
	return true
}

// searchLeft decides the binary-search direction from an invalid empty slot:
// go left when v sorts before the nearest occupied value to the right.
func (g *gappedBuffer[T]) searchLeft(v T, pos int) bool {
	for i := pos + 1; i < len(g.values); i++ {
		if g.occupied[i] {
			return g.cmp(v, g.values[i]) < 0
		}
	}
	return false
}

// nearestGap scans outward from center, alternating right and left offsets,
// for the nearest empty slot whose neighbors are order-consistent with v.
// Returns -1 when the buffer is exhausted.
func (g *gappedBuffer[T]) nearestGap(v T, center int) int {
	size := len(g.values)
	center = max(0, min(center, size-1))

	for offset := 0; offset < size; offset++ {
		if right := center + offset; right < size && !g.occupied[right] && g.fits(v, right) {
			return right
		}
		if left := center - offset; left >= 0 && !g.occupied[left] && g.fits(v, left) {
			return left
		}
	}
	return -1
}

// rebalance extracts the occupied slots in order (already sorted by the
// buffer invariant), clears the buffer, and respaces the elements evenly so
// later insertions have room.
func (g *gappedBuffer[T]) rebalance() {
	size := len(g.values)
	elems := make([]T, 0, g.count)
	var zero T
	for i, occ := range g.occupied {
		if occ {
			elems = append(elems, g.values[i])
			g.values[i] = zero
			g.occupied[i] = false
		}
	}
	if len(elems) == 0 {
		return
	}

	gap := max(1, size/(len(elems)+1))
	for i, v := range elems {
		pos := (i + 1) * gap
		if pos >= size {
			// Pack the tail of the element run against the end.
			pos = size - len(elems) + i
			if pos < 0 {
				pos = i
			}
		}
		pos = max(0, min(pos, size-1))
		g.values[pos] = v
		g.occupied[pos] = true
	}
}

// compact copies the occupied slots left-to-right into dst.
func (g *gappedBuffer[T]) compact(dst []T) {
	n := 0
	for i, occ := range g.occupied {
		if occ {
			dst[n] = g.values[i]
			n++
		}
	}
}
