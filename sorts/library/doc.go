// Package library implements library sort, also known as gapped insertion
// sort: an insertion-sort variant that keeps intentional gaps in a sparse
// working buffer so that inserting an element rarely has to shift others.
//
// # Algorithm
//
//  1. Allocate a buffer of twice the input length, all slots empty, and place
//     the first element in the middle.
//  2. For each remaining element, binary-search the buffer for a slot whose
//     occupied neighbors bracket the element, widening to a linear scan for
//     the nearest valid gap when the search converges on occupied slots.
//  3. When no valid gap remains near the target, rebalance: pull the occupied
//     slots out (already in order), then respace them evenly so later
//     insertions have room, and retry once.
//  4. If the retry also fails, abandon the buffer and finish with a plain
//     stable insertion sort over the original slice from the current element
//     onward.
//  5. On success, compact the occupied slots left-to-right back into the
//     input slice.
//
// The input slice is not touched until the final compaction (or the dense
// fallback), so a caller observing the slice mid-call sees the original
// contents.
//
// Comparisons go through the ordering policy of package sorts, so NaN,
// infinities and empty strings take their defined positions.
package library
