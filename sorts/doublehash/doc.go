// Package doublehash implements a bucketed double-hash sort: elements are
// distributed into at most 10 buckets by a fixed two-hash-function index,
// each bucket is insertion sorted under the ordering policy, and the buckets
// are concatenated in index order.
//
// # Algorithm
//
// For each element, with h the structural hash of the element:
//
//	h1 = abs(h) mod bucketCount
//	h2 = 7 - (abs(h) mod 7)
//	index = (h1 + h2) mod bucketCount
//
// This is a single-probe double-hash combination; there is no open-addressing
// retry, so colliding elements simply share a bucket.
//
// # Correctness Limitation
//
// Concatenating independently sorted buckets yields a globally sorted result
// only when the bucket mapping is rank-monotonic: everything in bucket i must
// be <= everything in bucket i+1. The fixed arithmetic above does not
// guarantee that for arbitrary data. The sorter is fully ordered only when the
// structural hash of the element type happens to correlate with its rank
// (true for some numeric ranges, false in general — arbitrary strings being
// the usual counterexample). The formula is kept as documented behavior; do
// not substitute a monotonic bucketing scheme without changing this notice,
// since that changes observable intermediate state.
//
// A useful degenerate case: when bucketCount is exactly 7, h1 + h2 is always
// 7, so every element lands in bucket 0 and the result is a plain insertion
// sort of the whole input.
package doublehash
