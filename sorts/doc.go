// Package sorts provides the shared ordering machinery used by the sorting
// algorithms in this module: type constraints, a total-order comparison policy,
// a structural hash for bucket distribution, and a small stable insertion sort.
//
// # Ordering Policy
//
// Every sorter in this module compares elements through a Comparator obtained
// from ComparatorFor, which resolves one fixed strategy per concrete element
// type:
//
//   - Floating point: NaN sorts after every non-NaN value (two NaNs compare
//     equal); negative infinity sorts before all finite values; positive
//     infinity sorts after all finite values; otherwise numeric order.
//   - Strings: the empty string sorts before all non-empty strings; otherwise
//     standard lexicographic (byte-wise) order.
//   - Integers (including bytes and runes): natural numeric / code-point order.
//   - Any other type admitted by the Ordered constraint: its natural order.
//
// # Example Usage
//
//	import "github.com/PauLopNun/go-sorts/sorts"
//
//	cmp := sorts.ComparatorFor[float64]()
//	sorts.InsertionSortFunc(data, cmp)
//
// The algorithm packages sorts/doublehash and sorts/library build on this
// package; callers normally use those directly.
package sorts
