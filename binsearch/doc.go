// Package binsearch collects the binary-search family of interview problems:
// half-interval search over sorted data, search-on-the-answer, rotated-array
// pivots, two-array partitioning and a versioned key-value store.
//
// What
//
//   - Search: classic binary search; index of target or -1.
//   - SearchMatrix: membership in a row-major sorted 2D matrix.
//   - MinEatingSpeed: smallest eating speed finishing all piles in time (Koko).
//   - FindMinRotated / SearchRotated: pivot handling in rotated sorted arrays.
//   - MedianSortedArrays: median of two sorted arrays in O(log min(n, m)).
//   - TimeMap: Set/Get key-value store resolving reads at-or-before a timestamp.
//
// Why
//
//	Every problem here is the same move — keep an invariant ("the answer lies
//	in [lo, hi]") and discard half the range per step — applied to ever less
//	obvious search spaces: an index, a speed, a rotation pivot, a partition
//	point, a version history.
//
// Complexity
//
//   - Search, FindMinRotated, SearchRotated: O(log n).
//   - SearchMatrix: O(log(r·c)).
//   - MinEatingSpeed: O(n log max(pile)).
//   - MedianSortedArrays: O(log min(n, m)).
//   - TimeMap.Set: amortized O(1); TimeMap.Get: O(log versions).
//
// Usage
//
//	i := binsearch.Search([]int{-1, 0, 3, 5, 9, 12}, 9) // 4; -1 if absent
//
//	speed, err := binsearch.MinEatingSpeed([]int{3, 6, 7, 11}, 8) // 4
//
//	tm := binsearch.NewTimeMap()
//	tm.Set("love", "high", 10)
//	v, ok := tm.Get("love", 15) // "high", true
//
// Errors
//
//   - ErrEmptyInput     from FindMinRotated and MedianSortedArrays.
//   - ErrInfeasible     when Koko has fewer hours than piles.
//   - ErrStaleTimestamp when TimeMap.Set timestamps regress for a key.
package binsearch
