// Package twoptr collects the two-pointer family of interview problems:
// converging scans over strings and arrays that replace quadratic pair
// enumeration with a single linear sweep.
//
// What
//
//   - IsPalindrome: alphanumeric, case-folded palindrome check.
//   - TwoSumSorted: pair summing to a target in a sorted array (1-based indices).
//   - ThreeSum: all unique triples summing to zero.
//   - MaxArea: the container-with-most-water maximum.
//   - Trap: trapped rain water over an elevation map, two strategies.
//
// Why
//
//	Sorted or symmetric structure lets two indices move toward each other,
//	discarding a provably useless candidate at every step. These drills teach
//	the "which pointer moves, and why is that safe" argument.
//
// Complexity (n = len(input))
//
//   - IsPalindrome, TwoSumSorted, MaxArea: O(n) time, O(1) memory.
//   - ThreeSum: O(n²) time after an O(n log n) sort.
//   - Trap: O(n) time; O(1) memory with TwoPointers, O(n) with PrefixSuffix.
//
// Usage
//
//	ok := twoptr.IsPalindrome("A man, a plan, a canal: Panama")
//
//	idx, err := twoptr.TwoSumSorted([]int{2, 7, 11, 15}, 9)
//	// idx == [2]int{1, 2}, 1-based per the original problem
//
//	water, err := twoptr.Trap([]int{0, 1, 0, 2, 1, 0, 1, 3, 2, 1, 2, 1}, nil)
//	// water == 6
//
// Errors
//
//   - ErrNoPair      if TwoSumSorted finds no qualifying pair.
//   - ErrBadStrategy if Trap receives an unknown strategy value.
package twoptr
