// Package hashing collects the arrays & hashing family of interview problems:
// single-pass map lookups, frequency counting, prefix/suffix products and
// length-prefix string framing.
//
// What
//
//   - TwoSum: indices of the unique pair summing to a target, O(n) single pass.
//   - ContainsDuplicate: set-membership duplicate detection.
//   - IsAnagram / GroupAnagrams: rune-frequency equality and signature bucketing.
//   - TopKFrequent: the k most frequent values, bucket-sort or heap-select.
//   - ProductExceptSelf: products of all other elements without division.
//   - ValidSudoku: row/column/box constraint check over a 9×9 board.
//   - LongestConsecutive: longest run of consecutive integers, O(n).
//   - Encode / Decode: reversible length-prefix framing of a string list.
//
// Why
//
//	Hash maps turn quadratic pair and membership scans into linear ones; these
//	problems are the canonical drills for that transformation. Each function is
//	a leaf: no shared state, no I/O, input in, value out.
//
// Determinism
//
//	GroupAnagrams orders groups (and TopKFrequent breaks frequency ties) by
//	first appearance in the input, so results are reproducible for any input.
//
// Complexity (n = len(input))
//
//   - TwoSum, ContainsDuplicate, ProductExceptSelf, LongestConsecutive: O(n) time.
//   - IsAnagram: O(n) time over runes; GroupAnagrams: O(n·L) for total length L.
//   - TopKFrequent: O(n) with BucketSort, O(n log k) with HeapSelect.
//   - Encode / Decode: O(total length).
//
// Usage
//
//	idx, err := hashing.TwoSum([]int{3, 2, 4}, 6)
//	// idx == [2]int{1, 2}
//
//	top, err := hashing.TopKFrequent([]int{1, 1, 1, 2, 2, 3}, 2, nil)
//	// top == []int{1, 2}
//
//	blob := hashing.Encode([]string{"neet", "", "co#de"})
//	strs, err := hashing.Decode(blob)
//
// Errors
//
//   - ErrNoPair   if no two elements sum to the TwoSum target.
//   - ErrBadK     if TopKFrequent's k is < 1 or exceeds the distinct count.
//   - ErrCorrupt  if Decode meets a malformed length prefix or truncated payload.
package hashing
