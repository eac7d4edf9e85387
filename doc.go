// Package lvlcode is your in-memory training ground for classic algorithmic
// interview problems — arrays & hashing, two-pointer scans, stack discipline,
// binary search and linked-list plumbing.
//
// 🚀 What is lvlcode?
//
//	A small, self-contained library that collects textbook interview algorithms,
//	each implemented independently and documented end to end:
//		• Arrays & hashing: Two Sum, anagrams, Top-K, product-except-self, sudoku
//		• Two pointers: palindromes, 3Sum, container water, trapping rain water
//		• Stacks: bracket matching, RPN, MinStack, monotonic-stack problems
//		• Binary search: rotated arrays, Koko, 2D matrices, median of two arrays
//		• Linked lists: sorted-list merging
//		• Bitwise: binary-digit string arithmetic
//
// ✨ Why choose lvlcode?
//
//   - Beginner-friendly – every solution opens with an algorithm outline
//   - Honest edge cases – sentinel errors for no-solution and malformed input
//   - Pure Go – no cgo, no hidden deps, every function a leaf
//   - Interview-true – alternative approaches kept side by side where they matter
//
// Everything is organized under flat topic packages:
//
//	hashing/   — hash-map and frequency-count solutions
//	twoptr/    — converging and parallel pointer scans
//	stack/     — plain and monotonic stack solutions, MinStack
//	binsearch/ — half-interval search, search-on-answer, TimeMap
//	listops/   — linked-list nodes and merges
//	bitwise/   — binary-digit string arithmetic
//
// Quick taste:
//
//	idx, err := hashing.TwoSum([]int{2, 7, 11, 15}, 9)
//	if err != nil {
//	    // hashing.ErrNoPair: no two elements sum to the target
//	}
//	fmt.Println(idx) // [0 1]
//
// Each package carries its own doc.go with complexity notes, usage and the full
// error surface; examples/ holds runnable end-to-end scenarios.
//
//	go get github.com/katalvlaran/lvlcode
package lvlcode
