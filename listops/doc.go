// Package listops collects the linked-list family of interview problems,
// built on a minimal singly linked Node type.
//
// What
//
//   - Node: a singly linked list cell with FromSlice / Values round-tripping.
//   - MergeSorted: two-pointer splice of two ascending lists.
//
// Why
//
//	Linked-list drills are about pointer surgery, not values: holding the
//	predecessor, splicing without losing a tail, spotting the dummy-head
//	trick. The helpers keep tests and examples honest by round-tripping
//	through plain slices.
//
// Stability
//
//	MergeSorted is stable: when values tie, nodes from the first list come
//	first, and within a list original order is preserved.
//
// Complexity (n, m = list lengths)
//
//   - MergeSorted: O(n + m) time, O(1) extra memory — nodes are relinked,
//     not copied.
//
// Usage
//
//	a := listops.FromSlice([]int{1, 2, 4})
//	b := listops.FromSlice([]int{1, 3, 4})
//	merged := listops.MergeSorted(a, b)
//	fmt.Println(merged.Values()) // [1 1 2 3 4 4]
package listops
