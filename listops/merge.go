package listops

// MergeSorted splices two ascending-sorted lists into one ascending list,
// reusing the existing nodes. The merge is stable: ties take from a first.
// Either input may be nil; both nil yields nil.
//
// Algorithm Outline:
//  1. Anchor a dummy head so the first splice needs no special case.
//  2. Repeatedly attach the smaller front node (a on ties) and advance
//     within that list.
//  3. When one list drains, attach the other's remainder wholesale.
//
// Complexity:
//
//	Time   = O(n + m)
//	Memory = O(1)
func MergeSorted(a, b *Node) *Node {
	var dummy Node
	tail := &dummy
	for a != nil && b != nil {
		if a.Val <= b.Val {
			tail.Next = a
			a = a.Next
		} else {
			tail.Next = b
			b = b.Next
		}
		tail = tail.Next
	}
	if a != nil {
		tail.Next = a
	} else {
		tail.Next = b
	}
	return dummy.Next
}
