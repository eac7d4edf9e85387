package listops

// Node is one cell of a singly linked integer list. A nil *Node is the empty
// list.
type Node struct {
	Val  int
	Next *Node
}

// FromSlice builds a list holding vals in order. An empty slice yields nil.
func FromSlice(vals []int) *Node {
	var head *Node
	tail := &head
	for _, v := range vals {
		*tail = &Node{Val: v}
		tail = &(*tail).Next
	}
	return head
}

// Values returns the list's values in order. A nil receiver yields nil.
func (n *Node) Values() []int {
	var vals []int
	for cur := n; cur != nil; cur = cur.Next {
		vals = append(vals, cur.Val)
	}
	return vals
}

// Len returns the number of nodes in the list.
func (n *Node) Len() int {
	count := 0
	for cur := n; cur != nil; cur = cur.Next {
		count++
	}
	return count
}
