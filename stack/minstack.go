package stack

import "errors"

// ErrEmptyStack is returned by Pop, Top and Min on an empty MinStack.
var ErrEmptyStack = errors.New("stack: empty stack")

// MinStack is a LIFO stack that also reports its minimum element in O(1).
//
// Alongside the value stack it keeps a parallel stack of running minima:
// mins[i] is the smallest value among values[0..i]. Push appends
// min(v, current minimum); Pop discards both tops, so the invariant survives
// every operation. The zero value is an empty, ready-to-use stack.
type MinStack struct {
	values []int
	mins   []int
}

// NewMinStack returns an empty MinStack.
func NewMinStack() *MinStack {
	return &MinStack{}
}

// Push appends v to the stack.
func (s *MinStack) Push(v int) {
	s.values = append(s.values, v)
	if n := len(s.mins); n > 0 && s.mins[n-1] < v {
		s.mins = append(s.mins, s.mins[n-1])
	} else {
		s.mins = append(s.mins, v)
	}
}

// Pop removes and returns the most recently pushed value.
func (s *MinStack) Pop() (int, error) {
	n := len(s.values)
	if n == 0 {
		return 0, ErrEmptyStack
	}
	v := s.values[n-1]
	s.values = s.values[:n-1]
	s.mins = s.mins[:n-1]
	return v, nil
}

// Top returns the most recently pushed value without removing it.
func (s *MinStack) Top() (int, error) {
	if len(s.values) == 0 {
		return 0, ErrEmptyStack
	}
	return s.values[len(s.values)-1], nil
}

// Min returns the smallest value currently on the stack.
func (s *MinStack) Min() (int, error) {
	if len(s.mins) == 0 {
		return 0, ErrEmptyStack
	}
	return s.mins[len(s.mins)-1], nil
}

// Len returns the number of stacked values.
func (s *MinStack) Len() int {
	return len(s.values)
}
