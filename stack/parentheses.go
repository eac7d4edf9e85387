package stack

import (
	"errors"
	"fmt"
)

// ErrNegativeCount is returned when GenerateParentheses receives n < 0.
var ErrNegativeCount = errors.New("stack: negative pair count")

// GenerateParentheses returns every well-formed string of exactly n pairs of
// parentheses. n == 0 yields a single empty string; output order follows the
// open-first backtracking order, so "((()))" comes first for n = 3.
//
// Algorithm Outline:
//  1. Grow a candidate byte buffer, tracking open and close counts.
//  2. An opener is legal while open < n; a closer while close < open.
//  3. A buffer of length 2n is complete; record a copy and backtrack.
//
// Complexity:
//
//	Time   = O(4ⁿ/√n) — the Catalan-number output bound
//	Memory = O(n) recursion and buffer beyond the output
//
// Errors:
//   - ErrNegativeCount — n < 0.
func GenerateParentheses(n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}

	res := []string{}
	buf := make([]byte, 0, 2*n)
	var grow func(open, closed int)
	grow = func(open, closed int) {
		if len(buf) == 2*n {
			res = append(res, string(buf))
			return
		}
		if open < n {
			buf = append(buf, '(')
			grow(open+1, closed)
			buf = buf[:len(buf)-1]
		}
		if closed < open {
			buf = append(buf, ')')
			grow(open, closed+1)
			buf = buf[:len(buf)-1]
		}
	}
	grow(0, 0)
	return res, nil
}
