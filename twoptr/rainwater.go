package twoptr

import "fmt"

// Trap returns how much rain water the elevation map heights can hold.
// A nil opts selects DefaultTrapOptions.
//
// Algorithm Outline (TwoPointers):
//  1. Keep pointers at both ends with the running maxima leftMax, rightMax.
//  2. Water above the side with the smaller maximum is bounded by that
//     maximum alone — the other side is guaranteed at least as tall.
//  3. Advance that side, adding max - height (never negative) per column.
//
// Algorithm Outline (PrefixSuffix):
//  1. left[i]  = max(heights[0..i]), right[i] = max(heights[i..n-1]).
//  2. Column i holds min(left[i], right[i]) - heights[i].
//  3. Sum over all columns.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(1) (TwoPointers) or O(n) (PrefixSuffix)
//
// Errors:
//   - ErrBadStrategy — opts.Strategy is not a declared TrapStrategy.
func Trap(heights []int, opts *TrapOptions) (int, error) {
	o := DefaultTrapOptions()
	if opts != nil {
		o = *opts
	}
	switch o.Strategy {
	case TwoPointers:
		return trapTwoPointers(heights), nil
	case PrefixSuffix:
		return trapPrefixSuffix(heights), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrBadStrategy, o.Strategy)
	}
}

// trapTwoPointers accumulates water from whichever side has the lower maximum.
func trapTwoPointers(heights []int) int {
	water := 0
	i, j := 0, len(heights)-1
	leftMax, rightMax := 0, 0
	for i < j {
		if heights[i] < heights[j] {
			if heights[i] > leftMax {
				leftMax = heights[i]
			}
			water += leftMax - heights[i]
			i++
		} else {
			if heights[j] > rightMax {
				rightMax = heights[j]
			}
			water += rightMax - heights[j]
			j--
		}
	}
	return water
}

// trapPrefixSuffix sums per-column water from precomputed boundary maxima.
func trapPrefixSuffix(heights []int) int {
	n := len(heights)
	if n == 0 {
		return 0
	}

	left := make([]int, n)
	left[0] = heights[0]
	for i := 1; i < n; i++ {
		left[i] = max(left[i-1], heights[i])
	}

	right := make([]int, n)
	right[n-1] = heights[n-1]
	for i := n - 2; i >= 0; i-- {
		right[i] = max(right[i+1], heights[i])
	}

	water := 0
	for i := 0; i < n; i++ {
		if bound := min(left[i], right[i]); bound > heights[i] {
			water += bound - heights[i]
		}
	}
	return water
}
