// Package twoptr defines options and modes for the elevation-map solutions.
package twoptr

import "errors"

// ErrBadStrategy is returned for an unknown TrapStrategy value.
var ErrBadStrategy = errors.New("twoptr: unknown trap strategy")

// TrapStrategy controls how Trap accumulates trapped water.
//
//   - TwoPointers  — converge from both ends, tracking the running maximum on
//     each side. O(1) extra memory, the interview-optimal answer.
//
//   - PrefixSuffix — precompute left-max and right-max arrays, then sum
//     min(left, right) - height per column. O(n) memory, but each column's
//     bound is explicit, which makes the correctness argument transparent.
type TrapStrategy int

const (
	// TwoPointers strategy: O(n) time, O(1) memory, the default.
	TwoPointers TrapStrategy = iota

	// PrefixSuffix strategy: O(n) time, O(n) memory, explicit per-column bounds.
	PrefixSuffix
)

// TrapOptions configures Trap.
//
// Example:
//
//	opts := twoptr.DefaultTrapOptions()
//	opts.Strategy = twoptr.PrefixSuffix
//	water, err := twoptr.Trap(heights, &opts)
type TrapOptions struct {
	Strategy TrapStrategy
}

// DefaultTrapOptions returns the baseline configuration: TwoPointers.
func DefaultTrapOptions() TrapOptions {
	return TrapOptions{Strategy: TwoPointers}
}
