package stack_test

import (
	"testing"

	"github.com/katalvlaran/lvlcode/stack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidBrackets_Table covers nesting, interleaving and junk bytes.
func TestValidBrackets_Table(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"simple pair", "()", true},
		{"all kinds", "()[]{}", true},
		{"nested", "({[]})", true},
		{"mismatch", "(]", false},
		{"interleaved", "([)]", false},
		{"unclosed", "(((", false},
		{"unopened", ")", false},
		{"empty", "", true},
		{"junk byte", "(a)", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stack.ValidBrackets(tc.in))
		})
	}
}

// TestGenerateParentheses_Basic pins the n=3 output in backtracking order.
func TestGenerateParentheses_Basic(t *testing.T) {
	got, err := stack.GenerateParentheses(3)
	require.NoError(t, err)
	want := []string{"((()))", "(()())", "(())()", "()(())", "()()()"}
	assert.Equal(t, want, got)
}

// TestGenerateParentheses_Edges covers n=0, n=1 and the error path.
func TestGenerateParentheses_Edges(t *testing.T) {
	got, err := stack.GenerateParentheses(0)
	require.NoError(t, err)
	assert.Equal(t, []string{""}, got)

	got, err = stack.GenerateParentheses(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"()"}, got)

	_, err = stack.GenerateParentheses(-1)
	assert.ErrorIs(t, err, stack.ErrNegativeCount)
}

// TestGenerateParentheses_Count checks the Catalan count for n=4.
func TestGenerateParentheses_Count(t *testing.T) {
	got, err := stack.GenerateParentheses(4)
	require.NoError(t, err)
	assert.Len(t, got, 14, "C(4) = 14 well-formed strings")
	for _, s := range got {
		assert.True(t, stack.ValidBrackets(s), "generated string %q must be valid", s)
	}
}

// TestDailyTemperatures_Basic verifies the canonical forecast.
func TestDailyTemperatures_Basic(t *testing.T) {
	got := stack.DailyTemperatures([]int{73, 74, 75, 71, 69, 72, 76, 73})
	assert.Equal(t, []int{1, 1, 4, 2, 1, 1, 0, 0}, got)
}

// TestDailyTemperatures_Edges covers monotonic and flat runs.
func TestDailyTemperatures_Edges(t *testing.T) {
	assert.Equal(t, []int{1, 1, 0}, stack.DailyTemperatures([]int{30, 40, 50}))
	assert.Equal(t, []int{0, 0, 0}, stack.DailyTemperatures([]int{50, 40, 30}),
		"cooling trend resolves nothing")
	assert.Equal(t, []int{0, 0}, stack.DailyTemperatures([]int{70, 70}),
		"equal is not warmer")
	assert.Empty(t, stack.DailyTemperatures(nil))
}

// TestLargestRectangle_Basic covers the canonical histograms.
func TestLargestRectangle_Basic(t *testing.T) {
	assert.Equal(t, 10, stack.LargestRectangle([]int{2, 1, 5, 6, 2, 3}))
	assert.Equal(t, 4, stack.LargestRectangle([]int{2, 4}))
}

// TestLargestRectangle_Edges covers flat, rising, falling and empty shapes.
func TestLargestRectangle_Edges(t *testing.T) {
	assert.Equal(t, 0, stack.LargestRectangle(nil))
	assert.Equal(t, 5, stack.LargestRectangle([]int{5}))
	assert.Equal(t, 9, stack.LargestRectangle([]int{3, 3, 3}))
	assert.Equal(t, 9, stack.LargestRectangle([]int{1, 2, 3, 4, 5}), "3×3 block wins rising stairs")
	assert.Equal(t, 9, stack.LargestRectangle([]int{5, 4, 3, 2, 1}), "mirror of the rising case")
	assert.Equal(t, 0, stack.LargestRectangle([]int{0, 0}))
}

// TestCarFleet_Basic verifies the canonical fleets.
func TestCarFleet_Basic(t *testing.T) {
	fleets, err := stack.CarFleet(12, []int{10, 8, 0, 5, 3}, []int{2, 4, 1, 1, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, fleets)
}

// TestCarFleet_MergeAll has every car catching the leader: one fleet.
func TestCarFleet_MergeAll(t *testing.T) {
	fleets, err := stack.CarFleet(100, []int{0, 2, 4}, []int{4, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, 1, fleets)
}

// TestCarFleet_NoCars returns zero fleets for an empty road.
func TestCarFleet_NoCars(t *testing.T) {
	fleets, err := stack.CarFleet(10, nil, nil)
	require.NoError(t, err)
	assert.Zero(t, fleets)
}

// TestCarFleet_ExactCatchAtTarget treats catching exactly at the target as a
// merge: equal arrival times share a fleet.
func TestCarFleet_ExactCatchAtTarget(t *testing.T) {
	fleets, err := stack.CarFleet(10, []int{8, 6}, []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 1, fleets, "both arrive at t=2")
}

// TestCarFleet_Errors validates input checking.
func TestCarFleet_Errors(t *testing.T) {
	_, err := stack.CarFleet(10, []int{1, 2}, []int{1})
	assert.ErrorIs(t, err, stack.ErrLengthMismatch)

	_, err = stack.CarFleet(10, []int{10}, []int{1})
	assert.ErrorIs(t, err, stack.ErrBadTarget, "car already at target")

	_, err = stack.CarFleet(10, []int{1}, []int{0})
	assert.ErrorIs(t, err, stack.ErrBadTarget, "stationary car")
}
