// Package stack collects the stack-discipline family of interview problems:
// bracket matching, expression evaluation, constant-time minimum tracking and
// the monotonic-stack sweep problems.
//
// What
//
//   - ValidBrackets: matching of (), [] and {}.
//   - MinStack: Push/Pop/Top/Min, each O(1).
//   - EvalRPN: reverse Polish arithmetic over + - * / with truncating division.
//   - GenerateParentheses: all well-formed strings of n bracket pairs.
//   - DailyTemperatures: days until a warmer temperature, per day.
//   - CarFleet: fleets formed by cars converging on a target.
//   - LargestRectangle: largest rectangle under a histogram.
//
// Why
//
//	A stack remembers exactly the still-unresolved prefix of the input. The
//	monotonic variants sharpen that: they discard entries the moment a newer
//	element makes them irrelevant, turning quadratic lookback into O(n).
//
// Determinism
//
//	GenerateParentheses emits strings in close-before-open backtracking order;
//	DailyTemperatures and LargestRectangle are pure index sweeps.
//
// Complexity (n = len(input))
//
//   - ValidBrackets, DailyTemperatures, LargestRectangle: O(n) time, O(n) stack.
//   - MinStack operations: O(1) each.
//   - EvalRPN: O(n) time.
//   - GenerateParentheses: O(4ⁿ/√n) output-bound time.
//   - CarFleet: O(n log n) for the position sort.
//
// Usage
//
//	ok := stack.ValidBrackets("({[]})")
//
//	s := stack.NewMinStack()
//	s.Push(3)
//	s.Push(1)
//	m, err := s.Min() // 1
//
//	days := stack.DailyTemperatures([]int{73, 74, 75, 71, 69, 72, 76, 73})
//
// Errors
//
//   - ErrEmptyStack     on Pop/Top/Min of an empty MinStack.
//   - ErrShortExpression, ErrBadToken, ErrDivisionByZero from EvalRPN.
//   - ErrNegativeCount  from GenerateParentheses.
//   - ErrLengthMismatch, ErrBadTarget from CarFleet.
package stack
