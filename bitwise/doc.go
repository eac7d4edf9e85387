// Package bitwise collects binary-arithmetic string problems.
//
// What
//
//   - AddBinary: sum of two binary-digit strings, as a binary-digit string.
//
// Why
//
//	Arbitrary-length binary strings overflow machine integers; the drill is
//	the grade-school ripple add, carried digit by digit from the right.
//
// Complexity
//
//   - AddBinary: O(max(len(a), len(b))) time and memory.
//
// Usage
//
//	sum, err := bitwise.AddBinary("1010", "1011")
//	// sum == "10101"
//
// Errors
//
//   - ErrEmptyInput if either operand is empty.
//   - ErrBadDigit   if an operand contains a character other than '0' or '1'.
package bitwise
