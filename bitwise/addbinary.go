package bitwise

import (
	"errors"
	"fmt"
)

// Sentinel errors for binary string arithmetic.
var (
	// ErrEmptyInput is returned when an operand is the empty string.
	ErrEmptyInput = errors.New("bitwise: empty operand")

	// ErrBadDigit is returned for any character outside '0' and '1'.
	ErrBadDigit = errors.New("bitwise: non-binary digit")
)

// AddBinary returns the sum of two binary-digit strings as a binary-digit
// string, handling operands far beyond machine integer width.
//
// Algorithm Outline:
//  1. Walk both strings right to left with a shared carry.
//  2. Each step emits (a+b+carry)%2 and carries (a+b+carry)/2.
//  3. A surviving carry prepends a final '1'. The digits accumulate in
//     reverse; one in-place flip restores order.
//
// Complexity:
//
//	Time   = O(max(n, m))
//	Memory = O(max(n, m))
//
// Errors:
//   - ErrEmptyInput — a or b is "".
//   - ErrBadDigit   — a or b contains a character other than '0' or '1'.
func AddBinary(a, b string) (string, error) {
	if a == "" || b == "" {
		return "", ErrEmptyInput
	}

	buf := make([]byte, 0, len(a)+1)
	if len(b) > len(a) {
		buf = make([]byte, 0, len(b)+1)
	}

	carry := byte(0)
	for i, j := len(a)-1, len(b)-1; i >= 0 || j >= 0; i, j = i-1, j-1 {
		sum := carry
		if i >= 0 {
			d, err := digit(a, i)
			if err != nil {
				return "", err
			}
			sum += d
		}
		if j >= 0 {
			d, err := digit(b, j)
			if err != nil {
				return "", err
			}
			sum += d
		}
		buf = append(buf, '0'+sum%2)
		carry = sum / 2
	}
	if carry > 0 {
		buf = append(buf, '1')
	}

	// digits accumulated least-significant first
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}
	return string(buf), nil
}

// digit returns s[i] as 0 or 1, rejecting anything else.
func digit(s string, i int) (byte, error) {
	switch s[i] {
	case '0':
		return 0, nil
	case '1':
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: %q at index %d", ErrBadDigit, s[i], i)
	}
}
