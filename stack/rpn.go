package stack

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for reverse Polish evaluation.
var (
	// ErrShortExpression is returned when an operator lacks two operands, or
	// the expression does not reduce to exactly one value.
	ErrShortExpression = errors.New("stack: malformed RPN expression")

	// ErrBadToken is returned for a token that is neither an integer nor one
	// of + - * /.
	ErrBadToken = errors.New("stack: bad RPN token")

	// ErrDivisionByZero is returned when / meets a zero divisor.
	ErrDivisionByZero = errors.New("stack: division by zero")
)

// EvalRPN evaluates tokens in reverse Polish notation over the four integer
// operators + - * /. Division truncates toward zero, per the original
// problem's contract (and Go's native integer division).
//
// Algorithm Outline:
//  1. Push every numeric token.
//  2. An operator pops the right operand, then the left, and pushes the
//     result.
//  3. A well-formed expression leaves exactly one value on the stack.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n)
//
// Errors:
//   - ErrBadToken        — unrecognized token.
//   - ErrShortExpression — operator underflow or leftover operands.
//   - ErrDivisionByZero  — zero divisor.
func EvalRPN(tokens []string) (int, error) {
	operands := make([]int, 0, len(tokens))
	pop2 := func() (left, right int, ok bool) {
		if len(operands) < 2 {
			return 0, 0, false
		}
		right = operands[len(operands)-1]
		left = operands[len(operands)-2]
		operands = operands[:len(operands)-2]
		return left, right, true
	}

	for _, tok := range tokens {
		switch tok {
		case "+", "-", "*", "/":
			left, right, ok := pop2()
			if !ok {
				return 0, fmt.Errorf("%w: operator %q lacks operands", ErrShortExpression, tok)
			}
			var v int
			switch tok {
			case "+":
				v = left + right
			case "-":
				v = left - right
			case "*":
				v = left * right
			case "/":
				if right == 0 {
					return 0, ErrDivisionByZero
				}
				v = left / right
			}
			operands = append(operands, v)
		default:
			n, err := strconv.Atoi(tok)
			if err != nil {
				return 0, fmt.Errorf("%w: %q", ErrBadToken, tok)
			}
			operands = append(operands, n)
		}
	}

	if len(operands) != 1 {
		return 0, fmt.Errorf("%w: %d values remain", ErrShortExpression, len(operands))
	}
	return operands[0], nil
}
