package stack_test

import (
	"testing"

	"github.com/katalvlaran/lvlcode/stack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEvalRPN_Basic walks the canonical expressions.
func TestEvalRPN_Basic(t *testing.T) {
	cases := []struct {
		name   string
		tokens []string
		want   int
	}{
		{"add mul", []string{"2", "1", "+", "3", "*"}, 9},
		{"div add", []string{"4", "13", "5", "/", "+"}, 6},
		{"long", []string{"10", "6", "9", "3", "+", "-11", "*", "/", "*", "17", "+", "5", "+"}, 22},
		{"single", []string{"42"}, 42},
		{"negative literal", []string{"-7", "3", "+"}, -4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := stack.EvalRPN(tc.tokens)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestEvalRPN_TruncatingDivision pins division toward zero for negatives.
func TestEvalRPN_TruncatingDivision(t *testing.T) {
	got, err := stack.EvalRPN([]string{"6", "-132", "/"})
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = stack.EvalRPN([]string{"-7", "2", "/"})
	require.NoError(t, err)
	assert.Equal(t, -3, got, "truncates toward zero, not floor")
}

// TestEvalRPN_Errors covers every malformation class.
func TestEvalRPN_Errors(t *testing.T) {
	_, err := stack.EvalRPN([]string{"1", "+"})
	assert.ErrorIs(t, err, stack.ErrShortExpression, "operator underflow")

	_, err = stack.EvalRPN([]string{"1", "2", "3", "+"})
	assert.ErrorIs(t, err, stack.ErrShortExpression, "leftover operands")

	_, err = stack.EvalRPN(nil)
	assert.ErrorIs(t, err, stack.ErrShortExpression, "empty expression")

	_, err = stack.EvalRPN([]string{"1", "2", "%"})
	assert.ErrorIs(t, err, stack.ErrBadToken)

	_, err = stack.EvalRPN([]string{"1", "two", "+"})
	assert.ErrorIs(t, err, stack.ErrBadToken)

	_, err = stack.EvalRPN([]string{"1", "0", "/"})
	assert.ErrorIs(t, err, stack.ErrDivisionByZero)
}
