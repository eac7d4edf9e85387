package bitwise_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvlcode/bitwise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddBinary_Table covers the canonical sums, carries and width mismatches.
func TestAddBinary_Table(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want string
	}{
		{"canonical", "11", "1", "100"},
		{"carry chain", "1010", "1011", "10101"},
		{"zeros", "0", "0", "0"},
		{"identity", "1101", "0", "1101"},
		{"uneven widths", "1", "111", "1000"},
		{"full carry out", "1111", "1", "10000"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := bitwise.AddBinary(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestAddBinary_Long exceeds uint64 width to prove string arithmetic.
func TestAddBinary_Long(t *testing.T) {
	a := "1" + strings.Repeat("0", 64) // 2^64
	got, err := bitwise.AddBinary(a, "1")
	require.NoError(t, err)
	assert.Equal(t, "1"+strings.Repeat("0", 63)+"1", got)
}

// TestAddBinary_Errors rejects empty and malformed operands.
func TestAddBinary_Errors(t *testing.T) {
	_, err := bitwise.AddBinary("", "1")
	assert.ErrorIs(t, err, bitwise.ErrEmptyInput)

	_, err = bitwise.AddBinary("1", "")
	assert.ErrorIs(t, err, bitwise.ErrEmptyInput)

	_, err = bitwise.AddBinary("10", "12")
	assert.ErrorIs(t, err, bitwise.ErrBadDigit)

	_, err = bitwise.AddBinary("x", "1")
	assert.ErrorIs(t, err, bitwise.ErrBadDigit)
}
