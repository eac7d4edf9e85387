package binsearch_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/lvlcode/binsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMedianSortedArrays_Canonical covers the original examples.
func TestMedianSortedArrays_Canonical(t *testing.T) {
	got, err := binsearch.MedianSortedArrays([]int{1, 3}, []int{2})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-9)

	got, err = binsearch.MedianSortedArrays([]int{1, 2}, []int{3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 2.5, got, 1e-9)
}

// TestMedianSortedArrays_Lopsided covers one-empty and disjoint-range inputs.
func TestMedianSortedArrays_Lopsided(t *testing.T) {
	got, err := binsearch.MedianSortedArrays(nil, []int{5})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, got, 1e-9)

	got, err = binsearch.MedianSortedArrays([]int{1, 2, 3}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-9)

	got, err = binsearch.MedianSortedArrays([]int{1, 2}, []int{10, 20, 30})
	require.NoError(t, err)
	assert.InDelta(t, 10.0, got, 1e-9, "all of a precedes all of b")

	got, err = binsearch.MedianSortedArrays([]int{7, 8}, []int{1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got, 1e-9, "all of b precedes all of a")
}

// TestMedianSortedArrays_Duplicates covers heavy overlap.
func TestMedianSortedArrays_Duplicates(t *testing.T) {
	got, err := binsearch.MedianSortedArrays([]int{2, 2, 2}, []int{2, 2})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-9)
}

// TestMedianSortedArrays_Empty rejects two empty inputs.
func TestMedianSortedArrays_Empty(t *testing.T) {
	_, err := binsearch.MedianSortedArrays(nil, nil)
	assert.ErrorIs(t, err, binsearch.ErrEmptyInput)
}

// TestMedianSortedArrays_AgainstSort cross-checks the partition search with a
// brute-force merged median over many split shapes.
func TestMedianSortedArrays_AgainstSort(t *testing.T) {
	values := []int{9, 1, 4, 4, 7, 0, 3, 8, 2, 6, 5, 5}
	for cut := 0; cut <= len(values); cut++ {
		a := append([]int{}, values[:cut]...)
		b := append([]int{}, values[cut:]...)
		sort.Ints(a)
		sort.Ints(b)

		got, err := binsearch.MedianSortedArrays(a, b)
		require.NoError(t, err)

		merged := append(append([]int{}, a...), b...)
		sort.Ints(merged)
		n := len(merged)
		want := float64(merged[n/2])
		if n%2 == 0 {
			want = float64(merged[n/2-1]+merged[n/2]) / 2
		}
		assert.InDelta(t, want, got, 1e-9, "cut at %d", cut)
	}
}
