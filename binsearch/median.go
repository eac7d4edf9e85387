package binsearch

import "math"

// MedianSortedArrays returns the median of the multiset union of two
// ascending-sorted slices in logarithmic time.
//
// Algorithm Outline:
//  1. Ensure a is the shorter slice; binary search a cut i through it.
//  2. The matching cut through b is j = (n+m+1)/2 - i, so the left halves
//     together hold half the elements.
//  3. A cut is correct when a[i-1] <= b[j] and b[j-1] <= a[i] (missing
//     neighbors count as ∓∞). Move the cut toward the violated side.
//  4. Odd total: median is max of the left-half tails. Even total: average of
//     that max and the min of the right-half heads.
//
// Complexity:
//
//	Time   = O(log min(n, m))
//	Memory = O(1)
//
// Errors:
//   - ErrEmptyInput — both slices are empty.
func MedianSortedArrays(a, b []int) (float64, error) {
	if len(a) > len(b) {
		a, b = b, a
	}
	n, m := len(a), len(b)
	if n+m == 0 {
		return 0, ErrEmptyInput
	}

	half := (n + m + 1) / 2
	lo, hi := 0, n
	for {
		i := lo + (hi-lo)/2
		j := half - i

		aLeft, aRight := math.Inf(-1), math.Inf(1)
		if i > 0 {
			aLeft = float64(a[i-1])
		}
		if i < n {
			aRight = float64(a[i])
		}
		bLeft, bRight := math.Inf(-1), math.Inf(1)
		if j > 0 {
			bLeft = float64(b[j-1])
		}
		if j < m {
			bRight = float64(b[j])
		}

		switch {
		case aLeft > bRight:
			hi = i - 1
		case bLeft > aRight:
			lo = i + 1
		default:
			leftMax := math.Max(aLeft, bLeft)
			if (n+m)%2 == 1 {
				return leftMax, nil
			}
			rightMin := math.Min(aRight, bRight)
			return (leftMax + rightMin) / 2, nil
		}
	}
}
