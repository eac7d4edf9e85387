package binsearch

// Search performs classic binary search over an ascending-sorted slice.
// It returns an index i with nums[i] == target, or -1 if target is absent.
//
// Algorithm Outline:
//  1. Maintain the invariant: target, if present, lies within [lo, hi].
//  2. Probe mid = lo + (hi-lo)/2 — the overflow-safe midpoint.
//  3. Shrink toward the half that can still hold target; an empty interval
//     means absence.
//
// Complexity:
//
//	Time   = O(log n)
//	Memory = O(1)
func Search(nums []int, target int) int {
	lo, hi := 0, len(nums)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case nums[mid] == target:
			return mid
		case nums[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return -1
}

// SearchMatrix reports whether target occurs in a matrix whose rows are
// sorted ascending and whose each row starts after the previous row ends.
// Rows must share one width; a ragged or empty matrix holds nothing.
//
// Algorithm Outline:
//  1. Treat the matrix as one sorted array of r·c elements.
//  2. Binary search flat indices; element k lives at [k/c][k%c].
//
// Complexity:
//
//	Time   = O(log(r·c))
//	Memory = O(1)
func SearchMatrix(matrix [][]int, target int) bool {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return false
	}
	cols := len(matrix[0])
	lo, hi := 0, len(matrix)*cols-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		v := matrix[mid/cols][mid%cols]
		switch {
		case v == target:
			return true
		case v < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return false
}
