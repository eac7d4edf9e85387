package twoptr

import "errors"

// ErrNoPair indicates that no two distinct elements sum to the target.
var ErrNoPair = errors.New("twoptr: no pair sums to target")

// TwoSumSorted finds indices of the two elements of an ascending-sorted slice
// that sum to target. Indices are 1-based, matching the original problem's
// contract.
//
// Algorithm Outline:
//  1. Place pointers at both ends.
//  2. A sum below target can only grow by advancing the left pointer; a sum
//     above target can only shrink by retreating the right one.
//  3. The pointers meet without a hit exactly when no pair exists.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(1)
//
// Errors:
//   - ErrNoPair — no such pair exists.
func TwoSumSorted(nums []int, target int) ([2]int, error) {
	i, j := 0, len(nums)-1
	for i < j {
		switch sum := nums[i] + nums[j]; {
		case sum == target:
			return [2]int{i + 1, j + 1}, nil
		case sum < target:
			i++
		default:
			j--
		}
	}
	return [2]int{}, ErrNoPair
}
