package hashing

import "errors"

// ErrNoPair indicates that no two distinct elements sum to the target.
var ErrNoPair = errors.New("hashing: no pair sums to target")

// TwoSum — classic pair-sum search.
//
// Description:
//
//	Given an integer slice and a target, find two distinct indices i < j such
//	that nums[i] + nums[j] == target.
//
// Algorithm Outline:
//  1. Walk nums once, keeping seen[value] = index for every visited element.
//  2. For nums[j], look up target-nums[j] in seen.
//  3. On a hit at index i, return [i, j]; the lookup always finds the earlier
//     index, so i < j holds by construction.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n)
//
// Errors:
//   - ErrNoPair — no such pair exists.
func TwoSum(nums []int, target int) ([2]int, error) {
	seen := make(map[int]int, len(nums))
	for j, v := range nums {
		if i, ok := seen[target-v]; ok {
			return [2]int{i, j}, nil
		}
		seen[v] = j
	}
	return [2]int{}, ErrNoPair
}
