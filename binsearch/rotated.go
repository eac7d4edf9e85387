package binsearch

import "errors"

// ErrEmptyInput indicates an input with no elements to search.
var ErrEmptyInput = errors.New("binsearch: empty input")

// FindMinRotated returns the minimum of an ascending-sorted slice of distinct
// values that has been rotated an unknown number of positions.
//
// Algorithm Outline:
//  1. Compare the midpoint against the rightmost element.
//  2. mid > right means the pivot (and the minimum) lies strictly right of
//     mid; otherwise the minimum is at mid or left of it.
//  3. The interval collapses onto the pivot.
//
// Complexity:
//
//	Time   = O(log n)
//	Memory = O(1)
//
// Errors:
//   - ErrEmptyInput — nums has no elements.
func FindMinRotated(nums []int) (int, error) {
	if len(nums) == 0 {
		return 0, ErrEmptyInput
	}
	lo, hi := 0, len(nums)-1
	for lo < hi {
		mid := lo + (hi-lo)/2
		if nums[mid] > nums[hi] {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return nums[lo], nil
}

// SearchRotated returns the index of target in a rotated ascending-sorted
// slice of distinct values, or -1 if absent.
//
// Algorithm Outline:
//  1. At every probe, at least one side of mid is properly sorted; comparing
//     nums[lo] with nums[mid] tells which.
//  2. If target's value falls inside the sorted side's range, search there;
//     otherwise search the other side.
//
// Complexity:
//
//	Time   = O(log n)
//	Memory = O(1)
func SearchRotated(nums []int, target int) int {
	lo, hi := 0, len(nums)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		if nums[mid] == target {
			return mid
		}
		if nums[lo] <= nums[mid] { // left side sorted
			if nums[lo] <= target && target < nums[mid] {
				hi = mid - 1
			} else {
				lo = mid + 1
			}
		} else { // right side sorted
			if nums[mid] < target && target <= nums[hi] {
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
	}
	return -1
}
