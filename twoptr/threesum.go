package twoptr

import "sort"

// ThreeSum returns every unique triple of elements summing to zero, each
// triple in ascending order, triples ordered lexicographically. The input is
// not modified.
//
// Algorithm Outline:
//  1. Sort a copy of nums ascending.
//  2. Fix a pivot index p; skip a pivot equal to its predecessor (duplicate
//     triples start at duplicate pivots).
//  3. Run a converging pair scan on the suffix for -nums[p]; on a hit, step
//     both pointers past any equal neighbors.
//  4. A positive pivot ends the search: three positives cannot sum to zero.
//
// Complexity:
//
//	Time   = O(n²) after an O(n log n) sort
//	Memory = O(n) for the sorted copy
func ThreeSum(nums []int) [][3]int {
	sorted := make([]int, len(nums))
	copy(sorted, nums)
	sort.Ints(sorted)

	var res [][3]int
	for p := 0; p+2 < len(sorted); p++ {
		if sorted[p] > 0 {
			break
		}
		if p > 0 && sorted[p] == sorted[p-1] {
			continue
		}
		i, j := p+1, len(sorted)-1
		for i < j {
			switch sum := sorted[p] + sorted[i] + sorted[j]; {
			case sum < 0:
				i++
			case sum > 0:
				j--
			default:
				res = append(res, [3]int{sorted[p], sorted[i], sorted[j]})
				i++
				j--
				for i < j && sorted[i] == sorted[i-1] {
					i++
				}
				for i < j && sorted[j] == sorted[j+1] {
					j--
				}
			}
		}
	}
	return res
}
