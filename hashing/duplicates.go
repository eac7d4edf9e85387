package hashing

// ContainsDuplicate reports whether any value appears at least twice.
//
// Algorithm Outline:
//  1. Insert each element into a set.
//  2. A value already present means a duplicate; stop there.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n)
func ContainsDuplicate(nums []int) bool {
	seen := make(map[int]struct{}, len(nums))
	for _, v := range nums {
		if _, ok := seen[v]; ok {
			return true
		}
		seen[v] = struct{}{}
	}
	return false
}

// LongestConsecutive returns the length of the longest run of consecutive
// integers present in nums (order and duplicates in the input are irrelevant).
//
// Algorithm Outline:
//  1. Load all values into a set.
//  2. Only a run start (v such that v-1 is absent) begins a count; extend
//     forward while v+1, v+2, … remain in the set.
//  3. Each value is visited at most twice, so the scan stays linear despite
//     the nested walk.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n)
func LongestConsecutive(nums []int) int {
	set := make(map[int]struct{}, len(nums))
	for _, v := range nums {
		set[v] = struct{}{}
	}

	best := 0
	for v := range set {
		if _, ok := set[v-1]; ok {
			continue // not a run start
		}
		length := 1
		for {
			if _, ok := set[v+length]; !ok {
				break
			}
			length++
		}
		if length > best {
			best = length
		}
	}
	return best
}
