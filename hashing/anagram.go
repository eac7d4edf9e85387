package hashing

import "sort"

// IsAnagram reports whether t is a rearrangement of s.
// Comparison is rune-based, so multi-byte characters count correctly.
//
// Algorithm Outline:
//  1. Count rune frequencies of s.
//  2. Decrement per rune of t; any counter below zero means t has an excess rune.
//  3. Equal rune totals plus no negative counter means equal multisets.
//
// Complexity:
//
//	Time   = O(len(s) + len(t))
//	Memory = O(distinct runes)
func IsAnagram(s, t string) bool {
	count := make(map[rune]int)
	total := 0
	for _, r := range s {
		count[r]++
		total++
	}
	for _, r := range t {
		count[r]--
		if count[r] < 0 {
			return false
		}
		total--
	}
	return total == 0
}

// GroupAnagrams partitions words into groups of mutual anagrams.
// Groups appear in order of their first member in words; members keep input
// order within a group.
//
// Algorithm Outline:
//  1. For each word, derive a canonical signature: its runes in sorted order.
//     Anagrams and only anagrams share a signature.
//  2. Bucket words by signature in a map; remember first-appearance order.
//  3. Emit buckets in that order.
//
// Complexity:
//
//	Time   = O(n·L log L) for n words of max length L
//	Memory = O(n·L)
func GroupAnagrams(words []string) [][]string {
	buckets := make(map[string][]string, len(words))
	order := make([]string, 0, len(words))

	for _, w := range words {
		k := sortedRunes(w)
		if _, ok := buckets[k]; !ok {
			order = append(order, k)
		}
		buckets[k] = append(buckets[k], w)
	}

	groups := make([][]string, 0, len(order))
	for _, k := range order {
		groups = append(groups, buckets[k])
	}
	return groups
}

// sortedRunes returns s with its runes rearranged into ascending order.
func sortedRunes(s string) string {
	rs := []rune(s)
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
	return string(rs)
}
