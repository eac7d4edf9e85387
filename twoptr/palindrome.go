package twoptr

import "unicode"

// IsPalindrome reports whether s reads the same forwards and backwards once
// every character that is not a letter or digit is removed and case is folded.
// The empty string (and any string of pure punctuation) is a palindrome.
//
// Algorithm Outline:
//  1. Place pointers at both ends of the rune slice.
//  2. Skip non-alphanumeric runes on either side.
//  3. Compare folded runes; converge until the pointers cross.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n) for the rune decode
func IsPalindrome(s string) bool {
	rs := []rune(s)
	i, j := 0, len(rs)-1
	for i < j {
		if !isAlnum(rs[i]) {
			i++
			continue
		}
		if !isAlnum(rs[j]) {
			j--
			continue
		}
		if unicode.ToLower(rs[i]) != unicode.ToLower(rs[j]) {
			return false
		}
		i++
		j--
	}
	return true
}

// isAlnum reports whether r is a letter or a digit.
func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
