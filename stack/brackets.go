package stack

// ValidBrackets reports whether s consists of well-nested (), [] and {} pairs.
// The empty string is valid; any byte outside the six bracket characters makes
// the string invalid.
//
// Algorithm Outline:
//  1. Push every opener.
//  2. A closer must match the most recent unmatched opener; pop it.
//  3. Valid iff no mismatch occurred and the stack drains completely.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n)
func ValidBrackets(s string) bool {
	pending := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '(', '[', '{':
			pending = append(pending, c)
		case ')', ']', '}':
			if len(pending) == 0 || pending[len(pending)-1] != opener(c) {
				return false
			}
			pending = pending[:len(pending)-1]
		default:
			return false
		}
	}
	return len(pending) == 0
}

// opener returns the opening bracket matching the closer c.
func opener(c byte) byte {
	switch c {
	case ')':
		return '('
	case ']':
		return '['
	default:
		return '{'
	}
}
