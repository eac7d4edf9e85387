package hashing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrCorrupt indicates that Decode met input not produced by Encode.
var ErrCorrupt = errors.New("hashing: corrupt encoding")

// Encode flattens strs into a single string using length-prefix framing:
// each element becomes "<decimal length>#<payload>". The framing is
// unambiguous for arbitrary payloads, '#' and digits included, because the
// prefix states exactly how many bytes to consume.
//
// Complexity:
//
//	Time   = O(total length)
//	Memory = O(total length)
func Encode(strs []string) string {
	var b strings.Builder
	for _, s := range strs {
		b.WriteString(strconv.Itoa(len(s)))
		b.WriteByte('#')
		b.WriteString(s)
	}
	return b.String()
}

// Decode reverses Encode. Round-trip identity holds for every input list,
// including empty strings and an empty list.
//
// Algorithm Outline:
//  1. At offset i, scan to the next '#'; the bytes between form the length.
//  2. Take exactly that many payload bytes after the '#'.
//  3. Advance past the payload and repeat until the input is consumed.
//
// Errors:
//   - ErrCorrupt — missing '#', non-numeric or negative length, or a payload
//     shorter than its prefix claims.
func Decode(s string) ([]string, error) {
	res := []string{}
	for i := 0; i < len(s); {
		sep := strings.IndexByte(s[i:], '#')
		if sep < 0 {
			return nil, fmt.Errorf("%w: no length delimiter at offset %d", ErrCorrupt, i)
		}
		length, err := strconv.Atoi(s[i : i+sep])
		if err != nil || length < 0 {
			return nil, fmt.Errorf("%w: bad length prefix %q", ErrCorrupt, s[i:i+sep])
		}
		start := i + sep + 1
		if start+length > len(s) {
			return nil, fmt.Errorf("%w: payload truncated at offset %d", ErrCorrupt, start)
		}
		res = append(res, s[start:start+length])
		i = start + length
	}
	return res, nil
}
