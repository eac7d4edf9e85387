package twoptr

// MaxArea returns the largest rectangular water area holdable between two
// vertical lines of the given heights (the container-with-most-water problem).
//
// Algorithm Outline:
//  1. Start with the widest container: pointers at both ends.
//  2. Its area is width × min(height at each end).
//  3. Moving the taller side can never help — width shrinks and the limiting
//     height stays — so always advance the shorter side.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(1)
func MaxArea(heights []int) int {
	best := 0
	i, j := 0, len(heights)-1
	for i < j {
		h := heights[i]
		if heights[j] < h {
			h = heights[j]
		}
		if area := h * (j - i); area > best {
			best = area
		}
		if heights[i] < heights[j] {
			i++
		} else {
			j--
		}
	}
	return best
}
