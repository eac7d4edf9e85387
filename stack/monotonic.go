package stack

// DailyTemperatures returns, for each day, how many days pass before a warmer
// temperature arrives; 0 where no warmer day follows.
//
// Algorithm Outline:
//  1. Sweep indices left to right over a stack of days still awaiting a
//     warmer reading, temperatures decreasing from bottom to top.
//  2. A warmer day resolves every colder day on the stack: pop each and
//     record the index gap.
//  3. Push the current day. Every index is pushed and popped at most once.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n)
func DailyTemperatures(temps []int) []int {
	res := make([]int, len(temps))
	waiting := make([]int, 0, len(temps)) // indices, temps strictly decreasing
	for day, tmp := range temps {
		for len(waiting) > 0 && temps[waiting[len(waiting)-1]] < tmp {
			prev := waiting[len(waiting)-1]
			waiting = waiting[:len(waiting)-1]
			res[prev] = day - prev
		}
		waiting = append(waiting, day)
	}
	return res
}

// LargestRectangle returns the area of the largest axis-aligned rectangle
// fitting under the histogram bars of the given heights.
//
// Algorithm Outline:
//  1. Sweep a stack of (start index, height) pairs with heights increasing
//     from bottom to top.
//  2. A bar lower than the stack top closes every taller bar: pop each,
//     scoring height × (current index - start), and inherit the leftmost
//     popped start — the new bar extends back that far.
//  3. After the sweep, the remaining bars extend to the right edge; score
//     each against len(heights).
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n)
func LargestRectangle(heights []int) int {
	type bar struct {
		start  int
		height int
	}
	best := 0
	open := make([]bar, 0, len(heights))
	for i, h := range heights {
		start := i
		for len(open) > 0 && open[len(open)-1].height > h {
			top := open[len(open)-1]
			open = open[:len(open)-1]
			if area := top.height * (i - top.start); area > best {
				best = area
			}
			start = top.start
		}
		open = append(open, bar{start: start, height: h})
	}
	for _, b := range open {
		if area := b.height * (len(heights) - b.start); area > best {
			best = area
		}
	}
	return best
}
