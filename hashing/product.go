package hashing

// ProductExceptSelf returns a slice where res[i] is the product of every
// element of nums except nums[i], computed without division.
//
// Algorithm Outline:
//  1. Forward pass: res[i] = product of nums[0..i-1] (prefix products).
//  2. Backward pass: multiply res[i] by the running product of nums[i+1..n-1].
//  3. The suffix accumulator lives in a single variable, so the output slice
//     is the only allocation.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(1) beyond the output
func ProductExceptSelf(nums []int) []int {
	n := len(nums)
	res := make([]int, n)
	if n == 0 {
		return res
	}

	res[0] = 1
	for i := 1; i < n; i++ {
		res[i] = res[i-1] * nums[i-1]
	}

	suffix := 1
	for i := n - 1; i >= 0; i-- {
		res[i] *= suffix
		suffix *= nums[i]
	}
	return res
}
