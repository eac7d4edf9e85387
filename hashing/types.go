// Package hashing defines options and modes for the frequency-selection
// solutions.
package hashing

// TopKStrategy controls how TopKFrequent selects its answer.
//
//   - BucketSort — index values by frequency into n+1 buckets and sweep from
//     the highest frequency down. Linear time, linear memory.
//
//   - HeapSelect — maintain a size-k min-heap over (frequency, value) pairs.
//     Slightly slower asymptotically but touches only O(k) extra memory beyond
//     the frequency map; the classic follow-up answer when k << n.
type TopKStrategy int

const (
	// BucketSort strategy: O(n) time, O(n) memory, the default.
	BucketSort TopKStrategy = iota

	// HeapSelect strategy: O(n log k) time, O(k) selection memory.
	HeapSelect
)

// TopKOptions configures TopKFrequent.
//
// Fields:
//   - Strategy — BucketSort (default) or HeapSelect.
//
// Example:
//
//	opts := hashing.DefaultTopKOptions()
//	opts.Strategy = hashing.HeapSelect
//	top, err := hashing.TopKFrequent(nums, 3, &opts)
type TopKOptions struct {
	Strategy TopKStrategy
}

// DefaultTopKOptions returns the baseline configuration: BucketSort.
func DefaultTopKOptions() TopKOptions {
	return TopKOptions{Strategy: BucketSort}
}
