package hashing

import (
	"container/heap"
	"errors"
	"fmt"
)

// Sentinel errors for frequency selection.
var (
	// ErrBadK is returned when k is out of range for the given input.
	ErrBadK = errors.New("hashing: k out of range")

	// ErrBadStrategy is returned for an unknown TopKStrategy value.
	ErrBadStrategy = errors.New("hashing: unknown TopK strategy")
)

// TopKFrequent returns the k values occurring most often in nums, most
// frequent first. Frequency ties break by first appearance in nums, so the
// result is deterministic. A nil opts selects DefaultTopKOptions.
//
// Algorithm Outline (BucketSort):
//  1. Count occurrences and record each distinct value's first index.
//  2. Drop each distinct value into bucket[frequency]; a frequency never
//     exceeds n, so n+1 buckets suffice.
//  3. Sweep buckets from frequency n down to 1, appending values (each bucket
//     pre-ordered by first appearance) until k values are emitted.
//
// Algorithm Outline (HeapSelect):
//  1. Count occurrences and first indices as above.
//  2. Push each distinct (value, frequency) through a size-k min-heap ordered
//     by (frequency, reversed first appearance); the heap retains the winners.
//  3. Pop into the result back to front.
//
// Complexity:
//
//	Time   = O(n)        (BucketSort)  |  O(n log k) (HeapSelect)
//	Memory = O(n)
//
// Errors:
//   - ErrBadK       — k < 1 or k > number of distinct values.
//   - ErrBadStrategy — opts.Strategy is not a declared TopKStrategy.
func TopKFrequent(nums []int, k int, opts *TopKOptions) ([]int, error) {
	o := DefaultTopKOptions()
	if opts != nil {
		o = *opts
	}

	count := make(map[int]int, len(nums))
	first := make(map[int]int, len(nums))
	for i, v := range nums {
		if _, ok := count[v]; !ok {
			first[v] = i
		}
		count[v]++
	}
	if k < 1 || k > len(count) {
		return nil, fmt.Errorf("%w: k=%d, distinct=%d", ErrBadK, k, len(count))
	}

	switch o.Strategy {
	case BucketSort:
		return topKBuckets(nums, count, first, k), nil
	case HeapSelect:
		return topKHeap(count, first, k), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadStrategy, o.Strategy)
	}
}

// topKBuckets performs the frequency-bucket sweep.
func topKBuckets(nums []int, count, first map[int]int, k int) []int {
	buckets := make([][]int, len(nums)+1)
	// Walking nums (not the map) keeps every bucket in first-appearance order.
	for i, v := range nums {
		if first[v] == i {
			buckets[count[v]] = append(buckets[count[v]], v)
		}
	}

	res := make([]int, 0, k)
	for f := len(buckets) - 1; f >= 1 && len(res) < k; f-- {
		for _, v := range buckets[f] {
			res = append(res, v)
			if len(res) == k {
				break
			}
		}
	}
	return res
}

// topKHeap performs size-k min-heap selection.
func topKHeap(count, first map[int]int, k int) []int {
	h := &freqHeap{}
	heap.Init(h)
	for v, f := range count {
		heap.Push(h, freqEntry{value: v, freq: f, first: first[v]})
		if h.Len() > k {
			heap.Pop(h)
		}
	}

	res := make([]int, k)
	for i := k - 1; i >= 0; i-- {
		res[i] = heap.Pop(h).(freqEntry).value
	}
	return res
}

// freqEntry is one distinct value with its frequency and first input index.
type freqEntry struct {
	value int
	freq  int
	first int
}

// freqHeap is a min-heap on (freq asc, first desc): the root is always the
// weakest candidate, so popping on overflow keeps the k strongest.
type freqHeap []freqEntry

func (h freqHeap) Len() int { return len(h) }

func (h freqHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	return h[i].first > h[j].first
}

func (h freqHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *freqHeap) Push(x any) { *h = append(*h, x.(freqEntry)) }

func (h *freqHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
