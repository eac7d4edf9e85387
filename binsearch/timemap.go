package binsearch

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrStaleTimestamp is returned when Set receives a timestamp earlier than
// the key's latest version. Per-key histories must stay sorted for Get's
// binary search to hold.
var ErrStaleTimestamp = errors.New("binsearch: timestamp regresses for key")

// version is one timestamped value in a key's history.
type version struct {
	stamp int
	value string
}

// TimeMap is a time-based key-value store: Set records a value at a
// timestamp, Get resolves the value in force at or before a timestamp.
// Safe for concurrent use.
type TimeMap struct {
	mu       sync.RWMutex
	versions map[string][]version
}

// NewTimeMap returns an empty TimeMap.
func NewTimeMap() *TimeMap {
	return &TimeMap{versions: make(map[string][]version)}
}

// Set records value for key at the given timestamp. Timestamps per key must
// be non-decreasing; equal timestamps overwrite.
//
// Complexity: amortized O(1).
//
// Errors:
//   - ErrStaleTimestamp — timestamp precedes the key's latest version.
func (t *TimeMap) Set(key, value string, timestamp int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	history := t.versions[key]
	if n := len(history); n > 0 {
		switch last := history[n-1].stamp; {
		case timestamp < last:
			return fmt.Errorf("%w: %q at %d, latest %d", ErrStaleTimestamp, key, timestamp, last)
		case timestamp == last:
			history[n-1].value = value
			return nil
		}
	}
	t.versions[key] = append(history, version{stamp: timestamp, value: value})
	return nil
}

// Get returns the value set for key with the largest timestamp not exceeding
// the given one. The second return is false when key is unknown or every
// version is newer than timestamp.
//
// Complexity: O(log versions) via binary search over the key's history.
func (t *TimeMap) Get(key string, timestamp int) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	history := t.versions[key]
	// first index with stamp > timestamp; the answer sits just before it
	i := sort.Search(len(history), func(i int) bool {
		return history[i].stamp > timestamp
	})
	if i == 0 {
		return "", false
	}
	return history[i-1].value, true
}

// Len returns the number of keys with at least one version.
func (t *TimeMap) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.versions)
}
