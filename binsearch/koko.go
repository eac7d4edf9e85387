package binsearch

import (
	"errors"
	"fmt"
)

// ErrInfeasible indicates that no eating speed can finish in the given hours.
var ErrInfeasible = errors.New("binsearch: no feasible speed")

// MinEatingSpeed returns the smallest integer bananas-per-hour speed at which
// all piles can be finished within hours (the Koko problem). Each hour is
// spent on a single pile, consuming at most speed bananas from it.
//
// Algorithm Outline:
//  1. Feasibility is monotone in speed: if k works, every k' > k works.
//  2. Binary search speeds in [1, max(pile)], the exact answer range.
//  3. A candidate's cost is Σ ceil(pile/k) hours; keep the smallest feasible k.
//
// Complexity:
//
//	Time   = O(n log max(pile))
//	Memory = O(1)
//
// Errors:
//   - ErrInfeasible — hours < len(piles) (each pile needs at least one hour),
//     or no piles with hours < 0.
func MinEatingSpeed(piles []int, hours int) (int, error) {
	if hours < len(piles) {
		return 0, fmt.Errorf("%w: %d piles need at least %d hours, have %d",
			ErrInfeasible, len(piles), len(piles), hours)
	}
	if len(piles) == 0 {
		if hours < 0 {
			return 0, fmt.Errorf("%w: negative hours", ErrInfeasible)
		}
		return 0, nil
	}

	maxPile := piles[0]
	for _, p := range piles[1:] {
		if p > maxPile {
			maxPile = p
		}
	}

	lo, hi := 1, maxPile
	for lo < hi {
		mid := lo + (hi-lo)/2
		if hoursAt(piles, mid) <= hours {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo, nil
}

// hoursAt returns the hours needed to clear all piles at the given speed.
func hoursAt(piles []int, speed int) int {
	total := 0
	for _, p := range piles {
		total += (p + speed - 1) / speed // ceil division
	}
	return total
}
