package stack

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for fleet counting.
var (
	// ErrLengthMismatch is returned when positions and speeds differ in length.
	ErrLengthMismatch = errors.New("stack: positions and speeds length mismatch")

	// ErrBadTarget is returned when a car sits at or beyond the target, or a
	// speed is not positive.
	ErrBadTarget = errors.New("stack: invalid target, position or speed")
)

// CarFleet returns how many fleets reach the target. Cars drive toward the
// target at fixed speeds and cannot pass: a car catching up to a slower one
// locks to its speed, forming a fleet.
//
// Algorithm Outline:
//  1. Pair positions with speeds and sort by position descending, so cars are
//     processed nearest-to-target first.
//  2. Each car's solo arrival time is (target - position) / speed.
//  3. Keep a stack of fleet-leader arrival times. A car strictly slower
//     (later) than the leader ahead starts a new fleet; otherwise it catches
//     up and merges, adding nothing.
//
// Complexity:
//
//	Time   = O(n log n)
//	Memory = O(n)
//
// Errors:
//   - ErrLengthMismatch — len(positions) != len(speeds).
//   - ErrBadTarget      — target <= a position, or a speed < 1.
func CarFleet(target int, positions, speeds []int) (int, error) {
	if len(positions) != len(speeds) {
		return 0, fmt.Errorf("%w: %d positions, %d speeds",
			ErrLengthMismatch, len(positions), len(speeds))
	}

	type car struct {
		pos   int
		speed int
	}
	cars := make([]car, len(positions))
	for i := range positions {
		if positions[i] >= target {
			return 0, fmt.Errorf("%w: position %d not before target %d",
				ErrBadTarget, positions[i], target)
		}
		if speeds[i] < 1 {
			return 0, fmt.Errorf("%w: speed %d", ErrBadTarget, speeds[i])
		}
		cars[i] = car{pos: positions[i], speed: speeds[i]}
	}
	sort.Slice(cars, func(i, j int) bool { return cars[i].pos > cars[j].pos })

	leaders := make([]float64, 0, len(cars)) // arrival times of fleet leaders
	for _, c := range cars {
		arrival := float64(target-c.pos) / float64(c.speed)
		if len(leaders) == 0 || arrival > leaders[len(leaders)-1] {
			leaders = append(leaders, arrival)
		}
	}
	return len(leaders), nil
}
