// SPDX-License-Identifier: MIT

// tour.go: tour utilities shared by the exact and reduction solvers.
//
// Provided helpers:
//   - ValidateTour: enforce Hamiltonian cycle invariants.
//   - TourCost: sum hop costs of a closed tour over a distance matrix.

package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/matrix"
)

// ValidateTour enforces Hamiltonian-cycle invariants:
//
//	len(tour) == n+1, tour[0]==tour[n]==start,
//	each vertex v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// All failures wrap ErrInvalidTour.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 {
		return fmt.Errorf("%w: n=%d", ErrInvalidTour, n)
	}
	if len(tour) != n+1 {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidTour, len(tour), n+1)
	}
	if tour[0] != start || tour[n] != start {
		return fmt.Errorf("%w: endpoints %d,%d, want %d", ErrInvalidTour, tour[0], tour[n], start)
	}

	// n=1 is the degenerate loop [start, start]
	if n == 1 {
		return nil
	}
	seen := make([]bool, n)
	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: vertex %d out of range at %d", ErrInvalidTour, v, i)
		}
		if seen[v] {
			return fmt.Errorf("%w: vertex %d repeated at %d", ErrInvalidTour, v, i)
		}
		seen[v] = true
	}

	return nil
}

// TourCost sums dist(tour[i], tour[i+1]) over consecutive pairs in order.
//
// Contract:
//   - len(tour) >= 2 and every index within [0..Rows()-1] (else ErrInvalidTour).
//   - a +Inf hop yields ErrIncompleteGraph.
//
// Complexity: O(len(tour)).
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if dist == nil {
		return 0, ErrEmptyMatrix
	}
	if len(tour) < 2 {
		return 0, fmt.Errorf("%w: length %d", ErrInvalidTour, len(tour))
	}
	n := dist.Rows()

	var (
		sum  float64
		w    float64
		i    int
		u, v int
		err  error
	)
	for i = 0; i+1 < len(tour); i++ {
		u, v = tour[i], tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, fmt.Errorf("%w: hop %d (%d→%d) out of range", ErrInvalidTour, i, u, v)
		}
		if w, err = dist.At(u, v); err != nil {
			return 0, err
		}
		if math.IsInf(w, 1) {
			return 0, fmt.Errorf("%w: hop %d (%d→%d)", ErrIncompleteGraph, i, u, v)
		}
		sum += w
	}

	return sum, nil
}
