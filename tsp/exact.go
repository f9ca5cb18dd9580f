// SPDX-License-Identifier: MIT

package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/matrix"
)

// TSPExact solves the Travelling Salesman Problem exactly on a given
// distance matrix using the Held–Karp dynamic-programming algorithm.
//
// The input is an n×n matrix where At(i,j) is the cost to go from vertex i
// to j. A value of math.Inf(1) represents "no edge". The diagonal must be
// zero and no entry may be negative.
//
// It returns a TSResult containing:
//   - Tour: a slice of length n+1 of vertex indices, starting and ending at 0.
//   - Cost: total cycle cost, equal to the sum of the tour's hops.
//
// A single vertex yields Tour [0, 0] with Cost 0.
//
// Errors: ErrEmptyMatrix, ErrNonSquare, ErrTooLarge, ErrNonZeroDiagonal,
// ErrNegativeWeight, or ErrIncompleteGraph if no Hamiltonian cycle exists.
//
// Time complexity:   O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
//
// cost[mask*n+j] = minimum cost to start at 0, visit exactly the vertices in
// mask (bit 0 always set), and end at j. Masks are filled in ascending order,
// so every mask\{j} is final before mask is reached.
func TSPExact(dist matrix.Matrix) (TSResult, error) {
	w, n, err := loadMatrix(dist)
	if err != nil {
		return TSResult{}, err
	}
	if n == 1 {
		return TSResult{Tour: []int{0, 0}, Cost: 0}, nil
	}

	var (
		full  = 1<<n - 1
		size  = (full + 1) * n
		cost  = make([]float64, size)
		prev  = make([]int8, size)
		mask  int
		pmask int
		i, j  int
		c     float64
		cand  float64
		inf   = math.Inf(1)
	)
	for i = range cost {
		cost[i] = inf
		prev[i] = noParent
	}
	// base case: only the start visited, standing at the start
	cost[1*n+0] = 0

	for mask = 3; mask <= full; mask += 2 {
		for i = 1; i < n; i++ {
			if mask&(1<<i) == 0 {
				continue
			}
			pmask = mask ^ (1 << i)
			for j = 0; j < n; j++ {
				if pmask&(1<<j) == 0 {
					continue
				}
				if math.IsInf(cost[pmask*n+j], 1) {
					continue // no valid prior state
				}
				c = w[j*n+i]
				if math.IsInf(c, 1) {
					continue
				}
				cand = cost[pmask*n+j] + c
				if cand < cost[mask*n+i] {
					cost[mask*n+i] = cand
					prev[mask*n+i] = int8(j)
				}
			}
		}
	}

	// close the cycle
	best := inf
	last := -1
	for i = 1; i < n; i++ {
		if math.IsInf(cost[full*n+i], 1) || math.IsInf(w[i*n], 1) {
			continue
		}
		cand = cost[full*n+i] + w[i*n]
		if cand < best {
			best = cand
			last = i
		}
	}
	if last < 0 {
		return TSResult{}, ErrIncompleteGraph
	}

	// walk predecessors back from the best last vertex
	tour := make([]int, n+1)
	mask = full
	j = last
	for i = n - 1; i >= 1; i-- {
		tour[i] = j
		p := int(prev[mask*n+j])
		mask ^= 1 << j
		j = p
	}

	return TSResult{Tour: tour, Cost: best}, nil
}

// loadMatrix validates dist and copies it into a row-major slice.
func loadMatrix(dist matrix.Matrix) ([]float64, int, error) {
	if dist == nil || dist.Rows() == 0 {
		return nil, 0, ErrEmptyMatrix
	}
	n := dist.Rows()
	if dist.Cols() != n {
		return nil, 0, fmt.Errorf("%w: %d×%d", ErrNonSquare, n, dist.Cols())
	}
	if n > MaxExactVertices {
		return nil, 0, fmt.Errorf("%w: n=%d, max %d", ErrTooLarge, n, MaxExactVertices)
	}

	w := make([]float64, n*n)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = dist.At(i, j); err != nil {
				return nil, 0, err
			}
			if i == j && v != 0 {
				return nil, 0, fmt.Errorf("%w: dist[%d][%d]=%v", ErrNonZeroDiagonal, i, i, v)
			}
			if v < 0 {
				return nil, 0, fmt.Errorf("%w: dist[%d][%d]=%v", ErrNegativeWeight, i, j, v)
			}
			w[i*n+j] = v
		}
	}

	return w, n, nil
}
