// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// euclidean.go: EuclideanMetric(n) generator.
//
// Steps:
//  1. Draw n integer points in [0,maxCoord]².
//  2. Connect a random permutation of the points as a path (connectivity).
//  3. Add min(extraFactor·n, C(n,2)-(n-1)) more edges from the shuffled
//     list of remaining pairs (ascending i<j before the shuffle).
//  4. Close under shortest paths (matrix.FloydWarshall).
//  5. Emit the complete graph over 0..n-1 with the closed distances.
//
// Complexity: O(n³) time for the closure, O(n²) space.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/matrix"
)

const (
	methodEuclidean = "EuclideanMetric"
	minVertices     = 1
	minEdgeWeight   = 1
)

// point is a grid location.
type point struct{ x, y int }

// EuclideanMetric returns a complete metric graph over vertices 0..n-1.
//
// Errors: ErrTooFewVertices, ErrNeedRandSource.
func EuclideanMetric(n int, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	if n < minVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodEuclidean, n, minVertices, ErrTooFewVertices)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodEuclidean, ErrNeedRandSource)
	}

	pts := make([]point, n)
	for i := range pts {
		pts[i] = point{x: cfg.rng.Intn(cfg.maxCoord + 1), y: cfg.rng.Intn(cfg.maxCoord + 1)}
	}

	sparse, err := matrix.NewSquare(n, math.Inf(1))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodEuclidean, err)
	}
	link := func(i, j int) error {
		w := roadWeight(pts[i], pts[j])
		if err := sparse.Set(i, j, w); err != nil {
			return err
		}
		return sparse.Set(j, i, w)
	}

	// spanning path over a shuffled order
	order := cfg.rng.Perm(n)
	linked := make(map[[2]int]bool, n)
	var i, j int
	for i = 0; i+1 < n; i++ {
		u, v := order[i], order[i+1]
		if err = link(u, v); err != nil {
			return nil, fmt.Errorf("%s: path %d-%d: %w", methodEuclidean, u, v, err)
		}
		linked[pairKey(u, v)] = true
	}

	// extra edges
	extra := cfg.extraFactor * n
	if room := n*(n-1)/2 - (n - 1); room < extra {
		extra = room
	}
	if extra > 0 {
		free := make([][2]int, 0, n*(n-1)/2)
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if !linked[[2]int{i, j}] {
					free = append(free, [2]int{i, j})
				}
			}
		}
		cfg.rng.Shuffle(len(free), func(a, b int) { free[a], free[b] = free[b], free[a] })
		for _, p := range free[:extra] {
			if err = link(p[0], p[1]); err != nil {
				return nil, fmt.Errorf("%s: extra %d-%d: %w", methodEuclidean, p[0], p[1], err)
			}
		}
	}

	if err = matrix.FloydWarshall(sparse); err != nil {
		return nil, fmt.Errorf("%s: closure: %w", methodEuclidean, err)
	}

	g := core.NewGraph(core.WithVertices(n))
	var d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if d, err = sparse.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", methodEuclidean, err)
			}
			if err = g.AddEdge(i, j, int64(math.Round(d))); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodEuclidean, i, j, err)
			}
		}
	}

	return g, nil
}

// roadWeight is the rounded Euclidean length, at least minEdgeWeight.
func roadWeight(a, b point) float64 {
	d := math.Round(math.Hypot(float64(a.x-b.x), float64(a.y-b.y)))

	return math.Max(minEdgeWeight, d)
}

func pairKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}
