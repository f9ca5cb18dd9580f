// SPDX-License-Identifier: MIT

package subset

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/tsp"
)

// Solve returns a minimum-distance closed walk from the depot visiting every
// vertex of required at least once.
//
// Duplicates in required and the depot itself are ignored. An empty
// required set yields Walk and Compact [depot, depot] with Cost 0.
//
// Errors:
//   - ErrNilGraph, ErrUnknownVertex.
//   - tsp.ErrIncompleteGraph (wrapped) when a required vertex cannot be
//     reached from the depot.
//   - tsp.ErrTooLarge (wrapped) when the depot plus the distinct required
//     vertices exceed tsp.MaxExactVertices; the exact solve is exponential
//     in that count, so larger sets are refused before any table is built.
//
// Complexity: O(k·(V+E) log V) for the oracle plus O(k²·2ᵏ) for the exact
// solve, with k = |required| + 1.
func Solve(g *core.Graph, required []int, opts ...Option) (Result, error) {
	cfg := Options{Depot: DefaultDepot}
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return Result{}, ErrNilGraph
	}

	ids, err := compactIDs(g, cfg.Depot, required)
	if err != nil {
		return Result{}, err
	}
	if len(ids) > tsp.MaxExactVertices {
		return Result{}, fmt.Errorf("subset: %d required vertices: %w", len(ids)-1, tsp.ErrTooLarge)
	}

	table, err := dijkstra.AllPairs(g, ids...)
	if err != nil {
		return Result{}, fmt.Errorf("subset: shortest paths: %w", err)
	}
	dist, err := table.Matrix(ids)
	if err != nil {
		return Result{}, fmt.Errorf("subset: compact matrix: %w", err)
	}
	res, err := tsp.TSPExact(dist)
	if err != nil {
		return Result{}, fmt.Errorf("subset: %d required vertices: %w", len(ids)-1, err)
	}

	compact := make([]int, len(res.Tour))
	for i, idx := range res.Tour {
		compact[i] = ids[idx]
	}
	walk, err := table.Expand(compact)
	if err != nil {
		return Result{}, fmt.Errorf("subset: expand: %w", err)
	}

	var cost int64
	for i := 0; i+1 < len(compact); i++ {
		d, _ := table.Distance(compact[i], compact[i+1])
		cost += d
	}

	return Result{Walk: walk, Compact: compact, Cost: cost}, nil
}

// compactIDs returns [depot, required... ascending], deduplicated. Index 0
// is the depot so the exact solver starts there.
func compactIDs(g *core.Graph, depot int, required []int) ([]int, error) {
	if !g.HasVertex(depot) {
		return nil, fmt.Errorf("%w: depot %d", ErrUnknownVertex, depot)
	}
	rest := make([]int, 0, len(required))
	seen := make(map[int]struct{}, len(required))
	for _, v := range required {
		if !g.HasVertex(v) {
			return nil, fmt.Errorf("%w: required %d", ErrUnknownVertex, v)
		}
		if v == depot {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		rest = append(rest, v)
	}
	sort.Ints(rest)

	return append([]int{depot}, rest...), nil
}
