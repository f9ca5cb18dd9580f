// SPDX-License-Identifier: MIT

package tsp

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

// SolveGraph finds a minimum-cost cycle through every vertex of g, starting
// and ending at start.
//
// g need not be complete: the hop cost between two vertices is their
// shortest-path distance, so the returned Tour lists vertex ids in visiting
// order and consecutive ids may not share a direct edge. Use SolveGraphWalk
// (or dijkstra.Table.Expand) to turn it into a walk over original edges.
//
// Steps:
//  1. Order vertices as [start, others ascending]; start becomes index 0.
//  2. Build the compact matrix from dijkstra.AllPairs.
//  3. Run TSPExact and map indices back to vertex ids.
//
// Size: the solve is exponential in the vertex count. Graphs with more than
// MaxExactVertices vertices are rejected with ErrTooLarge before the oracle
// or the DP table is built.
//
// Errors: ErrNilGraph, ErrStartNotFound, ErrTooLarge, any TSPExact error
// (wrapped).
func SolveGraph(g *core.Graph, start int) (TSResult, error) {
	res, _, err := solveGraph(g, start)

	return res, err
}

// SolveGraphWalk is SolveGraph followed by expansion of the tour along
// shortest paths, reusing the same oracle table. The walk's raw edge weight
// equals res.Cost.
func SolveGraphWalk(g *core.Graph, start int) (TSResult, []int, error) {
	res, table, err := solveGraph(g, start)
	if err != nil {
		return TSResult{}, nil, err
	}
	walk, err := table.Expand(res.Tour)
	if err != nil {
		return TSResult{}, nil, fmt.Errorf("tsp: expand tour: %w", err)
	}

	return res, walk, nil
}

func solveGraph(g *core.Graph, start int) (TSResult, *dijkstra.Table, error) {
	if g == nil {
		return TSResult{}, nil, ErrNilGraph
	}
	if !g.HasVertex(start) {
		return TSResult{}, nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	ids := make([]int, 0, g.VertexCount())
	ids = append(ids, start)
	for _, v := range g.Vertices() {
		if v != start {
			ids = append(ids, v)
		}
	}
	if len(ids) > MaxExactVertices {
		return TSResult{}, nil, fmt.Errorf("%w: n=%d, max %d", ErrTooLarge, len(ids), MaxExactVertices)
	}

	table, err := dijkstra.AllPairs(g, ids...)
	if err != nil {
		return TSResult{}, nil, fmt.Errorf("tsp: shortest paths: %w", err)
	}
	dist, err := table.Matrix(ids)
	if err != nil {
		return TSResult{}, nil, fmt.Errorf("tsp: distance matrix: %w", err)
	}
	res, err := TSPExact(dist)
	if err != nil {
		return TSResult{}, nil, fmt.Errorf("tsp: solve from %d: %w", start, err)
	}

	for i, idx := range res.Tour {
		res.Tour[i] = ids[idx]
	}

	return res, table, nil
}
