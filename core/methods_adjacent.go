// SPDX-License-Identifier: MIT

// File: methods_adjacent.go
// Role: Neighborhood queries.
//
// Determinism:
//   - Neighbors() and NeighborIDs() are sorted by neighbor id ascending.
package core

import "sort"

// Neighbors returns the edges incident to id, viewed from id
// (Edge.From == id), sorted by Edge.To.
//
// Errors:
//   - ErrVertexNotFound if id is absent.
//
// Complexity: O(d·log d) where d = deg(id).
func (g *Graph) Neighbors(id int) ([]Edge, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	nbrs := g.adjacency[id]
	out := make([]Edge, 0, len(nbrs))
	var (
		v int
		w int64
	)
	for v, w = range nbrs {
		out = append(out, Edge{From: id, To: v, Weight: w})
	}
	g.muEdgeAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// NeighborIDs returns the ids adjacent to id, ascending.
//
// Errors:
//   - ErrVertexNotFound if id is absent.
//
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]int, len(edges))
	for i := range edges {
		ids[i] = edges[i].To
	}

	return ids, nil
}
