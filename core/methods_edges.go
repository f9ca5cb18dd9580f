// SPDX-License-Identifier: MIT

// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/Edges/EdgeCount/WalkWeight.
//
// Determinism:
//   - Edges() returns each undirected edge once, From < To, sorted by (From, To).
//
// Concurrency:
//   - Mutations under muEdgeAdj write lock, queries under its read lock.
package core

import (
	"fmt"
	"sort"
)

// AddEdge creates the undirected edge {u,v} with weight w, adding missing
// endpoints first.
//
// Steps:
//  1. Validate ids and reject loops (ErrBadVertexID, ErrLoopNotAllowed).
//  2. Ensure endpoints via AddVertex.
//  3. Under muEdgeAdj, reject a parallel edge (ErrMultiEdgeNotAllowed).
//  4. Store the weight in both adjacency directions.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w int64) error {
	if u < 0 || v < 0 {
		return ErrBadVertexID
	}
	if u == v {
		return ErrLoopNotAllowed
	}
	if err := g.AddVertex(u); err != nil {
		return err
	}
	if err := g.AddVertex(v); err != nil {
		return err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.adjacency[u][v]; exists {
		return ErrMultiEdgeNotAllowed
	}
	g.adjacency[u][v] = w
	g.adjacency[v][u] = w
	g.edgeCount++

	return nil
}

// HasEdge reports whether {u,v} exists.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// Weight returns the weight of {u,v}.
//
// Errors:
//   - ErrVertexNotFound if u or v is absent.
//   - ErrEdgeNotFound if both exist but are not adjacent.
//
// Complexity: O(1).
func (g *Graph) Weight(u, v int) (int64, error) {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return 0, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	w, ok := g.adjacency[u][v]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// EdgeCount returns |E| (each undirected edge counted once).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}

// Edges returns every edge once with From < To, sorted by (From, To).
// Complexity: O(E·log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	out := make([]Edge, 0, g.edgeCount)
	var (
		u, v int
		w    int64
		nbrs map[int]int64
	)
	for u, nbrs = range g.adjacency {
		for v, w = range nbrs {
			if u < v {
				out = append(out, Edge{From: u, To: v, Weight: w})
			}
		}
	}
	g.muEdgeAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// WalkWeight sums raw edge weights along walk. Consecutive repeats of the
// same vertex (a stay) cost nothing; every other hop must be a direct edge.
//
// It is the ground-truth driving cost of an expanded route and is what a
// route read back from an instance file is re-priced with.
//
// Errors:
//   - ErrVertexNotFound / ErrEdgeNotFound, wrapped with the failing hop.
//
// Complexity: O(len(walk)).
func (g *Graph) WalkWeight(walk []int) (int64, error) {
	var (
		sum int64
		w   int64
		err error
		i   int
	)
	for i = 0; i+1 < len(walk); i++ {
		if walk[i] == walk[i+1] {
			if !g.HasVertex(walk[i]) {
				return 0, fmt.Errorf("core: hop %d (%d→%d): %w", i, walk[i], walk[i+1], ErrVertexNotFound)
			}
			continue
		}
		if w, err = g.Weight(walk[i], walk[i+1]); err != nil {
			return 0, fmt.Errorf("core: hop %d (%d→%d): %w", i, walk[i], walk[i+1], err)
		}
		sum += w
	}

	return sum, nil
}
