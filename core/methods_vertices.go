// SPDX-License-Identifier: MIT

// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns ids ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (lock order muVert → muEdgeAdj).
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate id >= 0 (ErrBadVertexID).
//   - Stage 2: Under muVert write lock, register the id if absent.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap the adjacency bucket.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int) error {
	if id < 0 {
		return ErrBadVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = struct{}{}

	g.muEdgeAdj.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[int]int64)
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex exists (negative id ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	if id < 0 {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex ids in ascending order.
// Complexity: O(V·log V).
func (g *Graph) Vertices() []int {
	g.muVert.RLock()
	ids := make([]int, 0, len(g.vertices))
	var id int
	for id = range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()
	sort.Ints(ids)

	return ids
}

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of neighbors of id.
//
// Errors:
//   - ErrVertexNotFound if id is absent.
//
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	if !g.HasVertex(id) {
		return 0, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[id]), nil
}
