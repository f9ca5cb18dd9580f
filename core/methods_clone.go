// SPDX-License-Identifier: MIT

// File: methods_clone.go
// Role: deep copy of a Graph.
package core

// Clone returns an independent deep copy of g (vertices and edges).
// Mutating the clone never affects g and vice versa.
//
// Concurrency: takes muVert then muEdgeAdj read locks on g.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	c := NewGraph()
	var (
		id   int
		v    int
		w    int64
		nbrs map[int]int64
	)
	for id = range g.vertices {
		c.vertices[id] = struct{}{}
	}
	for id, nbrs = range g.adjacency {
		inner := make(map[int]int64, len(nbrs))
		for v, w = range nbrs {
			inner[v] = w
		}
		c.adjacency[id] = inner
	}
	c.edgeCount = g.edgeCount

	return c
}
