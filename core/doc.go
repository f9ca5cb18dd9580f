// SPDX-License-Identifier: MIT

// Package core provides a thread-safe, in-memory, undirected weighted graph
// keyed by non-negative integer vertex ids. It is the road network every
// lvroute solver reads from.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected edges only; AddEdge(u,v,w) is visible from both endpoints.
//   - Integer weights (int64). Negative weights are stored but rejected later
//     by the shortest-path oracle (dijkstra.ErrNegativeWeight).
//   - No self-loops and no parallel edges (ErrLoopNotAllowed, ErrMultiEdgeNotAllowed).
//   - Separate sync.RWMutex for vertices (muVert) and adjacency (muEdgeAdj);
//     lock order is always muVert → muEdgeAdj.
//
// Determinism:
//
//   - Vertices() returns ids ascending.
//   - Edges() returns each undirected edge once with From < To, sorted by (From, To).
//   - Neighbors()/NeighborIDs() return neighbors ascending by id.
//
// Core Methods:
//
//	AddVertex(id int) error                  // O(1)
//	HasVertex(id int) bool                   // O(1)
//	AddEdge(u, v int, w int64) error         // O(1) amortized
//	HasEdge(u, v int) bool                   // O(1)
//	Weight(u, v int) (int64, error)          // O(1)
//	Neighbors(id int) ([]Edge, error)        // O(d·log d)
//	NeighborIDs(id int) ([]int, error)       // O(d·log d)
//	Degree(id int) (int, error)              // O(1)
//	Vertices() []int                         // O(V·log V)
//	Edges() []Edge                           // O(E·log E)
//	WalkWeight(walk []int) (int64, error)    // O(len(walk))
//	Clone() *Graph                           // O(V+E)
//
// Solvers never mutate a graph they are given; derived distance tables are
// snapshots and must be rebuilt if the caller edits the graph afterwards.
package core
