// SPDX-License-Identifier: MIT

// Package core defines the central Graph and Edge types, sentinel errors and
// the NewGraph constructor.
//
// Errors:
//
//	ErrBadVertexID         - vertex id is negative.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop requested.
//	ErrMultiEdgeNotAllowed - a second edge between the same endpoints.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexID indicates a negative vertex id.
	ErrBadVertexID = errors.New("core: vertex id must be non-negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is one undirected connection as seen from From.
//
// Neighbors(u) reports edges with From == u; Edges() reports each edge once
// with From < To.
type Edge struct {
	// From is the vertex the edge is viewed from.
	From int

	// To is the opposite endpoint.
	To int

	// Weight is the traversal cost (driving or walking distance).
	Weight int64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithVertices pre-registers vertices 0..n-1 so isolated nodes survive
// even when no edge touches them.
func WithVertices(n int) GraphOption {
	return func(g *Graph) {
		for id := 0; id < n; id++ {
			g.vertices[id] = struct{}{}
			g.adjacency[id] = make(map[int]int64)
		}
	}
}

// Graph is the in-memory undirected weighted graph.
//
// muVert protects the vertex catalog; muEdgeAdj protects adjacency and the
// edge counter. adjacency[u][v] == adjacency[v][u] == weight of edge {u,v}.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards adjacency and edgeCount

	vertices  map[int]struct{}
	adjacency map[int]map[int]int64
	edgeCount int
}

// NewGraph creates an empty Graph and applies opts in order.
// Complexity: O(1) plus option cost.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[int]struct{}),
		adjacency: make(map[int]map[int]int64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
