// SPDX-License-Identifier: MIT

package tsp

import "errors"

// MaxExactVertices is the largest instance TSPExact accepts. At n = 20 the
// arena holds 2²⁰·20 states (about 190 MiB of costs and predecessors).
const MaxExactVertices = 20

// noParent marks DP states without a predecessor.
const noParent int8 = -1

// Sentinel errors.
var (
	// ErrIncompleteGraph is returned when the distance matrix does not
	// admit any Hamiltonian cycle (infeasible instance).
	ErrIncompleteGraph = errors.New("tsp: infeasible instance: no Hamiltonian cycle")

	// ErrEmptyMatrix indicates a nil or 0×0 distance matrix.
	ErrEmptyMatrix = errors.New("tsp: empty distance matrix")

	// ErrNonSquare indicates a distance matrix with Rows() != Cols().
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrNonZeroDiagonal indicates dist[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("tsp: self-distance must be zero")

	// ErrNegativeWeight indicates a negative distance.
	ErrNegativeWeight = errors.New("tsp: negative distance")

	// ErrTooLarge indicates more than MaxExactVertices vertices.
	ErrTooLarge = errors.New("tsp: instance too large for exact solver")

	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("tsp: graph is nil")

	// ErrStartNotFound indicates a start vertex absent from the graph.
	ErrStartNotFound = errors.New("tsp: start vertex not found")

	// ErrInvalidTour indicates a tour that breaks the Hamiltonian-cycle shape.
	ErrInvalidTour = errors.New("tsp: invalid tour")
)

// TSResult holds the outcome of a TSP solver.
type TSResult struct {
	// Tour is the sequence of vertices, starting and ending at the start.
	// For n vertices, len(Tour) == n+1 and Tour[0] == Tour[n].
	Tour []int

	// Cost is the total distance of the cycle.
	Cost float64
}
