// SPDX-License-Identifier: MIT

// Package tsp solves the depot-anchored Travelling Salesman Problem exactly.
//
// It includes:
//
//   - TSPExact: Held–Karp dynamic programming over a distance matrix.
//
//   - Complexity: O(n²·2ⁿ)
//
//   - Memory:     O(n·2ⁿ), one dense arena indexed by [mask][vertex]
//
//   - Supports missing edges via math.Inf(1).
//
//   - SolveGraph: builds the matrix from shortest-path distances of a
//     core.Graph (so the input need not be complete) and maps the result back
//     to vertex ids. SolveGraphWalk also expands the tour into a walk.
//
//   - ValidateTour and TourCost: tour checks shared with the other solvers.
//
// Ties between equal-cost partial paths keep the first candidate scanned
// (strict less-than), so a given matrix always yields the same tour.
//
// If no Hamiltonian cycle exists, the solvers return ErrIncompleteGraph.
// Instances above MaxExactVertices are rejected with ErrTooLarge before any
// table is allocated.
package tsp
