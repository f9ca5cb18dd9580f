// SPDX-License-Identifier: MIT

// Package subset routes a vehicle from a depot through a required set of
// vertices and back, on a graph that need not be complete.
//
// The instance is reduced to the depot plus the required vertices: hop
// costs between them are shortest-path distances from dijkstra.AllPairs,
// tsp.TSPExact finds the optimal order in that compact space, and
// dijkstra.Table.Expand unfolds the compact cycle into a walk over original
// edges. The walk's raw edge-weight sum equals Result.Cost.
//
// The reduction is exact for the compact problem, so it inherits the
// exponential bound of tsp.TSPExact: at most tsp.MaxExactVertices vertices
// including the depot.
package subset
