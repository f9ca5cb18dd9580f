// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// Package builder generates synthetic pickup instances.
//
// EuclideanMetric places n points on an integer grid, connects them with a
// random spanning path plus a bounded number of extra random edges
// (weights = rounded Euclidean length, at least 1), closes the sparse graph
// under shortest paths with matrix.FloydWarshall, and returns the complete
// graph whose edge weights are those shortest-path distances. The result
// is connected and satisfies the triangle inequality.
//
// RandomInstance adds a friend set sampled from 1..n-1 (the depot 0 never
// hosts a friend) and α, ready for instance.Write.
//
// Determinism:
//   - All randomness flows through one *rand.Rand (WithSeed or WithRand).
//   - Draw order is fixed: coordinates, path order, extra-edge shuffle,
//     then homes. Equal seeds give equal instances.
package builder
