// SPDX-License-Identifier: MIT

// Package matrix provides the dense distance matrices consumed by the exact
// tour solver and the instance generator.
//
// Conventions:
//   - Row-major flat storage; offset = i*cols + j.
//   - math.Inf(1) off the diagonal means "no path" (an explicit absent entry,
//     never a large magic number). NaN is rejected by Set.
//   - At/Set never panic; they return ErrOutOfRange wrapped with coordinates.
//
// FloydWarshall closes a square matrix in place (k → i → j loop order,
// strict improvement), turning edge weights into shortest-path distances.
package matrix
