// SPDX-License-Identifier: MIT

// Package dijkstra is the shortest-path oracle behind every lvroute solver.
//
// Overview:
//
//   - Dijkstra computes minimum-cost distances (and optionally predecessors)
//     from one source vertex to every reachable vertex of a core.Graph with
//     non-negative weights, in O((V + E) log V).
//   - AllPairs runs Dijkstra once per requested source and freezes the
//     results in a read-only Table: Distance, Route, a compact distance
//     Matrix over any node subset, and Expand, which turns a compact tour
//     into a walk over original edges.
//
// Key features:
//
//   - Functional options: Source, WithReturnPath, WithMaxDistance.
//   - Deterministic routes: heap ties are broken by vertex id and neighbors
//     are relaxed in ascending id order, so equal-cost paths are chosen the
//     same way on every run.
//   - Explicit "no path": Table.Distance returns (d, false) instead of a
//     sentinel number; Matrix encodes missing pairs as math.Inf(1).
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:          Source option not provided.
//   - ErrNilGraph:          nil *core.Graph.
//   - ErrVertexNotFound:    source (or requested node) not in the graph.
//   - ErrNegativeWeight:    a negative edge weight was found by the O(E) pre-scan.
//   - ErrBadMaxDistance:    (panic) WithMaxDistance called with a negative value.
//   - ErrSourceNotIndexed:  Table query from a vertex that was not a source.
//   - ErrUnreachable:       Table.Route / Expand across disconnected vertices.
//
// Thread safety:
//
//   - Dijkstra only reads the graph. A Table is immutable after AllPairs
//     returns and is safe for concurrent readers.
package dijkstra
