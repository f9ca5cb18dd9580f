// SPDX-License-Identifier: MIT

// Package lvroute plans depot-anchored routes on weighted road graphs:
// a driver leaves the depot, collects a group of friends and comes back.
//
// What is inside?
//
//	core/        undirected weighted Graph with int vertex IDs, thread-safe
//	matrix/      dense distance matrices, Floyd–Warshall
//	dijkstra/    single-source shortest paths and the all-pairs Table oracle
//	tsp/         Held–Karp exact closed tour over a complete matrix
//	subset/      exact tour through a required vertex subset, expanded to roads
//	pickup/      local-search pickup planner weighing walking against driving
//	instance/    text instance format, reader and writer
//	builder/     random Euclidean-metric instances for experiments
//	cmd/lvroute  CLI: solve, batch and generate
//
// Quick example, friend opposite the depot on a unit square:
//
//	0───1
//	│   │
//	3───2
//
//	res, _ := pickup.Solve(g, []int{2}, 1.0)
//	// res.Walk == [0 1 0], the friend walks from 2 to 1.
//
// Every solver returns a closed walk starting and ending at the depot and
// is deterministic for a given input.
package lvroute
