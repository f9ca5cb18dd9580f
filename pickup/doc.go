// SPDX-License-Identifier: MIT

// Package pickup plans a single-vehicle route that picks up friends near
// their homes.
//
// A friend is covered when the route visits their home or a vertex one edge
// away from it; they walk the rest. Solve minimizes
//
//	driving + α·walking
//
// with a first-improvement local search over compact tours (depot-anchored
// vertex sequences whose hops cost shortest-path distances):
//
//  1. Start from [depot].
//  2. Each round scans vertices in ascending id order. A vertex on the tour
//     (other than the depot) proposes its removal; a vertex off the tour
//     proposes its cheapest insertion by driving distance.
//  3. A feasible candidate wins over an infeasible tour, or over a feasible
//     one when strictly cheaper. An infeasible candidate wins only over an
//     infeasible tour with strictly fewer uncovered friends, or as many but
//     strictly cheaper. The first winner is applied and the round ends.
//  4. The search stops after a round that leaves the tour feasible, or when
//     the round budget (vertex count + 1 by default) is spent.
//
// The compact tour is then expanded into a walk over original edges and
// every friend is assigned to the walk vertex that minimizes their walk
// (home first, then cheapest neighbor, ties by vertex id). Friends that
// cannot be covered are reported in Result.Unassigned; this is a soft
// outcome, not an error.
//
// Pairs without a path cost UnreachablePenalty instead of failing. Each
// fallback is counted in Result.PenaltyHits and logged at warn level; it
// signals a disconnected input.
package pickup
