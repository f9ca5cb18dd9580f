// SPDX-License-Identifier: MIT

package pickup

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// Solve plans a depot-anchored route covering the friends living at homes
// and assigns each friend a pickup vertex on it.
//
// An empty homes set yields Walk [depot, depot] and an empty Assignment.
// Friends the search could not cover are listed in Result.Unassigned and
// logged at warn level; they do not make Solve fail.
//
// Errors: ErrNilGraph, ErrBadAlpha, ErrUnknownVertex, or a wrapped oracle
// error (negative weights, expansion across a disconnected pair).
//
// Complexity: O(V·(V+E) log V) for the oracle, then per round O(V) candidate
// moves of O(L²) each for a tour of length L.
func Solve(g *core.Graph, homes []int, alpha float64, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	e, err := NewEvaluator(g, homes, alpha, opts...)
	if err != nil {
		return Result{}, err
	}

	vertices := g.Vertices()
	maxRounds := cfg.MaxRounds
	if maxRounds == 0 {
		maxRounds = len(vertices) + 1
	}

	s := newSearch(e, vertices, maxRounds)
	rounds := s.run()

	compact := anchor(s.tour, e.depot)
	walk, err := e.table.Expand(compact)
	if err != nil {
		return Result{}, fmt.Errorf("pickup: expand %v: %w", compact, err)
	}

	assignment, unassigned := e.assign(walk)
	res := Result{
		Walk:          walk,
		Compact:       compact,
		Assignment:    assignment,
		Unassigned:    unassigned,
		DrivingCost:   e.DrivingCost(walk),
		WalkingCost:   e.WalkingCost(walk),
		Infeasibility: len(unassigned),
		Rounds:        rounds,
	}
	res.Cost = float64(res.DrivingCost) + e.alpha*float64(res.WalkingCost)
	res.PenaltyHits = e.PenaltyHits()

	if res.PenaltyHits > 0 {
		cfg.Logger.Warn().
			Int("hits", res.PenaltyHits).
			Msg("unreachable-pair penalty used; graph is likely disconnected")
	}
	for _, h := range unassigned {
		cfg.Logger.Warn().Int("home", h).Msg("friend has no pickup vertex on the route")
	}
	cfg.Logger.Debug().
		Int("rounds", rounds).
		Int64("driving", res.DrivingCost).
		Int64("walking", res.WalkingCost).
		Float64("cost", res.Cost).
		Int("uncovered", res.Infeasibility).
		Msg("pickup solved")

	return res, nil
}

// anchor returns tour starting and ending at depot with at least two
// entries.
func anchor(tour []int, depot int) []int {
	out := make([]int, 0, len(tour)+2)
	if len(tour) == 0 || tour[0] != depot {
		out = append(out, depot)
	}
	out = append(out, tour...)
	if len(out) < 2 || out[len(out)-1] != depot {
		out = append(out, depot)
	}

	return out
}
