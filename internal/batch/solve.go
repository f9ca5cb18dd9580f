// SPDX-License-Identifier: MIT

// Package batch runs the lvroute solvers on instances, one at a time or as
// a bounded concurrent batch.
package batch

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvroute/instance"
	"github.com/katalvlaran/lvroute/internal/config"
	"github.com/katalvlaran/lvroute/pickup"
	"github.com/katalvlaran/lvroute/subset"
	"github.com/katalvlaran/lvroute/tsp"
	"github.com/rs/zerolog"
)

// ErrUnknownMode indicates a solver mode other than pickup, tsp or subset.
var ErrUnknownMode = errors.New("batch: unknown solver mode")

// Report is the printable outcome of one solve.
type Report struct {
	RunID       string        `yaml:"run_id,omitempty"`
	Path        string        `yaml:"path,omitempty"`
	Mode        string        `yaml:"mode"`
	Alpha       float64       `yaml:"alpha"`
	Walk        []int         `yaml:"walk,flow"`
	Assignment  map[int][]int `yaml:"assignment,omitempty"`
	Unassigned  []int         `yaml:"unassigned,omitempty,flow"`
	DrivingCost int64         `yaml:"driving_cost"`
	WalkingCost int64         `yaml:"walking_cost"`
	Cost        float64       `yaml:"cost"`
	Feasible    bool          `yaml:"feasible"`
	Rounds      int           `yaml:"rounds,omitempty"`
	PenaltyHits int           `yaml:"penalty_hits,omitempty"`
	Error       string        `yaml:"error,omitempty"`
}

// Solve runs the solver selected by cfg.Mode on inst.
//
//   - pickup: heuristic pickup route; cfg.Alpha overrides inst.Alpha when ≥ 0.
//   - tsp:    exact tour through every vertex, expanded to a walk; every
//     friend is picked up at home.
//   - subset: exact route through the friends' homes; everyone is picked up
//     at home.
func Solve(inst *instance.Instance, cfg config.Solver, logger zerolog.Logger) (Report, error) {
	if inst == nil || inst.Graph == nil {
		return Report{}, instance.ErrNilInstance
	}
	alpha := inst.Alpha
	if cfg.Alpha >= 0 {
		alpha = cfg.Alpha
	}
	mode := cfg.Mode
	if mode == "" {
		mode = config.ModePickup
	}
	rep := Report{Mode: mode, Alpha: alpha}

	switch mode {
	case config.ModePickup:
		res, err := pickup.Solve(inst.Graph, inst.Homes, alpha,
			pickup.WithDepot(cfg.Depot),
			pickup.WithMaxRounds(cfg.MaxRounds),
			pickup.WithLogger(logger))
		if err != nil {
			return Report{}, err
		}
		rep.Walk = res.Walk
		rep.Assignment = res.Assignment
		rep.Unassigned = res.Unassigned
		rep.DrivingCost = res.DrivingCost
		rep.WalkingCost = res.WalkingCost
		rep.Cost = res.Cost
		rep.Feasible = res.Feasible()
		rep.Rounds = res.Rounds
		rep.PenaltyHits = res.PenaltyHits

	case config.ModeTSP:
		res, walk, err := tsp.SolveGraphWalk(inst.Graph, cfg.Depot)
		if err != nil {
			return Report{}, err
		}
		rep.Walk = walk
		rep.DrivingCost = int64(res.Cost)
		rep.Cost = res.Cost
		rep.Feasible = true
		rep.Assignment = atHome(inst.Homes)

	case config.ModeSubset:
		res, err := subset.Solve(inst.Graph, inst.Homes, subset.WithDepot(cfg.Depot))
		if err != nil {
			return Report{}, err
		}
		rep.Walk = res.Walk
		rep.DrivingCost = res.Cost
		rep.Cost = float64(res.Cost)
		rep.Feasible = true
		rep.Assignment = atHome(inst.Homes)

	default:
		return Report{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	return rep, nil
}

// atHome assigns every friend to their own home; nil when there are none.
func atHome(homes []int) map[int][]int {
	if len(homes) == 0 {
		return nil
	}
	out := make(map[int][]int, len(homes))
	for _, h := range homes {
		out[h] = []int{h}
	}

	return out
}
