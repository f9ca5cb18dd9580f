// SPDX-License-Identifier: MIT

package pickup

import (
	"errors"

	"github.com/rs/zerolog"
)

const (
	// DefaultDepot is the route's start and end vertex unless WithDepot is given.
	DefaultDepot = 0

	// UnreachablePenalty is the driving distance charged for a hop between
	// vertices with no path.
	UnreachablePenalty int64 = 1_000_000

	// StrandedFactor multiplies a friend's depot distance when no vertex of
	// the tour covers their home.
	StrandedFactor int64 = 100
)

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("pickup: graph is nil")

	// ErrUnknownVertex indicates a depot or home absent from the graph.
	ErrUnknownVertex = errors.New("pickup: unknown vertex")

	// ErrBadAlpha indicates a negative, NaN or infinite α.
	ErrBadAlpha = errors.New("pickup: alpha must be a finite non-negative number")

	// ErrBadMaxRounds indicates a negative round budget.
	ErrBadMaxRounds = errors.New("pickup: max rounds must be non-negative")
)

// Options configures Solve and NewEvaluator.
//
// Depot     – start and end vertex (default DefaultDepot).
// MaxRounds – search round budget; 0 means vertex count + 1.
// Logger    – receives debug move traces and fallback warnings (default Nop).
type Options struct {
	Depot     int
	MaxRounds int
	Logger    zerolog.Logger
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithDepot sets the route's start and end vertex.
func WithDepot(id int) Option {
	return func(o *Options) {
		o.Depot = id
	}
}

// WithMaxRounds caps the number of search rounds. Zero restores the default.
// Panics with ErrBadMaxRounds on negative values.
func WithMaxRounds(rounds int) Option {
	if rounds < 0 {
		panic(ErrBadMaxRounds.Error())
	}
	return func(o *Options) {
		o.MaxRounds = rounds
	}
}

// WithLogger injects a zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the depot 0, default round budget, silent logger.
func DefaultOptions() Options {
	return Options{
		Depot:     DefaultDepot,
		MaxRounds: 0,
		Logger:    zerolog.Nop(),
	}
}

// Result is a solved pickup route.
type Result struct {
	// Walk starts and ends at the depot and follows original edges.
	Walk []int

	// Compact is the tour the search settled on, before expansion.
	Compact []int

	// Assignment maps a walk vertex to the homes of the friends picked up
	// there, in ascending home order.
	Assignment map[int][]int

	// Unassigned lists homes with no pickup vertex on the walk, ascending.
	Unassigned []int

	// DrivingCost is the distance driven along Walk.
	DrivingCost int64

	// WalkingCost sums every friend's walk to their pickup vertex; each
	// unassigned friend contributes the stranded penalty instead.
	WalkingCost int64

	// Cost is DrivingCost + α·WalkingCost.
	Cost float64

	// Infeasibility is the number of unassigned friends.
	Infeasibility int

	// Rounds is the number of search rounds run.
	Rounds int

	// PenaltyHits counts UnreachablePenalty fallbacks during the solve.
	PenaltyHits int
}

// Feasible reports whether every friend has a pickup vertex.
func (r Result) Feasible() bool {
	return r.Infeasibility == 0
}
