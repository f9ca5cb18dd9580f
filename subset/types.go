// SPDX-License-Identifier: MIT

package subset

import "errors"

// DefaultDepot is the depot vertex used when WithDepot is not given.
const DefaultDepot = 0

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("subset: graph is nil")

	// ErrUnknownVertex indicates a depot or required vertex absent from the graph.
	ErrUnknownVertex = errors.New("subset: unknown vertex")
)

// Options configures Solve.
type Options struct {
	Depot int
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithDepot sets the start and end vertex of the route.
func WithDepot(id int) Option {
	return func(o *Options) {
		o.Depot = id
	}
}

// Result is a solved required-subset route.
type Result struct {
	// Walk starts and ends at the depot and follows original edges; it may
	// repeat vertices.
	Walk []int

	// Compact is the optimal cycle over the depot and required vertices,
	// each listed once between the two depot ends.
	Compact []int

	// Cost is the driving distance of Walk (and of Compact under
	// shortest-path hop costs).
	Cost int64
}
