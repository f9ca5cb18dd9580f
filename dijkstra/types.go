// SPDX-License-Identifier: MIT

// Package dijkstra defines core types and configuration options for the
// shortest-path oracle.
package dijkstra

import (
	"errors"
	"math"
)

// Unreachable is the distance reported for vertices the source cannot reach.
const Unreachable int64 = math.MaxInt64

// noPredecessor marks the source itself and unreachable vertices in prev maps.
const noPredecessor = -1

// Sentinel errors returned by the oracle.
var (
	// ErrNoSource indicates that the Source option was not supplied.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a referenced vertex is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates a negative MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrSourceNotIndexed indicates a Table query from a vertex that was
	// not one of the sources passed to AllPairs.
	ErrSourceNotIndexed = errors.New("dijkstra: vertex is not an indexed source")

	// ErrUnreachable indicates that no path exists between two vertices.
	ErrUnreachable = errors.New("dijkstra: no path between vertices")
)

// Options configures a Dijkstra run.
//
// Source      – starting vertex id (required; -1 means unset).
// ReturnPath  – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance – vertices farther than this are not settled. Default math.MaxInt64.
type Options struct {
	Source      int
	ReturnPath  bool
	MaxDistance int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex id.
func Source(id int) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps exploration; vertices beyond max stay Unreachable.
// Panics with ErrBadMaxDistance on negative values.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no source, no path output and no
// distance cap.
func DefaultOptions() Options {
	return Options{
		Source:      noPredecessor,
		ReturnPath:  false,
		MaxDistance: math.MaxInt64,
	}
}
