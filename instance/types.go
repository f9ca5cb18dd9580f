// SPDX-License-Identifier: MIT

package instance

import (
	"errors"

	"github.com/katalvlaran/lvroute/core"
)

// Sentinel errors.
var (
	// ErrMalformed indicates a line that does not match the layout.
	ErrMalformed = errors.New("instance: malformed file")

	// ErrBadWeight indicates a non-integer or non-positive edge weight.
	ErrBadWeight = errors.New("instance: edge weight must be a positive integer")

	// ErrEdgeMismatch indicates an edge listed from one endpoint only, or
	// with different weights from its two endpoints.
	ErrEdgeMismatch = errors.New("instance: asymmetric edge")

	// ErrBadHome indicates a home out of range, repeated, or a home count
	// that disagrees with the header.
	ErrBadHome = errors.New("instance: invalid friend home")

	// ErrNilInstance indicates Write was given a nil instance or graph.
	ErrNilInstance = errors.New("instance: nil instance")
)

// Instance is one pickup problem.
type Instance struct {
	// Alpha weights walking against driving.
	Alpha float64

	// Nodes is the vertex count; vertices are 0..Nodes-1.
	Nodes int

	// Homes are the friends' home vertices, ascending.
	Homes []int

	// Graph is the undirected road network.
	Graph *core.Graph
}
