// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Defaults:
//   • rng         = nil   (generators fail with ErrNeedRandSource)
//   • maxCoord    = 1000  (points in [0,1000]²)
//   • extraFactor = 3     (up to 3n extra edges before closure)

package builder

import "math/rand"

const (
	defaultMaxCoord    = 1000
	defaultExtraFactor = 3
)

// builderConfig aggregates all knobs used by generators.
type builderConfig struct {
	rng         *rand.Rand
	maxCoord    int
	extraFactor int
}

// newBuilderConfig applies opts in order over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:         nil,
		maxCoord:    defaultMaxCoord,
		extraFactor: defaultExtraFactor,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
