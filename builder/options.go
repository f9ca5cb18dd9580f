// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// options.go: functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; generators
// themselves only return errors.

package builder

import "math/rand"

// BuilderOption customizes a generator by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxCoord sets the grid bound: coordinates are drawn from [0, max].
// Panics if max < 1.
func WithMaxCoord(max int) BuilderOption {
	if max < 1 {
		panic("builder: WithMaxCoord(max<1)")
	}
	return func(c *builderConfig) {
		c.maxCoord = max
	}
}

// WithExtraEdgeFactor sets how many extra random edges (factor·n, capped by
// the pairs left after the spanning path) join the sparse graph before
// closure. Zero keeps only the spanning path. Panics if factor < 0.
func WithExtraEdgeFactor(factor int) BuilderOption {
	if factor < 0 {
		panic("builder: WithExtraEdgeFactor(factor<0)")
	}
	return func(c *builderConfig) {
		c.extraFactor = factor
	}
}
