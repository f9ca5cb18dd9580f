// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// instance.go: RandomInstance(n, m, alpha) generator.

package builder

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvroute/instance"
)

const methodRandomInstance = "RandomInstance"

// RandomInstance returns an EuclideanMetric graph with m friends whose homes
// are sampled without replacement from 1..n-1 and sorted.
//
// Errors: those of EuclideanMetric, ErrTooManyFriends, ErrBadAlpha.
func RandomInstance(n, m int, alpha float64, opts ...BuilderOption) (*instance.Instance, error) {
	if m < 0 || (n >= minVertices && m > n-1) {
		return nil, fmt.Errorf("%s: m=%d with n=%d: %w", methodRandomInstance, m, n, ErrTooManyFriends)
	}
	if alpha < 0 || math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, fmt.Errorf("%s: alpha=%v: %w", methodRandomInstance, alpha, ErrBadAlpha)
	}

	cfg := newBuilderConfig(opts...)
	// graph and homes draw from the same rng, so a seed fixes both
	g, err := EuclideanMetric(n, resolved(cfg))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomInstance, err)
	}

	pool := cfg.rng.Perm(n - 1)
	homes := make([]int, m)
	for i := 0; i < m; i++ {
		homes[i] = pool[i] + 1
	}
	sort.Ints(homes)

	return &instance.Instance{Alpha: alpha, Nodes: n, Homes: homes, Graph: g}, nil
}

// resolved replays an already built config, so WithSeed is not applied
// twice with fresh sources.
func resolved(cfg builderConfig) BuilderOption {
	return func(c *builderConfig) {
		*c = cfg
	}
}
