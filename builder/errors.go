// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach the method name with %w wrapping.
//   • Option constructors (WithX) panic on meaningless values; generators never do.

package builder

import "errors"

// ErrTooFewVertices indicates n < 1.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooManyFriends indicates a friend count outside 0..n-1.
var ErrTooManyFriends = errors.New("builder: friend count out of range")

// ErrNeedRandSource indicates that no RNG was configured (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadAlpha indicates a negative, NaN or infinite α.
var ErrBadAlpha = errors.New("builder: alpha must be a finite non-negative number")
