// SPDX-License-Identifier: MIT
// Package: blossomtrace/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w, e.g.
//     fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices).
//   - Validation order: size, then probability, then RNG presence.
package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not proceed
// (e.g. a nil constructor passed to BuildGraph).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownPreset indicates a preset string that names no known topology
// or carries malformed parameters.
var ErrUnknownPreset = errors.New("builder: unknown preset")
