// SPDX-License-Identifier: MIT
// Package: blossomtrace/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn        = DefaultIDFn ("0","1","2",...)
//   - rng         = nil (pure/deterministic unless seeded)
//   - left/right  = "L" / "R"
package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn

	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand

	// Bipartite ID prefixes. Empty resolves to defaults.
	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}
