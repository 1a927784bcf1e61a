// SPDX-License-Identifier: MIT
// Package: blossomtrace/builder
//
// api.go - public entry point of the fixture builder.
//
// Contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors are implemented in impl_*.go and return sentinel errors, never panic.
//   - Determinism: same inputs, options, seed and constructor order give identical graphs,
//     including edge declaration order, which drives the matching trace.
package builder

import (
	"fmt"

	"github.com/katalvlaran/blossomtrace/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add vertices before the edges that use them.
//   - Emit vertices and edges in a stable, documented order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: sum of their costs plus O(K).
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Constructor errors wrapped via %w; branch with errors.Is against
//     builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...) or
//     core sentinels (ErrDuplicateVertex when two constructors collide).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts cfg.idFn(0..n-1) and returns the IDs in order.
// Complexity: O(n).
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addEdge inserts u-v with an auto-generated ID, wrapping failures with method.
func addEdge(method string, g *core.Graph, u, v string) error {
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s): %w", method, u, v, err)
	}

	return nil
}
