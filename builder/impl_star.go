// SPDX-License-Identifier: MIT
// Package: blossomtrace/builder
//
// impl_star.go - Star(n) and Wheel(n), both hubbed at CenterVertexID.
//
// Contract:
//   - Star:  n ≥ 2; hub first, then leaves cfg.idFn(1..n-1), spokes in leaf order.
//   - Wheel: n ≥ 4; rim C_{n-1} via Cycle (IDs cfg.idFn(0..n-2)), then hub, then spokes.
//
// Complexity: O(n).
package builder

import (
	"fmt"

	"github.com/katalvlaran/blossomtrace/core"
)

// CenterVertexID is the hub vertex of Star and Wheel.
const CenterVertexID = "Center"

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor that builds K_{1,n-1}. Its maximum matching has
// size one whatever n is.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, CenterVertexID, err)
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := g.AddVertex(leaf); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, leaf, err)
			}
			if err := addEdge(methodStar, g, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that builds W_n = C_{n-1} plus a hub joined
// to every rim vertex.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodWheel, CenterVertexID, err)
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(methodWheel, g, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
