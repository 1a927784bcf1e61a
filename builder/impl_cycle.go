// SPDX-License-Identifier: MIT
// Package: blossomtrace/builder
//
// impl_cycle.go - Cycle(n) and Path(n).
//
// Contract:
//   - Cycle: n ≥ 3; edges i-(i+1)%n for i = 0..n-1.
//   - Path:  n ≥ 2; edges i-(i+1) for i = 0..n-2.
//   - Vertices via cfg.idFn in ascending index order.
//
// Complexity: O(n) vertices + O(n) edges.
package builder

import (
	"fmt"

	"github.com/katalvlaran/blossomtrace/core"
)

const (
	methodCycle   = "Cycle"
	methodPath    = "Path"
	minCycleNodes = 3
	minPathNodes  = 2
)

// Cycle returns a Constructor that builds the simple cycle C_n.
// Odd cycles are the smallest graphs that force a blossom.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(methodCycle, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(methodCycle, g, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(methodPath, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(methodPath, g, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
