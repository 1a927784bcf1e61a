// SPDX-License-Identifier: MIT
// Package: blossomtrace/builder
//
// impl_complete.go - Complete(n) and CompleteBipartite(n1, n2).
//
// Contract:
//   - Complete: n ≥ 1; edges (i,j) for i < j, i ascending then j ascending.
//   - CompleteBipartite: n1, n2 ≥ 1; left IDs leftPrefix+i, right IDs
//     rightPrefix+j; edges left-major.
//
// Complexity: O(n²) and O(n1·n2) edges.
package builder

import (
	"fmt"

	"github.com/katalvlaran/blossomtrace/core"
)

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	minCompleteNodes        = 1
	minPartitionSize        = 1
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(methodComplete, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(methodComplete, g, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		left, err := addVertices(methodCompleteBipartite, g, builderConfig{idFn: PrefixIDFn(cfg.leftPrefix)}, n1)
		if err != nil {
			return err
		}
		right, err := addVertices(methodCompleteBipartite, g, builderConfig{idFn: PrefixIDFn(cfg.rightPrefix)}, n2)
		if err != nil {
			return err
		}
		for _, u := range left {
			for _, v := range right {
				if err = addEdge(methodCompleteBipartite, g, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
