// SPDX-License-Identifier: MIT
// Package: blossomtrace/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi G(n, p).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil for 0 < p < 1 (else ErrNeedRandSource).
//   - One Bernoulli trial per unordered pair {i,j}, i ascending then j > i
//     ascending, so a fixed seed always yields the same edge list.
//
// Complexity: O(n) vertices + O(n²) trials.
package builder

import (
	"fmt"

	"github.com/katalvlaran/blossomtrace/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addVertices(methodRandomSparse, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var keep bool
				if rng == nil {
					keep = p == probMax
				} else {
					keep = rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err = addEdge(methodRandomSparse, g, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
