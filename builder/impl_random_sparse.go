// SPDX-License-Identifier: MIT
// Package: cycleratio/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like digraph: include each ordered pair (i,j) independently with prob p.
//   - Self-loops (i,i) are trialled iff g.Looped()==true.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Attribute draws happen only for accepted edges, right after the Bernoulli trial.
//
// Complexity:
//   - Time: O(n²) trials. Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: i asc, j asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cycleratio/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random digraph over n
// vertices with independent edge probability p.
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
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := cfg.addVertices(g, methodRandomSparse, n); err != nil {
			return err
		}

		loops := g.Looped()
		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j && !loops {
					continue
				}
				if !accept(cfg, p) {
					continue
				}
				if err := cfg.addEdge(g, methodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// accept runs one Bernoulli(p) trial; p ∈ {0,1} is decided without the RNG.
func accept(cfg builderConfig, p float64) bool {
	switch {
	case p <= probMin:
		return false
	case p >= probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
