// SPDX-License-Identifier: MIT
// Package: cycleratio/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits every ordered pair (i,j), i≠j, in order i asc then j asc:
//     n·(n-1) edges, no loops.
//
// Complexity:
//   • Time: O(n²). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cycleratio/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete digraph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := cfg.addVertices(g, methodComplete, n); err != nil {
			return err
		}
		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := cfg.addEdge(g, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
