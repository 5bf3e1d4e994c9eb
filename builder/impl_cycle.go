// SPDX-License-Identifier: MIT
// Package: cycleratio/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices). n == 1 emits a self-loop and therefore
//     requires a graph built WithLoops (core returns ErrLoopNotAllowed otherwise).
//     n == 2 emits the 2-cycle 0→1→0.
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i → (i+1)%n for i=0..n-1.
//   • Attributes drawn per edge in emission order.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cycleratio/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 1
)

// Cycle returns a Constructor that builds the directed ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := cfg.addVertices(g, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := cfg.addEdge(g, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
