// SPDX-License-Identifier: MIT
//
// File: weight.go
// Role: the ratio-parametrized edge weight cost - r·time.

package mcr

import (
	"math"

	"github.com/katalvlaran/cycleratio/core"
)

// Weight returns cost(e) - r·time(e) under the evaluator's keys and
// defaults. It is recomputed on every call; an oracle probing many values of
// r sees the current attributes each time.
//
// A non-numeric attribute yields NaN, which the negcycle finder rejects.
// InitialBound reports such edges before any search starts.
func (ev Evaluator) Weight(e *core.Edge, r float64) float64 {
	c, t, err := ev.Values(e)
	if err != nil {
		return math.NaN()
	}
	return c - r*t
}

// Weight is Evaluator.Weight with the "cost"/"time" keys and defaults of 1.
func Weight(e *core.Edge, r float64) float64 {
	return NewEvaluator().Weight(e, r)
}
