// SPDX-License-Identifier: MIT
//
// File: ratio.go
// Role: cost/time ratio of a concrete cycle.

package mcr

import (
	"fmt"

	"github.com/katalvlaran/cycleratio/core"
)

// Ratio returns Σcost / Σtime over cycle.
//
// Errors:
//   - ErrDegenerateCycle if the total time is exactly zero, or cycle is empty.
//   - core.ErrAttrNotNumeric (wrapped) for a non-numeric attribute.
func (ev Evaluator) Ratio(cycle []*core.Edge) (float64, error) {
	if len(cycle) == 0 {
		return 0, fmt.Errorf("empty cycle: %w", ErrDegenerateCycle)
	}
	var sumCost, sumTime float64
	for _, e := range cycle {
		c, t, err := ev.Values(e)
		if err != nil {
			return 0, err
		}
		sumCost += c
		sumTime += t
	}
	if sumTime == 0 {
		return 0, fmt.Errorf("cycle of %d edges from %s: %w", len(cycle), cycle[0].From, ErrDegenerateCycle)
	}

	return sumCost / sumTime, nil
}

// Ratio is Evaluator.Ratio with the "cost"/"time" keys and defaults of 1.
func Ratio(cycle []*core.Edge) (float64, error) {
	return NewEvaluator().Ratio(cycle)
}
