// SPDX-License-Identifier: MIT
//
// File: bound.go
// Role: the initial upper bound r0 handed to the oracle.
//
// Soundness, for positive times and a cycle C of k edges:
//   - max_cost ≥ 0: Σcost ≤ k·max_cost and Σtime ≥ k·min_time, so
//     ratio(C) ≤ max_cost/min_time ≤ max_cost·|E|/min_time.
//   - max_cost < 0: Σcost ≤ k·max_cost < 0 and Σtime ≤ k·max_time, so
//     ratio(C) ≤ max_cost/max_time. The |E| formula can undershoot here
//     (costs -1,-1 on a 2-cycle give -2 against an optimum of -1).

package mcr

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cycleratio/core"
)

// InitialBound returns r0 ≥ every cycle ratio of g:
//
//	r0 = max_cost·|E|/min_time   when max_cost ≥ 0
//	r0 = max_cost/max_time       when every cost is negative
//
// Missing attributes read as their defaults; nothing is written.
//
// Errors:
//   - ErrNilGraph.
//   - ErrUndefinedBound when g has no edges.
//   - core.ErrAttrNotNumeric (wrapped) for a non-numeric cost or time.
//   - ErrInvalidBound when min_time ≤ 0 or the result is not finite.
//
// Complexity: O(E).
func InitialBound(g *core.Graph, opts ...Option) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	edges := g.Edges()
	if len(edges) == 0 {
		return 0, ErrUndefinedBound
	}

	ev := NewEvaluator(opts...)
	maxCost, minTime, maxTime := math.Inf(-1), math.Inf(1), math.Inf(-1)
	for _, e := range edges {
		c, t, err := ev.Values(e)
		if err != nil {
			return 0, fmt.Errorf("InitialBound: %w", err)
		}
		maxCost = math.Max(maxCost, c)
		minTime = math.Min(minTime, t)
		maxTime = math.Max(maxTime, t)
	}
	if minTime <= 0 {
		return 0, fmt.Errorf("InitialBound: minimum time %g must be positive: %w", minTime, ErrInvalidBound)
	}

	var r0 float64
	if maxCost >= 0 {
		r0 = maxCost * float64(len(edges)) / minTime
	} else {
		r0 = maxCost / maxTime
	}
	if !finite(r0) {
		return 0, fmt.Errorf("InitialBound: bound %g is not finite: %w", r0, ErrInvalidBound)
	}

	return r0, nil
}
