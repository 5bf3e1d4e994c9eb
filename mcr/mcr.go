// SPDX-License-Identifier: MIT
//
// File: mcr.go
// Role: MinCycleRatio, the reduction from ratio minimization to parametric
//       negative-cycle search.
//
// Implementation:
//   - Stage 1: default cost and time in place (skipped under WithReadOnly;
//     the evaluator then resolves defaults on read).
//   - Stage 2: r0 = InitialBound(g).
//   - Stage 3: oracle.Search(g, r0, cost - r·time, Σcost/Σtime).
//   - Stage 4: record metrics and return the oracle's result unchanged.

package mcr

import (
	"fmt"
	"time"

	"github.com/katalvlaran/cycleratio/core"
	"github.com/katalvlaran/cycleratio/parametric"
)

// MinCycleRatio returns the minimum cost/time ratio over the directed cycles
// of g, a critical cycle achieving it (edges in forward order) and the
// oracle's distance labels. An acyclic graph is not an error: the result has
// HasCycle() == false and Ratio equal to the initial bound.
//
// Unless WithReadOnly is given, missing cost and time attributes are written
// to g, so concurrent calls on one graph must use separate clones.
//
// Errors:
//   - ErrNilGraph, ErrUndefinedBound, ErrInvalidBound, core.ErrAttrNotNumeric.
//   - ErrDegenerateCycle and any oracle error, wrapped.
func MinCycleRatio(g *core.Graph, opts ...Option) (parametric.Result, error) {
	if g == nil {
		return parametric.Result{}, ErrNilGraph
	}
	cfg := buildOptions(opts)
	log := cfg.Logger.WithName("mcr")

	if !cfg.ReadOnly {
		if _, _, err := Prepare(g, opts...); err != nil {
			return parametric.Result{}, err
		}
	}
	r0, err := InitialBound(g, opts...)
	if err != nil {
		return parametric.Result{}, err
	}

	oracle := cfg.Oracle
	if oracle == nil {
		oracle = parametric.NewMaxParametric(parametric.WithLogger(cfg.Logger))
	}
	name := oracleName(oracle)
	log.V(1).Info("searching", "oracle", name, "r0", r0, "edges", g.EdgeCount(), "readOnly", cfg.ReadOnly)

	ev := NewEvaluator(opts...)
	start := time.Now()
	res, err := oracle.Search(g, r0, ev.Weight, ev.Ratio)
	cfg.Recorder.Observe(name, res, err, time.Since(start))
	if err != nil {
		return parametric.Result{}, fmt.Errorf("MinCycleRatio: %w", err)
	}
	log.V(1).Info("done", "ratio", res.Ratio, "cycle", len(res.Cycle), "iterations", res.Iterations)

	return res, nil
}

// oracleName labels o for logs and metrics.
func oracleName(o Oracle) string {
	if n, ok := o.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", o)
}
