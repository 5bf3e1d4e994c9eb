// SPDX-License-Identifier: MIT
//
// File: exhaustive.go
// Role: exact oracle over every elementary cycle, enumerated with gonum.

package parametric

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cycleratio/converters"
	"github.com/katalvlaran/cycleratio/core"
)

// Exhaustive evaluates rf on every elementary cycle and keeps the minimum.
// The cycle count is exponential in the worst case. Enumeration stops as
// soon as it passes MaxCycles and checks Ctx while it runs.
type Exhaustive struct {
	options Options
}

// NewExhaustive returns an Exhaustive oracle configured by opts.
func NewExhaustive(opts ...Option) *Exhaustive {
	return &Exhaustive{options: buildOptions(opts)}
}

// Name identifies the oracle in logs and metrics.
func (x *Exhaustive) Name() string { return "exhaustive" }

// Search scans all cycles and reports the one with the smallest ratio, if it
// lies below r0 + slack. Ties keep the first cycle in converters order
// (self-loops, then by length and node IDs). Dist holds labels relaxed at
// the reported ratio.
//
// Errors:
//   - ErrNilGraph, ErrNilFunc, ErrBadBound on bad arguments.
//   - ErrTooManyCycles as soon as enumeration passes MaxCycles.
//   - Ctx.Err() when the context ends during enumeration or labelling.
//   - Any error returned by rf, wrapped.
func (x *Exhaustive) Search(g *core.Graph, r0 float64, w WeightFunc, rf RatioFunc) (Result, error) {
	if err := validate(g, r0, w, rf); err != nil {
		return Result{}, fmt.Errorf("%s: %w", x.Name(), err)
	}
	view, err := converters.ToGonum(g)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", x.Name(), err)
	}
	cycles, err := view.CyclesWithin(x.options.Ctx, x.options.MaxCycles)
	if errors.Is(err, converters.ErrCycleLimit) {
		return Result{}, fmt.Errorf("%s: %w: %w", x.Name(), ErrTooManyCycles, err)
	}
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", x.Name(), err)
	}

	log := x.options.Logger.WithName(x.Name())
	res := Result{Ratio: r0, Iterations: len(cycles)}
	limit := firstProbe(r0, x.options.Slack)
	for _, cycle := range cycles {
		r, err := rf(cycle)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", x.Name(), err)
		}
		if r < limit && (res.Cycle == nil || r < res.Ratio) {
			res.Cycle, res.Ratio = cycle, r
		}
	}
	log.V(2).Info("scanned cycles", "cycles", len(cycles), "ratio", res.Ratio, "found", res.HasCycle())

	if res.Dist, err = x.labels(g, w, res); err != nil {
		return Result{}, fmt.Errorf("%s: %w", x.Name(), err)
	}

	return res, nil
}

// labels relaxes zero-initialized labels at the reported ratio. Rounding can
// leave the critical cycle a hair below zero; that cycle is ignored.
func (x *Exhaustive) labels(g *core.Graph, w WeightFunc, res Result) (map[string]float64, error) {
	r := res.Ratio
	if !res.HasCycle() {
		r = firstProbe(r, x.options.Slack)
	}
	finder, err := newFinder(g, x.options)
	if err != nil {
		return nil, err
	}
	dist := make(map[string]float64, g.VertexCount())
	if _, err = finder.FindNegCycle(x.options.Ctx, dist, at(w, r)); err != nil {
		return nil, err
	}

	return dist, nil
}
