// SPDX-License-Identifier: MIT
//
// File: bisection.go
// Role: bracketing oracle that bisects r between a cycle-free lower bound and
//       the best witness cycle.
//
// Implementation:
//   - Stage 1: probe at r0 + slack; no cycle → return r0 with no cycle.
//   - Stage 2: hi = ratio(witness). Step lo = hi - step with step doubling
//     until no negative cycle exists at lo; any cycle found on the way
//     becomes the new witness.
//   - Stage 3: bisect [lo, hi]; a cycle at mid replaces the witness when its
//     ratio is smaller, otherwise lo = mid. Stop when lo and hi agree within
//     Eps (absolute or relative) or after MaxIter probes.
//   - Stage 4: report the witness cycle and its exact ratio.
//
// Complexity:
//   - Time:  O(log((hi-lo)/Eps)·R·(V + E)) for R passes per probe.
//   - Space: O(V).

package parametric

import (
	"fmt"
	"math"

	"github.com/go-logr/logr"
	"github.com/katalvlaran/cycleratio/core"
	"github.com/katalvlaran/cycleratio/negcycle"
	"gonum.org/v1/gonum/floats/scalar"
)

// Bisection is a bracketing oracle.
type Bisection struct {
	options Options
}

// NewBisection returns a Bisection oracle configured by opts.
func NewBisection(opts ...Option) *Bisection {
	return &Bisection{options: buildOptions(opts)}
}

// Name identifies the oracle in logs and metrics.
func (b *Bisection) Name() string { return "bisection" }

// bisectRun carries the state shared by the stages of one Search.
type bisectRun struct {
	finder *negcycle.Finder
	w      WeightFunc
	rf     RatioFunc
	opts   Options
	log    logr.Logger
	res    Result
}

// probe looks for a negative cycle at r. When one is found and its ratio
// beats the current witness, it becomes the witness.
func (s *bisectRun) probe(r float64) (bool, error) {
	s.res.Iterations++
	cycle, err := s.finder.FindNegCycle(s.opts.Ctx, s.res.Dist, at(s.w, r))
	if err != nil {
		return false, fmt.Errorf("probe %d at r=%g: %w", s.res.Iterations, r, err)
	}
	if cycle == nil {
		s.log.V(2).Info("no negative cycle", "iteration", s.res.Iterations, "r", r)
		return false, nil
	}
	ratio, err := s.rf(cycle)
	if err != nil {
		return false, err
	}
	s.log.V(2).Info("negative cycle", "iteration", s.res.Iterations, "r", r, "ratio", ratio)
	if s.res.Cycle == nil || ratio < s.res.Ratio {
		s.res.Cycle, s.res.Ratio = cycle, ratio
	}
	return true, nil
}

func (s *bisectRun) exhausted() bool {
	return s.res.Iterations >= s.opts.MaxIter
}

// Search brackets and bisects the minimum ratio below r0.
//
// Errors:
//   - ErrNilGraph, ErrNilFunc, ErrBadBound on bad arguments.
//   - negcycle errors and ctx.Err(), wrapped.
//   - Any error returned by rf, wrapped.
func (b *Bisection) Search(g *core.Graph, r0 float64, w WeightFunc, rf RatioFunc) (Result, error) {
	if err := validate(g, r0, w, rf); err != nil {
		return Result{}, fmt.Errorf("%s: %w", b.Name(), err)
	}
	finder, err := newFinder(g, b.options)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", b.Name(), err)
	}
	s := &bisectRun{
		finder: finder,
		w:      w,
		rf:     rf,
		opts:   b.options,
		log:    b.options.Logger.WithName(b.Name()),
		res:    Result{Ratio: r0, Dist: make(map[string]float64, g.VertexCount())},
	}

	found, err := s.probe(firstProbe(r0, b.options.Slack))
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", b.Name(), err)
	}
	if !found {
		return s.res, nil
	}

	// Expand downward until the lower end is cycle-free.
	hi := s.res.Ratio
	step := math.Max(1, math.Abs(hi))
	lo := hi - step
	for !s.exhausted() {
		found, err = s.probe(lo)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", b.Name(), err)
		}
		if !found {
			break
		}
		hi = math.Min(lo, s.res.Ratio)
		step *= 2
		lo = hi - step
	}

	for !s.exhausted() && !scalar.EqualWithinAbsOrRel(lo, hi, b.options.Eps, b.options.Eps) {
		mid := lo + (hi-lo)/2
		found, err = s.probe(mid)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", b.Name(), err)
		}
		if found {
			hi = math.Min(mid, s.res.Ratio)
		} else {
			lo = mid
		}
	}
	s.log.V(1).Info("bracket closed", "lo", lo, "hi", hi, "ratio", s.res.Ratio, "iterations", s.res.Iterations)

	return s.res, nil
}
