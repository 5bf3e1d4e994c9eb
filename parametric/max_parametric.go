// SPDX-License-Identifier: MIT
//
// File: max_parametric.go
// Role: iterative parametric search that moves r to each new cycle's ratio.
//
// Implementation:
//   - Stage 1: probe at r0 + slack with zero labels.
//   - Stage 2: loop up to MaxIter:
//     find a negative cycle C under w(·, r); none → stop.
//     r_min = ratio(C); r_min ≥ r → stop.
//     Accept C, set r = r_min, and re-anchor labels along C:
//     dist[u] = dist[v] - w(e, r) for each e = (u, v) in C.
//   - Stage 3: return the last accepted cycle and its ratio.
//
// Complexity:
//   - Time:  O(K·R·(V + E)) for K accepted cycles and R passes per probe.
//   - Space: O(V) labels plus the finder's predecessor maps.

package parametric

import (
	"fmt"

	"github.com/katalvlaran/cycleratio/core"
)

// MaxParametric is the default oracle.
type MaxParametric struct {
	options Options
}

// NewMaxParametric returns a MaxParametric oracle configured by opts.
func NewMaxParametric(opts ...Option) *MaxParametric {
	return &MaxParametric{options: buildOptions(opts)}
}

// Name identifies the oracle in logs and metrics.
func (m *MaxParametric) Name() string { return "max-parametric" }

// Search runs the parametric descent from r0.
//
// Errors:
//   - ErrNilGraph, ErrNilFunc, ErrBadBound on bad arguments.
//   - negcycle errors (ErrBadWeight, ErrNoConvergence) and ctx.Err(), wrapped.
//   - Any error returned by rf, wrapped.
func (m *MaxParametric) Search(g *core.Graph, r0 float64, w WeightFunc, rf RatioFunc) (Result, error) {
	if err := validate(g, r0, w, rf); err != nil {
		return Result{}, fmt.Errorf("%s: %w", m.Name(), err)
	}
	finder, err := newFinder(g, m.options)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", m.Name(), err)
	}

	log := m.options.Logger.WithName(m.Name())
	res := Result{Ratio: r0, Dist: make(map[string]float64, g.VertexCount())}
	r := firstProbe(r0, m.options.Slack)

	for {
		if res.Iterations == m.options.MaxIter {
			log.V(1).Info("iteration cap reached", "maxIter", m.options.MaxIter, "ratio", res.Ratio)
			break
		}
		res.Iterations++
		cycle, err := finder.FindNegCycle(m.options.Ctx, res.Dist, at(w, r))
		if err != nil {
			return Result{}, fmt.Errorf("%s: probe %d at r=%g: %w", m.Name(), res.Iterations, r, err)
		}
		if cycle == nil {
			log.V(2).Info("no negative cycle", "iteration", res.Iterations, "r", r)
			break
		}
		rmin, err := rf(cycle)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", m.Name(), err)
		}
		if rmin >= r {
			log.V(2).Info("no improvement", "iteration", res.Iterations, "r", r, "ratio", rmin)
			break
		}
		log.V(2).Info("accepted cycle", "iteration", res.Iterations, "ratio", rmin, "length", len(cycle))

		res.Cycle, res.Ratio = cycle, rmin
		r = rmin
		for _, e := range cycle {
			res.Dist[e.From] = res.Dist[e.To] - w(e, r)
		}
	}

	return res, nil
}
