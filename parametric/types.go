// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: shared types, options and sentinel errors for the ratio oracles.

package parametric

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/go-logr/logr"
	"github.com/katalvlaran/cycleratio/core"
	"github.com/katalvlaran/cycleratio/negcycle"
)

// Sentinel errors returned by the oracles.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Search.
	ErrNilGraph = errors.New("parametric: graph is nil")

	// ErrNilFunc indicates a missing weight or ratio function.
	ErrNilFunc = errors.New("parametric: weight or ratio function is nil")

	// ErrBadBound indicates a NaN or infinite starting ratio.
	ErrBadBound = errors.New("parametric: initial ratio must be finite")

	// ErrTooManyCycles indicates that exhaustive enumeration exceeded MaxCycles.
	ErrTooManyCycles = errors.New("parametric: too many cycles to enumerate")
)

// WeightFunc returns the weight of e under the candidate ratio r.
// For the minimum cycle ratio this is cost(e) - r·time(e).
type WeightFunc func(e *core.Edge, r float64) float64

// RatioFunc returns the ratio of a cycle given in forward order.
type RatioFunc func(cycle []*core.Edge) (float64, error)

// Result is what an oracle reports.
//
// Fields:
//
//	– Ratio:      ratio of Cycle, or the initial bound when no cycle was found.
//	– Cycle:      critical cycle in forward order; nil when none exists below the bound.
//	– Dist:       distance labels left by the last relaxation, keyed by vertex ID.
//	– Iterations: number of negative-cycle probes (or cycles scanned, for Exhaustive).
type Result struct {
	Ratio      float64
	Cycle      []*core.Edge
	Dist       map[string]float64
	Iterations int
}

// HasCycle reports whether a critical cycle was found.
func (r Result) HasCycle() bool {
	return len(r.Cycle) > 0
}

// Options configures an oracle.
//
// Fields:
//
//	– Ctx:       cancels long searches between relaxation passes and during
//	             cycle enumeration. Default Background.
//	– Logger:    V(2) receives per-probe progress. Default logr.Discard().
//	– MaxIter:   cap on probes. Must be > 0. Default 1000.
//	– Eps:       absolute/relative stopping tolerance for Bisection. Must be > 0.
//	             Default 1e-9.
//	– Slack:     relative offset added to the first probe so a cycle whose ratio
//	             equals the bound is still found: probe = r0 + Slack·max(1, |r0|).
//	             Must be ≥ 0. Default 1e-9.
//	– MaxCycles: cap on cycles enumerated by Exhaustive; enumeration stops as
//	             soon as it is passed. 0 disables it. Default 1<<16.
//	– Tolerance: relative relaxation threshold handed to negcycle. Must be ≥ 0.
//	             Default 1e-12, well above rounding noise and well below Slack.
type Options struct {
	Ctx       context.Context
	Logger    logr.Logger
	MaxIter   int
	Eps       float64
	Slack     float64
	MaxCycles int
	Tolerance float64
}

// Option represents a functional option for configuring an oracle.
type Option func(*Options)

// DefaultOptions returns the configuration used when no options are given.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Logger:    logr.Discard(),
		MaxIter:   1000,
		Eps:       1e-9,
		Slack:     1e-9,
		MaxCycles: 1 << 16,
		Tolerance: 1e-12,
	}
}

// WithContext sets the cancellation context. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("parametric: WithContext(nil)")
	}
	return func(o *Options) { o.Ctx = ctx }
}

// WithLogger sets the progress logger.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMaxIter caps the number of probes. Panics if n <= 0.
func WithMaxIter(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("parametric: WithMaxIter(%d)", n))
	}
	return func(o *Options) { o.MaxIter = n }
}

// WithEps sets the Bisection stopping tolerance. Panics unless eps > 0.
func WithEps(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 1) {
		panic(fmt.Sprintf("parametric: WithEps(%g)", eps))
	}
	return func(o *Options) { o.Eps = eps }
}

// WithSlack sets the relative first-probe offset. Panics on negative or NaN input.
func WithSlack(s float64) Option {
	if s < 0 || math.IsNaN(s) || math.IsInf(s, 1) {
		panic(fmt.Sprintf("parametric: WithSlack(%g)", s))
	}
	return func(o *Options) { o.Slack = s }
}

// WithMaxCycles caps exhaustive enumeration; 0 means unlimited. Panics if n < 0.
func WithMaxCycles(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("parametric: WithMaxCycles(%d)", n))
	}
	return func(o *Options) { o.MaxCycles = n }
}

// WithTolerance sets the relaxation threshold. Panics on negative or NaN input.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 1) {
		panic(fmt.Sprintf("parametric: WithTolerance(%g)", tol))
	}
	return func(o *Options) { o.Tolerance = tol }
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// validate checks the arguments every oracle shares.
func validate(g *core.Graph, r0 float64, w WeightFunc, rf RatioFunc) error {
	if g == nil {
		return ErrNilGraph
	}
	if w == nil || rf == nil {
		return ErrNilFunc
	}
	if math.IsNaN(r0) || math.IsInf(r0, 0) {
		return fmt.Errorf("%w: %g", ErrBadBound, r0)
	}
	return nil
}

// newFinder snapshots g for negative-cycle probes.
func newFinder(g *core.Graph, o Options) (*negcycle.Finder, error) {
	return negcycle.NewFinder(g, negcycle.WithTolerance(o.Tolerance))
}

// firstProbe returns r0 shifted up by the relative slack.
func firstProbe(r0, slack float64) float64 {
	return r0 + slack*math.Max(1, math.Abs(r0))
}

// at fixes the ratio of w for the negcycle finder.
func at(w WeightFunc, r float64) func(*core.Edge) float64 {
	return func(e *core.Edge) float64 { return w(e, r) }
}
