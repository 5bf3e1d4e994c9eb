// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: options and sentinel errors for the policy-graph negative cycle finder.

package negcycle

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/cycleratio/core"
)

// Sentinel errors returned by the finder.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to NewFinder.
	ErrNilGraph = errors.New("negcycle: graph is nil")

	// ErrNilWeight indicates that FindNegCycle was called without a weight function.
	ErrNilWeight = errors.New("negcycle: weight function is nil")

	// ErrNoConvergence indicates the relaxation neither converged nor exposed a
	// negative cycle within MaxRounds passes.
	ErrNoConvergence = errors.New("negcycle: relaxation did not converge")

	// ErrBadWeight indicates the weight function returned NaN.
	ErrBadWeight = errors.New("negcycle: weight is NaN")
)

// WeightFunc returns the current weight of an edge. It is evaluated lazily,
// once per edge per relaxation pass.
type WeightFunc func(e *core.Edge) float64

// Options configures a Finder.
//
// Fields:
//
//	– MaxRounds: cap on full relaxation passes per FindNegCycle call.
//	             0 means "derive from graph size": |V|·(|E|+1)+1 passes.
//	– Tolerance: an edge relaxes only when it lowers a label by more than
//	             Tolerance·max(1, |new label|). Must be ≥ 0. Default 0 (exact).
//	             A small positive value stops rounding noise on zero-weight
//	             cycles from relaxing forever, at the price of ignoring cycles
//	             that are only barely negative.
type Options struct {
	MaxRounds int
	Tolerance float64
}

// Option represents a functional option for configuring a Finder.
type Option func(*Options)

// DefaultOptions returns the zero-tolerance, size-derived configuration.
func DefaultOptions() Options {
	return Options{}
}

// WithMaxRounds caps relaxation passes. Panics if n < 0.
func WithMaxRounds(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("negcycle: WithMaxRounds(%d)", n))
	}
	return func(o *Options) { o.MaxRounds = n }
}

// WithTolerance sets the relative relaxation threshold. Panics on negative or NaN input.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) {
		panic(fmt.Sprintf("negcycle: WithTolerance(%g)", tol))
	}
	return func(o *Options) { o.Tolerance = tol }
}
