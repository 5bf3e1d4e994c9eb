// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: sentinel errors and functional options for the orchestrator.

package mcr

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-logr/logr"
	"github.com/katalvlaran/cycleratio/core"
	"github.com/katalvlaran/cycleratio/metrics"
	"github.com/katalvlaran/cycleratio/parametric"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("mcr: graph is nil")

	// ErrUndefinedBound indicates a graph with no edges: max cost and min
	// time are undefined.
	ErrUndefinedBound = errors.New("mcr: undefined bound: graph has no edges")

	// ErrInvalidBound indicates min time ≤ 0 or a bound that is not finite.
	ErrInvalidBound = errors.New("mcr: invalid bound")

	// ErrDegenerateCycle indicates a cycle whose total time is exactly zero
	// (or an empty cycle); its ratio is undefined.
	ErrDegenerateCycle = errors.New("mcr: degenerate cycle: total time is zero")

	// ErrUnknownOracle indicates an oracle name OracleByName does not know.
	ErrUnknownOracle = errors.New("mcr: unknown oracle")
)

// Attribute keys and defaults used when no option overrides them.
const (
	DefaultCostKey = "cost"
	DefaultTimeKey = "time"
	DefaultValue   = 1.0
)

// Oracle runs the parametric search. Search receives the graph, an upper
// bound r0 on the minimum ratio, the weight function cost - r·time and the
// cycle ratio function, and returns the optimal ratio, the critical cycle
// (nil when none exists) and the distance labels of its last relaxation.
//
// Implementations in package parametric: MaxParametric, Bisection, Exhaustive.
type Oracle interface {
	Search(g *core.Graph, r0 float64, w parametric.WeightFunc, rf parametric.RatioFunc) (parametric.Result, error)
}

// Options configures MinCycleRatio and its helpers.
//
// Fields:
//
//	– Oracle:      search implementation. Default parametric.NewMaxParametric
//	               built with Logger.
//	– CostKey:     edge attribute holding the cost. Default "cost".
//	– TimeKey:     edge attribute holding the time. Default "time".
//	– DefaultCost: value used where CostKey is missing. Default 1.
//	– DefaultTime: value used where TimeKey is missing. Default 1.
//	– ReadOnly:    resolve defaults on read and never write them to the graph.
//	– Logger:      V(1) receives orchestration milestones. Default logr.Discard().
//	– Recorder:    optional Prometheus recorder; nil records nothing.
type Options struct {
	Oracle      Oracle
	CostKey     string
	TimeKey     string
	DefaultCost float64
	DefaultTime float64
	ReadOnly    bool
	Logger      logr.Logger
	Recorder    *metrics.Recorder
}

// Option represents a functional option for configuring MinCycleRatio.
type Option func(*Options)

// DefaultOptions returns the configuration used when no options are given.
func DefaultOptions() Options {
	return Options{
		CostKey:     DefaultCostKey,
		TimeKey:     DefaultTimeKey,
		DefaultCost: DefaultValue,
		DefaultTime: DefaultValue,
		Logger:      logr.Discard(),
	}
}

// WithOracle selects the search implementation. Panics on nil.
func WithOracle(o Oracle) Option {
	if o == nil {
		panic("mcr: WithOracle(nil)")
	}
	return func(opts *Options) { opts.Oracle = o }
}

// WithDefaults sets the values used for missing cost and time attributes.
// Panics on NaN or infinite values.
func WithDefaults(cost, time float64) Option {
	if !finite(cost) || !finite(time) {
		panic(fmt.Sprintf("mcr: WithDefaults(%g, %g)", cost, time))
	}
	return func(o *Options) {
		o.DefaultCost = cost
		o.DefaultTime = time
	}
}

// WithKeys sets the attribute keys for cost and time. Panics when a key is
// empty or both keys are equal.
func WithKeys(costKey, timeKey string) Option {
	if costKey == "" || timeKey == "" || costKey == timeKey {
		panic(fmt.Sprintf("mcr: WithKeys(%q, %q)", costKey, timeKey))
	}
	return func(o *Options) {
		o.CostKey = costKey
		o.TimeKey = timeKey
	}
}

// WithReadOnly leaves the graph untouched: missing attributes are read as
// their defaults instead of being written back.
func WithReadOnly() Option {
	return func(o *Options) { o.ReadOnly = true }
}

// WithLogger sets the orchestration logger.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithRecorder reports every solve to rec.
func WithRecorder(rec *metrics.Recorder) Option {
	return func(o *Options) { o.Recorder = rec }
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
