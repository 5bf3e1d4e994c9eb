// SPDX-License-Identifier: MIT
//
// File: defaults.go
// Role: attribute defaulting, in place or resolved on read.

package mcr

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cycleratio/core"
)

// SetDefault sets attribute key to value on every edge where it is missing
// or nil, and returns how many edges were written. Existing values, numeric
// or not, are left alone, so a second call writes nothing. Topology is not
// touched.
//
// Errors only report bad arguments: ErrNilGraph or core.ErrEmptyAttrKey.
func SetDefault(g *core.Graph, key string, value interface{}) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	n, err := g.FillEdgeAttr(key, value)
	if err != nil {
		return n, fmt.Errorf("SetDefault(%q): %w", key, err)
	}
	return n, nil
}

// Prepare is the explicit defaulting step: it fills the configured cost and
// time attributes with their defaults. MinCycleRatio calls it unless
// WithReadOnly is set. It returns the number of cost and time writes.
func Prepare(g *core.Graph, opts ...Option) (costs, times int, err error) {
	cfg := buildOptions(opts)
	if costs, err = SetDefault(g, cfg.CostKey, cfg.DefaultCost); err != nil {
		return 0, 0, err
	}
	if times, err = SetDefault(g, cfg.TimeKey, cfg.DefaultTime); err != nil {
		return costs, 0, err
	}
	cfg.Logger.V(1).Info("defaulted attributes", "cost", costs, "time", times)

	return costs, times, nil
}

// Evaluator reads cost and time from edges under one set of keys and
// defaults. A missing attribute reads as its default; nothing is written.
type Evaluator struct {
	costKey, timeKey         string
	defaultCost, defaultTime float64
}

// NewEvaluator builds an Evaluator from the key and default options; other
// options are ignored.
func NewEvaluator(opts ...Option) Evaluator {
	cfg := buildOptions(opts)
	return Evaluator{
		costKey:     cfg.CostKey,
		timeKey:     cfg.TimeKey,
		defaultCost: cfg.DefaultCost,
		defaultTime: cfg.DefaultTime,
	}
}

// Values returns the cost and time of e.
//
// Errors: core.ErrAttrNotNumeric (wrapped) when a present value is not a number.
func (ev Evaluator) Values(e *core.Edge) (cost, time float64, err error) {
	if cost, err = read(e, ev.costKey, ev.defaultCost); err != nil {
		return 0, 0, err
	}
	if time, err = read(e, ev.timeKey, ev.defaultTime); err != nil {
		return 0, 0, err
	}
	return cost, time, nil
}

func read(e *core.Edge, key string, def float64) (float64, error) {
	v, err := e.Float(key)
	if errors.Is(err, core.ErrAttrMissing) {
		return def, nil
	}
	return v, err
}
