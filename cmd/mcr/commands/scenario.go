// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cycleratio/builder"
	"github.com/katalvlaran/cycleratio/core"
	"github.com/katalvlaran/cycleratio/internal/config"
)

// buildScenario generates the graph described by gc, drawing attributes
// under the configured keys, then applies the per-edge overrides in order.
func buildScenario(gc config.Graph, keys config.Defaults) (*core.Graph, error) {
	var gopts []core.GraphOption
	if gc.Loops {
		gopts = append(gopts, core.WithLoops())
	}

	bopts := []builder.BuilderOption{builder.WithSeed(gc.Seed)}
	if gc.Cost != nil {
		bopts = append(bopts, builder.WithAttrFn(keys.CostKey, distFn(*gc.Cost)))
	}
	if gc.Time != nil {
		bopts = append(bopts, builder.WithAttrFn(keys.TimeKey, distFn(*gc.Time)))
	}

	var con builder.Constructor
	switch gc.Kind {
	case config.KindCycle:
		con = builder.Cycle(gc.N)
	case config.KindPath:
		con = builder.Path(gc.N)
	case config.KindComplete:
		con = builder.Complete(gc.N)
	case config.KindRandom:
		con = builder.RandomSparse(gc.N, gc.P)
	default:
		return nil, fmt.Errorf("scenario: graph kind %q: %w", gc.Kind, config.ErrInvalidConfig)
	}

	g, err := builder.BuildGraph(gopts, bopts, con)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}

	for i, o := range gc.Overrides {
		if err = applyOverride(g, o, keys); err != nil {
			return nil, fmt.Errorf("scenario: override %d (%s→%s): %w", i, o.From, o.To, err)
		}
	}

	return g, nil
}

func applyOverride(g *core.Graph, o config.EdgeOverride, keys config.Defaults) error {
	e, err := g.EdgeBetween(o.From, o.To)
	if errors.Is(err, core.ErrEdgeNotFound) {
		var eid string
		if eid, err = g.AddEdge(o.From, o.To); err != nil {
			return err
		}
		e, err = g.GetEdge(eid)
	}
	if err != nil {
		return err
	}

	if o.Cost != nil {
		if err = g.SetEdgeAttr(e.ID, keys.CostKey, *o.Cost); err != nil {
			return err
		}
	}
	if o.Time != nil {
		if err = g.SetEdgeAttr(e.ID, keys.TimeKey, *o.Time); err != nil {
			return err
		}
	}

	return nil
}

// distFn maps a validated distribution onto a builder weight function.
func distFn(d config.Dist) builder.WeightFn {
	switch d.Kind {
	case config.DistUniform:
		return builder.UniformWeightFn(d.Min, d.Max)
	case config.DistInt:
		return builder.IntUniformWeightFn(int(d.Min), int(d.Max))
	default:
		return builder.ConstantWeightFn(d.Value)
	}
}
