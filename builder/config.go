// SPDX-License-Identifier: MIT
// Package: cycleratio/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • idFn   = DefaultIDFn ("0","1","2",...)
//   • rng    = nil          (pure/deterministic unless seeded)
//   • attrs  = none         (edges carry no attributes; consumers default them)

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/cycleratio/core"
)

// attrGen binds an attribute key to its value generator.
type attrGen struct {
	key string
	fn  WeightFn
}

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Attribute generators applied to every emitted edge, in registration order.
	attrs []attrGen
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// edgeOptions draws one value per registered attribute for a new edge.
// Draw order is fixed (registration order) so seeds reproduce exactly.
func (c builderConfig) edgeOptions() []core.EdgeOption {
	if len(c.attrs) == 0 {
		return nil
	}
	out := make([]core.EdgeOption, len(c.attrs))
	for i, a := range c.attrs {
		out[i] = core.WithEdgeAttr(a.key, a.fn(c.rng))
	}

	return out
}

// addVertices inserts idFn(0..n-1) in ascending index order.
func (c builderConfig) addVertices(g *core.Graph, method string, n int) error {
	for i := 0; i < n; i++ {
		id := c.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge emits u→v with freshly drawn attributes.
func (c builderConfig) addEdge(g *core.Graph, method, u, v string) error {
	if _, err := g.AddEdge(u, v, c.edgeOptions()...); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, u, v, err)
	}

	return nil
}
