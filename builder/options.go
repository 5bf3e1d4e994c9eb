// SPDX-License-Identifier: MIT
// Package: cycleratio/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//
// AI-Hints:
//   • Prefer WithSeed for reproducible stochastic builders.
//   • Register "cost" before "time" (or any fixed order) and keep it: the RNG
//     is consumed per attribute in registration order.

package builder

import (
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithAttrFn registers a generator for attribute key on every emitted edge.
// Registering the same key twice replaces the generator but keeps its slot,
// so the draw order stays stable. Panics on empty key or nil fn.
func WithAttrFn(key string, fn WeightFn) BuilderOption {
	if key == "" {
		panic("builder: WithAttrFn(\"\")")
	}
	if fn == nil {
		panic("builder: WithAttrFn(nil)")
	}
	return func(c *builderConfig) {
		for i := range c.attrs {
			if c.attrs[i].key == key {
				c.attrs[i].fn = fn
				return
			}
		}
		c.attrs = append(c.attrs, attrGen{key: key, fn: fn})
	}
}

// WithConstantAttr sets attribute key to v on every edge.
func WithConstantAttr(key string, v float64) BuilderOption {
	return WithAttrFn(key, ConstantWeightFn(v))
}

// WithUniformAttr draws attribute key ∼ U[min,max).
func WithUniformAttr(key string, min, max float64) BuilderOption {
	return WithAttrFn(key, UniformWeightFn(min, max))
}

// WithIntUniformAttr draws attribute key uniformly from the integers in [min,max].
func WithIntUniformAttr(key string, min, max int) BuilderOption {
	return WithAttrFn(key, IntUniformWeightFn(min, max))
}
