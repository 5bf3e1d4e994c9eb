// SPDX-License-Identifier: MIT
// Package builder provides helper functions for generating per-edge
// attribute values (costs, transit times) in graph constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is returned by stochastic generators when no RNG is configured.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an attribute value given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Costs may be negative, so any finite value is accepted. Panics on NaN/Inf.
func ConstantWeightFn(value float64) WeightFn {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite, got %g", value))
	}
	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if max < min. If rng is nil, yields DefaultEdgeWeight.
func UniformWeightFn(min, max float64) WeightFn {
	if max < min || math.IsNaN(min) || math.IsNaN(max) {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}

// IntUniformWeightFn returns a WeightFn sampling integers uniformly in [min, max].
// Integer-valued attributes keep cycle ratios exact rationals, which makes
// solver comparisons stable. Panics if max < min. If rng is nil, yields DefaultEdgeWeight.
func IntUniformWeightFn(min, max int) WeightFn {
	if max < min {
		panic(fmt.Sprintf("IntUniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		return float64(min + rng.Intn(max-min+1))
	}
}

// NormalWeightFn returns a WeightFn sampling from N(mean, stddev), rounded to
// the nearest integer and clipped below at 0. Panics if stddev < 0.
// If rng is nil, yields DefaultEdgeWeight.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %f", stddev))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		sample := rng.NormFloat64()*stddev + mean
		if sample < 0 {
			return 0
		}
		return math.Round(sample)
	}
}

// ExponentialWeightFn returns a WeightFn sampling Exp(rate), rounded up to the
// next integer so the value is always ≥ 1 (usable as a transit time).
// Panics if rate ≤ 0. If rng is nil, yields DefaultEdgeWeight.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %f", rate))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		return math.Max(1, math.Ceil(rng.ExpFloat64()/rate))
	}
}
