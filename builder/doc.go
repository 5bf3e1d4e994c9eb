// Package builder provides deterministic, functional-options driven
// constructors for directed test and scenario graphs.
//
// Every constructor emits edges in a documented order and decorates each
// edge with attribute values drawn from registered generators:
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithLoops()},
//	    []builder.BuilderOption{
//	        builder.WithSeed(7),
//	        builder.WithIntUniformAttr("cost", -5, 10),
//	        builder.WithIntUniformAttr("time", 1, 4),
//	    },
//	    builder.RandomSparse(8, 0.3),
//	)
//
// Components:
//
//   - BuildGraph / Apply: run constructors with resolved options.
//   - Constructors: Cycle, Path, Complete, RandomSparse.
//   - ID schemes (IDFn): DefaultIDFn, SymbolIDFn, ExcelColumnIDFn, SymbolNumberIDFn.
//   - Value generators (WeightFn): ConstantWeightFn, UniformWeightFn,
//     IntUniformWeightFn, NormalWeightFn, ExponentialWeightFn.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed. Option constructors panic on meaningless input.
package builder
