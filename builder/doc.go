// SPDX-License-Identifier: MIT

// Package builder generates deterministic TSP instances as *core.Graph[string].
//
// Constructors (Complete, Cycle, Star, Euclidean) are composed by BuildGraph
// and configured with functional options:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 100))},
//		builder.Complete(8),
//	)
//
// The same options, seed and constructor order always produce the same graph.
// Every generated weight is ≥ 1 because 0 marks a missing edge.
package builder
