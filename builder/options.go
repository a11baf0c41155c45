// SPDX-License-Identifier: MIT
// Package: salesman/builder
//
// options.go - builder configuration and functional options.
//
// Options panic only on programmer errors (nil functions, non-positive span);
// user-facing layers validate ranges before calling them.

package builder

import (
	"math/rand"
)

// builderConfig is the resolved, immutable configuration passed to constructors.
type builderConfig struct {
	idFn       IDFn
	rng        *rand.Rand
	weightFn   WeightFn
	asymmetric bool
	span       int64 // coordinate range for Euclidean
}

// defaultSpan is the default Euclidean coordinate range [0, defaultSpan).
const defaultSpan int64 = 1000

// BuilderOption customizes builderConfig.
type BuilderOption func(*builderConfig)

// newBuilderConfig applies opts over the defaults: decimal IDs, no RNG,
// constant weight DefaultEdgeWeight, symmetric pairs.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
		span:     defaultSpan,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the vertex label function.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand supplies an explicit RNG.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge weight generator.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithAsymmetric draws an independent weight for each direction.
// Euclidean ignores it: distances are symmetric by construction.
func WithAsymmetric() BuilderOption {
	return func(c *builderConfig) {
		c.asymmetric = true
	}
}

// WithSpan sets the Euclidean coordinate range [0, span).
func WithSpan(span int64) BuilderOption {
	if span <= 0 {
		panic("builder: WithSpan(span<=0)")
	}

	return func(c *builderConfig) {
		c.span = span
	}
}
