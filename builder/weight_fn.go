// SPDX-License-Identifier: MIT
// Package: salesman/builder
//
// weight_fn.go - edge weight generators.
//
// A weight of 0 means "no edge" in core.Graph, so every generator here
// yields values ≥ 1.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the constant weight used when no WeightFn is set.
const DefaultEdgeWeight int64 = 1

// WeightFn draws one edge weight; rng may be nil for deterministic generators.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value (≥ 1).
func ConstantWeightFn(value int64) WeightFn {
	if value < 1 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 1, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn draws uniformly from [min, max]. With a nil rng it returns min.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
