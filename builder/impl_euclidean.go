// SPDX-License-Identifier: MIT
// Package: salesman/builder
//
// impl_euclidean.go - implementation of Euclidean(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); requires an RNG (else ErrNeedRandSource).
//   - Draws n integer points uniformly from [0, span)², then connects every
//     pair with its Euclidean distance rounded to the nearest integer (min 1).
//   - Symmetric regardless of WithAsymmetric; cfg.weightFn is not used.
//   - Rounding keeps the triangle inequality within ±1, close enough to
//     metric for Christofides fixtures.
//
// Complexity: O(n²) time, O(n) extra space.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/salesman/core"
)

const (
	methodEuclidean   = "Euclidean"
	minEuclideanNodes = 1
)

// Euclidean returns a Constructor that builds a random planar instance.
func Euclidean(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minEuclideanNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodEuclidean, n, minEuclideanNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodEuclidean, ErrNeedRandSource)
		}

		xs := make([]int64, n)
		ys := make([]int64, n)
		var i, j int
		for i = 0; i < n; i++ {
			xs[i] = cfg.rng.Int63n(cfg.span)
			ys[i] = cfg.rng.Int63n(cfg.span)
		}
		idx := addVertices(g, cfg, n)

		var w int64
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				w = distance(xs[i], ys[i], xs[j], ys[j])
				if err := g.InsertEdge(idx[i], idx[j], w, true); err != nil {
					return fmt.Errorf("%s: InsertEdge(%d↔%d, w=%d): %w", methodEuclidean, idx[i], idx[j], w, err)
				}
			}
		}

		return nil
	}
}

// distance is the rounded Euclidean distance, at least 1 so coincident points stay connected.
func distance(x1, y1, x2, y2 int64) int64 {
	d := int64(math.Round(math.Hypot(float64(x1-x2), float64(y1-y2))))
	if d < 1 {
		return 1
	}

	return d
}
