// SPDX-License-Identifier: MIT
// Package: salesman/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertex 0 is the center; leaves 1..n-1 connect only to it. For n ≥ 3 no
//     Hamiltonian cycle exists, which makes it the canonical "no tour" fixture.
//
// Complexity: O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/salesman/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		idx := addVertices(g, cfg, n)

		for i := 1; i < n; i++ {
			if err := connect(g, cfg, methodStar, idx[0], idx[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
