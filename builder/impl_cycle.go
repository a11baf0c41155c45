// SPDX-License-Identifier: MIT
// Package: salesman/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Edges i–(i+1 mod n) only; every chord is missing, so the cycle itself
//     is the unique Hamiltonian tour up to direction.
//
// Complexity: O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/salesman/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		idx := addVertices(g, cfg, n)

		for i := 0; i < n; i++ {
			if err := connect(g, cfg, methodCycle, idx[i], idx[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
