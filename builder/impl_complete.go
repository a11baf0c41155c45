// SPDX-License-Identifier: MIT
// Package: salesman/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits each unordered pair {i,j} with i<j exactly once, in lexicographic order.
//   - Weight policy: cfg.weightFn(cfg.rng), one draw per direction under WithAsymmetric.
//
// Complexity: O(n²) time, O(n) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/salesman/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		idx := addVertices(g, cfg, n)

		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err := connect(g, cfg, methodComplete, idx[i], idx[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
