package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/salesman/core"
)

// HeldKarp solves the TSP exactly with the Held–Karp dynamic program.
//
// dp[mask][j] is the minimum cost of a path that starts at 0, visits exactly
// the vertices in mask (which always contains 0) and ends at j. Closing the
// cheapest dp[all][j] with the edge j→0 yields the optimum. Missing edges
// (zero cells) are never used.
//
// Returns a Result whose Route starts at 0, or:
//   - ErrNilGraph, core.ErrNotSquare, ErrEmptyGraph, core.ErrNegativeWeight.
//   - ErrTooLarge if n > MaxHeldKarpVertices (the limit always applies).
//   - ErrNoTour if no Hamiltonian cycle exists.
//   - ErrTimeLimit or the context error when interrupted.
//
// Time complexity:  O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
func HeldKarp[V comparable](g *core.Graph[V], opts ...Option) (Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}
	w, err := checkGraph(g, false)
	if err != nil {
		return Result{}, err
	}
	n := len(w)
	if n > MaxHeldKarpVertices {
		return Result{}, fmt.Errorf("%w: %d > %d", ErrTooLarge, n, MaxHeldKarpVertices)
	}
	if n == 1 {
		return Result{Route: Route{0}}, nil
	}
	if err = checkStronglyConnected(g); err != nil {
		return Result{}, err
	}

	ctx, cancel := cfg.runContext()
	defer cancel()

	const inf = math.MaxInt64
	allMask := 1<<n - 1

	// Flat tables: index mask*n + j.
	dp := make([]int64, (allMask+1)*n)
	parent := make([]int8, (allMask+1)*n)
	for i := range dp {
		dp[i] = inf
		parent[i] = -1
	}
	dp[1*n+0] = 0

	var (
		mask, prevMask int
		j, k           int
		c, cand        int64
	)
	for mask = 1; mask <= allMask; mask += 2 { // odd masks contain vertex 0
		if mask&cancelCheckMask == 1 && ctx.Err() != nil {
			return Result{}, interrupted(ctx)
		}
		for j = 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prevMask = mask ^ 1<<j
			for k = 0; k < n; k++ {
				if prevMask&(1<<k) == 0 || dp[prevMask*n+k] == inf {
					continue
				}
				c = w[k][j]
				if c <= 0 {
					continue // no edge k→j
				}
				cand = dp[prevMask*n+k] + c
				if cand < dp[mask*n+j] {
					dp[mask*n+j] = cand
					parent[mask*n+j] = int8(k)
				}
			}
		}
	}

	// Close the tour by returning to 0.
	best := int64(inf)
	last := -1
	for j = 1; j < n; j++ {
		c = w[j][0]
		if c <= 0 || dp[allMask*n+j] == inf {
			continue
		}
		if total := dp[allMask*n+j] + c; total < best {
			best, last = total, j
		}
	}
	if last < 0 {
		return Result{}, ErrNoTour
	}

	// Reconstruct from the parent table.
	route := make(Route, n)
	mask, j = allMask, last
	for i := n - 1; i >= 1; i-- {
		route[i] = j
		k = int(parent[mask*n+j])
		mask ^= 1 << j
		j = k
	}
	route[0] = 0

	return Result{Route: route, Cost: best}, nil
}
