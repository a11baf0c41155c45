// Package tsp - validation shared by exact/heuristic solvers.
//
// This file contains the single entry check every solver runs first:
//  1. Graph presence and shape (nil, square, non-empty).
//  2. Weight sanity (no negative cells).
//  3. Optional symmetry for undirected-only algorithms.
//
// Design principles:
//   - Deterministic, side-effect free.
//   - No logging, no panics on user input - only sentinel errors.
//   - O(n²); returns a private snapshot so solvers never hold the graph lock.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/salesman/bfs"
	"github.com/katalvlaran/salesman/core"
)

// checkGraph validates g and returns a copy of its weight matrix.
//
// Order: ErrNilGraph, core.ErrNotSquare, ErrEmptyGraph, core.ErrNegativeWeight,
// then core.ErrNotSymmetric when symmetric is requested.
func checkGraph[V comparable](g *core.Graph[V], symmetric bool) ([][]int64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.IsSquared() {
		return nil, core.ErrNotSquare
	}
	if g.NumVertices() == 0 {
		return nil, ErrEmptyGraph
	}
	if e, neg := g.HasNegativeWeight(); neg {
		return nil, fmt.Errorf("%w: edge %d→%d weight=%d", core.ErrNegativeWeight, e.Src, e.Dst, e.Weight)
	}
	if symmetric && !g.IsSymmetric() {
		return nil, core.ErrNotSymmetric
	}

	return g.Matrix(), nil
}

// checkStronglyConnected returns ErrNoTour when some vertex cannot be reached
// from vertex 0 or cannot reach it back; no Hamiltonian cycle exists then.
func checkStronglyConnected[V comparable](g *core.Graph[V]) error {
	ok, v, err := bfs.StronglyConnected(g, 0)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: vertex %d is not strongly connected to vertex 0", ErrNoTour, v)
	}

	return nil
}
