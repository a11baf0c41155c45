// Package tsp - Christofides approximation.
//
// Christofides computes a Hamiltonian cycle for the symmetric TSP using the
// pipeline:
//
//  1. Minimum Spanning Tree via Prim.
//  2. Odd-degree vertices of the tree.
//  3. Minimum-weight perfect matching on those vertices.
//  4. Union of tree and matching edges in a multigraph (parallel edges kept).
//  5. Eulerian circuit on the multigraph (Hierholzer).
//  6. Shortcutting the circuit to a Hamiltonian route (skip revisits).
//
// Mathematical guarantee:
//   - On metric instances (triangle inequality is a caller obligation, not
//     checked) the tour length is ≤ 1.5 · OPT when step 3 is exact
//     (matching.AlgorithmExact, the default). WithMatching(matching.AlgorithmGreedy)
//     keeps the tour valid but drops the bound.
//
// Complexity (dense representation):
//   - Prim O(n² log n) + matching (exact O(2^k·k), greedy O(k²)) +
//     Hierholzer O(n) + shortcut O(n).
package tsp

import (
	"fmt"

	"github.com/katalvlaran/salesman/core"
	"github.com/katalvlaran/salesman/eulerian"
	"github.com/katalvlaran/salesman/matching"
	"github.com/katalvlaran/salesman/prim_kruskal"
)

// Christofides runs the pipeline above starting the route at vertex 0.
//
// Errors:
//   - ErrNilGraph, core.ErrNotSquare, ErrEmptyGraph, core.ErrNegativeWeight,
//     core.ErrNotSymmetric.
//   - prim_kruskal.ErrDisconnected if no spanning tree or matching exists.
//   - matching.ErrSubsetTooLarge for more than matching.MaxExactVertices odd
//     vertices under exact matching.
//   - eulerian.ErrNoEulerianCircuit if the union is not even (internal invariant).
//   - ErrNoTour if shortcutting needs an edge the graph lacks.
func Christofides[V comparable](g *core.Graph[V], opts ...Option) (Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}
	w, err := checkGraph(g, true)
	if err != nil {
		return Result{}, err
	}
	n := len(w)
	if n == 1 {
		return Result{Route: Route{0}}, nil
	}

	// 1) Minimum Spanning Tree.
	tree, _, err := prim_kruskal.Prim(g)
	if err != nil {
		return Result{}, fmt.Errorf("christofides: spanning tree: %w", err)
	}

	// 2) Odd-degree vertices; their count is always even.
	odd := tree.OddDegreeVertices()

	// 3) Perfect matching over the odd vertices.
	m, err := matching.MinWeightPerfect(g, odd, matching.WithAlgorithm(cfg.Matching))
	if err != nil {
		return Result{}, fmt.Errorf("christofides: matching: %w", err)
	}
	matched := g.EmptyClone()
	for _, p := range m.Pairs {
		if err = matched.InsertEdge(p[0], p[1], w[p[0]][p[1]], true); err != nil {
			return Result{}, err
		}
	}

	// 4) Multigraph union: a matching edge may duplicate a tree edge.
	multi, err := eulerian.FromGraph(tree)
	if err != nil {
		return Result{}, err
	}
	if err = multi.AddGraphEdges(matched); err != nil {
		return Result{}, err
	}
	if odd := multi.OddVertices(); len(odd) > 0 {
		return Result{}, fmt.Errorf("%w: odd degree after matching at %v", eulerian.ErrNoEulerianCircuit, odd)
	}

	// 5) Eulerian circuit and 6) shortcut.
	walk, err := eulerian.Circuit(multi, 0)
	if err != nil {
		return Result{}, err
	}
	route, err := eulerian.Shortcut(walk, n, 0)
	if err != nil {
		return Result{}, err
	}

	cost, ok := routeCost(w, route)
	if !ok {
		return Result{}, fmt.Errorf("%w: shortcut needs a missing edge; the graph must be complete", ErrNoTour)
	}

	return Result{Route: route, Cost: cost}, nil
}
