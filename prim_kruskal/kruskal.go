// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It assumes a square, symmetric *core.Graph and produces the MST as a new graph.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/salesman/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
// It uses a disjoint-set (union-find) with path compression and union by size.
//
// Error Conditions:
//   - ErrInvalidGraph        : graph is nil.
//   - core.ErrNotSquare      : matrix is not n×n.
//   - core.ErrNotSymmetric   : weights[i][j] != weights[j][i] for some pair.
//   - core.ErrNegativeWeight : some cell is negative.
//   - ErrDisconnected        : |V| == 0, or fewer than |V|-1 edges could be accepted.
//
// Steps:
//  1. Validate as above. |V| == 1 → trivial MST (no edges, weight 0).
//  2. Collect every undirected edge (i<j, weight>0); self-loops never qualify.
//  3. Sort by (weight, src, dst) so equal weights resolve deterministically.
//  4. Accept an edge when its endpoints are in different sets; stop at |V|-1.
//
// Complexity: O(V² log V) time for the dense edge list, O(V²) memory.
func Kruskal[V comparable](g *core.Graph[V]) (*core.Graph[V], int64, error) {
	n, err := validate(g)
	if err != nil {
		return nil, 0, err
	}
	if n == 1 {
		return g.EmptyClone(), 0, nil
	}

	// Edges(true) already yields the upper triangle sorted by (src, dst);
	// a stable sort by weight keeps that order for ties.
	edges := g.Edges(true)
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	var (
		ds       = newDisjointSet(n)
		accepted = make([]core.Edge, 0, n-1)
		total    int64
		e        core.Edge
	)
	for _, e = range edges {
		if !ds.union(e.Src, e.Dst) {
			continue
		}
		accepted = append(accepted, e)
		total += e.Weight
		if len(accepted) == n-1 {
			break
		}
	}

	if len(accepted) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return buildTree(g, accepted), total, nil
}
