// Package prim_kruskal computes the Minimum Spanning Tree (MST) of a square,
// symmetric *core.Graph with either Prim’s or Kruskal’s algorithm.
//
// What & Why
//
//   - An MST is a subset T ⊆ E that connects every vertex with minimum total
//     weight. It is the first stage of the Christofides tour heuristic: doubling
//     or matching-augmenting an MST yields a connected, even-degree multigraph.
//
// Algorithms Provided
//
//   - Kruskal(g) (*core.Graph[V], int64, error)
//
//   - Strategy: sort every undirected edge (i<j, weight>0) by (weight, src, dst)
//     and accept it when its endpoints lie in different disjoint sets.
//
//   - Forest: parent pointers with path halving and union by size.
//
//   - Prim(g) (*core.Graph[V], int64, error)
//
//   - Strategy: seed the tree with the globally lightest edge, then repeatedly
//     pop the cheapest frontier edge (weight, from, to) from a min-heap.
//
//   - Compute(g, MSTOptions{Method}) dispatches by name.
//
// Both return a new graph over the same vertex labels whose matrix holds only the
// accepted edges (symmetric), plus the total weight. The input is never mutated.
//
// Errors
//
//   - ErrInvalidGraph:        nil graph.
//   - core.ErrNotSquare:      matrix is not n×n.
//   - core.ErrNotSymmetric:   weights[i][j] != weights[j][i].
//   - core.ErrNegativeWeight: negative cell.
//   - ErrDisconnected:        empty graph, or no spanning tree exists.
//   - ErrUnknownMethod:       Compute with an unrecognised Method.
//
// Determinism
//
//   - On distinct weights Prim and Kruskal return the same tree; on ties each
//     resolves by vertex indices, so repeated runs are identical.
package prim_kruskal
