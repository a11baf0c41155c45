// Package matching computes a minimum-weight perfect matching over a subset of
// the vertices of a symmetric *core.Graph.
//
// The Christofides heuristic matches the odd-degree vertices of a spanning tree;
// with an optimal matching the resulting tour is within 1.5× of the optimum on
// metric instances. Two strategies are offered:
//
//   - AlgorithmExact (default): dynamic programming over bitmasks of matched
//     vertices, O(2^k·k) for k = len(subset), limited to MaxExactVertices.
//   - AlgorithmGreedy: pair the first remaining vertex with its nearest
//     remaining partner, O(k²). No approximation bound; Result.Exact is false.
//
// There is no silent fallback: an oversized subset under AlgorithmExact fails
// with ErrSubsetTooLarge and the caller decides.
//
// Errors:
//
//	ErrNilGraph, ErrOddVertexCount, ErrDuplicateVertex, ErrSubsetTooLarge,
//	ErrUnknownAlgorithm, plus core.ErrNotSquare, core.ErrNotSymmetric,
//	core.ErrNegativeWeight, core.ErrOutOfRange and prim_kruskal.ErrDisconnected
//	(no feasible pairing over the available edges).
package matching
