// Package dijkstra provides Dijkstra's shortest-path algorithm on the dense
// weighted graphs of package core.
//
// Overview:
//
//   - ShortestPath returns the vertex sequence and cost from src to dst.
//   - Distances returns all distances and a predecessor slice from src.
//   - Vertices are dense indices; weights[i][j] == 0 means "no edge".
//   - Directed (asymmetric) matrices are followed row by row.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable.
//   - Deterministic: heap ties are broken by the lower vertex index.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil *core.Graph.
//   - ErrUnreachable:     no path from src to dst.
//   - ErrBadMaxDistance:  MaxDistance < 0.
//   - ErrBadInfThreshold: InfEdgeThreshold ≤ 0.
//   - core.ErrNotSquare, core.ErrOutOfRange, core.ErrNegativeWeight: wrapped
//     with the offending index or edge.
//
// Example:
//
//	p, err := dijkstra.ShortestPath(g, 0, 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p.Vertices, p.Cost)
package dijkstra
