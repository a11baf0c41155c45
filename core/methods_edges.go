// File: methods_edges.go
// Role: Edge writes and reads on the dense matrix.
//
// Determinism:
//   - Edges() and AdjacentVertices() return results sorted by (src, dst).
//
// Concurrency:
//   - Writes under mu write lock, reads under mu read lock.
package core

// InsertEdge writes weight into (src, dst); with symmetric it also writes (dst, src).
// A weight of zero is equivalent to RemoveEdge.
//
// Errors:
//   - ErrOutOfRange if either index is invalid (graph unchanged).
//
// Complexity: O(1).
func (g *Graph[V]) InsertEdge(src, dst int, weight int64, symmetric bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.validPairLocked(src, dst) {
		return ErrOutOfRange
	}
	g.weights[src][dst] = weight
	if symmetric {
		g.weights[dst][src] = weight
	}

	return nil
}

// RemoveEdge zeroes (src, dst), and (dst, src) when symmetric.
//
// Errors:
//   - ErrOutOfRange if either index is invalid.
func (g *Graph[V]) RemoveEdge(src, dst int, symmetric bool) error {
	return g.InsertEdge(src, dst, 0, symmetric)
}

// EdgeWeight returns weights[src][dst]; zero means no edge.
//
// Errors:
//   - ErrOutOfRange if either index is invalid.
func (g *Graph[V]) EdgeWeight(src, dst int) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.validPairLocked(src, dst) {
		return 0, ErrOutOfRange
	}

	return g.weights[src][dst], nil
}

// AdjacentVertices returns every j with weights[v][j] > 0, ascending.
//
// Errors:
//   - ErrOutOfRange if v is invalid.
//
// Complexity: O(n).
func (g *Graph[V]) AdjacentVertices(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.vertices) || v >= len(g.weights) {
		return nil, ErrOutOfRange
	}

	adj := make([]int, 0, len(g.weights[v]))
	for j, w := range g.weights[v] {
		if w > 0 {
			adj = append(adj, j)
		}
	}

	return adj, nil
}

// Edges returns all non-zero cells as Edge values sorted by (src, dst).
// With undirected set only the upper triangle (src < dst) is reported, which
// is the natural edge set of a symmetric matrix.
//
// Complexity: O(n²).
func (g *Graph[V]) Edges(undirected bool) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge
	for i, row := range g.weights {
		for j, w := range row {
			if w == 0 || (undirected && j <= i) {
				continue
			}
			out = append(out, Edge{Src: i, Dst: j, Weight: w})
		}
	}

	return out
}

// validPairLocked reports whether both indices address an existing cell.
func (g *Graph[V]) validPairLocked(src, dst int) bool {
	n := len(g.vertices)
	if src < 0 || dst < 0 || src >= n || dst >= n {
		return false
	}
	// Ragged matrices: both (src,dst) and (dst,src) must be addressable.
	if src >= len(g.weights) || dst >= len(g.weights[src]) {
		return false
	}

	return dst < len(g.weights) && src < len(g.weights[dst])
}
