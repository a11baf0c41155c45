// File: methods_clone.go
// Role: Copies and merges: Matrix, Clone, EmptyClone, Union.
//
// Concurrency:
//   - Read locks on the source; Union write-locks the receiver.
package core

import "fmt"

// Matrix returns a deep copy of the weight matrix.
// Complexity: O(n²).
func (g *Graph[V]) Matrix() [][]int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return copyMatrix(g.weights)
}

// Clone returns an independent copy of labels and weights.
func (g *Graph[V]) Clone() *Graph[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return &Graph[V]{
		vertices: append([]V(nil), g.vertices...),
		weights:  copyMatrix(g.weights),
	}
}

// EmptyClone returns a graph with the same labels and an all-zero n×n matrix.
// MST and matching builders start from it.
func (g *Graph[V]) EmptyClone() *Graph[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.vertices)
	w := make([][]int64, n)
	for i := range w {
		w[i] = make([]int64, n)
	}

	return &Graph[V]{
		vertices: append([]V(nil), g.vertices...),
		weights:  w,
	}
}

// Union appends every vertex of other to g (labels are not deduplicated) and
// merges every non-zero edge of other into g at the same indices: edge i→j of
// other is written to g's cell (i, j). Other therefore shares g's vertex
// identities, as when a matching over a tree's odd vertices is laid over the
// tree. Where both graphs have an edge, other's weight wins; zero cells of
// other never erase an edge of g.
//
// Errors:
//   - ErrNotSquare if either matrix is not square; g is left unchanged.
//   - ErrOutOfRange if other has more vertices than g; g is left unchanged.
//
// Complexity: O((n+m)·m) where m = other.NumVertices().
func (g *Graph[V]) Union(other *Graph[V]) error {
	if other == nil {
		return nil
	}
	// Snapshot other first so a self-union does not deadlock.
	labels := other.Vertices()
	weights := other.Matrix()
	if len(weights) != len(labels) {
		return ErrNotSquare
	}
	for _, row := range weights {
		if len(row) != len(labels) {
			return ErrNotSquare
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.isSquaredLocked() {
		return ErrNotSquare
	}
	if len(labels) > len(g.vertices) {
		return fmt.Errorf("%w: union of %d vertices into %d", ErrOutOfRange, len(labels), len(g.vertices))
	}
	for _, label := range labels {
		g.insertVertexLocked(label)
	}
	var i, j int
	for i = range weights {
		for j = range weights[i] {
			if weights[i][j] != 0 {
				g.weights[i][j] = weights[i][j]
			}
		}
	}

	return nil
}
