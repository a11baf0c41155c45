// File: methods_vertices.go
// Role: Vertex lifecycle & label queries.
//
// Determinism:
//   - Vertex indices are dense and ordered by insertion.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
package core

// InsertVertex appends label as a new vertex and grows the matrix by one zero
// row and one zero column. It returns the index assigned to the new vertex.
//
// Labels are not deduplicated: inserting the same label twice yields two
// distinct vertices.
//
// Complexity: O(n) amortized.
func (g *Graph[V]) InsertVertex(label V) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.insertVertexLocked(label)
}

// insertVertexLocked is InsertVertex without locking; caller holds mu.
func (g *Graph[V]) insertVertexLocked(label V) int {
	g.vertices = append(g.vertices, label)
	n := len(g.vertices)

	// Widen existing rows first, then append the new zero row.
	for i := range g.weights {
		g.weights[i] = append(g.weights[i], 0)
	}
	g.weights = append(g.weights, make([]int64, n))

	return n - 1
}

// RemoveVertex deletes vertex index together with its matrix row and column.
// Indices above index shift down by one. The matrix stays square.
//
// Errors:
//   - ErrOutOfRange if index is not in 0..n-1 (graph unchanged).
//
// Complexity: O(n²) in the worst case (one copy per row).
func (g *Graph[V]) RemoveVertex(index int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if index < 0 || index >= len(g.vertices) {
		return ErrOutOfRange
	}

	g.vertices = append(g.vertices[:index], g.vertices[index+1:]...)

	// Drop the row when present (a ragged matrix built via From may be shorter).
	if index < len(g.weights) {
		g.weights = append(g.weights[:index], g.weights[index+1:]...)
	}
	// Drop the column in every remaining row.
	var i int
	for i = range g.weights {
		row := g.weights[i]
		if index < len(row) {
			g.weights[i] = append(row[:index], row[index+1:]...)
		}
	}

	return nil
}

// Vertex returns the label at index i.
//
// Errors:
//   - ErrOutOfRange for an invalid index.
func (g *Graph[V]) Vertex(i int) (V, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i < 0 || i >= len(g.vertices) {
		var zero V
		return zero, ErrOutOfRange
	}

	return g.vertices[i], nil
}

// IndexOf returns the first index carrying label, or (-1, false).
// Complexity: O(n).
func (g *Graph[V]) IndexOf(label V) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for i, v := range g.vertices {
		if v == label {
			return i, true
		}
	}

	return -1, false
}

// Vertices returns a copy of the label list in index order.
func (g *Graph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]V(nil), g.vertices...)
}

// NumVertices returns n.
func (g *Graph[V]) NumVertices() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
