// File: methods.go
// Role: Structural predicates, degrees and route pricing.
//
// All functions here are pure reads under the mu read lock.
package core

import "fmt"

// IsSquared reports whether the matrix has exactly n rows of n columns.
// Complexity: O(n).
func (g *Graph[V]) IsSquared() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.isSquaredLocked()
}

func (g *Graph[V]) isSquaredLocked() bool {
	n := len(g.vertices)
	if len(g.weights) != n {
		return false
	}
	for i := range g.weights {
		if len(g.weights[i]) != n {
			return false
		}
	}

	return true
}

// IsSymmetric reports whether the matrix is square and weights[i][j] == weights[j][i].
// Complexity: O(n²).
func (g *Graph[V]) IsSymmetric() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.isSquaredLocked() {
		return false
	}
	var i, j int
	for i = range g.weights {
		for j = i + 1; j < len(g.weights); j++ {
			if g.weights[i][j] != g.weights[j][i] {
				return false
			}
		}
	}

	return true
}

// HasNegativeWeight reports whether any cell is negative and, if so, returns
// the first such cell in (src, dst) order.
func (g *Graph[V]) HasNegativeWeight() (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for i, row := range g.weights {
		for j, w := range row {
			if w < 0 {
				return Edge{Src: i, Dst: j, Weight: w}, true
			}
		}
	}

	return Edge{}, false
}

// Degree counts the positive cells of row v (self-loops included once).
//
// Errors:
//   - ErrOutOfRange if v is invalid.
func (g *Graph[V]) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.vertices) || v >= len(g.weights) {
		return 0, ErrOutOfRange
	}
	var d int
	for _, w := range g.weights[v] {
		if w > 0 {
			d++
		}
	}

	return d, nil
}

// OddDegreeVertices returns, ascending, every vertex whose Degree is odd.
func (g *Graph[V]) OddDegreeVertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var odd []int
	for i := 0; i < len(g.vertices) && i < len(g.weights); i++ {
		var d int
		for _, w := range g.weights[i] {
			if w > 0 {
				d++
			}
		}
		if d&1 == 1 {
			odd = append(odd, i)
		}
	}

	return odd
}

// RouteCost sums the consecutive edges of route plus the closing edge from the
// last vertex back to the first. A missing edge contributes zero, exactly as
// the matrix stores it; solvers that must avoid missing edges check feasibility
// themselves.
//
// Errors:
//   - ErrNotSquare if the matrix is not square.
//   - ErrEmptyRoute if route is empty.
//   - ErrOutOfRange if any element is not a valid index.
//
// Complexity: O(len(route)).
func (g *Graph[V]) RouteCost(route []int) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.isSquaredLocked() {
		return 0, ErrNotSquare
	}
	if len(route) == 0 {
		return 0, ErrEmptyRoute
	}

	n := len(g.vertices)
	var (
		cost int64
		i    int
		u, v int
	)
	for i = 0; i < len(route); i++ {
		u = route[i]
		v = route[(i+1)%len(route)]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, fmt.Errorf("%w: route[%d]=%d", ErrOutOfRange, i, u)
		}
		cost += g.weights[u][v]
	}

	return cost, nil
}
