// File: circuit.go
// Role: Hierholzer circuit extraction and Hamiltonian shortcutting.
package eulerian

import (
	"fmt"

	"github.com/katalvlaran/salesman/core"
)

// Circuit returns a closed walk from start that uses every edge of m exactly once.
// The walk has EdgeCount()+1 entries and both ends equal start. With no edges
// the walk is [start].
//
// Errors:
//   - core.ErrOutOfRange if start is invalid.
//   - ErrNoEulerianCircuit if a vertex has odd degree, start touches no edge
//     while edges exist, or edges lie in more than one component.
//
// Complexity: O(V + E).
func Circuit(m *Multigraph, start int) ([]int, error) {
	if !m.valid(start) {
		return nil, fmt.Errorf("%w: start=%d", core.ErrOutOfRange, start)
	}
	if m.EdgeCount() == 0 {
		return []int{start}, nil
	}
	if odd := m.OddVertices(); len(odd) > 0 {
		return nil, fmt.Errorf("%w: odd degree at %v", ErrNoEulerianCircuit, odd)
	}
	if len(m.inc[start]) == 0 {
		return nil, fmt.Errorf("%w: start %d has no edges", ErrNoEulerianCircuit, start)
	}

	used := make([]bool, m.EdgeCount())
	next := make([]int, m.NumVertices()) // per-vertex cursor into inc
	circuit := make([]int, 0, m.EdgeCount()+1)
	stack := []int{start}

	var (
		u, id int
	)
	for len(stack) > 0 {
		u = stack[len(stack)-1]

		// Skip edges already consumed from the other side.
		for next[u] < len(m.inc[u]) && used[m.inc[u][next[u]]] {
			next[u]++
		}
		if next[u] == len(m.inc[u]) {
			// No more edges: backtrack.
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]
			continue
		}

		id = m.inc[u][next[u]]
		used[id] = true
		stack = append(stack, m.other(id, u))
	}

	if len(circuit) != m.EdgeCount()+1 {
		return nil, fmt.Errorf("%w: edges span several components", ErrNoEulerianCircuit)
	}

	// Backtracking emits the walk in reverse.
	var i, j int
	for i, j = 0, len(circuit)-1; i < j; i, j = i+1, j-1 {
		circuit[i], circuit[j] = circuit[j], circuit[i]
	}

	return circuit, nil
}

// Shortcut turns a closed walk into an open Hamiltonian route of length n by
// keeping the first visit of every vertex. The route begins at start.
//
// Errors:
//   - core.ErrOutOfRange if start or any walk entry is outside 0..n-1.
//   - ErrIncompleteWalk if some vertex never appears.
func Shortcut(walk []int, n, start int) ([]int, error) {
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start=%d", core.ErrOutOfRange, start)
	}
	seen := make([]bool, n)
	route := make([]int, 0, n)
	route = append(route, start)
	seen[start] = true

	for i, v := range walk {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("%w: walk[%d]=%d", core.ErrOutOfRange, i, v)
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		route = append(route, v)
	}

	if len(route) != n {
		return nil, fmt.Errorf("%w: %d of %d vertices", ErrIncompleteWalk, len(route), n)
	}

	return route, nil
}
