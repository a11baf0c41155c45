// Package eulerian provides an undirected multigraph over dense vertex indices
// and Hierholzer's algorithm for closed Eulerian walks on it.
//
// A dense weight matrix cannot hold two parallel edges between the same pair,
// yet Christofides needs exactly that when a matching edge duplicates a tree
// edge. Multigraph keeps an explicit edge list instead.
package eulerian

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/salesman/core"
)

// Sentinel errors for multigraph construction and circuit extraction.
var (
	// ErrNoEulerianCircuit indicates an odd-degree vertex, or edges spread over
	// more than one connected component.
	ErrNoEulerianCircuit = errors.New("eulerian: no Eulerian circuit")

	// ErrIncompleteWalk indicates that a walk passed to Shortcut misses a vertex.
	ErrIncompleteWalk = errors.New("eulerian: walk does not visit every vertex")

	// ErrSizeMismatch indicates that a graph and a multigraph disagree on vertex count.
	ErrSizeMismatch = errors.New("eulerian: vertex count mismatch")
)

// EdgeSource is the read-only view of a graph needed to copy its edges.
// *core.Graph[V] satisfies it for every V.
type EdgeSource interface {
	NumVertices() int
	Edges(undirected bool) []core.Edge
}

// Multigraph is an undirected multigraph on vertices 0..n-1. Parallel edges
// and self-loops are allowed; a self-loop contributes 2 to its vertex degree.
//
// Multigraph is not safe for concurrent mutation.
type Multigraph struct {
	ends [][2]int // edge id → endpoints
	inc  [][]int  // vertex → incident edge ids, in insertion order
}

// NewMultigraph returns an edgeless multigraph on n vertices.
func NewMultigraph(n int) *Multigraph {
	if n < 0 {
		n = 0
	}

	return &Multigraph{inc: make([][]int, n)}
}

// FromGraph adds every undirected edge (i<j, weight>0) of g exactly once.
//
// Errors:
//   - core.ErrNotSquare if g's matrix is not square.
func FromGraph[V comparable](g *core.Graph[V]) (*Multigraph, error) {
	if !g.IsSquared() {
		return nil, core.ErrNotSquare
	}
	m := NewMultigraph(g.NumVertices())
	if err := m.AddGraphEdges(g); err != nil {
		return nil, err
	}

	return m, nil
}

// AddGraphEdges unions the undirected edge set of gr into m (parallel edges kept).
//
// Errors:
//   - ErrSizeMismatch if gr.NumVertices() != m.NumVertices().
//   - core.ErrOutOfRange if an edge endpoint lies outside 0..n-1 (m unchanged).
func (m *Multigraph) AddGraphEdges(gr EdgeSource) error {
	if gr.NumVertices() != m.NumVertices() {
		return fmt.Errorf("%w: graph %d, multigraph %d", ErrSizeMismatch, gr.NumVertices(), m.NumVertices())
	}
	edges := gr.Edges(true)
	for _, e := range edges {
		if !m.valid(e.Src) || !m.valid(e.Dst) {
			return fmt.Errorf("%w: edge %d-%d", core.ErrOutOfRange, e.Src, e.Dst)
		}
	}
	for _, e := range edges {
		m.addEdge(e.Src, e.Dst)
	}

	return nil
}

// AddEdge inserts one undirected edge u-v.
//
// Errors:
//   - core.ErrOutOfRange if either endpoint is invalid.
func (m *Multigraph) AddEdge(u, v int) error {
	if !m.valid(u) || !m.valid(v) {
		return fmt.Errorf("%w: edge %d-%d", core.ErrOutOfRange, u, v)
	}
	m.addEdge(u, v)

	return nil
}

func (m *Multigraph) addEdge(u, v int) {
	id := len(m.ends)
	m.ends = append(m.ends, [2]int{u, v})
	m.inc[u] = append(m.inc[u], id)
	m.inc[v] = append(m.inc[v], id)
}

// NumVertices returns n.
func (m *Multigraph) NumVertices() int { return len(m.inc) }

// EdgeCount returns the number of edges, counting parallel edges separately.
func (m *Multigraph) EdgeCount() int { return len(m.ends) }

// Degree returns the number of edge endpoints at v.
//
// Errors:
//   - core.ErrOutOfRange if v is invalid.
func (m *Multigraph) Degree(v int) (int, error) {
	if !m.valid(v) {
		return 0, fmt.Errorf("%w: %d", core.ErrOutOfRange, v)
	}

	return len(m.inc[v]), nil
}

// OddVertices returns every odd-degree vertex, ascending.
func (m *Multigraph) OddVertices() []int {
	var odd []int
	for v, ids := range m.inc {
		if len(ids)%2 == 1 {
			odd = append(odd, v)
		}
	}

	return odd
}

func (m *Multigraph) valid(v int) bool { return v >= 0 && v < len(m.inc) }

// other returns the endpoint of edge id opposite to v.
func (m *Multigraph) other(id, v int) int {
	if m.ends[id][0] == v {
		return m.ends[id][1]
	}

	return m.ends[id][0]
}
