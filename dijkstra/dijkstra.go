// File: dijkstra.go
// Role: Heap-based single-source shortest paths over the dense matrix.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of the whole matrix (O(V²)) to detect negative weights and fail fast.
//   - A zero cell means "no edge"; any weight ≥ InfEdgeThreshold is an impassable wall.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap ties are broken by vertex index so results are deterministic.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/salesman/core"
)

// ShortestPath returns the minimum-cost path from src to dst.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be in range (ErrBadMaxDistance, ErrBadInfThreshold).
//  3. g must be square (core.ErrNotSquare).
//  4. src and dst must be valid indices (core.ErrOutOfRange).
//  5. No cell of g may be negative (core.ErrNegativeWeight).
//
// src == dst yields Path{Vertices: [src], Cost: 0}. When dst is never
// settled, ErrUnreachable is returned.
//
// Complexity:
//
//   - Time:  O(V² log V) on the dense matrix.
//   - Space: O(V²) worst-case heap entries.
func ShortestPath[V comparable](g *core.Graph[V], src, dst int, opts ...Option) (Path, error) {
	r, err := newRunner(g, src, opts)
	if err != nil {
		return Path{}, err
	}
	if dst < 0 || dst >= r.n {
		return Path{}, fmt.Errorf("%w: dst=%d", core.ErrOutOfRange, dst)
	}
	if src == dst {
		return Path{Vertices: []int{src}}, nil
	}

	r.init()
	r.process(dst)
	if r.dist[dst] == Unreachable {
		return Path{}, fmt.Errorf("%w: %d -> %d", ErrUnreachable, src, dst)
	}

	// Walk predecessors back to src, then reverse.
	var (
		path []int
		v    int
	)
	for v = dst; v != NoPredecessor; v = r.prev[v] {
		path = append(path, v)
	}
	var i, j int
	for i, j = 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Path{Vertices: path, Cost: r.dist[dst]}, nil
}

// Distances computes shortest distances from src to every vertex.
//
// Returns:
//
//   - dist: dist[v] is the minimum cost, or Unreachable.
//   - prev: prev[v] is the predecessor of v on a shortest path, or NoPredecessor
//     for src and for unreachable vertices.
//
// Errors are the same as ShortestPath except ErrUnreachable.
func Distances[V comparable](g *core.Graph[V], src int, opts ...Option) ([]int64, []int, error) {
	r, err := newRunner(g, src, opts)
	if err != nil {
		return nil, nil, err
	}
	r.init()
	r.process(NoPredecessor)

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	w       [][]int64 // Snapshot of the weight matrix; read-only.
	n       int       // Number of vertices.
	src     int       // Source vertex.
	options Options   // Configuration options (thresholds).
	dist    []int64   // Vertex → current best distance from src.
	prev    []int     // Vertex → predecessor on the shortest path.
	visited []bool    // Tracks if a vertex's distance is finalized.
	pq      nodePQ    // Min-heap of *nodeItem for lazy priority queue.
}

// newRunner validates inputs and snapshots the matrix.
func newRunner[V comparable](g *core.Graph[V], src int, opts []Option) (*runner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if !g.IsSquared() {
		return nil, core.ErrNotSquare
	}
	n := g.NumVertices()
	if src < 0 || src >= n {
		return nil, fmt.Errorf("%w: src=%d", core.ErrOutOfRange, src)
	}
	if e, neg := g.HasNegativeWeight(); neg {
		return nil, fmt.Errorf("%w: edge %d→%d weight=%d", core.ErrNegativeWeight, e.Src, e.Dst, e.Weight)
	}

	return &runner{
		w:       g.Matrix(),
		n:       n,
		src:     src,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}, nil
}

// init sets every distance to Unreachable and pushes src with distance 0.
func (r *runner) init() {
	var v int
	for v = 0; v < r.n; v++ {
		r.dist[v] = Unreachable
		r.prev[v] = NoPredecessor
	}
	r.dist[r.src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.src, dist: 0})
}

// process is the main loop: pop the closest unsettled vertex, settle it and
// relax its row. It stops early once target is settled (target < 0 means never).
func (r *runner) process(target int) {
	var (
		item *nodeItem
		u    int
	)
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*nodeItem)
		u = item.id
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if u == target {
			return
		}
		r.relax(u)
	}
}

// relax examines every edge u→v and improves dist[v] when strictly shorter.
func (r *runner) relax(u int) {
	var (
		v       int
		w       int64
		newDist int64
	)
	for v, w = range r.w[u] {
		if w == 0 || v == u || r.visited[v] {
			continue
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		newDist = r.dist[u] + w
		if newDist < r.dist[u] || newDist > r.options.MaxDistance {
			continue // overflow or beyond the cap
		}
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int   // vertex index
	dist int64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by vertex index.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element (heap.Pop handles ordering).
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
