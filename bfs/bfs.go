// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// Any non-zero cell is an edge; weights are ignored.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/salesman/core"
)

// queueItem pairs a vertex index with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	w     [][]int64
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil, core.ErrNotSquare or ErrStartOutOfRange for invalid
// input, ErrOptionViolation for bad options, the context error on
// cancellation, or any OnVisit error.
//
// Complexity: O(n²) on the dense matrix.
func BFS[V comparable](g *core.Graph[V], start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.IsSquared() {
		return nil, core.ErrNotSquare
	}
	n := g.NumVertices()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d", ErrStartOutOfRange, start)
	}

	wk := &walker{
		w:     g.Matrix(),
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		wk.res.Depth[i] = Unreached
		wk.res.Parent[i] = Unreached
	}

	wk.enqueue(start, 0, Unreached)

	return wk.res, wk.loop()
}

// enqueue marks v reached at depth d with the given parent.
func (wk *walker) enqueue(v, d, parent int) {
	wk.res.Depth[v] = d
	wk.res.Parent[v] = parent
	wk.queue = append(wk.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (wk *walker) loop() error {
	for len(wk.queue) > 0 {
		if err := wk.ctx.Err(); err != nil {
			return err
		}

		item := wk.queue[0]
		wk.queue = wk.queue[1:]
		wk.res.Order = append(wk.res.Order, item.v)
		if err := wk.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}
		wk.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors adds every unseen neighbor within MaxDepth.
func (wk *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if wk.opts.MaxDepth > 0 && next > wk.opts.MaxDepth {
		return
	}
	var (
		u int
		x int64
	)
	for u = range wk.w {
		if wk.opts.Reverse {
			x = wk.w[u][item.v]
		} else {
			x = wk.w[item.v][u]
		}
		if x == 0 || u == item.v || wk.res.Depth[u] != Unreached {
			continue
		}
		wk.enqueue(u, next, item.v)
	}
}

// StronglyConnected reports whether every vertex is reachable from start and
// can reach start. When it is not, witness is the first vertex (by index)
// that fails either direction; otherwise witness is Unreached. A graph with
// no vertices is reported as connected.
//
// Complexity: two searches, O(n²).
func StronglyConnected[V comparable](g *core.Graph[V], start int) (ok bool, witness int, err error) {
	if g == nil {
		return false, Unreached, ErrGraphNil
	}
	if g.NumVertices() == 0 {
		return true, Unreached, nil
	}
	fwd, err := BFS(g, start)
	if err != nil {
		return false, Unreached, err
	}
	bwd, err := BFS(g, start, WithReverse())
	if err != nil {
		return false, Unreached, err
	}
	for v := range fwd.Depth {
		if !fwd.Reached(v) || !bwd.Reached(v) {
			return false, v, nil
		}
	}

	return true, Unreached, nil
}
