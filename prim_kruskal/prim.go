// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the tree from the globally lightest edge using a min‐heap of frontier edges.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/salesman/core"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
//
// Error Conditions: identical to Kruskal.
//
// Steps:
//  1. Validate. |V| == 1 → trivial MST.
//  2. Seed with the lightest edge of the whole graph (ties by (src, dst));
//     none at all → ErrDisconnected.
//  3. Mark both endpoints visited and push their edges to unvisited vertices.
//  4. While the heap is non-empty and MST has < |V|-1 edges:
//     a. Pop the smallest (weight, from, to) edge.
//     b. Skip it if its far endpoint is already visited.
//     c. Otherwise accept it, mark the endpoint and push its frontier edges.
//  5. If MST size < |V|-1 after loop → ErrDisconnected.
//
// Complexity: O(V² log V) time, O(V²) memory.
func Prim[V comparable](g *core.Graph[V]) (*core.Graph[V], int64, error) {
	n, err := validate(g)
	if err != nil {
		return nil, 0, err
	}
	if n == 1 {
		return g.EmptyClone(), 0, nil
	}

	w := g.Matrix()

	// 2. Globally lightest edge; scanning (i<j) in order keeps the first on ties.
	var (
		seed  core.Edge
		found bool
		i, j  int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if w[i][j] > 0 && (!found || w[i][j] < seed.Weight) {
				seed = core.Edge{Src: i, Dst: j, Weight: w[i][j]}
				found = true
			}
		}
	}
	if !found {
		return nil, 0, ErrDisconnected
	}

	visited := make([]bool, n)
	mst := make([]core.Edge, 0, n-1)
	total := seed.Weight
	mst = append(mst, seed)
	visited[seed.Src] = true
	visited[seed.Dst] = true

	pq := &edgePQ{}
	heap.Init(pq)
	pushFrontier(pq, w, visited, seed.Src)
	pushFrontier(pq, w, visited, seed.Dst)

	// 4. Main loop.
	var e core.Edge
	for pq.Len() > 0 && len(mst) < n-1 {
		e = heap.Pop(pq).(core.Edge)
		if visited[e.Dst] {
			continue
		}
		visited[e.Dst] = true
		mst = append(mst, e)
		total += e.Weight
		pushFrontier(pq, w, visited, e.Dst)
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return buildTree(g, mst), total, nil
}

// pushFrontier pushes every edge u→v with v not yet visited.
func pushFrontier(pq *edgePQ, w [][]int64, visited []bool, u int) {
	for v, weight := range w[u] {
		if weight > 0 && !visited[v] {
			heap.Push(pq, core.Edge{Src: u, Dst: v, Weight: weight})
		}
	}
}

// edgePQ implements heap.Interface for a min‐heap of core.Edge ordered by
// (Weight, Src, Dst).
type edgePQ []core.Edge

// Len returns the number of edges in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less compares by weight, then source, then destination.
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].Weight != pq[j].Weight {
		return pq[i].Weight < pq[j].Weight
	}
	if pq[i].Src != pq[j].Src {
		return pq[i].Src < pq[j].Src
	}

	return pq[i].Dst < pq[j].Dst
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new core.Edge to the heap.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(core.Edge)) }

// Pop removes and returns the last element (heap.Pop handles ordering).
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]

	return edge
}
