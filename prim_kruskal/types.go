// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/salesman/core"
)

// ErrInvalidGraph indicates that a nil graph was passed.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. An empty graph is reported as
// disconnected as well.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates that MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from the lightest edge using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Complexity: O(V² log V) for both on the dense matrix.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal: Kruskal(g).
//	– MethodPrim:    Prim(g).
//	– Otherwise:     ErrUnknownMethod.
//
// Returns the spanning tree as a new graph over the same vertices (symmetric
// edges only) and its total weight.
func Compute[V comparable](g *core.Graph[V], opts MSTOptions) (*core.Graph[V], int64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}

// validate enforces the shared MST preconditions and returns n.
//
// Order: nil → ErrInvalidGraph, ragged → core.ErrNotSquare,
// asymmetric → core.ErrNotSymmetric, negative cell → core.ErrNegativeWeight,
// empty → ErrDisconnected.
func validate[V comparable](g *core.Graph[V]) (int, error) {
	if g == nil {
		return 0, ErrInvalidGraph
	}
	if !g.IsSquared() {
		return 0, core.ErrNotSquare
	}
	if !g.IsSymmetric() {
		return 0, core.ErrNotSymmetric
	}
	if e, neg := g.HasNegativeWeight(); neg {
		return 0, fmt.Errorf("%w: edge %d-%d weight=%d", core.ErrNegativeWeight, e.Src, e.Dst, e.Weight)
	}
	n := g.NumVertices()
	if n == 0 {
		return 0, ErrDisconnected
	}

	return n, nil
}

// buildTree materializes accepted edges as a symmetric graph over g's vertices.
func buildTree[V comparable](g *core.Graph[V], edges []core.Edge) *core.Graph[V] {
	tree := g.EmptyClone()
	for _, e := range edges {
		// Indices come from g itself, so InsertEdge cannot fail.
		_ = tree.InsertEdge(e.Src, e.Dst, e.Weight, true)
	}

	return tree
}
