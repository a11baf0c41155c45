// File: types.go
// Role: Graph type, Edge, sentinel errors and constructors.
//
// Errors:
//
//	ErrOutOfRange     - vertex index outside 0..n-1.
//	ErrNotSquare      - adjacency matrix is not n×n.
//	ErrNotSymmetric   - weights[i][j] != weights[j][i] where symmetry is required.
//	ErrNegativeWeight - a negative weight where only non-negative ones are allowed.
//	ErrEmptyRoute     - a route with no vertices was passed to RouteCost.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrOutOfRange indicates a vertex index outside 0..n-1.
	ErrOutOfRange = errors.New("core: vertex index out of range")

	// ErrNotSquare indicates that the adjacency matrix is not n×n.
	ErrNotSquare = errors.New("core: adjacency matrix is not square")

	// ErrNotSymmetric indicates that an undirected algorithm received an asymmetric matrix.
	ErrNotSymmetric = errors.New("core: adjacency matrix is not symmetric")

	// ErrNegativeWeight indicates a negative edge weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrEmptyRoute indicates an attempt to price a route with no vertices.
	ErrEmptyRoute = errors.New("core: empty route")
)

// Edge is a weighted (src, dst) pair read out of the matrix.
type Edge struct {
	Src    int
	Dst    int
	Weight int64
}

// Graph is a dense weighted graph over labels of type V.
//
// mu guards vertices and weights. All exported methods take the lock, so a
// Graph may be read from several goroutines while no writer is active.
type Graph[V comparable] struct {
	mu sync.RWMutex

	// vertices[i] is the user label of vertex i.
	vertices []V

	// weights[i][j] is the weight of i→j; zero means no edge.
	weights [][]int64
}

// New returns an empty graph.
// Complexity: O(1).
func New[V comparable]() *Graph[V] {
	return &Graph[V]{}
}

// From builds a graph from labels and a weight matrix. The matrix is deep-copied
// so later changes by the caller do not alias the graph.
//
// From does not enforce squareness: a loader may hand over a ragged matrix and
// let the solver report ErrNotSquare through IsSquared. Callers that need the
// check up front can use NewSquare.
//
// Complexity: O(n²).
func From[V comparable](vertices []V, matrix [][]int64) *Graph[V] {
	g := &Graph[V]{
		vertices: append([]V(nil), vertices...),
		weights:  copyMatrix(matrix),
	}

	return g
}

// NewSquare is From plus the square check: it returns ErrNotSquare when the
// matrix is not len(vertices)×len(vertices).
func NewSquare[V comparable](vertices []V, matrix [][]int64) (*Graph[V], error) {
	if len(matrix) != len(vertices) {
		return nil, ErrNotSquare
	}
	for _, row := range matrix {
		if len(row) != len(vertices) {
			return nil, ErrNotSquare
		}
	}

	return From(vertices, matrix), nil
}

// copyMatrix returns an independent copy of m, row lengths preserved.
func copyMatrix(m [][]int64) [][]int64 {
	out := make([][]int64, len(m))
	for i := range m {
		out[i] = append([]int64(nil), m[i]...)
	}

	return out
}
