// Package core provides the dense, thread-safe weighted graph used by every
// algorithm in this module.
//
// A Graph[V] couples an ordered list of vertex labels of any comparable type V
// with an n×n matrix of int64 weights:
//
//   - Index i of the label list is the vertex identity for all algorithms.
//   - weights[i][j] == 0 means "no edge between i and j"; zero-weight edges are
//     therefore not representable.
//   - The matrix must be square for any solver; symmetry is checked on demand
//     by undirected algorithms (Kruskal, Prim, Christofides).
//
// Core Methods:
//
//	// Construction
//	New[V]() *Graph[V]                                   // O(1)
//	From(vertices, matrix) *Graph[V]                     // O(n²), deep copy
//	NewSquare(vertices, matrix) (*Graph[V], error)       // From + square check
//
//	// Vertex lifecycle
//	InsertVertex(label V) int                            // O(n) amortized
//	RemoveVertex(index int) error                        // O(n²), drops row+column
//	Vertex(i int) (V, error) / IndexOf(label V) (int, bool)
//
//	// Edges
//	InsertEdge(src, dst int, w int64, symmetric bool) error
//	RemoveEdge(src, dst int, symmetric bool) error
//	EdgeWeight(src, dst int) (int64, error)
//	AdjacentVertices(v int) ([]int, error)
//	Edges(undirected bool) []Edge
//
//	// Predicates & queries
//	IsSquared() bool / IsSymmetric() bool                // O(n²)
//	Degree(v int) (int, error) / OddDegreeVertices() []int
//	RouteCost(route []int) (int64, error)                // closed cycle cost
//
//	// Copies
//	Matrix() [][]int64 / Clone() / EmptyClone() / Union(other) error
//
// Every failing mutation leaves the graph unchanged.
package core
