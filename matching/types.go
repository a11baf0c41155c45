// Package matching defines result types, algorithm selection and sentinel
// errors for minimum-weight perfect matching over a vertex subset.
package matching

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for matching.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("matching: graph is nil")

	// ErrOddVertexCount indicates a subset with an odd number of vertices.
	ErrOddVertexCount = errors.New("matching: odd number of vertices")

	// ErrDuplicateVertex indicates that a vertex appears twice in the subset.
	ErrDuplicateVertex = errors.New("matching: duplicate vertex in subset")

	// ErrSubsetTooLarge indicates that the exact solver was asked for more than
	// MaxExactVertices vertices. Callers choose AlgorithmGreedy explicitly.
	ErrSubsetTooLarge = errors.New("matching: subset too large for exact matching")

	// ErrUnknownAlgorithm indicates an unrecognised algorithm name.
	ErrUnknownAlgorithm = errors.New("matching: unknown algorithm")
)

// MaxExactVertices bounds the exact solver; its table has 2^k entries.
const MaxExactVertices = 20

// Algorithm selects the matching strategy.
type Algorithm int

const (
	// AlgorithmExact is the optimal bitmask dynamic program.
	AlgorithmExact Algorithm = iota
	// AlgorithmGreedy pairs each vertex with its nearest available partner.
	// It is approximate and may fail on sparse inputs where an exact matching exists.
	AlgorithmGreedy
)

// String returns the lower-case name used by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmExact:
		return "exact"
	case AlgorithmGreedy:
		return "greedy"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "exact" or "greedy" (case-insensitive) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact":
		return AlgorithmExact, nil
	case "greedy":
		return AlgorithmGreedy, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Result is a perfect matching over the requested subset.
//
//   - Pairs:  each pair holds two graph indices, smaller first; pairs are
//     sorted by their first element.
//   - Weight: sum of matched edge weights.
//   - Exact:  true when Weight is guaranteed minimal.
type Result struct {
	Pairs  [][2]int
	Weight int64
	Exact  bool
}

// Options configures MinWeightPerfect.
type Options struct {
	Algorithm Algorithm
}

// Option is a functional option for MinWeightPerfect.
type Option func(*Options)

// WithAlgorithm selects the matching strategy.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// DefaultOptions selects the exact solver.
func DefaultOptions() Options {
	return Options{Algorithm: AlgorithmExact}
}
