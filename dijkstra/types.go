// Package dijkstra defines result types, sentinel errors and configuration
// options for single-source shortest paths over a dense core.Graph.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrUnreachable     if no path connects src to dst.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
//
// Index and matrix failures reuse core.ErrOutOfRange, core.ErrNotSquare and
// core.ErrNegativeWeight, wrapped with context.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnreachable indicates that dst cannot be reached from src.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Unreachable is the distance reported by Distances for vertices with no path.
const Unreachable int64 = math.MaxInt64

// NoPredecessor marks the source and unreachable vertices in the predecessor slice.
const NoPredecessor = -1

// Path is a shortest path from src to dst as dense vertex indices, src first.
type Path struct {
	Vertices []int // src, ..., dst
	Cost     int64 // sum of traversed edge weights
}

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – vertices whose distance would exceed this are not explored.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
type Options struct {
	MaxDistance      int64 // Maximum distance to explore
	InfEdgeThreshold int64 // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Negative values are rejected with ErrBadMaxDistance when the search starts.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable. Non-positive values are rejected with
// ErrBadInfThreshold when the search starts.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct with no distance cap and no
// impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// validate checks option ranges.
func (o Options) validate() error {
	if o.MaxDistance < 0 {
		return ErrBadMaxDistance
	}
	if o.InfEdgeThreshold <= 0 {
		return ErrBadInfThreshold
	}

	return nil
}
