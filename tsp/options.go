// Package tsp - functional options shared by all solvers.
package tsp

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/katalvlaran/salesman/matching"
)

// InitialTour selects the starting route for 2-opt inside Solve.
type InitialTour int

const (
	// InitialIdentity starts from 0, 1, ..., n-1.
	InitialIdentity InitialTour = iota
	// InitialNearestNeighbor starts from the NearestNeighbor route.
	InitialNearestNeighbor
	// InitialRandom starts from RandomRoute(n, Seed).
	InitialRandom
)

// String returns the name accepted by ParseInitialTour.
func (t InitialTour) String() string {
	switch t {
	case InitialIdentity:
		return "identity"
	case InitialNearestNeighbor:
		return "nn"
	case InitialRandom:
		return "random"
	default:
		return fmt.Sprintf("InitialTour(%d)", int(t))
	}
}

// ParseInitialTour maps "identity", "nn" or "random" to an InitialTour.
func ParseInitialTour(s string) (InitialTour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "identity", "":
		return InitialIdentity, nil
	case "nn", "nearest":
		return InitialNearestNeighbor, nil
	case "random":
		return InitialRandom, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownInitialTour, s)
	}
}

// Options configures the solvers. Each solver reads only the fields it needs.
//
// Context          – cancellation, checked between iterations.
// ProgressEvery    – iterations between Progress calls (brute force). 0 disables.
// Progress         – optional callback.
// Workers          – brute-force goroutines; 0 means GOMAXPROCS.
// SizeLimit        – enforce MaxBruteForceVertices; HeldKarp always enforces its own.
// FirstImprovement – 2-opt applies the first improving move instead of the best.
// MaxMoves         – 2-opt stops after this many applied moves; 0 is unlimited.
// TimeLimit        – wall-clock budget; 0 is unlimited.
// Matching         – matching strategy for Christofides.
// Initial, Seed    – 2-opt starting route inside Solve.
type Options struct {
	Context          context.Context
	ProgressEvery    int64
	Progress         ProgressFunc
	Workers          int
	SizeLimit        bool
	FirstImprovement bool
	MaxMoves         int
	TimeLimit        time.Duration
	Matching         matching.Algorithm
	Initial          InitialTour
	Seed             int64
}

// Option is a functional option for the solvers.
type Option func(*Options)

// DefaultOptions returns sequential, size-limited, best-improvement settings
// with exact matching and an identity starting route.
func DefaultOptions() Options {
	return Options{
		Context:       context.Background(),
		ProgressEvery: DefaultProgressEvery,
		Workers:       1,
		SizeLimit:     true,
		Matching:      matching.AlgorithmExact,
		Initial:       InitialIdentity,
	}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Context = ctx
	}
}

// WithProgress reports every `every` iterations to fn.
func WithProgress(every int64, fn ProgressFunc) Option {
	return func(o *Options) {
		o.ProgressEvery = every
		o.Progress = fn
	}
}

// WithWorkers sets the number of brute-force workers (0 = GOMAXPROCS).
func WithWorkers(k int) Option {
	return func(o *Options) {
		o.Workers = k
	}
}

// WithoutSizeLimit lifts the BruteForce vertex ceiling. HeldKarp ignores it:
// its tables are sized n·2^n up front.
func WithoutSizeLimit() Option {
	return func(o *Options) {
		o.SizeLimit = false
	}
}

// WithFirstImprovement switches 2-opt to the first-improvement policy.
func WithFirstImprovement() Option {
	return func(o *Options) {
		o.FirstImprovement = true
	}
}

// WithMaxMoves caps the number of applied 2-opt moves (one move per scan
// under either improvement policy).
func WithMaxMoves(k int) Option {
	return func(o *Options) {
		o.MaxMoves = k
	}
}

// WithTimeLimit sets a wall-clock budget.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		o.TimeLimit = d
	}
}

// WithMatching selects the Christofides matching strategy.
func WithMatching(a matching.Algorithm) Option {
	return func(o *Options) {
		o.Matching = a
	}
}

// WithInitialTour selects the 2-opt starting route used by Solve.
func WithInitialTour(t InitialTour) Option {
	return func(o *Options) {
		o.Initial = t
	}
}

// WithSeed sets the seed for InitialRandom (0 selects the package default).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// buildOptions applies opts over the defaults and validates ranges.
func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	switch {
	case cfg.ProgressEvery < 0:
		return cfg, fmt.Errorf("%w: progress interval %d", ErrBadOption, cfg.ProgressEvery)
	case cfg.Workers < 0:
		return cfg, fmt.Errorf("%w: workers %d", ErrBadOption, cfg.Workers)
	case cfg.MaxMoves < 0:
		return cfg, fmt.Errorf("%w: max moves %d", ErrBadOption, cfg.MaxMoves)
	case cfg.TimeLimit < 0:
		return cfg, fmt.Errorf("%w: time limit %s", ErrBadOption, cfg.TimeLimit)
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}

	return cfg, nil
}

// runContext derives the solver context, adding TimeLimit when set.
func (o Options) runContext() (context.Context, context.CancelFunc) {
	if o.TimeLimit > 0 {
		return context.WithTimeout(o.Context, o.TimeLimit)
	}

	return context.WithCancel(o.Context)
}

// interrupted maps a finished context to ErrTimeLimit or its cancellation error.
func interrupted(ctx context.Context) error {
	err := ctx.Err()
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeLimit, err)
	}

	return err
}
