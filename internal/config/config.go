// Package config loads solver settings for the tsp command from a TOML file.
//
// Example file:
//
//	matching       = "exact"   # exact | greedy
//	workers        = 4         # brute-force goroutines, 0 = all CPUs
//	progress_every = 10000     # permutations between progress lines, 0 = off
//	time_limit     = "30s"     # Go duration, "" = unlimited
//	initial        = "nn"      # identity | nn | random (2opt start)
//	seed           = 42        # used by initial = "random"
//	closure        = true      # solve on shortest-path distances
//
// Command-line flags override file values.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/salesman/matching"
	"github.com/katalvlaran/salesman/tsp"
)

var (
	// ErrInvalid indicates a value outside its allowed range.
	ErrInvalid = errors.New("config: invalid value")

	// ErrUnknownKey indicates a key the decoder did not recognise.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Duration is a time.Duration decoded from a Go duration string ("1m30s").
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		*d = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("%w: time_limit %q", ErrInvalid, s)
	}
	*d = Duration(v)

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Config holds every tunable of the tsp command.
type Config struct {
	Matching      string   `toml:"matching"`
	Workers       int      `toml:"workers"`
	ProgressEvery int64    `toml:"progress_every"`
	TimeLimit     Duration `toml:"time_limit"`
	Initial       string   `toml:"initial"`
	Seed          int64    `toml:"seed"`
	Closure       bool     `toml:"closure"`
}

// Default returns the built-in settings: exact matching, one worker, progress
// every tsp.DefaultProgressEvery permutations, no time limit, identity start.
func Default() Config {
	return Config{
		Matching:      matching.AlgorithmExact.String(),
		Workers:       1,
		ProgressEvery: tsp.DefaultProgressEvery,
		Initial:       tsp.InitialIdentity.String(),
	}
}

// Load reads path over the defaults and validates the result.
//
// Errors:
//   - I/O and TOML syntax errors from the decoder.
//   - ErrUnknownKey listing keys that match no field.
//   - ErrInvalid from Validate.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks ranges and names.
func (c Config) Validate() error {
	if _, err := matching.ParseAlgorithm(c.Matching); err != nil {
		return fmt.Errorf("%w: matching: %w", ErrInvalid, err)
	}
	if _, err := tsp.ParseInitialTour(c.Initial); err != nil {
		return fmt.Errorf("%w: initial: %w", ErrInvalid, err)
	}
	switch {
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d < 0", ErrInvalid, c.Workers)
	case c.ProgressEvery < 0:
		return fmt.Errorf("%w: progress_every %d < 0", ErrInvalid, c.ProgressEvery)
	case c.TimeLimit < 0:
		return fmt.Errorf("%w: time_limit %s < 0", ErrInvalid, time.Duration(c.TimeLimit))
	}

	return nil
}

// Options converts c into solver options. progress may be nil.
func (c Config) Options(progress tsp.ProgressFunc) ([]tsp.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	m, _ := matching.ParseAlgorithm(c.Matching)
	initial, _ := tsp.ParseInitialTour(c.Initial)

	opts := []tsp.Option{
		tsp.WithMatching(m),
		tsp.WithWorkers(c.Workers),
		tsp.WithInitialTour(initial),
		tsp.WithSeed(c.Seed),
		tsp.WithTimeLimit(time.Duration(c.TimeLimit)),
	}
	if progress != nil && c.ProgressEvery > 0 {
		opts = append(opts, tsp.WithProgress(c.ProgressEvery, progress))
	}

	return opts, nil
}
