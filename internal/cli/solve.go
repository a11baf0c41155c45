package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/salesman/core"
	"github.com/katalvlaran/salesman/internal/config"
	"github.com/katalvlaran/salesman/tsp"
	"github.com/katalvlaran/salesman/tspfile"
)

// solveFlags mirrors config.Config; a flag overrides the file only when set.
type solveFlags struct {
	configPath    string
	matching      string
	workers       int
	progressEvery int64
	timeLimit     time.Duration
	initial       string
	seed          int64
	closure       bool
}

func (f *solveFlags) register(cmd *cobra.Command) {
	def := config.Default()
	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "TOML settings file")
	fs.StringVar(&f.matching, "matching", def.Matching, "christofides matching: exact|greedy")
	fs.IntVar(&f.workers, "workers", def.Workers, "brute-force goroutines (0 = all CPUs)")
	fs.Int64Var(&f.progressEvery, "progress-every", def.ProgressEvery, "iterations between progress lines (0 = off)")
	fs.DurationVar(&f.timeLimit, "time-limit", 0, "stop after this long (0 = unlimited)")
	fs.StringVar(&f.initial, "initial", def.Initial, "2opt starting route: identity|nn|random")
	fs.Int64Var(&f.seed, "seed", def.Seed, "seed for --initial random")
	fs.BoolVar(&f.closure, "closure", def.Closure, "solve on shortest-path distances and print the expanded walk")
}

// resolve loads the config file (if any) and applies changed flags on top.
func (f *solveFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}
	fs := cmd.Flags()
	if fs.Changed("matching") {
		cfg.Matching = f.matching
	}
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fs.Changed("progress-every") {
		cfg.ProgressEvery = f.progressEvery
	}
	if fs.Changed("time-limit") {
		cfg.TimeLimit = config.Duration(f.timeLimit)
	}
	if fs.Changed("initial") {
		cfg.Initial = f.initial
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("closure") {
		cfg.Closure = f.closure
	}

	return cfg, cfg.Validate()
}

// solve runs one algorithm on one file and prints the tour.
func (c *CLI) solve(cmd *cobra.Command, path, name string, flags solveFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	algo, err := tsp.ParseAlgorithm(name)
	if err != nil {
		return err
	}
	cfg, err := flags.resolve(cmd)
	if err != nil {
		return err
	}
	opts, err := cfg.Options(solverProgress(logger))
	if err != nil {
		return err
	}
	opts = append(opts, tsp.WithContext(ctx))

	g, err := tspfile.ReadFile(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded instance", "file", path, "vertices", g.NumVertices(), "symmetric", g.IsSymmetric())

	if !cfg.Closure {
		prog := newProgress(logger)
		res, err := tsp.Solve(g, algo, opts...)
		if err != nil {
			return err
		}
		prog.done("Solved with " + algo.String())

		return printResult(cmd.OutOrStdout(), g, res)
	}

	prog := newProgress(logger)
	cl, err := tsp.MetricClosure(g)
	if err != nil {
		return err
	}
	prog.done("Built metric closure")

	prog = newProgress(logger)
	res, err := tsp.Solve(cl.Graph, algo, opts...)
	if err != nil {
		return err
	}
	prog.done("Solved with " + algo.String())

	walk, err := cl.Expand(res.Route)
	if err != nil {
		return err
	}
	if err = printResult(cmd.OutOrStdout(), g, res); err != nil {
		return err
	}

	return printWalk(cmd.OutOrStdout(), g, walk)
}

// printResult writes "route: a -> b -> ... -> a" and "cost: N".
func printResult(w io.Writer, g *core.Graph[int], res tsp.Result) error {
	names, err := labelsOf(g, res.Route)
	if err != nil {
		return err
	}
	if len(names) > 0 {
		names = append(names, names[0])
	}
	_, err = fmt.Fprintf(w, "route: %s\ncost: %d\n", strings.Join(names, " -> "), res.Cost)

	return err
}

// printWalk writes the closed walk over original edges as "walk: a -> ... -> a".
func printWalk(w io.Writer, g *core.Graph[int], walk []int) error {
	names, err := labelsOf(g, walk)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "walk: %s\n", strings.Join(names, " -> "))

	return err
}

func labelsOf(g *core.Graph[int], idx []int) ([]string, error) {
	names := make([]string, 0, len(idx)+1)
	for _, i := range idx {
		v, err := g.Vertex(i)
		if err != nil {
			return nil, err
		}
		names = append(names, strconv.Itoa(v))
	}

	return names, nil
}
