package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/salesman/builder"
	"github.com/katalvlaran/salesman/tspfile"
)

// genCommand writes a random instance in tspfile format.
func (c *CLI) genCommand() *cobra.Command {
	var (
		kind       string
		seed       int64
		minW, maxW int64
		span       int64
		asymmetric bool
		output     string
	)

	cmd := &cobra.Command{
		Use:   "gen <n>",
		Short: "Generate a random instance",
		Long: `gen writes an n-vertex instance to stdout or --output.

Kinds:
  euclidean  random points in a span x span square, rounded distances
  complete   every pair connected, weights uniform in [min, max]
  cycle      ring without chords (exactly one tour)
  star       hub and spokes (no tour)`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return fmt.Errorf("%w: %w", ErrUsage, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: vertex count %q", ErrUsage, args[0])
			}
			k, err := builder.ParseKind(kind)
			if err != nil {
				return err
			}
			if minW < 1 || maxW < minW {
				return fmt.Errorf("%w: require 1 <= --min <= --max, got %d..%d", ErrUsage, minW, maxW)
			}
			if span < 1 {
				return fmt.Errorf("%w: --span must be >= 1", ErrUsage)
			}
			ctor, err := k.Constructor(n)
			if err != nil {
				return err
			}

			bopts := []builder.BuilderOption{
				builder.WithSeed(seed),
				builder.WithSpan(span),
				builder.WithWeightFn(builder.UniformWeightFn(minW, maxW)),
			}
			if asymmetric {
				bopts = append(bopts, builder.WithAsymmetric())
			}
			g, err := builder.BuildGraph(bopts, ctor)
			if err != nil {
				return err
			}

			if output == "" {
				return tspfile.Write(cmd.OutOrStdout(), g)
			}
			if err = tspfile.WriteFile(output, g); err != nil {
				return err
			}
			logger.Info("wrote instance", "file", output, "kind", k, "vertices", n)

			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&kind, "kind", builder.KindEuclidean.String(), "euclidean|complete|cycle|star")
	fs.Int64Var(&seed, "seed", 1, "random seed")
	fs.Int64Var(&minW, "min", 1, "minimum weight (complete, cycle, star)")
	fs.Int64Var(&maxW, "max", 100, "maximum weight (complete, cycle, star)")
	fs.Int64Var(&span, "span", 1000, "coordinate range (euclidean)")
	fs.BoolVar(&asymmetric, "asymmetric", false, "independent weight per direction (not euclidean)")
	fs.StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}
