// Package cli implements the tsp command-line interface.
//
// The root command solves an instance file:
//
//	tsp <filename> <algorithm> [flags]
//
// where algorithm is one of exact, 2opt, nn, christofides or held-karp. The
// gen subcommand writes random instances in the same file format.
//
// # Logging
//
// Diagnostics and progress go to stderr through charmbracelet/log; --verbose
// (-v) enables debug lines, including solver progress. The logger travels
// in the command context. Results go to stdout.
//
// # Exit codes
//
// Every error kind has its own exit status; see ExitCode.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI that logs to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with the gen subcommand registered.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose bool
		flags   solveFlags
	)

	root := &cobra.Command{
		Use:   "tsp <filename> <algorithm>",
		Short: "Solve a Travelling Salesman instance",
		Long: `tsp reads a distance matrix (one whitespace-separated row per line) and
prints a tour and its cost.

Algorithms:
  exact         exhaustive search (n <= 11 by default)
  held-karp     dynamic programming (n <= 20)
  nn            nearest neighbor
  2opt          2-opt local search
  christofides  MST + perfect matching + Eulerian circuit (symmetric input)`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(2)(cmd, args); err != nil {
				return fmt.Errorf("%w: %w", ErrUsage, err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.solve(cmd, args[0], args[1], flags)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	flags.register(root)

	root.AddCommand(c.genCommand())

	return root
}
