package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/salesman/builder"
	"github.com/katalvlaran/salesman/core"
	"github.com/katalvlaran/salesman/dijkstra"
	"github.com/katalvlaran/salesman/eulerian"
	"github.com/katalvlaran/salesman/internal/config"
	"github.com/katalvlaran/salesman/matching"
	"github.com/katalvlaran/salesman/prim_kruskal"
	"github.com/katalvlaran/salesman/tsp"
	"github.com/katalvlaran/salesman/tspfile"
)

// ErrUsage marks bad arguments or flags.
var ErrUsage = errors.New("usage")

// Exit codes. ExitInterrupted follows the shell convention for SIGINT.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitUsage        = 2
	ExitInput        = 3
	ExitFormat       = 4
	ExitNotSquare    = 5
	ExitNotSymmetric = 6
	ExitNegative     = 7
	ExitDisconnected = 8
	ExitNoTour       = 9
	ExitTooLarge     = 10
	ExitTimeLimit    = 11
	ExitUnknownName  = 12
	ExitConfig       = 13
	ExitInternal     = 14
	ExitOutOfRange   = 15
	ExitOddVertices  = 16
	ExitNoCircuit    = 17
	ExitUnreachable  = 18
	ExitInterrupted  = 130
)

// exitRule maps any of errs to code, prefixing diagnostics with kind.
type exitRule struct {
	errs []error
	code int
	kind string
}

// exitRules is scanned in order; the first rule with a matching sentinel wins.
var exitRules = []exitRule{
	{[]error{context.Canceled}, ExitInterrupted, "interrupted"},
	{[]error{ErrUsage}, ExitUsage, "usage error"},
	{[]error{config.ErrInvalid, config.ErrUnknownKey, tsp.ErrBadOption}, ExitConfig, "invalid configuration"},
	{[]error{tsp.ErrTimeLimit}, ExitTimeLimit, "time limit exceeded"},
	{[]error{os.ErrNotExist, os.ErrPermission}, ExitInput, "cannot read input"},
	{[]error{tspfile.ErrMalformed, tspfile.ErrEmpty}, ExitFormat, "malformed input"},
	{[]error{core.ErrNotSquare}, ExitNotSquare, "matrix is not square"},
	{[]error{core.ErrNotSymmetric}, ExitNotSymmetric, "matrix is not symmetric"},
	{[]error{core.ErrNegativeWeight}, ExitNegative, "negative weight"},
	{[]error{prim_kruskal.ErrDisconnected}, ExitDisconnected, "graph is disconnected"},
	{[]error{dijkstra.ErrUnreachable}, ExitUnreachable, "vertex unreachable"},
	{[]error{tsp.ErrNoTour, tsp.ErrEmptyGraph}, ExitNoTour, "no tour"},
	{[]error{tsp.ErrTooLarge, matching.ErrSubsetTooLarge}, ExitTooLarge, "instance too large"},
	{[]error{tsp.ErrUnknownAlgorithm, tsp.ErrUnknownInitialTour, matching.ErrUnknownAlgorithm, builder.ErrUnknownKind}, ExitUnknownName, "unknown name"},
	{[]error{matching.ErrOddVertexCount}, ExitOddVertices, "odd vertex count"},
	{[]error{eulerian.ErrNoEulerianCircuit}, ExitNoCircuit, "no eulerian circuit"},
	{[]error{eulerian.ErrIncompleteWalk}, ExitInternal, "internal invariant violated"},
	{[]error{core.ErrOutOfRange}, ExitOutOfRange, "index out of range"},
}

func match(err error) (exitRule, bool) {
	for _, r := range exitRules {
		for _, target := range r.errs {
			if errors.Is(err, target) {
				return r, true
			}
		}
	}

	return exitRule{}, false
}

// ExitCode returns the process exit status for err (ExitOK for nil).
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if r, ok := match(err); ok {
		return r.code
	}

	return ExitFailure
}

// Diagnose renders err as a single stderr line naming its kind.
func Diagnose(err error) string {
	if r, ok := match(err); ok {
		return fmt.Sprintf("tsp: %s: %v", r.kind, err)
	}

	return fmt.Sprintf("tsp: %v", err)
}
