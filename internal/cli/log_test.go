package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/salesman/tsp"
)

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)
	l.Debug("hidden")
	assert.Zero(t, buf.Len())
	l.Info("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(newLogger(&buf, log.InfoLevel))
	p.done("Solved")
	assert.Regexp(t, `Solved \(\d+m?s\)`, buf.String())
}

func TestSolverProgress(t *testing.T) {
	var buf bytes.Buffer
	fn := solverProgress(newLogger(&buf, log.DebugLevel))
	fn(tsp.Progress{Iteration: 10, Elapsed: time.Second})
	assert.Contains(t, buf.String(), "iteration=10")
	assert.NotContains(t, buf.String(), "best=")

	buf.Reset()
	fn(tsp.Progress{Iteration: 20, Elapsed: time.Second, BestCost: 42, HasBest: true})
	assert.Contains(t, buf.String(), "best=42")
}

func TestLoggerFromContext(t *testing.T) {
	assert.Equal(t, log.Default(), loggerFromContext(context.Background()))

	l := newLogger(&bytes.Buffer{}, log.InfoLevel)
	assert.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))
}
