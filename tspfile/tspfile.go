// Package tspfile reads and writes the plain-text distance-matrix format.
//
// Each non-empty line is one matrix row of whitespace-separated non-negative
// integers; blank lines are ignored. Row i, column j is the weight of the edge
// i→j, and 0 between distinct vertices means "no edge". Vertices are labelled
// 0..n-1 in row order.
//
//	0 1 4 3
//	1 0 2 5
//	4 2 0 6
//	3 5 6 0
package tspfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/salesman/core"
)

var (
	// ErrEmpty indicates input without any matrix row.
	ErrEmpty = errors.New("tspfile: no matrix rows")

	// ErrMalformed indicates a token that is not a non-negative integer.
	ErrMalformed = errors.New("tspfile: malformed weight")
)

// maxLineBytes caps one row; a 10k-vertex row of 6-digit weights fits.
const maxLineBytes = 1 << 20

// Read parses a matrix from r.
//
// Errors:
//   - ErrMalformed with "line L, column C" for a bad token.
//   - core.ErrNotSquare if any row length differs from the row count.
//   - ErrEmpty if r has no non-blank line.
//   - I/O errors from r.
func Read(r io.Reader) (*core.Graph[int], error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		rows   [][]int64
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int64, len(fields))
		for col, tok := range fields {
			w, err := strconv.ParseInt(tok, 10, 64)
			if err != nil || w < 0 {
				return nil, fmt.Errorf("%w: line %d, column %d: %q", ErrMalformed, lineNo, col+1, tok)
			}
			row[col] = w
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tspfile: read: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	n := len(rows)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", core.ErrNotSquare, i+1, len(row), n)
		}
	}
	labels := make([]int, n)
	for i := range labels {
		labels[i] = i
	}

	return core.NewSquare(labels, rows)
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*core.Graph[int], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Write emits g's weight matrix in the format Read accepts.
//
// Errors:
//   - core.ErrNotSquare for a ragged graph; write errors from w.
func Write[V comparable](w io.Writer, g *core.Graph[V]) error {
	if !g.IsSquared() {
		return core.ErrNotSquare
	}
	bw := bufio.NewWriter(w)
	for _, row := range g.Matrix() {
		for j, x := range row {
			if j > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(strconv.FormatInt(x, 10)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile writes g to path, creating or truncating it.
func WriteFile[V comparable](path string, g *core.Graph[V]) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Write(f, g); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}
