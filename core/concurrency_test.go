// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/salesman/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentInsertVertex ensures concurrent InsertVertex calls keep the
// matrix square and hand out distinct indices.
func TestConcurrentInsertVertex(t *testing.T) {
	g := core.New[int]()
	const num = 200
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[int]bool, num)
	)
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			idx := g.InsertVertex(id)
			mu.Lock()
			seen[idx] = true
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	require.Equal(t, num, g.NumVertices())
	require.Len(t, seen, num, "indices must be unique")
	require.True(t, g.IsSquared())
}

// TestConcurrentEdgeWritesAndReads mixes symmetric writes with RouteCost and
// IsSymmetric readers; the race detector must stay quiet.
func TestConcurrentEdgeWritesAndReads(t *testing.T) {
	g := square4()
	route := []int{0, 1, 2, 3}
	var wg sync.WaitGroup
	const workers = 32
	wg.Add(2 * workers)

	for i := 0; i < workers; i++ {
		go func(w int64) {
			defer wg.Done()
			assert.NoError(t, g.InsertEdge(0, 1, w+1, true))
		}(int64(i))
		go func() {
			defer wg.Done()
			_, err := g.RouteCost(route)
			assert.NoError(t, err)
			// Symmetric writes hold the lock for both cells.
			assert.True(t, g.IsSymmetric())
		}()
	}
	wg.Wait()
}

// TestConcurrentRemoveVertex removes vertices while readers snapshot the matrix.
func TestConcurrentRemoveVertex(t *testing.T) {
	g := core.New[int]()
	for i := 0; i < 64; i++ {
		g.InsertVertex(i)
	}
	var wg sync.WaitGroup
	wg.Add(64)

	for i := 0; i < 32; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, g.RemoveVertex(0))
		}()
		go func() {
			defer wg.Done()
			m := g.Matrix()
			for _, row := range m {
				assert.Len(t, row, len(m))
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 32, g.NumVertices())
	require.True(t, g.IsSquared())
}
