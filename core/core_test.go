// SPDX-License-Identifier: MIT

package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/lvroute/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square builds the 4-cycle 0-1-2-3-0 with unit weights.
func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(3, 0, 1))

	return g
}

func TestAddVertex_Validation(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(-1), core.ErrBadVertexID)
	require.NoError(t, g.AddVertex(3))
	require.NoError(t, g.AddVertex(3)) // idempotent
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex(3))
	assert.False(t, g.HasVertex(-3))
}

func TestWithVertices_KeepsIsolated(t *testing.T) {
	g := core.NewGraph(core.WithVertices(4))
	assert.Equal(t, []int{0, 1, 2, 3}, g.Vertices())
	d, err := g.Degree(2)
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestAddEdge_Undirected(t *testing.T) {
	g := square(t)
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge(1, 0))
	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(0, 2))

	w, err := g.Weight(3, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), w)

	_, err = g.Weight(0, 2)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	_, err = g.Weight(0, 9)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestAddEdge_Rejections(t *testing.T) {
	g := square(t)
	require.ErrorIs(t, g.AddEdge(1, 1, 4), core.ErrLoopNotAllowed)
	require.ErrorIs(t, g.AddEdge(1, 0, 7), core.ErrMultiEdgeNotAllowed)
	require.ErrorIs(t, g.AddEdge(-1, 0, 7), core.ErrBadVertexID)
	assert.Equal(t, 4, g.EdgeCount())
}

func TestNeighbors_Sorted(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(5, 9, 2))
	require.NoError(t, g.AddEdge(5, 1, 7))
	require.NoError(t, g.AddEdge(5, 3, 4))

	ids, err := g.NeighborIDs(5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 9}, ids)

	edges, err := g.Neighbors(5)
	require.NoError(t, err)
	require.Len(t, edges, 3)
	assert.Equal(t, core.Edge{From: 5, To: 1, Weight: 7}, edges[0])

	_, err = g.Neighbors(42)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestEdges_Canonical(t *testing.T) {
	g := square(t)
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 3, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 1},
	}, g.Edges())
}

func TestWalkWeight(t *testing.T) {
	g := square(t)

	w, err := g.WalkWeight([]int{0, 1, 2, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, int64(4), w)

	w, err = g.WalkWeight([]int{0, 0})
	require.NoError(t, err)
	assert.Zero(t, w)

	_, err = g.WalkWeight([]int{0, 2})
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestClone_Independent(t *testing.T) {
	g := square(t)
	c := g.Clone()
	require.NoError(t, c.AddEdge(0, 2, 9))
	assert.False(t, g.HasEdge(0, 2))
	assert.Equal(t, 5, c.EdgeCount())
	assert.Equal(t, g.Vertices(), c.Vertices())
}

func TestConcurrentReadsAndWrites(t *testing.T) {
	g := core.NewGraph()
	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(2)
		go func(v int) {
			defer wg.Done()
			_ = g.AddEdge(0, v, int64(v))
		}(i)
		go func() {
			defer wg.Done()
			_ = g.Vertices()
			_, _ = g.Neighbors(0)
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, g.EdgeCount())
	d, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 50, d)
}
