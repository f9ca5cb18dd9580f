// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roads builds
//
//	0 -1- 1 -1- 2 -2- 3     4 (isolated)
//	 \__________/
//	      5
func roads(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithVertices(5))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(0, 2, 5))
	require.NoError(t, g.AddEdge(2, 3, 2))

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_NoSource(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(core.NewGraph())
	require.ErrorIs(t, err, dijkstra.ErrNoSource)
}

func TestDijkstra_NilGraph(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source(0))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(core.NewGraph(), dijkstra.Source(7))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_NegativeWeight(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, -3))
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestWithMaxDistance_PanicsOnNegative(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() { dijkstra.WithMaxDistance(-1) })
	assert.NotPanics(t, func() { dijkstra.WithMaxDistance(0) })
}

// ------------------------------------------------------------------------
// 2. Distances and predecessors
// ------------------------------------------------------------------------

func TestDijkstra_Distances(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(roads(t), dijkstra.Source(0))
	require.NoError(t, err)
	assert.Nil(t, prev)
	assert.Equal(t, map[int]int64{0: 0, 1: 1, 2: 2, 3: 4, 4: dijkstra.Unreachable}, dist)
}

func TestDijkstra_Predecessors(t *testing.T) {
	_, prev, err := dijkstra.Dijkstra(roads(t), dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, map[int]int{0: -1, 1: 0, 2: 1, 3: 2, 4: -1}, prev)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	dist, _, err := dijkstra.Dijkstra(roads(t), dijkstra.Source(0), dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, int64(2), dist[2])
	assert.Equal(t, dijkstra.Unreachable, dist[3])
}

func TestDijkstra_TieBreakByID(t *testing.T) {
	// square 0-1-2-3-0: both 0→1→2 and 0→3→2 cost 2; the lower id wins.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(3, 0, 1))

	_, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, 1, prev[2])
}
