// SPDX-License-Identifier: MIT

package tsp_test

import (
	"testing"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/tsp"
	"github.com/stretchr/testify/require"
)

// line builds the path 0-1-2-3 with unit weights; it is not complete, so
// SolveGraph must rely on shortest-path distances.
func line(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))

	return g
}

func TestSolveGraph_Line(t *testing.T) {
	res, err := tsp.SolveGraph(line(t), 0)
	require.NoError(t, err)
	require.Equal(t, 6.0, res.Cost)
	require.Len(t, res.Tour, 5)
	require.Equal(t, 0, res.Tour[0])
	require.Equal(t, 0, res.Tour[4])
	require.ElementsMatch(t, []int{1, 2, 3}, res.Tour[1:4])
}

func TestSolveGraph_StartRelabeled(t *testing.T) {
	res, err := tsp.SolveGraph(line(t), 2)
	require.NoError(t, err)
	require.Equal(t, 2, res.Tour[0])
	require.Equal(t, 2, res.Tour[len(res.Tour)-1])
	require.ElementsMatch(t, []int{0, 1, 3}, res.Tour[1:4])
	require.Equal(t, 6.0, res.Cost)
}

func TestSolveGraph_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(7))
	res, err := tsp.SolveGraph(g, 7)
	require.NoError(t, err)
	require.Equal(t, []int{7, 7}, res.Tour)
}

func TestSolveGraph_Errors(t *testing.T) {
	_, err := tsp.SolveGraph(nil, 0)
	require.ErrorIs(t, err, tsp.ErrNilGraph)

	_, err = tsp.SolveGraph(line(t), 9)
	require.ErrorIs(t, err, tsp.ErrStartNotFound)

	g := line(t)
	require.NoError(t, g.AddVertex(4)) // isolated
	_, err = tsp.SolveGraph(g, 0)
	require.ErrorIs(t, err, tsp.ErrIncompleteGraph)
}

func TestSolveGraph_TooLarge(t *testing.T) {
	g := core.NewGraph()
	for v := 1; v <= tsp.MaxExactVertices; v++ {
		require.NoError(t, g.AddEdge(v-1, v, 1))
	}
	_, err := tsp.SolveGraph(g, 0)
	require.ErrorIs(t, err, tsp.ErrTooLarge)

	_, _, err = tsp.SolveGraphWalk(g, 0)
	require.ErrorIs(t, err, tsp.ErrTooLarge)
}

func TestSolveGraphWalk_Line(t *testing.T) {
	g := line(t)
	res, walk, err := tsp.SolveGraphWalk(g, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 3, 2, 1, 0}, res.Tour)
	require.Equal(t, []int{0, 1, 2, 3, 2, 1, 0}, walk)

	raw, err := g.WalkWeight(walk)
	require.NoError(t, err)
	require.Equal(t, int64(res.Cost), raw)
}
