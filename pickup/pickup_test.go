// SPDX-License-Identifier: MIT

package pickup_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/pickup"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square builds the unit 4-cycle 0-1-2-3-0.
func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(3, 0, 1))

	return g
}

// street builds the unit path 0-1-2-...-(n-1).
func street(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for v := 0; v+1 < n; v++ {
		require.NoError(t, g.AddEdge(v, v+1, 1))
	}

	return g
}

// town is a small non-complete road network.
func town(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(0, 3, 3))
	require.NoError(t, g.AddEdge(1, 4, 1))
	require.NoError(t, g.AddEdge(2, 5, 3))
	require.NoError(t, g.AddEdge(3, 4, 4))
	require.NoError(t, g.AddEdge(4, 5, 1))
	require.NoError(t, g.AddEdge(5, 6, 2))
	require.NoError(t, g.AddEdge(3, 7, 5))

	return g
}

// ------------------------------------------------------------------------
// 1. Degenerate friend sets
// ------------------------------------------------------------------------

func TestSolve_NoFriends(t *testing.T) {
	res, err := pickup.Solve(square(t), nil, 1.0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, res.Walk)
	assert.Equal(t, []int{0, 0}, res.Compact)
	assert.Empty(t, res.Assignment)
	assert.Empty(t, res.Unassigned)
	assert.True(t, res.Feasible())
	assert.Zero(t, res.Cost)
	assert.Equal(t, 1, res.Rounds)
}

func TestSolve_FriendAtDepot(t *testing.T) {
	res, err := pickup.Solve(square(t), []int{0}, 1.0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, res.Walk)
	assert.Equal(t, map[int][]int{0: {0}}, res.Assignment)
	assert.Zero(t, res.WalkingCost)
	assert.True(t, res.Feasible())
}

// ------------------------------------------------------------------------
// 2. Concrete scenarios
// ------------------------------------------------------------------------

func TestSolve_SquareOppositeFriend(t *testing.T) {
	res, err := pickup.Solve(square(t), []int{2}, 1.0)
	require.NoError(t, err)
	require.True(t, res.Feasible())
	assert.Equal(t, []int{0, 1, 0}, res.Walk)
	assert.Equal(t, map[int][]int{1: {2}}, res.Assignment)
	assert.Equal(t, int64(2), res.DrivingCost)
	assert.Equal(t, int64(1), res.WalkingCost)
	assert.Equal(t, 3.0, res.Cost)
	assert.LessOrEqual(t, res.Cost, 4.0)
}

func TestSolve_StreetTwoFriends(t *testing.T) {
	res, err := pickup.Solve(street(t, 7), []int{6, 3}, 1.0)
	require.NoError(t, err)
	require.True(t, res.Feasible())
	assert.Equal(t, 2, res.Rounds)
	assert.Equal(t, []int{0, 5, 2, 0}, res.Compact)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 4, 3, 2, 1, 0}, res.Walk)
	assert.Equal(t, map[int][]int{3: {3}, 5: {6}}, res.Assignment)
	assert.Equal(t, int64(10), res.DrivingCost)
	assert.Equal(t, int64(1), res.WalkingCost)
	assert.Equal(t, 11.0, res.Cost)
}

func TestSolve_RoundBudgetLeavesFriendUnassigned(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	res, err := pickup.Solve(street(t, 7), []int{3, 6}, 1.0,
		pickup.WithMaxRounds(1), pickup.WithLogger(logger))
	require.NoError(t, err)

	assert.False(t, res.Feasible())
	assert.Equal(t, 1, res.Rounds)
	assert.Equal(t, []int{0, 2, 0}, res.Compact)
	assert.Equal(t, []int{0, 1, 2, 1, 0}, res.Walk)
	assert.Equal(t, map[int][]int{2: {3}}, res.Assignment)
	assert.Equal(t, []int{6}, res.Unassigned)
	assert.Equal(t, 1, res.Infeasibility)
	assert.Equal(t, int64(1+pickup.StrandedFactor*6), res.WalkingCost)

	out := buf.String()
	assert.Contains(t, out, "move accepted")
	assert.Contains(t, out, "friend has no pickup vertex on the route")
}

func TestSolve_CustomDepot(t *testing.T) {
	res, err := pickup.Solve(square(t), []int{1}, 1.0, pickup.WithDepot(3))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 0, 3}, res.Walk)
	assert.Equal(t, map[int][]int{0: {1}}, res.Assignment)
}

// ------------------------------------------------------------------------
// 3. Invariants on a larger network
// ------------------------------------------------------------------------

func TestSolve_TownInvariants(t *testing.T) {
	g := town(t)
	homes := []int{7, 2, 6, 4}
	alphas := []float64{0, 0.3, 1, 5}
	walking := make([]int64, 0, len(alphas))
	for _, alpha := range alphas {
		res, err := pickup.Solve(g, homes, alpha)
		require.NoError(t, err, "alpha=%v", alpha)
		require.True(t, res.Feasible(), "alpha=%v", alpha)
		walking = append(walking, res.WalkingCost)

		require.GreaterOrEqual(t, len(res.Walk), 2)
		assert.Equal(t, 0, res.Walk[0])
		assert.Equal(t, 0, res.Walk[len(res.Walk)-1])
		assert.Zero(t, res.PenaltyHits)

		// driving cost reported by the search equals raw edge weights
		raw, err := g.WalkWeight(res.Walk)
		require.NoError(t, err)
		assert.Equal(t, res.DrivingCost, raw, "alpha=%v", alpha)

		// every friend exactly once, at home or a neighbor on the walk
		seen := map[int]int{}
		for loc, friends := range res.Assignment {
			assert.Contains(t, res.Walk, loc)
			for _, h := range friends {
				seen[h]++
				assert.True(t, loc == h || g.HasEdge(loc, h), "home %d at %d", h, loc)
			}
		}
		for _, h := range res.Unassigned {
			seen[h]++
		}
		for _, h := range homes {
			assert.Equal(t, 1, seen[h], "home %d", h)
		}
	}

	// dearer walking never makes friends walk further here, and at α=5 the
	// route detours through home 2
	for i := 1; i < len(walking); i++ {
		assert.LessOrEqual(t, walking[i], walking[i-1], "alpha %v -> %v", alphas[i-1], alphas[i])
	}
	assert.Less(t, walking[len(walking)-1], walking[0])
}

// ------------------------------------------------------------------------
// 4. Validation
// ------------------------------------------------------------------------

func TestSolve_Errors(t *testing.T) {
	_, err := pickup.Solve(nil, nil, 1)
	require.ErrorIs(t, err, pickup.ErrNilGraph)

	_, err = pickup.Solve(square(t), nil, -0.5)
	require.ErrorIs(t, err, pickup.ErrBadAlpha)
	_, err = pickup.Solve(square(t), nil, math.NaN())
	require.ErrorIs(t, err, pickup.ErrBadAlpha)

	_, err = pickup.Solve(square(t), []int{9}, 1)
	require.ErrorIs(t, err, pickup.ErrUnknownVertex)
	_, err = pickup.Solve(square(t), nil, 1, pickup.WithDepot(9))
	require.ErrorIs(t, err, pickup.ErrUnknownVertex)

	neg := core.NewGraph()
	require.NoError(t, neg.AddEdge(0, 1, -1))
	_, err = pickup.Solve(neg, []int{1}, 1)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestSolve_DisconnectedHomeFailsExpansion(t *testing.T) {
	g := street(t, 2)
	require.NoError(t, g.AddVertex(2))
	_, err := pickup.Solve(g, []int{2}, 1)
	require.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

func TestWithMaxRounds_PanicsOnNegative(t *testing.T) {
	// the option itself panics, before any solve runs
	assert.PanicsWithValue(t, pickup.ErrBadMaxRounds.Error(), func() { pickup.WithMaxRounds(-1) })
	assert.NotPanics(t, func() { pickup.WithMaxRounds(0) })
}
