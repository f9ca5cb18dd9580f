// SPDX-License-Identifier: MIT

package metrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/lvroute/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample returns the counter value, or histogram sample count, of the series
// name{labels}.
func sample(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	series:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue series
				}
			}
			if h := m.GetHistogram(); h != nil {
				return float64(h.GetSampleCount())
			}
			return m.GetCounter().GetValue()
		}
	}

	return 0
}

func TestObserveSolve(t *testing.T) {
	m := metrics.New()
	m.ObserveSolve("pickup", metrics.OutcomeFeasible, 3*time.Millisecond, 120, 0, 0)
	m.ObserveSolve("pickup", metrics.OutcomeInfeasible, time.Millisecond, 80, 2, 1)
	m.ObserveSolve("tsp", metrics.OutcomeError, time.Millisecond, 0, 5, 5)
	reg := m.Registry()

	assert.Equal(t, 1.0, sample(t, reg, "lvroute_solves_total", map[string]string{"mode": "pickup", "outcome": metrics.OutcomeFeasible}))
	assert.Equal(t, 1.0, sample(t, reg, "lvroute_solves_total", map[string]string{"mode": "tsp", "outcome": metrics.OutcomeError}))
	assert.Equal(t, 2.0, sample(t, reg, "lvroute_unassigned_friends_total", nil))
	assert.Equal(t, 1.0, sample(t, reg, "lvroute_penalty_fallbacks_total", nil))
	assert.Equal(t, 2.0, sample(t, reg, "lvroute_route_driving_cost", map[string]string{"mode": "pickup"}))
	assert.Equal(t, 1.0, sample(t, reg, "lvroute_solve_duration_seconds", map[string]string{"mode": "tsp"}))
}

func TestRegistriesAreIndependent(t *testing.T) {
	a, b := metrics.New(), metrics.New()
	a.UnassignedFriends.Add(3)
	assert.Equal(t, 3.0, sample(t, a.Registry(), "lvroute_unassigned_friends_total", nil))
	assert.Zero(t, sample(t, b.Registry(), "lvroute_unassigned_friends_total", nil))
}

func TestWriteTextfile(t *testing.T) {
	m := metrics.New()
	m.ObserveSolve("subset", metrics.OutcomeFeasible, time.Millisecond, 42, 0, 0)

	path := filepath.Join(t.TempDir(), "lvroute.prom")
	require.NoError(t, m.WriteTextfile(path))
	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), `lvroute_solves_total{mode="subset",outcome="feasible"} 1`)
	assert.Contains(t, string(body), "lvroute_route_driving_cost_bucket")
}
