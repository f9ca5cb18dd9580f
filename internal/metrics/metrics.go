// SPDX-License-Identifier: MIT

// Package metrics records solver outcomes in a private Prometheus registry.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Solve outcomes.
const (
	OutcomeFeasible   = "feasible"
	OutcomeInfeasible = "infeasible"
	OutcomeError      = "error"
)

// Metrics holds the lvroute collectors. The zero value is not usable; call New.
type Metrics struct {
	reg *prometheus.Registry

	SolvesTotal       *prometheus.CounterVec
	SolveDuration     *prometheus.HistogramVec
	UnassignedFriends prometheus.Counter
	PenaltyFallbacks  prometheus.Counter
	RouteDrivingCost  *prometheus.HistogramVec
}

// New creates and registers every collector.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		SolvesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "lvroute_solves_total", Help: "Solves by mode and outcome"},
			[]string{"mode", "outcome"},
		),
		SolveDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: "lvroute_solve_duration_seconds", Help: "Wall time per solve", Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10)},
			[]string{"mode"},
		),
		UnassignedFriends: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "lvroute_unassigned_friends_total", Help: "Friends left without a pickup vertex"},
		),
		PenaltyFallbacks: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "lvroute_penalty_fallbacks_total", Help: "Hops charged the unreachable-pair penalty"},
		),
		RouteDrivingCost: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: "lvroute_route_driving_cost", Help: "Driving distance of solved routes", Buckets: prometheus.ExponentialBuckets(100, 2, 12)},
			[]string{"mode"},
		),
	}
	m.reg.MustRegister(m.SolvesTotal, m.SolveDuration, m.UnassignedFriends, m.PenaltyFallbacks, m.RouteDrivingCost)

	return m
}

// Registry exposes the private registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// ObserveSolve records one finished solve.
func (m *Metrics) ObserveSolve(mode, outcome string, took time.Duration, driving int64, unassigned, penaltyHits int) {
	m.SolvesTotal.WithLabelValues(mode, outcome).Inc()
	m.SolveDuration.WithLabelValues(mode).Observe(took.Seconds())
	if outcome == OutcomeError {
		return
	}
	m.RouteDrivingCost.WithLabelValues(mode).Observe(float64(driving))
	m.UnassignedFriends.Add(float64(unassigned))
	m.PenaltyFallbacks.Add(float64(penaltyHits))
}

// WriteTextfile dumps the registry in the Prometheus text format, for the
// node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.reg); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
