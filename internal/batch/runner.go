// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvroute/instance"
	"github.com/katalvlaran/lvroute/internal/config"
	"github.com/katalvlaran/lvroute/internal/metrics"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog"
)

// Run is the result of one batch.
type Run struct {
	RunID   string   `yaml:"run_id"`
	Reports []Report `yaml:"reports"`
}

// Failed counts reports that carry an error.
func (r Run) Failed() int {
	n := 0
	for _, rep := range r.Reports {
		if rep.Error != "" {
			n++
		}
	}

	return n
}

// Runner solves instance files concurrently on a bounded goroutine pool.
// Each solve stays single-threaded; the pool only overlaps independent files.
type Runner struct {
	cfg     config.Config
	log     zerolog.Logger
	metrics *metrics.Metrics
}

// NewRunner returns a Runner. m may be nil to skip metrics.
func NewRunner(cfg config.Config, logger zerolog.Logger, m *metrics.Metrics) *Runner {
	return &Runner{cfg: cfg, log: logger, metrics: m}
}

// Run solves every file in paths with at most cfg.Batch.Workers in flight.
// A file that fails to load or solve yields a Report with Error set; it
// does not stop the batch. Reports are sorted by path. When ctx is
// cancelled, files not yet started are reported with the context error
// and Run returns it.
func (r *Runner) Run(ctx context.Context, paths []string) (Run, error) {
	run := Run{RunID: uuid.NewString(), Reports: make([]Report, len(paths))}
	logger := r.log.With().Str("run_id", run.RunID).Logger()

	workers := r.cfg.Batch.Workers
	if workers < 1 {
		workers = 1
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return Run{}, fmt.Errorf("batch: worker pool: %w", err)
	}
	defer pool.Release()

	logger.Info().Int("files", len(paths)).Int("workers", workers).Str("mode", r.cfg.Solver.Mode).Msg("batch started")

	var wg sync.WaitGroup
	for i, path := range paths {
		i, path := i, path
		wg.Add(1)
		err = pool.Submit(func() {
			defer wg.Done()
			run.Reports[i] = r.solveFile(ctx, logger, path)
		})
		if err != nil {
			wg.Done()
			run.Reports[i] = Report{Path: path, Mode: r.cfg.Solver.Mode, Error: err.Error()}
		}
	}
	wg.Wait()

	for i := range run.Reports {
		run.Reports[i].RunID = run.RunID
	}
	sort.SliceStable(run.Reports, func(a, b int) bool { return run.Reports[a].Path < run.Reports[b].Path })

	if r.metrics != nil && r.cfg.Batch.MetricsFile != "" {
		if err = r.metrics.WriteTextfile(r.cfg.Batch.MetricsFile); err != nil {
			logger.Error().Err(err).Msg("metrics export failed")
		}
	}
	logger.Info().Int("files", len(paths)).Int("failed", run.Failed()).Msg("batch finished")

	return run, ctx.Err()
}

// solveFile loads and solves one instance, recording metrics.
func (r *Runner) solveFile(ctx context.Context, logger zerolog.Logger, path string) Report {
	mode := r.cfg.Solver.Mode
	if err := ctx.Err(); err != nil {
		return Report{Path: path, Mode: mode, Error: err.Error()}
	}
	fileLog := logger.With().Str("path", path).Logger()

	start := time.Now()
	rep, err := r.solvePath(path, fileLog)
	took := time.Since(start)

	if err != nil {
		fileLog.Error().Err(err).Msg("solve failed")
		r.observe(mode, metrics.OutcomeError, took, Report{})
		return Report{Path: path, Mode: mode, Error: err.Error()}
	}
	rep.Path = path

	outcome := metrics.OutcomeFeasible
	if !rep.Feasible {
		outcome = metrics.OutcomeInfeasible
	}
	r.observe(mode, outcome, took, rep)
	fileLog.Info().
		Dur("took", took).
		Int64("driving", rep.DrivingCost).
		Float64("cost", rep.Cost).
		Bool("feasible", rep.Feasible).
		Msg("solved")

	return rep
}

func (r *Runner) solvePath(path string, logger zerolog.Logger) (Report, error) {
	inst, err := instance.ReadFile(path)
	if err != nil {
		return Report{}, err
	}

	return Solve(inst, r.cfg.Solver, logger)
}

func (r *Runner) observe(mode, outcome string, took time.Duration, rep Report) {
	if r.metrics == nil {
		return
	}
	r.metrics.ObserveSolve(mode, outcome, took, rep.DrivingCost, len(rep.Unassigned), rep.PenaltyHits)
}
