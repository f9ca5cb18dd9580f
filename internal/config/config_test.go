// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvroute/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, config.ModePickup, c.Solver.Mode)
	assert.Equal(t, 4, c.Batch.Workers)
	require.NoError(t, c.Validate())
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "lvroute.yaml", `
logging:
  level: debug
  pretty: true
solver:
  mode: subset
  alpha: 0.5
batch:
  workers: 2
  metrics_file: /tmp/lvroute.prom
`)
	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.Logging.Level)
	assert.True(t, c.Logging.Pretty)
	assert.Equal(t, config.ModeSubset, c.Solver.Mode)
	assert.Equal(t, 0.5, c.Solver.Alpha)
	assert.Equal(t, 2, c.Batch.Workers)
	assert.Equal(t, "/tmp/lvroute.prom", c.Batch.MetricsFile)
	// untouched keys keep defaults
	assert.Equal(t, 20, c.Generate.Nodes)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "lvroute.toml", `
[solver]
mode = "tsp"
max_rounds = 7

[generate]
nodes = 40
friends = 20
seed = 9
`)
	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.ModeTSP, c.Solver.Mode)
	assert.Equal(t, 7, c.Solver.MaxRounds)
	assert.Equal(t, 40, c.Generate.Nodes)
	assert.Equal(t, 20, c.Generate.Friends)
	assert.Equal(t, int64(9), c.Generate.Seed)
	assert.Equal(t, "info", c.Logging.Level)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(writeFile(t, "lvroute.json", "{}"))
	require.ErrorIs(t, err, config.ErrUnsupportedFormat)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = config.Load(writeFile(t, "bad.yaml", "solver: [oops"))
	require.Error(t, err)

	_, err = config.Load(writeFile(t, "mode.yaml", "solver:\n  mode: greedy\n"))
	require.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(writeFile(t, "workers.toml", "[batch]\nworkers = 0\n"))
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestValidate(t *testing.T) {
	c := config.Default()
	c.Generate.Friends = c.Generate.Nodes
	require.ErrorIs(t, c.Validate(), config.ErrInvalid)

	c = config.Default()
	c.Solver.MaxRounds = -1
	require.ErrorIs(t, c.Validate(), config.ErrInvalid)
}
