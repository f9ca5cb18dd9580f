// SPDX-License-Identifier: MIT

// Package config loads lvroute CLI settings from YAML or TOML files.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Solver modes.
const (
	ModePickup = "pickup"
	ModeTSP    = "tsp"
	ModeSubset = "subset"
)

var (
	// ErrUnsupportedFormat indicates a config file extension other than
	// .yaml, .yml or .toml.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrInvalid indicates a setting outside its allowed range.
	ErrInvalid = errors.New("config: invalid setting")
)

// Logging controls the CLI logger.
type Logging struct {
	Level  string `yaml:"level" toml:"level"`
	Pretty bool   `yaml:"pretty" toml:"pretty"`
}

// Solver selects and tunes the solver. Alpha < 0 means "use the
// instance's α".
type Solver struct {
	Mode      string  `yaml:"mode" toml:"mode"`
	Alpha     float64 `yaml:"alpha" toml:"alpha"`
	MaxRounds int     `yaml:"max_rounds" toml:"max_rounds"`
	Depot     int     `yaml:"depot" toml:"depot"`
}

// Batch controls multi-instance runs.
type Batch struct {
	Workers     int    `yaml:"workers" toml:"workers"`
	MetricsFile string `yaml:"metrics_file" toml:"metrics_file"`
}

// Generate holds defaults for the generate command.
type Generate struct {
	Nodes    int     `yaml:"nodes" toml:"nodes"`
	Friends  int     `yaml:"friends" toml:"friends"`
	Alpha    float64 `yaml:"alpha" toml:"alpha"`
	Seed     int64   `yaml:"seed" toml:"seed"`
	MaxCoord int     `yaml:"max_coord" toml:"max_coord"`
}

// Config is the full CLI configuration.
type Config struct {
	Logging  Logging  `yaml:"logging" toml:"logging"`
	Solver   Solver   `yaml:"solver" toml:"solver"`
	Batch    Batch    `yaml:"batch" toml:"batch"`
	Generate Generate `yaml:"generate" toml:"generate"`
}

// Default returns the built-in configuration.
func Default() Config {
	var c Config
	c.Logging.Level = "info"
	c.Logging.Pretty = false
	c.Solver.Mode = ModePickup
	c.Solver.Alpha = -1
	c.Solver.MaxRounds = 0
	c.Solver.Depot = 0
	c.Batch.Workers = 4
	c.Generate.Nodes = 20
	c.Generate.Friends = 10
	c.Generate.Alpha = 1.0
	c.Generate.Seed = 42
	c.Generate.MaxCoord = 1000

	return c
}

// Load returns Default overlaid with the file at path. An empty path
// returns the defaults. Keys missing from the file keep their defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = yaml.Unmarshal(b, &c); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.DecodeFile(path, &c); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate rejects settings no command can run with.
func (c Config) Validate() error {
	switch c.Solver.Mode {
	case ModePickup, ModeTSP, ModeSubset:
	default:
		return fmt.Errorf("%w: solver.mode %q", ErrInvalid, c.Solver.Mode)
	}
	if math.IsNaN(c.Solver.Alpha) || math.IsInf(c.Solver.Alpha, 0) {
		return fmt.Errorf("%w: solver.alpha %v", ErrInvalid, c.Solver.Alpha)
	}
	if c.Solver.MaxRounds < 0 {
		return fmt.Errorf("%w: solver.max_rounds %d", ErrInvalid, c.Solver.MaxRounds)
	}
	if c.Solver.Depot < 0 {
		return fmt.Errorf("%w: solver.depot %d", ErrInvalid, c.Solver.Depot)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("%w: batch.workers %d", ErrInvalid, c.Batch.Workers)
	}
	if c.Generate.Nodes < 1 || c.Generate.Friends < 0 || c.Generate.Friends >= c.Generate.Nodes {
		return fmt.Errorf("%w: generate nodes=%d friends=%d", ErrInvalid, c.Generate.Nodes, c.Generate.Friends)
	}
	if c.Generate.Alpha < 0 || c.Generate.MaxCoord < 1 {
		return fmt.Errorf("%w: generate alpha=%v max_coord=%d", ErrInvalid, c.Generate.Alpha, c.Generate.MaxCoord)
	}

	return nil
}
