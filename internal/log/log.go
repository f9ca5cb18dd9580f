// SPDX-License-Identifier: MIT

// Package log builds the zerolog logger used by the lvroute CLI.
package log

import (
	"io"

	"github.com/katalvlaran/lvroute/internal/config"
	"github.com/rs/zerolog"
)

// Logger is the logger type passed around the CLI.
type Logger = zerolog.Logger

// NewLogger writes to w, as console text when cfg.Pretty is set and JSON
// otherwise. An unknown level falls back to info.
func NewLogger(cfg config.Logging, w io.Writer) Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w}
	}
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
