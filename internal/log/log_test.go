// SPDX-License-Identifier: MIT

package log_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/lvroute/internal/config"
	"github.com/katalvlaran/lvroute/internal/log"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	l := log.NewLogger(config.Logging{Level: "warn"}, &buf)
	assert.Equal(t, zerolog.WarnLevel, l.GetLevel())

	l.Info().Msg("hidden")
	l.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)
}

func TestNewLogger_FallbackInfo(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, zerolog.InfoLevel, log.NewLogger(config.Logging{Level: "loud"}, &buf).GetLevel())
	assert.Equal(t, zerolog.InfoLevel, log.NewLogger(config.Logging{}, &buf).GetLevel())
}

func TestNewLogger_Pretty(t *testing.T) {
	var buf bytes.Buffer
	l := log.NewLogger(config.Logging{Level: "info", Pretty: true}, &buf)
	l.Info().Str("mode", "pickup").Msg("solved")
	assert.Contains(t, buf.String(), "solved")
	assert.NotContains(t, buf.String(), `"message"`)
}
