package app

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"histview/internal/debug"
	"histview/internal/viewport"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, warnings := LoadConfig(env(nil))

	assert.Empty(t, warnings)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.False(t, cfg.JSONLogs)
	assert.Equal(t, debug.DefaultConfig(), cfg.Debug)
	assert.Equal(t, viewport.ZoomAnchored, cfg.ZoomMode)
}

func TestLoadConfigLogLevel(t *testing.T) {
	cfg, _ := LoadConfig(env(map[string]string{"HISTVIEW_LOG_LEVEL": "warn"}))
	assert.Equal(t, zerolog.WarnLevel, cfg.LogLevel)

	cfg, _ = LoadConfig(env(map[string]string{"DEBUG": "1"}))
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)

	cfg, _ = LoadConfig(env(map[string]string{"HISTVIEW_LOG_LEVEL": "error", "DEBUG": "1"}))
	assert.Equal(t, zerolog.ErrorLevel, cfg.LogLevel)

	cfg, warnings := LoadConfig(env(map[string]string{"HISTVIEW_LOG_LEVEL": "loud"}))
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.Len(t, warnings, 1)
}

func TestLoadConfigDebugToggles(t *testing.T) {
	cfg, _ := LoadConfig(env(map[string]string{
		"HISTVIEW_TRACK_TIMING": "false",
		"HISTVIEW_JSON_LOGS":    "true",
	}))
	assert.False(t, cfg.Debug.EnableTimingTracking)
	assert.True(t, cfg.Debug.EnableFileTracking)
	assert.True(t, cfg.JSONLogs)

	cfg, _ = LoadConfig(env(map[string]string{
		"HISTVIEW_PRODUCTION":  "true",
		"HISTVIEW_TRACK_FILES": "true",
	}))
	assert.Equal(t, debug.ProductionConfig(), cfg.Debug)
}

func TestLoadConfigZoomMode(t *testing.T) {
	cfg, warnings := LoadConfig(env(map[string]string{"HISTVIEW_ZOOM_MODE": "Center"}))
	assert.Empty(t, warnings)
	assert.Equal(t, viewport.ZoomCentered, cfg.ZoomMode)

	cfg, warnings = LoadConfig(env(map[string]string{"HISTVIEW_ZOOM_MODE": "spiral"}))
	assert.Len(t, warnings, 1)
	assert.Equal(t, viewport.ZoomAnchored, cfg.ZoomMode)
}
