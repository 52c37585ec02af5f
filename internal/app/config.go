package app

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"histview/internal/debug"
	"histview/internal/logger"
	"histview/internal/viewport"
)

// Config is read from the environment at startup.
type Config struct {
	LogLevel zerolog.Level
	JSONLogs bool
	Debug    debug.Config
	ZoomMode viewport.ZoomMode
}

// LoadConfig reads HISTVIEW_* variables through getenv. Unrecognized
// values fall back to defaults and are reported as warnings.
func LoadConfig(getenv func(string) string) (Config, []string) {
	var warnings []string

	cfg := Config{
		LogLevel: determineLogLevel(getenv),
		JSONLogs: isTrue(getenv("HISTVIEW_JSON_LOGS")),
		Debug:    getDebugConfig(getenv),
	}

	if raw := getenv("HISTVIEW_LOG_LEVEL"); raw != "" {
		if _, ok := logger.ParseLevel(raw); !ok {
			warnings = append(warnings, fmt.Sprintf("unknown HISTVIEW_LOG_LEVEL %q, using %s", raw, cfg.LogLevel))
		}
	}

	mode, err := viewport.ParseZoomMode(strings.ToLower(getenv("HISTVIEW_ZOOM_MODE")))
	if err != nil {
		warnings = append(warnings, err.Error())
	}
	cfg.ZoomMode = mode

	return cfg, warnings
}

func determineLogLevel(getenv func(string) string) zerolog.Level {
	if level, ok := logger.ParseLevel(getenv("HISTVIEW_LOG_LEVEL")); ok {
		return level
	}
	if getenv("DEBUG") == "1" {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

func getDebugConfig(getenv func(string) string) debug.Config {
	if isTrue(getenv("HISTVIEW_PRODUCTION")) {
		return debug.ProductionConfig()
	}

	config := debug.DefaultConfig()
	if v := getenv("HISTVIEW_TRACK_TIMING"); v != "" {
		config.EnableTimingTracking = isTrue(v)
	}
	if v := getenv("HISTVIEW_TRACK_FILES"); v != "" {
		config.EnableFileTracking = isTrue(v)
	}
	return config
}

func isTrue(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
