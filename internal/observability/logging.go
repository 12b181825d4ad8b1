// Package observability builds the simulator's zap logger and OpenTelemetry
// tracer. The terminal frontend owns stdout and stderr while it runs, so the
// logger can be pointed at a file instead.
package observability

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cory-johannsen/armory/internal/config"
)

const appName = "armory"

// NewLogger builds the process logger. Every entry carries app=armory.
//
// Precondition: cfg.Level is a zap level name; cfg.Format is "json" or "console".
// Postcondition: Returns a configured zap.Logger or a non-nil error. When
// cfg.File is set all output, including zap's internal errors, goes to that
// file and nothing is written to the terminal.
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
	}

	var zapCfg zap.Config
	switch cfg.Format {
	case "json":
		zapCfg = zap.NewProductionConfig()
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.InitialFields = map[string]any{"app": appName}
	if cfg.File != "" {
		zapCfg.OutputPaths = []string{cfg.File}
		zapCfg.ErrorOutputPaths = []string{cfg.File}
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}
