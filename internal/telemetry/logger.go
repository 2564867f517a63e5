package telemetry

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns logger unchanged if non-nil, else a no-op logger.
// Mirrors the flux executor's NewExecutor(logger *zap.Logger) fallback.
func NewLogger(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// NewRunID returns a fresh correlation ID for one orchestrator run
// (one DeleteNode or SimulateAreaPerturbation call), threaded through
// every log line and metric sample that run produces.
func NewRunID() string {
	return uuid.New().String()
}

// NewLoggerFromLevel builds a production zap.Logger at the given level
// ("debug", "info", "warn", "error"). An empty level defaults to info; an
// unrecognized level is an error.
func NewLoggerFromLevel(level string) (*zap.Logger, error) {
	var zl zapcore.Level
	if level == "" {
		zl = zapcore.InfoLevel
	} else if err := zl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("telemetry: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zl)
	return cfg.Build()
}

// WithRun returns a child logger carrying run and operation as fields,
// so every subsequent log line from this run can be filtered by either.
func WithRun(logger *zap.Logger, runID, operation string) *zap.Logger {
	return NewLogger(logger).With(
		zap.String("run_id", runID),
		zap.String("operation", operation),
	)
}
