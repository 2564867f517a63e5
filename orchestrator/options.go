package orchestrator

import (
	"go.uber.org/zap"

	"github.com/latticekit/plantgraph/apsp"
	"github.com/latticekit/plantgraph/internal/telemetry"
)

// Option configures the telemetry and APSP tuning a DeleteNode or
// SimulateAreaPerturbation call uses. Without options a run uses a
// zap.NewNop logger, nil metrics and apsp.Options{}, so passing no options
// is normal.
type Option func(*runConfig)

type runConfig struct {
	logger  *zap.Logger
	metrics *telemetry.Metrics
	apsp    apsp.Options
}

func newRunConfig(opts []Option) *runConfig {
	cfg := &runConfig{logger: telemetry.NewLogger(nil)}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLogger attaches a *zap.Logger to the run. A nil logger is treated
// the same as omitting this option.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *runConfig) {
		cfg.logger = telemetry.NewLogger(logger)
	}
}

// WithMetrics attaches a *telemetry.Metrics to the run so its outcome,
// duration, and cascade size are recorded on completion.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(cfg *runConfig) {
		cfg.metrics = m
	}
}

// WithAPSPOptions overrides the apsp.Options used for both the before and
// after shortest-path computations.
func WithAPSPOptions(o apsp.Options) Option {
	return func(cfg *runConfig) {
		cfg.apsp = o
	}
}
