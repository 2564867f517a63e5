package telemetry_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/latticekit/plantgraph/internal/telemetry"
)

func TestNewLoggerFallsBackToNop(t *testing.T) {
	require.NotNil(t, telemetry.NewLogger(nil))
	require.Equal(t, zap.NewNop().Core(), telemetry.NewLogger(nil).Core())

	logger := zap.NewExample()
	require.Same(t, logger, telemetry.NewLogger(logger))
}

func TestNewRunIDIsAValidUUID(t *testing.T) {
	id := telemetry.NewRunID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
}

func TestWithRunNilLoggerReturnsLogger(t *testing.T) {
	logger := telemetry.WithRun(nil, "run-1", "delete_node")
	require.NotNil(t, logger)
}

func TestMetricsObserveRunIncrementsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := telemetry.NewMetrics(reg)

	m.ObserveRun("delete_node", time.Now(), nil, 3, 1)

	families, err := reg.Gather()
	require.NoError(t, err)

	var sawRuns, sawBroken bool
	for _, fam := range families {
		switch fam.GetName() {
		case "plantgraph_runs_total":
			sawRuns = true
			require.InDelta(t, 1, totalCounterValue(fam), 1e-9)
		case "plantgraph_nodes_broken_total":
			sawBroken = true
			require.InDelta(t, 3, totalCounterValue(fam), 1e-9)
		}
	}
	require.True(t, sawRuns)
	require.True(t, sawBroken)
}

func TestNewLoggerFromLevelDefaultsToInfo(t *testing.T) {
	logger, err := telemetry.NewLoggerFromLevel("")
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func TestNewLoggerFromLevelRejectsUnknown(t *testing.T) {
	_, err := telemetry.NewLoggerFromLevel("deafening")
	require.Error(t, err)
}

func TestMetricsObserveRunNilReceiverIsNoop(t *testing.T) {
	var m *telemetry.Metrics
	require.NotPanics(t, func() {
		m.ObserveRun("delete_node", time.Now(), nil, 0, 0)
	})
}

func totalCounterValue(fam *dto.MetricFamily) float64 {
	var sum float64
	for _, metric := range fam.GetMetric() {
		sum += metric.GetCounter().GetValue()
	}
	return sum
}
