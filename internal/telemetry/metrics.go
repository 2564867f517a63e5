package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the counters and histograms recorded for perturbation runs
// (DeleteNode or SimulateAreaPerturbation). NewMetrics registers its
// collectors with the given Registerer, so calling it twice against the
// same Registerer panics on duplicate registration; callers normally
// construct one Metrics per registry and share it across runs.
type Metrics struct {
	runsTotal      *prometheus.CounterVec
	runDuration    *prometheus.HistogramVec
	nodesBroken    *prometheus.CounterVec
	valvesReopened *prometheus.CounterVec
}

// NewMetrics registers plantgraph's metrics against reg and returns the
// handle used to record them. Pass prometheus.DefaultRegisterer for the
// global registry, or a fresh prometheus.NewRegistry() in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		runsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "plantgraph",
			Name:      "runs_total",
			Help:      "Total perturbation runs, labeled by operation and outcome.",
		}, []string{"operation", "outcome"}),
		runDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "plantgraph",
			Name:      "run_duration_seconds",
			Help:      "Perturbation run wall-clock duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		nodesBroken: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "plantgraph",
			Name:      "nodes_broken_total",
			Help:      "Nodes marked broken by cascade propagation, labeled by operation.",
		}, []string{"operation"}),
		valvesReopened: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "plantgraph",
			Name:      "valves_reopened_total",
			Help:      "Valves reopened by post-cascade reconciliation, labeled by operation.",
		}, []string{"operation"}),
	}
}

// ObserveRun records the outcome, duration, broken-node count, and
// reopened-valve count of one completed perturbation run.
func (m *Metrics) ObserveRun(operation string, start time.Time, err error, broken, reopened int) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.runsTotal.WithLabelValues(operation, outcome).Inc()
	m.runDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	m.nodesBroken.WithLabelValues(operation).Add(float64(broken))
	m.valvesReopened.WithLabelValues(operation).Add(float64(reopened))
}
