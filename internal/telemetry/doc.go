// Package telemetry wires structured logging and metrics into the
// orchestrator and cascade packages. Logging follows the zap
// constructor-injection pattern (a *zap.Logger field, defaulting to
// zap.NewNop() when the caller passes nil); metrics follow the
// prometheus/client_golang counter/histogram pattern. Each run is tagged
// with a uuid run ID so its log lines and metric samples can be
// correlated. This replaces the original Python implementation's
// logging.debug(...) calls scattered through rm_nodes/check_after.
package telemetry
