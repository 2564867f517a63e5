// Package orchestrator drives the two perturbation workflows: DeleteNode
// (single-element failure) and SimulateAreaPerturbation (damage to one or
// more spatial areas). Both produce a before/after Snapshot plus the
// node-characterization and service-paths tables internal/report writes
// to CSV.
package orchestrator
