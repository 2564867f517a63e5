package apsp

import "errors"

// ErrNegativeWeight is returned when an edge carries a negative service
// weight; shortest-path algorithms here assume non-negative weights.
var ErrNegativeWeight = errors.New("apsp: negative edge weight")

// Result is the full all-pairs output: per-source shortest paths, their
// lengths, and the derived per-source efficiency list, keyed by source
// Mark then target Mark (paths/lengths) or carried as an ordered slice
// (efficiency).
type Result struct {
	ShortestPath map[string]map[string][]string
	ShPathLength map[string]map[string]float64
	Efficiency   map[string][]EfficiencyEntry
	Backend      Backend
}

// EfficiencyEntry has the same fields as core.EfficiencyEntry; Result
// carries its own type, and callers copy these into core.Node records.
type EfficiencyEntry struct {
	Target string
	Value  float64
}

// Backend names which of the four algorithm variants produced a Result.
type Backend string

// The four backend names surfaced for diagnostics/logging.
const (
	BackendFloydWarshallSerial   Backend = "floyd_warshall_serial"
	BackendFloydWarshallParallel Backend = "floyd_warshall_parallel"
	BackendDijkstraSerial        Backend = "dijkstra_serial"
	BackendDijkstraParallel      Backend = "dijkstra_parallel"
)

// deriveEfficiency turns a path length into its efficiency: 1/length, or
// 0 when the length is not positive (a node's zero-length path to itself).
// Unreachable pairs are never passed here.
func deriveEfficiency(length float64) float64 {
	if length > 0 {
		return 1 / length
	}

	return 0
}
