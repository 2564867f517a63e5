package orchestrator

import (
	"errors"

	"github.com/latticekit/plantgraph/core"
)

// ErrAreaNotFound is returned when SimulateAreaPerturbation is asked to
// damage an area no node in the graph carries: the operator supplied an
// Area not present anywhere in the topology.
var ErrAreaNotFound = errors.New("orchestrator: area not found in graph")

// NodePathSentinel is the literal string every missing-path field carries
// in the service-paths output.
const NodePathSentinel = "NO_PATH"

// ServicePathRow is one (SOURCE, USER) pair row in the service-paths
// table, already formatted for CSV: path-valued and numeric fields are
// strings so the "NO_PATH" sentinel can stand in for any of them.
type ServicePathRow struct {
	From string
	To   string
	Area string
	IDs  string

	FinalSimplePath         string
	FinalShortestPath       string
	FinalShortestPathLength string
	FinalPairEfficiency     string

	OriginalSimplePath         string
	OriginalShortestPath       string
	OriginalShortestPathLength string
	OriginalPairEfficiency     string
}

// NodeRow is one row of the node-characterization table, columns in the
// order the reference reporting tool emits them.
type NodeRow struct {
	Mark                  string
	Description           string
	InitStatus            string
	IntermediateStatus    string
	FinalStatus           string
	MarkStatus            string
	PerturbationResistant string
	Area                  string
	StatusArea            string

	ClosenessCentrality   string
	BetweennessCentrality string
	IndegreeCentrality    string

	OriginalLocalEff  string
	FinalLocalEff     string
	OriginalGlobalEff string // aliases original_nodal_eff, per the source format
	FinalGlobalEff    string // aliases final_nodal_eff, per the source format

	OriginalAvgGlobalEff string
	FinalAvgGlobalEff    string
}

// Result is the output of one perturbation workflow.
type Result struct {
	// Snapshot is the pre-cascade deep copy, with post-cascade attributes
	// merged back onto its surviving nodes.
	Snapshot *core.Graph
	// Broken lists every Mark removed by the cascade, across every root
	// node propagated in this perturbation.
	Broken []string

	ServicePaths []ServicePathRow
	NodeTable    []NodeRow
}
