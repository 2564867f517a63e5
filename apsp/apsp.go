package apsp

import (
	"runtime"

	"github.com/latticekit/plantgraph/core"
)

// denseThreshold is the node-count split point above which the parallel
// back-ends take over.
const denseThreshold = 10000

// densityThreshold is the edge-density split point above which the dense
// Floyd–Warshall back-end is preferred over sparse Dijkstra.
const densityThreshold = 1e-6

// Options configures ComputeShortestPaths. The zero value selects
// runtime.NumCPU() workers and the package defaults for both thresholds.
type Options struct {
	// Workers overrides the worker count; 0 means runtime.NumCPU().
	Workers int
	// NodeCountThreshold overrides denseThreshold; 0 means the default.
	NodeCountThreshold int
	// DensityThreshold overrides densityThreshold; 0 means the default.
	DensityThreshold float64
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}

	return runtime.NumCPU()
}

func (o Options) nodeCountThreshold() int {
	if o.NodeCountThreshold > 0 {
		return o.NodeCountThreshold
	}

	return denseThreshold
}

func (o Options) densityThreshold() float64 {
	if o.DensityThreshold > 0 {
		return o.DensityThreshold
	}

	return densityThreshold
}

// density computes |E| / (|V|*(|V|-1)), the measure the back-end selection
// keys on. A graph with fewer than 2 nodes has density 0 (no pairs).
func density(nodeCount, edgeCount int) float64 {
	if nodeCount < 2 {
		return 0
	}

	return float64(edgeCount) / (float64(nodeCount) * float64(nodeCount-1))
}

// ComputeShortestPaths picks a back-end by node count and edge density and
// returns the resulting all-pairs shortest paths, lengths, and per-node
// efficiency.
func ComputeShortestPaths(g *core.Graph, opts Options) (*Result, error) {
	n := g.NodeCount()
	e := g.EdgeCount()
	d := density(n, e)
	w := opts.workers()
	parallel := n > opts.nodeCountThreshold()
	dense := d > opts.densityThreshold()

	switch {
	case parallel && !dense:
		return dijkstraParallel(g, w)
	case parallel && dense:
		return floydWarshallParallel(g, w)
	case !parallel && !dense:
		return dijkstraSerial(g)
	default:
		return floydWarshallSerial(g)
	}
}
