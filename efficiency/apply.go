package efficiency

import (
	"github.com/latticekit/plantgraph/apsp"
	"github.com/latticekit/plantgraph/core"
)

// ApplyAPSP copies an apsp.Result onto every node named in it: shortest
// paths, their lengths, and the per-source efficiency list. Nodes absent
// from the result (e.g. never visited as a source) are left untouched.
func ApplyAPSP(g *core.Graph, res *apsp.Result) error {
	for source, paths := range res.ShortestPath {
		n, err := g.Node(source)
		if err != nil {
			return err
		}
		n.ShortestPath = paths
		n.ShPathLength = res.ShPathLength[source]

		entries := res.Efficiency[source]
		n.Efficiency = make([]core.EfficiencyEntry, len(entries))
		for i, e := range entries {
			n.Efficiency[i] = core.EfficiencyEntry{Target: e.Target, Value: e.Value}
		}
	}

	return nil
}
