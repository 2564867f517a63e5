package orchestrator

import "github.com/latticekit/plantgraph/core"

// mergeLiveIntoSnapshot copies each surviving node's final_* efficiency
// fields from the live (post-cascade) graph back onto the corresponding
// snapshot node: for surviving nodes, the live value wins. The snapshot
// keeps its pre-cascade shortest_path/shpath_length/efficiency, which
// buildServicePaths reads for the original_* columns; the post-cascade
// ones stay on the live graph. Nodes absent from live are left exactly as
// the pre-cascade snapshot left them: no final_* values, i.e. blank.
func mergeLiveIntoSnapshot(snapshot, live *core.Graph) error {
	for _, mark := range live.Nodes() {
		liveNode, err := live.Node(mark)
		if err != nil {
			return err
		}
		snapNode, err := snapshot.Node(mark)
		if err != nil {
			continue
		}

		snapNode.FinalNodalEff = liveNode.FinalNodalEff
		snapNode.FinalLocalEff = liveNode.FinalLocalEff
		snapNode.FinalAvgGlobalEff = liveNode.FinalAvgGlobalEff
	}

	return nil
}
