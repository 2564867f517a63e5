package orchestrator

import "github.com/latticekit/plantgraph/core"

// buildNodeTable builds the node-characterization table from the merged
// snapshot. alreadyUpdated is the set passed as update_status's
// already_updated parameter: the broken set for DeleteNode, or the
// perturbed area's node set for SimulateAreaPerturbation — deliberately
// different per caller, not a bug.
func buildNodeTable(snapshot *core.Graph, broken, alreadyUpdated map[string]bool, statusMapNew, statusMapFinal map[string]string, areas []string) ([]NodeRow, error) {
	rows := make([]NodeRow, 0, snapshot.NodeCount())

	for _, mark := range snapshot.Nodes() {
		node, err := snapshot.Node(mark)
		if err != nil {
			return nil, err
		}

		markStatus := "ACTIVE"
		if broken[mark] {
			markStatus = "NOT_ACTIVE"
		}

		statusArea := "AVAILABLE"
		if len(areas) > 0 && containsString(areas, node.Area) {
			statusArea = "DAMAGED"
		}

		row := NodeRow{
			Mark:                  mark,
			Description:           node.Description,
			InitStatus:            node.InitStatus,
			IntermediateStatus:    resolveStatusField(mark, statusMapNew, alreadyUpdated),
			FinalStatus:           resolveStatusField(mark, statusMapFinal, alreadyUpdated),
			MarkStatus:            markStatus,
			PerturbationResistant: node.PerturbationResistant,
			Area:                  node.Area,
			StatusArea:            statusArea,
			ClosenessCentrality:   formatFloat(node.ClosenessCentrality),
			BetweennessCentrality: formatFloat(node.BetweennessCentrality),
			IndegreeCentrality:    formatFloat(node.IndegreeCentrality),
			OriginalLocalEff:      formatOptFloat(node.OriginalLocalEff),
			FinalLocalEff:         formatOptFloat(node.FinalLocalEff),
			OriginalGlobalEff:     formatOptFloat(node.OriginalNodalEff),
			FinalGlobalEff:        formatOptFloat(node.FinalNodalEff),
			OriginalAvgGlobalEff:  formatOptFloat(node.OriginalAvgGlobalEff),
			FinalAvgGlobalEff:     formatOptFloat(node.FinalAvgGlobalEff),
		}
		rows = append(rows, row)
	}

	return rows, nil
}
