package orchestrator

import "github.com/latticekit/plantgraph/core"

// GephiNodeRow is one row of check_import_nodes.csv.
type GephiNodeRow struct {
	Mark                  string
	Description           string
	InitStatus            string
	PerturbationResistant string
	Area                  string
}

// GephiEdgeRow is one row of check_import_edges.csv.
type GephiEdgeRow struct {
	Mark       string
	FatherMark string
}

// ExportGephi builds the Gephi-friendly node/edge dump, a graph-wide
// debug export independent of either perturbation workflow — ported from
// the original GRAPE tool's check_input_with_gephi.
func ExportGephi(g *core.Graph) ([]GephiNodeRow, []GephiEdgeRow, error) {
	marks := g.Nodes()
	nodes := make([]GephiNodeRow, 0, len(marks))
	for _, mark := range marks {
		node, err := g.Node(mark)
		if err != nil {
			return nil, nil, err
		}
		nodes = append(nodes, GephiNodeRow{
			Mark:                  mark,
			Description:           node.Description,
			InitStatus:            node.InitStatus,
			PerturbationResistant: node.PerturbationResistant,
			Area:                  node.Area,
		})
	}

	edges := make([]GephiEdgeRow, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		edges = append(edges, GephiEdgeRow{Mark: e.To, FatherMark: e.From})
	}

	return nodes, edges, nil
}
