package report

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/latticekit/plantgraph/orchestrator"
)

// nodeTableHeader is the node-characterization column order.
var nodeTableHeader = []string{
	"Mark", "Description", "InitStatus", "IntermediateStatus", "FinalStatus",
	"Mark_Status", "PerturbationResistant", "Area", "Status_Area",
	"closeness_centrality", "betweenness_centrality", "indegree_centrality",
	"original_local_eff", "final_local_eff",
	"original_global_eff", "final_global_eff",
	"original_avg_global_eff", "final_avg_global_eff",
}

// servicePathsHeader is the service-paths column order.
var servicePathsHeader = []string{
	"from", "to", "final_simple_path", "final_shortest_path",
	"final_shortest_path_length", "final_pair_efficiency", "area", "ids",
	"original_simple path", "original_shortest_path_length",
	"original_pair_efficiency", "original_shortest_path",
}

// gephiNodesHeader is check_import_nodes.csv's column order.
var gephiNodesHeader = []string{"Mark", "Description", "InitStatus", "PerturbationResistant", "Area"}

// gephiEdgesHeader is check_import_edges.csv's column order.
var gephiEdgesHeader = []string{"Mark", "Father_mark"}

// WriteNodeTable writes the node-characterization table (element_perturbation.csv
// or area_perturbation.csv) to w.
func WriteNodeTable(w io.Writer, rows []orchestrator.NodeRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(nodeTableHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Mark, r.Description, r.InitStatus, r.IntermediateStatus, r.FinalStatus,
			r.MarkStatus, r.PerturbationResistant, r.Area, r.StatusArea,
			r.ClosenessCentrality, r.BetweennessCentrality, r.IndegreeCentrality,
			r.OriginalLocalEff, r.FinalLocalEff,
			r.OriginalGlobalEff, r.FinalGlobalEff,
			r.OriginalAvgGlobalEff, r.FinalAvgGlobalEff,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteServicePaths writes the service-paths table
// (service_paths_element_perturbation.csv or
// service_paths_multi_area_perturbation.csv) to w.
func WriteServicePaths(w io.Writer, rows []orchestrator.ServicePathRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(servicePathsHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.From, r.To, r.FinalSimplePath, r.FinalShortestPath,
			r.FinalShortestPathLength, r.FinalPairEfficiency, r.Area, r.IDs,
			r.OriginalSimplePath, r.OriginalShortestPathLength,
			r.OriginalPairEfficiency, r.OriginalShortestPath,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteGephi writes check_import_nodes.csv and check_import_edges.csv to
// the two given writers.
func WriteGephi(nodesW, edgesW io.Writer, nodes []orchestrator.GephiNodeRow, edges []orchestrator.GephiEdgeRow) error {
	nw := csv.NewWriter(nodesW)
	if err := nw.Write(gephiNodesHeader); err != nil {
		return err
	}
	for _, n := range nodes {
		if err := nw.Write([]string{n.Mark, n.Description, n.InitStatus, n.PerturbationResistant, n.Area}); err != nil {
			return err
		}
	}
	nw.Flush()
	if err := nw.Error(); err != nil {
		return err
	}

	ew := csv.NewWriter(edgesW)
	if err := ew.Write(gephiEdgesHeader); err != nil {
		return err
	}
	for _, e := range edges {
		if err := ew.Write([]string{e.Mark, e.FatherMark}); err != nil {
			return err
		}
	}
	ew.Flush()

	return ew.Error()
}

// WriteNodeTableFile is a convenience wrapper creating path and writing
// rows to it.
func WriteNodeTableFile(path string, rows []orchestrator.NodeRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteNodeTable(f, rows)
}

// WriteServicePathsFile is a convenience wrapper creating path and writing
// rows to it.
func WriteServicePathsFile(path string, rows []orchestrator.ServicePathRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteServicePaths(f, rows)
}

// WriteGephiFiles is a convenience wrapper creating nodesPath/edgesPath and
// writing the Gephi dump to them.
func WriteGephiFiles(nodesPath, edgesPath string, nodes []orchestrator.GephiNodeRow, edges []orchestrator.GephiEdgeRow) error {
	nf, err := os.Create(nodesPath)
	if err != nil {
		return err
	}
	defer nf.Close()

	ef, err := os.Create(edgesPath)
	if err != nil {
		return err
	}
	defer ef.Close()

	return WriteGephi(nf, ef, nodes, edges)
}
