package efficiency

import "github.com/latticekit/plantgraph/core"

// spEntry is one reconstructed shortest path (as a node sequence) with more
// than one node, plus its originating source. collectShortestPaths flattens
// every source's shortest_path map into one list of them — the step
// betweenness and closeness both need.
type spEntry struct {
	source string
	path   []string
}

func collectShortestPaths(g *core.Graph) ([]spEntry, error) {
	var entries []spEntry
	for _, mark := range g.Nodes() {
		node, err := g.Node(mark)
		if err != nil {
			return nil, err
		}
		for _, path := range node.ShortestPath {
			if len(path) > 1 {
				entries = append(entries, spEntry{source: mark, path: path})
			}
		}
	}

	return entries, nil
}

// BetweennessCentrality sets, for every node v, the fraction of all
// reconstructed multi-node shortest paths that contain v strictly between
// their endpoints. 0 when no such paths exist at all.
func BetweennessCentrality(g *core.Graph) error {
	entries, err := collectShortestPaths(g)
	if err != nil {
		return err
	}
	total := len(entries)

	for _, mark := range g.Nodes() {
		node, err := g.Node(mark)
		if err != nil {
			return err
		}

		var val float64
		if total > 0 {
			var count int
			for _, e := range entries {
				if containsStrictlyBetween(e.path, mark) {
					count++
				}
			}
			val = float64(count) / float64(total)
		}
		node.BetweennessCentrality = val
	}

	return nil
}

func containsStrictlyBetween(path []string, mark string) bool {
	last := len(path) - 1
	for i, m := range path {
		if m == mark && i != 0 && i != last {
			return true
		}
	}

	return false
}

// ClosenessCentrality sets, for every node v, (k/Σℓ)·(k/(N-1)) where k is
// the count of multi-node shortest paths ending at v and Σℓ is the sum of
// their path lengths, or 0 if Σℓ is 0.
func ClosenessCentrality(g *core.Graph) error {
	entries, err := collectShortestPaths(g)
	if err != nil {
		return err
	}

	nodes := g.Nodes()
	n := len(nodes)

	for _, mark := range nodes {
		node, err := g.Node(mark)
		if err != nil {
			return err
		}

		var sumLen float64
		var k int
		for _, e := range entries {
			if e.path[len(e.path)-1] != mark {
				continue
			}
			src, err := g.Node(e.source)
			if err != nil {
				return err
			}
			sumLen += src.ShPathLength[mark]
			k++
		}

		var val float64
		if sumLen != 0 && n > 1 {
			norm := float64(k) / float64(n-1)
			val = (float64(k) / sumLen) * norm
		}
		node.ClosenessCentrality = val
	}

	return nil
}

// DegreeCentralities sets IndegreeCentrality, OutdegreeCentrality, and
// DegreeCentrality on every node from the graph's weighted degrees,
// normalized by (N-1).
func DegreeCentralities(g *core.Graph) error {
	nodes := g.Nodes()
	n := len(nodes)
	if n < 2 {
		for _, mark := range nodes {
			node, err := g.Node(mark)
			if err != nil {
				return err
			}
			node.IndegreeCentrality = 0
			node.OutdegreeCentrality = 0
			node.DegreeCentrality = 0
		}

		return nil
	}

	denom := float64(n - 1)
	for _, mark := range nodes {
		node, err := g.Node(mark)
		if err != nil {
			return err
		}

		in := g.InDegree(mark)
		out := g.OutDegree(mark)

		if in > 0 {
			node.IndegreeCentrality = in / denom
		} else {
			node.IndegreeCentrality = 0
		}
		if out > 0 {
			node.OutdegreeCentrality = out / denom
		} else {
			node.OutdegreeCentrality = 0
		}
		node.DegreeCentrality = g.TotalDegree(mark) / denom
	}

	return nil
}

// ComputeAll runs both nodal/local/global efficiency and all three
// centrality families for the given phase, the order
// check_before()/check_after() run them in: nodal, local, global, then
// betweenness, closeness, degree centralities. g's nodes must already
// carry shortest_path/shpath_length/efficiency via ApplyAPSP.
func ComputeAll(g *core.Graph, phase Phase) error {
	if err := NodalEfficiency(g, phase); err != nil {
		return err
	}
	if err := LocalEfficiency(g, phase); err != nil {
		return err
	}
	if err := GlobalEfficiency(g, phase); err != nil {
		return err
	}
	if err := BetweennessCentrality(g); err != nil {
		return err
	}
	if err := ClosenessCentrality(g); err != nil {
		return err
	}
	if err := DegreeCentralities(g); err != nil {
		return err
	}

	return nil
}
