package orchestrator

import "github.com/latticekit/plantgraph/core"

// buildServicePaths builds one row per (source, user) pair from the
// before-cascade snapshot and the after-cascade live graph, keyed by
// "ids" = source Mark ++ user Mark. Missing-path fields carry the
// NodePathSentinel literal.
func buildServicePaths(before, after *core.Graph, sources, users []string) ([]ServicePathRow, error) {
	rows := make([]ServicePathRow, 0, len(sources)*len(users))

	for _, s := range sources {
		for _, u := range users {
			row := ServicePathRow{From: s, To: u, IDs: s + u}

			if srcBefore, err := before.Node(s); err == nil {
				row.Area = srcBefore.Area
			}

			if err := fillOriginal(&row, before, s, u); err != nil {
				return nil, err
			}
			if err := fillFinal(&row, after, s, u); err != nil {
				return nil, err
			}

			rows = append(rows, row)
		}
	}

	return rows, nil
}

func fillOriginal(row *ServicePathRow, g *core.Graph, s, u string) error {
	if !g.HasNode(s) || !g.HasNode(u) || !g.HasPath(s, u) {
		row.OriginalShortestPath = NodePathSentinel
		row.OriginalShortestPathLength = NodePathSentinel
		row.OriginalPairEfficiency = NodePathSentinel
		row.OriginalSimplePath = NodePathSentinel

		return nil
	}

	src, err := g.Node(s)
	if err != nil {
		return err
	}

	row.OriginalShortestPath = joinPath(src.ShortestPath[u])
	length := src.ShPathLength[u]
	row.OriginalShortestPathLength = formatFloat(length)
	if eff, ok := lookupEfficiency(src.Efficiency, u); ok {
		row.OriginalPairEfficiency = formatFloat(eff)
	} else {
		row.OriginalPairEfficiency = formatFloat(0)
	}
	row.OriginalSimplePath = joinSimplePaths(g.AllSimplePaths(s, u))

	return nil
}

func fillFinal(row *ServicePathRow, g *core.Graph, s, u string) error {
	if !g.HasNode(s) || !g.HasNode(u) || !g.HasPath(s, u) {
		row.FinalShortestPath = NodePathSentinel
		row.FinalShortestPathLength = NodePathSentinel
		row.FinalPairEfficiency = NodePathSentinel
		row.FinalSimplePath = NodePathSentinel

		return nil
	}

	src, err := g.Node(s)
	if err != nil {
		return err
	}

	row.FinalShortestPath = joinPath(src.ShortestPath[u])
	length := src.ShPathLength[u]
	row.FinalShortestPathLength = formatFloat(length)
	if eff, ok := lookupEfficiency(src.Efficiency, u); ok {
		row.FinalPairEfficiency = formatFloat(eff)
	} else {
		row.FinalPairEfficiency = formatFloat(0)
	}
	row.FinalSimplePath = joinSimplePaths(g.AllSimplePaths(s, u))

	return nil
}
