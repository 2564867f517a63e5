package efficiency

import "github.com/latticekit/plantgraph/core"

// NodalEfficiency computes, for every live node v, Σ efficiency(v,·) over
// the (N-1) other live nodes and stores it on OriginalNodalEff (Before) or
// FinalNodalEff (After).
//
// A graph with fewer than two nodes has no "other" node to divide by;
// nodal efficiency is defined as 0 in that degenerate case.
func NodalEfficiency(g *core.Graph, phase Phase) error {
	nodes := g.Nodes()
	n := len(nodes)

	for _, mark := range nodes {
		node, err := g.Node(mark)
		if err != nil {
			return err
		}

		var sum float64
		for _, e := range node.Efficiency {
			sum += e.Value
		}

		var val float64
		if n > 1 {
			val = sum / float64(n-1)
		}

		switch phase {
		case Before:
			node.OriginalNodalEff = &val
		case After:
			node.FinalNodalEff = &val
		}
	}

	return nil
}

// LocalEfficiency computes, for every live node v, the mean nodal
// efficiency of v's immediate successors (0 if v has none). Before reads
// successors' OriginalNodalEff; After reads FinalNodalEff —
// both fields must already be populated by a prior NodalEfficiency call
// for the same phase.
func LocalEfficiency(g *core.Graph, phase Phase) error {
	for _, mark := range g.Nodes() {
		node, err := g.Node(mark)
		if err != nil {
			return err
		}

		successors := g.SuccessorMarks(mark)
		var val float64
		if len(successors) > 0 {
			var sum float64
			for _, s := range successors {
				sn, err := g.Node(s)
				if err != nil {
					return err
				}

				var eff *float64
				switch phase {
				case Before:
					eff = sn.OriginalNodalEff
				case After:
					eff = sn.FinalNodalEff
				}
				if eff != nil {
					sum += *eff
				}
			}
			val = sum / float64(len(successors))
		}

		switch phase {
		case Before:
			node.OriginalLocalEff = &val
		case After:
			node.FinalLocalEff = &val
		}
	}

	return nil
}

// GlobalEfficiency computes Σ OriginalNodalEff over all currently-live
// nodes divided by their count, and broadcasts that single value onto
// every live node as OriginalAvgGlobalEff (Before) or FinalAvgGlobalEff
// (After). It always sums the *original* nodal efficiency field, even for
// the post-cascade call, since surviving nodes never overwrite it.
func GlobalEfficiency(g *core.Graph, phase Phase) error {
	nodes := g.Nodes()
	n := len(nodes)

	var sum float64
	for _, mark := range nodes {
		node, err := g.Node(mark)
		if err != nil {
			return err
		}
		if node.OriginalNodalEff != nil {
			sum += *node.OriginalNodalEff
		}
	}

	var val float64
	if n > 0 {
		val = sum / float64(n)
	}

	for _, mark := range nodes {
		node, err := g.Node(mark)
		if err != nil {
			return err
		}

		switch phase {
		case Before:
			node.OriginalAvgGlobalEff = &val
		case After:
			node.FinalAvgGlobalEff = &val
		}
	}

	return nil
}
