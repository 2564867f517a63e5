package cascade

import "github.com/latticekit/plantgraph/core"

// ValidateConditions rejects any node whose incoming edges carry more than
// one distinct FatherCond value. The Python source this is grounded on
// picks an arbitrary element of that condition set; this instead treats a
// mixed-condition node as malformed input so PropagateFrom never has to
// guess.
func ValidateConditions(g *core.Graph) error {
	for _, mark := range g.Nodes() {
		seen := make(map[core.FatherCond]bool)
		for _, edge := range g.Predecessors(mark) {
			seen[edge.FatherCond] = true
		}
		if len(seen) > 1 {
			return ErrMixedConditions
		}
	}

	return nil
}
