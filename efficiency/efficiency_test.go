package efficiency_test

import (
	"testing"

	"github.com/latticekit/plantgraph/apsp"
	"github.com/latticekit/plantgraph/core"
	"github.com/latticekit/plantgraph/efficiency"
	"github.com/stretchr/testify/require"
)

// diamond builds A->B, A->C, B->D, C->D so D is reachable from A via two
// distinct two-hop paths and A has two successors.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][3]interface{}{
		{"A", "B", 1.0}, {"A", "C", 1.0}, {"B", "D", 1.0}, {"C", "D", 1.0},
	} {
		_, err := g.AddEdge(e[0].(string), e[1].(string), core.CondSingle, e[2].(float64))
		require.NoError(t, err)
	}

	return g
}

func computeAndApply(t *testing.T, g *core.Graph) {
	t.Helper()
	res, err := apsp.ComputeShortestPaths(g, apsp.Options{})
	require.NoError(t, err)
	require.NoError(t, efficiency.ApplyAPSP(g, res))
}

func TestNodalEfficiencyMatchesSumOverNMinus1(t *testing.T) {
	g := diamond(t)
	computeAndApply(t, g)
	require.NoError(t, efficiency.NodalEfficiency(g, efficiency.Before))

	node, err := g.Node("A")
	require.NoError(t, err)
	require.NotNil(t, node.OriginalNodalEff)

	var sum float64
	for _, e := range node.Efficiency {
		sum += e.Value
	}
	require.InDelta(t, sum/3, *node.OriginalNodalEff, 1e-9)
}

func TestLocalEfficiencyZeroWithoutSuccessors(t *testing.T) {
	g := diamond(t)
	computeAndApply(t, g)
	require.NoError(t, efficiency.NodalEfficiency(g, efficiency.Before))
	require.NoError(t, efficiency.LocalEfficiency(g, efficiency.Before))

	d, err := g.Node("D")
	require.NoError(t, err)
	require.NotNil(t, d.OriginalLocalEff)
	require.InDelta(t, 0, *d.OriginalLocalEff, 1e-9)
}

func TestLocalEfficiencyIsMeanOfSuccessors(t *testing.T) {
	g := diamond(t)
	computeAndApply(t, g)
	require.NoError(t, efficiency.NodalEfficiency(g, efficiency.Before))
	require.NoError(t, efficiency.LocalEfficiency(g, efficiency.Before))

	a, err := g.Node("A")
	require.NoError(t, err)
	b, err := g.Node("B")
	require.NoError(t, err)
	c, err := g.Node("C")
	require.NoError(t, err)
	require.NotNil(t, b.OriginalNodalEff)
	require.NotNil(t, c.OriginalNodalEff)
	require.InDelta(t, (*b.OriginalNodalEff+*c.OriginalNodalEff)/2, *a.OriginalLocalEff, 1e-9)
}

func TestGlobalEfficiencyBroadcastToEveryNode(t *testing.T) {
	g := diamond(t)
	computeAndApply(t, g)
	require.NoError(t, efficiency.NodalEfficiency(g, efficiency.Before))
	require.NoError(t, efficiency.GlobalEfficiency(g, efficiency.Before))

	var want float64
	for _, mark := range g.Nodes() {
		node, err := g.Node(mark)
		require.NoError(t, err)
		require.NotNil(t, node.OriginalAvgGlobalEff)
		if want == 0 {
			want = *node.OriginalAvgGlobalEff
		}
		require.InDelta(t, want, *node.OriginalAvgGlobalEff, 1e-9)
	}
}

func TestDegreeCentralitiesZeroWhenNoEdges(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddNode("A")
	require.NoError(t, err)
	_, err = g.AddNode("B")
	require.NoError(t, err)
	require.NoError(t, efficiency.DegreeCentralities(g))

	a, err := g.Node("A")
	require.NoError(t, err)
	require.Zero(t, a.IndegreeCentrality)
	require.Zero(t, a.OutdegreeCentrality)
	require.Zero(t, a.DegreeCentrality)
}

func TestBetweennessSumsWithinUnitBound(t *testing.T) {
	g := diamond(t)
	computeAndApply(t, g)
	require.NoError(t, efficiency.BetweennessCentrality(g))

	var sum float64
	for _, mark := range g.Nodes() {
		node, err := g.Node(mark)
		require.NoError(t, err)
		require.GreaterOrEqual(t, node.BetweennessCentrality, 0.0)
		require.LessOrEqual(t, node.BetweennessCentrality, 1.0)
		sum += node.BetweennessCentrality
	}
	require.LessOrEqual(t, sum, 1.0+1e-9)
}

func TestComputeAllPopulatesEverything(t *testing.T) {
	g := diamond(t)
	computeAndApply(t, g)
	require.NoError(t, efficiency.ComputeAll(g, efficiency.Before))

	a, err := g.Node("A")
	require.NoError(t, err)
	require.NotNil(t, a.OriginalNodalEff)
	require.NotNil(t, a.OriginalLocalEff)
	require.NotNil(t, a.OriginalAvgGlobalEff)
}
