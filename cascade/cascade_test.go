package cascade_test

import (
	"testing"

	"github.com/latticekit/plantgraph/cascade"
	"github.com/latticekit/plantgraph/core"
	"github.com/stretchr/testify/require"
)

func TestPropagateFromChainBreaksEverythingDownstream(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}} {
		_, err := g.AddEdge(e[0], e[1], core.CondSingle, 1)
		require.NoError(t, err)
	}

	e := cascade.NewEngine()
	delta, err := e.PropagateFrom(g, "B")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"B", "C", "D"}, delta)
	require.False(t, e.Broken["A"])
}

func TestPropagateFromORSurvivesWithOneSurvivingPredecessor(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "C", core.CondOr, 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", core.CondOr, 1)
	require.NoError(t, err)

	e := cascade.NewEngine()
	delta, err := e.PropagateFrom(g, "A")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"A"}, delta)
	require.False(t, e.Broken["C"])
}

func TestPropagateFromANDCollapsesOnFirstBrokenPredecessor(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "C", core.CondAnd, 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", core.CondAnd, 1)
	require.NoError(t, err)

	e := cascade.NewEngine()
	delta, err := e.PropagateFrom(g, "A")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"A", "C"}, delta)
}

func TestPropagateFromValveIsolatesCascade(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("S", "V", core.CondSingle, 1)
	require.NoError(t, err)
	_, err = g.AddEdge("V", "U", core.CondSingle, 1)
	require.NoError(t, err)

	v, err := g.Node("V")
	require.NoError(t, err)
	v.Description = core.DescIsolationA
	v.InitStatus = "1"

	e := cascade.NewEngine()
	delta, err := e.PropagateFrom(g, "S")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"S"}, delta)
	require.False(t, e.Broken["V"])
	require.False(t, e.Broken["U"])
	require.Equal(t, "0", e.NewStatus["V"])
}

func TestPropagateFromValveOriginIsBroken(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("S", "V", core.CondSingle, 1)
	require.NoError(t, err)

	v, err := g.Node("V")
	require.NoError(t, err)
	v.Description = core.DescIsolationA
	v.InitStatus = "1"

	e := cascade.NewEngine()
	delta, err := e.PropagateFrom(g, "V")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"V"}, delta)
	require.True(t, e.Broken["V"])
}

func TestValidateConditionsRejectsMixedAndOr(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "C", core.CondAnd, 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", core.CondOr, 1)
	require.NoError(t, err)

	err = cascade.ValidateConditions(g)
	require.ErrorIs(t, err, cascade.ErrMixedConditions)
}

func TestValidateConditionsAcceptsUniformConditions(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "C", core.CondOr, 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", core.CondOr, 1)
	require.NoError(t, err)

	require.NoError(t, cascade.ValidateConditions(g))
}

func TestReconcileValvesReopensClosedValveOnSurvivingPath(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("S", "V", core.CondSingle, 1)
	require.NoError(t, err)
	_, err = g.AddEdge("V", "U", core.CondSingle, 1)
	require.NoError(t, err)

	v, err := g.Node("V")
	require.NoError(t, err)
	v.Description = core.DescIsolationA
	v.InitStatus = "0"

	e := cascade.NewEngine()
	require.NoError(t, e.ReconcileValves(g, []string{"S"}, []string{"U"}))
	require.Equal(t, "1", e.FinalStatus["V"])
}

func TestReconcileValvesLeavesOpenValveAlone(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("S", "V", core.CondSingle, 1)
	require.NoError(t, err)
	_, err = g.AddEdge("V", "U", core.CondSingle, 1)
	require.NoError(t, err)

	v, err := g.Node("V")
	require.NoError(t, err)
	v.Description = core.DescIsolationA
	v.InitStatus = "1"

	e := cascade.NewEngine()
	require.NoError(t, e.ReconcileValves(g, []string{"S"}, []string{"U"}))
	_, reopened := e.FinalStatus["V"]
	require.False(t, reopened)
}
