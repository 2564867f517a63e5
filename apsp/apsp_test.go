package apsp_test

import (
	"testing"

	"github.com/latticekit/plantgraph/apsp"
	"github.com/latticekit/plantgraph/core"
	"github.com/stretchr/testify/require"
)

func chain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}} {
		_, err := g.AddEdge(e[0], e[1], core.CondSingle, 1)
		require.NoError(t, err)
	}

	return g
}

func TestFloydWarshallSerialChain(t *testing.T) {
	g := chain(t)
	res, err := apsp.ComputeShortestPaths(g, apsp.Options{})
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D"}, res.ShortestPath["A"]["D"])
	require.InDelta(t, 3.0, res.ShPathLength["A"]["D"], 1e-9)
}

func TestFloydWarshallParallelMatchesSerial(t *testing.T) {
	g := core.NewGraph()
	// Build a small dense-ish graph so density forces Floyd-Warshall.
	marks := []string{"A", "B", "C", "D", "E", "F"}
	for _, m := range marks {
		_, err := g.AddNode(m)
		require.NoError(t, err)
	}
	for i, from := range marks {
		for j, to := range marks {
			if i == j {
				continue
			}
			_, err := g.AddEdge(from, to, core.CondSingle, float64(1+(i+j)%3))
			require.NoError(t, err)
		}
	}

	serial, err := apsp.ComputeShortestPaths(g, apsp.Options{})
	require.NoError(t, err)

	parallel, err := apsp.ComputeShortestPaths(g, apsp.Options{Workers: 4, NodeCountThreshold: 1})
	require.NoError(t, err)

	for _, s := range marks {
		for _, tg := range marks {
			require.InDelta(t, serial.ShPathLength[s][tg], parallel.ShPathLength[s][tg], 1e-9, "%s->%s", s, tg)
		}
	}
}

func TestDijkstraMatchesFloydWarshall(t *testing.T) {
	g := chain(t)

	fw, err := apsp.ComputeShortestPaths(g, apsp.Options{DensityThreshold: 1e-12})
	require.NoError(t, err)

	dij, err := apsp.ComputeShortestPaths(g, apsp.Options{DensityThreshold: 0.9})
	require.NoError(t, err)

	for _, s := range g.Nodes() {
		for _, tg := range g.Nodes() {
			fl, fok := fw.ShPathLength[s][tg]
			dl, dok := dij.ShPathLength[s][tg]
			require.Equal(t, fok, dok, "%s->%s reachability mismatch", s, tg)
			if fok {
				require.InDelta(t, fl, dl, 1e-9, "%s->%s", s, tg)
			}
		}
	}
}

func TestUnreachablePairHasNoEntry(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", core.CondSingle, 1)
	require.NoError(t, err)
	_, err = g.AddNode("C")
	require.NoError(t, err)

	res, err := apsp.ComputeShortestPaths(g, apsp.Options{})
	require.NoError(t, err)
	_, ok := res.ShPathLength["A"]["C"]
	require.False(t, ok)
	_, ok = res.ShPathLength["C"]["A"]
	require.False(t, ok)
}

func TestEfficiencyIsReciprocalOfLength(t *testing.T) {
	g := chain(t)
	res, err := apsp.ComputeShortestPaths(g, apsp.Options{})
	require.NoError(t, err)

	var found bool
	for _, entry := range res.Efficiency["A"] {
		if entry.Target == "D" {
			found = true
			require.InDelta(t, 1.0/3.0, entry.Value, 1e-9)
		}
	}
	require.True(t, found)
}
