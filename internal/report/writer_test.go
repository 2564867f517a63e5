package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/latticekit/plantgraph/internal/report"
	"github.com/latticekit/plantgraph/orchestrator"
	"github.com/stretchr/testify/require"
)

func TestWriteNodeTableHeaderAndRow(t *testing.T) {
	var buf bytes.Buffer
	rows := []orchestrator.NodeRow{
		{Mark: "A", Description: "unknown", InitStatus: "1", MarkStatus: "ACTIVE", StatusArea: "AVAILABLE"},
	}
	require.NoError(t, report.WriteNodeTable(&buf, rows))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "Mark_Status")
	require.True(t, strings.HasPrefix(lines[1], "A,unknown,1"))
}

func TestWriteServicePathsNoPathSentinel(t *testing.T) {
	var buf bytes.Buffer
	rows := []orchestrator.ServicePathRow{
		{From: "A", To: "D", FinalShortestPath: orchestrator.NodePathSentinel, IDs: "AD"},
	}
	require.NoError(t, report.WriteServicePaths(&buf, rows))
	require.Contains(t, buf.String(), orchestrator.NodePathSentinel)
}

func TestWriteGephiWritesBothFiles(t *testing.T) {
	var nodesBuf, edgesBuf bytes.Buffer
	nodes := []orchestrator.GephiNodeRow{{Mark: "A", Area: "area1"}}
	edges := []orchestrator.GephiEdgeRow{{Mark: "B", FatherMark: "A"}}
	require.NoError(t, report.WriteGephi(&nodesBuf, &edgesBuf, nodes, edges))

	require.Contains(t, nodesBuf.String(), "area1")
	require.Contains(t, edgesBuf.String(), "B,A")
}
