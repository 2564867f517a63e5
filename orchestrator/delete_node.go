package orchestrator

import (
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/latticekit/plantgraph/apsp"
	"github.com/latticekit/plantgraph/cascade"
	"github.com/latticekit/plantgraph/core"
	"github.com/latticekit/plantgraph/efficiency"
	"github.com/latticekit/plantgraph/internal/telemetry"
)

// DeleteNode simulates the failure of a single element: if mark is
// absent, report via core.ErrNodeNotFound and return without mutating g.
// Otherwise it computes indicators on the intact graph, snapshots it,
// propagates the cascade from mark, recomputes indicators on the reduced
// graph, and builds the two result tables.
func DeleteNode(g *core.Graph, mark string, opts ...Option) (result *Result, err error) {
	cfg := newRunConfig(opts)
	runID := telemetry.NewRunID()
	logger := telemetry.WithRun(cfg.logger, runID, "delete_node")
	start := time.Now()
	broken := map[string]bool{}
	reopened := 0
	defer func() {
		cfg.metrics.ObserveRun("delete_node", start, err, len(broken), reopened)
		logger.Debug("delete_node: run complete",
			zap.Int("broken", len(broken)), zap.Int("reopened", reopened), zap.Error(err))
	}()

	logger.Debug("delete_node: start", zap.String("mark", mark))

	if !g.HasNode(mark) {
		return nil, core.ErrNodeNotFound
	}

	if err := cascade.ValidateConditions(g); err != nil {
		return nil, err
	}

	sources, users := sourcesAndUsers(g)

	before, err := apsp.ComputeShortestPaths(g, cfg.apsp)
	if err != nil {
		return nil, err
	}
	if err := efficiency.ApplyAPSP(g, before); err != nil {
		return nil, err
	}
	if err := efficiency.ComputeAll(g, efficiency.Before); err != nil {
		return nil, err
	}

	snapshot := g.Clone()

	engine := cascade.NewEngineWithLogger(logger)
	if _, err := engine.PropagateFrom(g, mark); err != nil {
		return nil, err
	}

	broken = make(map[string]bool, len(engine.Broken))
	for m := range engine.Broken {
		broken[m] = true
	}
	for m := range broken {
		if err := g.RemoveNode(m); err != nil && !errors.Is(err, core.ErrNodeNotFound) {
			return nil, err
		}
	}

	after, err := apsp.ComputeShortestPaths(g, cfg.apsp)
	if err != nil {
		return nil, err
	}
	if err := efficiency.ApplyAPSP(g, after); err != nil {
		return nil, err
	}
	if err := efficiency.NodalEfficiency(g, efficiency.After); err != nil {
		return nil, err
	}
	if err := efficiency.LocalEfficiency(g, efficiency.After); err != nil {
		return nil, err
	}
	if err := efficiency.GlobalEfficiency(g, efficiency.After); err != nil {
		return nil, err
	}
	if err := engine.ReconcileValves(g, sources, users); err != nil {
		return nil, err
	}
	reopened = len(engine.FinalStatus)

	if err := mergeLiveIntoSnapshot(snapshot, g); err != nil {
		return nil, err
	}

	servicePaths, err := buildServicePaths(snapshot, g, sources, users)
	if err != nil {
		return nil, err
	}

	nodeTable, err := buildNodeTable(snapshot, broken, broken, engine.NewStatus, engine.FinalStatus, nil)
	if err != nil {
		return nil, err
	}

	brokenList := make([]string, 0, len(broken))
	for m := range broken {
		brokenList = append(brokenList, m)
	}
	sort.Strings(brokenList)

	return &Result{
		Snapshot:     snapshot,
		Broken:       brokenList,
		ServicePaths: servicePaths,
		NodeTable:    nodeTable,
	}, nil
}
