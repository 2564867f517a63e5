package orchestrator

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/latticekit/plantgraph/apsp"
	"github.com/latticekit/plantgraph/cascade"
	"github.com/latticekit/plantgraph/core"
	"github.com/latticekit/plantgraph/efficiency"
	"github.com/latticekit/plantgraph/internal/telemetry"
)

// SimulateAreaPerturbation simulates damage to one or more spatial areas.
// Every area must already appear on some node, or the whole operation
// aborts with ErrAreaNotFound.
// Non-resistant nodes in the named areas are each propagated through the
// cascade in turn; node-characterization rows mark every node whose Area
// is damaged, regardless of whether the cascade actually reached it.
func SimulateAreaPerturbation(g *core.Graph, areas []string, opts ...Option) (result *Result, err error) {
	cfg := newRunConfig(opts)
	runID := telemetry.NewRunID()
	logger := telemetry.WithRun(cfg.logger, runID, "area_perturbation")
	start := time.Now()
	broken := map[string]bool{}
	reopened := 0
	defer func() {
		cfg.metrics.ObserveRun("area_perturbation", start, err, len(broken), reopened)
		logger.Debug("area_perturbation: run complete",
			zap.Int("broken", len(broken)), zap.Int("reopened", reopened), zap.Error(err))
	}()

	logger.Debug("area_perturbation: start", zap.Strings("areas", areas))

	if len(areas) == 0 {
		return nil, fmt.Errorf("orchestrator: no areas given")
	}

	present := make(map[string]bool)
	for _, mark := range g.Nodes() {
		node, err := g.Node(mark)
		if err != nil {
			return nil, err
		}
		present[node.Area] = true
	}
	for _, a := range areas {
		if !present[a] {
			return nil, fmt.Errorf("%w: %s", ErrAreaNotFound, a)
		}
	}

	var nodesInArea []string
	for _, mark := range g.Nodes() {
		node, err := g.Node(mark)
		if err != nil {
			return nil, err
		}
		if containsString(areas, node.Area) {
			nodesInArea = append(nodesInArea, mark)
		}
	}
	nodesInAreaSet := make(map[string]bool, len(nodesInArea))
	for _, m := range nodesInArea {
		nodesInAreaSet[m] = true
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

	var failing []string
	for _, mark := range nodesInArea {
		node, err := g.Node(mark)
		if err != nil {
			return nil, err
		}
		if node.PerturbationResistant != "1" {
			failing = append(failing, mark)
		}
	}

	engine := cascade.NewEngineWithLogger(logger)
	for _, mark := range failing {
		if !g.HasNode(mark) {
			continue
		}
		delta, err := engine.PropagateFrom(g, mark)
		if err != nil {
			return nil, err
		}
		for _, b := range delta {
			broken[b] = true
			if err := g.RemoveNode(b); err != nil && !errors.Is(err, core.ErrNodeNotFound) {
				return nil, err
			}
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

	nodeTable, err := buildNodeTable(snapshot, broken, nodesInAreaSet, engine.NewStatus, engine.FinalStatus, areas)
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
