package cascade

import (
	"errors"

	"go.uber.org/zap"

	"github.com/latticekit/plantgraph/core"
	"github.com/latticekit/plantgraph/internal/telemetry"
)

// ErrMixedConditions is returned by ValidateConditions when a node's
// incoming edges carry more than one distinct FatherCond value —
// malformed input, resolved here as a validation error rather than
// picking an arbitrary element.
var ErrMixedConditions = errors.New("cascade: node has mixed predecessor conditions")

// Engine runs failure propagation and accumulates its effects across every
// PropagateFrom call made during one perturbation.
type Engine struct {
	// Broken maps every Mark the cascade has marked broken, across every
	// PropagateFrom call on this Engine, to true.
	Broken map[string]bool
	// NewStatus records valves whose state flipped during propagation:
	// Mark -> "0" (closed).
	NewStatus map[string]string
	// FinalStatus records valves re-opened during post-cascade
	// reconciliation: Mark -> "1".
	FinalStatus map[string]string

	logger *zap.Logger
}

// NewEngine returns an Engine with empty accumulator maps and a no-op
// logger.
func NewEngine() *Engine {
	return NewEngineWithLogger(nil)
}

// NewEngineWithLogger returns an Engine that reports valve transitions and
// breaks through logger (nil falls back to a no-op logger), replacing the
// original implementation's logging.debug(...) calls in rm_nodes.
func NewEngineWithLogger(logger *zap.Logger) *Engine {
	return &Engine{
		Broken:      make(map[string]bool),
		NewStatus:   make(map[string]string),
		FinalStatus: make(map[string]string),
		logger:      telemetry.NewLogger(logger),
	}
}

// valveStatus returns v's effective valve status: its NewStatus override
// if the cascade already flipped it this perturbation, else its loaded
// InitStatus.
func (e *Engine) valveStatus(node *core.Node) string {
	if s, ok := e.NewStatus[node.Mark]; ok {
		return s
	}

	return node.InitStatus
}

// stackFrame is one pending node in the explicit-stack DFS.
type stackFrame struct {
	mark string
}

// PropagateFrom runs the cascade from start and returns the Marks newly
// added to e.Broken by this call (the "delta"). Traversal is an iterative
// (explicit-stack) depth-first walk, visiting successors in sorted order
// for determinism; e's accumulator maps persist across calls.
func (e *Engine) PropagateFrom(g *core.Graph, start string) ([]string, error) {
	if !g.HasNode(start) {
		return nil, core.ErrNodeNotFound
	}

	visited := make(map[string]bool)
	var delta []string

	stack := []stackFrame{{mark: start}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		mark := top.mark
		if visited[mark] {
			continue
		}
		visited[mark] = true
		isOrigin := mark == start

		node, err := g.Node(mark)
		if err != nil {
			return nil, err
		}

		descend, err := e.visit(g, node, isOrigin, &delta)
		if err != nil {
			return nil, err
		}
		if !descend {
			continue
		}

		successors := g.SuccessorMarks(mark)
		for i := len(successors) - 1; i >= 0; i-- {
			s := successors[i]
			if !visited[s] {
				stack = append(stack, stackFrame{mark: s})
			}
		}
	}

	return delta, nil
}

// visit applies the per-node propagation rules to node and reports
// whether the cascade should descend into node's successors.
func (e *Engine) visit(g *core.Graph, node *core.Node, isOrigin bool, delta *[]string) (bool, error) {
	if core.IsValveDescription(node.Description) {
		status := e.valveStatus(node)
		if status == "1" {
			e.NewStatus[node.Mark] = "0"
			e.logger.Debug("cascade: valve closed", zap.String("mark", node.Mark))
		}

		if isOrigin {
			e.markBroken(node.Mark, delta)
			return true, nil
		}

		return false, nil
	}

	cond, count, predCount, err := e.predecessorCondition(g, node.Mark)
	if err != nil {
		return false, err
	}

	if cond != core.CondOr {
		e.markBroken(node.Mark, delta)
		return true, nil
	}

	if isOrigin || predCount-count == 0 {
		e.markBroken(node.Mark, delta)
		return true, nil
	}

	return false, nil
}

// predecessorCondition returns the representative FatherCond for mark's
// incoming edges (SINGLE if there are none), the count of predecessors
// already in e.Broken, and the total predecessor count.
func (e *Engine) predecessorCondition(g *core.Graph, mark string) (core.FatherCond, int, int, error) {
	preds := g.Predecessors(mark)
	if len(preds) == 0 {
		return core.CondSingle, 0, 0, nil
	}

	seen := make(map[string]bool, len(preds))
	var cond core.FatherCond
	var count, total int
	for _, edge := range preds {
		if seen[edge.From] {
			continue
		}
		seen[edge.From] = true
		total++
		cond = edge.FatherCond
		if e.Broken[edge.From] {
			count++
		}
	}

	return cond, count, total, nil
}

func (e *Engine) markBroken(mark string, delta *[]string) {
	if e.Broken[mark] {
		return
	}
	e.Broken[mark] = true
	*delta = append(*delta, mark)
	e.logger.Debug("cascade: node broken", zap.String("mark", mark))
}
