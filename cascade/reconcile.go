package cascade

import (
	"go.uber.org/zap"

	"github.com/latticekit/plantgraph/core"
)

// ReconcileValves implements check_after's post-cascade valve pass: for
// every SOURCE/USER pair that still has a path, every valve node on any
// simple path between them is re-examined, and any valve found closed
// (its effective status, per valveStatus, is "0") is re-opened by
// recording e.FinalStatus[mark] = "1" — modeling an operator restoring
// service through surviving routes.
func (e *Engine) ReconcileValves(g *core.Graph, sources, users []string) error {
	for _, source := range sources {
		if !g.HasNode(source) {
			continue
		}
		for _, user := range users {
			if !g.HasNode(user) {
				continue
			}
			if !g.HasPath(source, user) {
				continue
			}

			for _, path := range g.AllSimplePaths(source, user) {
				for _, mark := range path {
					node, err := g.Node(mark)
					if err != nil {
						return err
					}
					if !core.IsValveDescription(node.Description) {
						continue
					}
					if e.valveStatus(node) == "0" {
						e.FinalStatus[mark] = "1"
						e.logger.Debug("cascade: valve reopened",
							zap.String("mark", mark), zap.String("source", source), zap.String("user", user))
					}
				}
			}
		}
	}

	return nil
}
