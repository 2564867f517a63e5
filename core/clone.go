package core

import "sync/atomic"

// Clone returns a structural deep copy of g: every node record (including
// derived attributes computed so far), every edge, and the adjacency
// index. Used by the orchestrator to take the pre-cascade snapshot.
func (g *Graph) Clone() *Graph {
	g.muNode.RLock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	defer g.muNode.RUnlock()

	clone := &Graph{
		nodes: make(map[string]*Node, len(g.nodes)),
		edges: make(map[string]*Edge, len(g.edges)),
		out:   make(map[string]map[string]map[string]struct{}, len(g.out)),
		in:    make(map[string]map[string]map[string]struct{}, len(g.in)),
	}
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	for mark, n := range g.nodes {
		clone.nodes[mark] = n.Clone()
	}
	for id, e := range g.edges {
		ne := *e
		clone.edges[id] = &ne
	}
	for from, m := range g.out {
		cm := make(map[string]map[string]struct{}, len(m))
		for to, ids := range m {
			cids := make(map[string]struct{}, len(ids))
			for id := range ids {
				cids[id] = struct{}{}
			}
			cm[to] = cids
		}
		clone.out[from] = cm
	}
	for to, m := range g.in {
		cm := make(map[string]map[string]struct{}, len(m))
		for from, ids := range m {
			cids := make(map[string]struct{}, len(ids))
			for id := range ids {
				cids[id] = struct{}{}
			}
			cm[from] = cids
		}
		clone.in[to] = cm
	}

	return clone
}
