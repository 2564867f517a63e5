package apsp

import (
	"container/heap"
	"fmt"

	"github.com/latticekit/plantgraph/core"
	"golang.org/x/sync/errgroup"
)

// ssspResult is one source's single-source-shortest-path output, in the
// same dist-map/prev-map shape as lvlath's dijkstra.Dijkstra, but using
// float64 weights since service flow is a floating-point value.
type ssspResult struct {
	dist map[string]float64
	prev map[string]string
}

// nodeItem and nodePQ are a lazy-decrease-key min-heap, identical in shape
// to lvlath's dijkstra.nodeItem/nodePQ, adapted to float64 distances.
type nodeItem struct {
	mark string
	dist float64
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// singleSourceDijkstra computes shortest distances and predecessors from
// source to every reachable node in g. Edge weights must be non-negative;
// the graph store already rejects negative weights at AddEdge time, so
// this is a defensive re-check.
func singleSourceDijkstra(g *core.Graph, source string) (*ssspResult, error) {
	dist := map[string]float64{source: 0}
	prev := map[string]string{}
	visited := map[string]bool{}

	pq := make(nodePQ, 0, g.NodeCount())
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{mark: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.mark, item.dist
		if visited[u] {
			continue
		}
		visited[u] = true

		for _, e := range g.Successors(u) {
			if e.Weight < 0 {
				return nil, fmt.Errorf("apsp: edge %s->%s weight=%v: %w", e.From, e.To, e.Weight, ErrNegativeWeight)
			}
			newDist := d + e.Weight
			cur, ok := dist[e.To]
			if ok && newDist >= cur {
				continue
			}
			dist[e.To] = newDist
			prev[e.To] = u
			heap.Push(&pq, &nodeItem{mark: e.To, dist: newDist})
		}
	}

	return &ssspResult{dist: dist, prev: prev}, nil
}

// reconstructPath walks prev from target back to source, reversing the
// walk the same way the dense back-end's constructPath does, so both
// back-ends agree on path shape.
func reconstructPath(prev map[string]string, source, target string) []string {
	if source == target {
		return []string{source}
	}
	if _, ok := prev[target]; !ok {
		return nil
	}
	path := []string{target}
	cur := target
	for cur != source {
		p, ok := prev[cur]
		if !ok {
			return nil
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

func ssspToEntry(g *core.Graph, source string, res *ssspResult) (map[string][]string, map[string]float64, []EfficiencyEntry) {
	paths := make(map[string][]string)
	lengths := make(map[string]float64)
	var eff []EfficiencyEntry
	for _, target := range g.Nodes() {
		d, ok := res.dist[target]
		if !ok {
			continue
		}
		seq := reconstructPath(res.prev, source, target)
		if len(seq) == 0 {
			continue
		}
		paths[target] = seq
		lengths[target] = d
		eff = append(eff, EfficiencyEntry{Target: target, Value: deriveEfficiency(d)})
	}

	return paths, lengths, eff
}

func dijkstraSerial(g *core.Graph) (*Result, error) {
	res := &Result{
		ShortestPath: make(map[string]map[string][]string),
		ShPathLength: make(map[string]map[string]float64),
		Efficiency:   make(map[string][]EfficiencyEntry),
		Backend:      BackendDijkstraSerial,
	}
	for _, source := range g.Nodes() {
		sssp, err := singleSourceDijkstra(g, source)
		if err != nil {
			return nil, err
		}
		paths, lengths, eff := ssspToEntry(g, source, sssp)
		res.ShortestPath[source] = paths
		res.ShPathLength[source] = lengths
		res.Efficiency[source] = eff
	}

	return res, nil
}

// sourceOutcome streams one source's computed SSSP result through a
// bounded multi-producer/single-consumer channel back to the collector.
type sourceOutcome struct {
	source string
	sssp   *ssspResult
}

func dijkstraParallel(g *core.Graph, workers int) (*Result, error) {
	nodes := g.Nodes()
	if workers < 1 {
		workers = 1
	}
	if workers > len(nodes) {
		workers = len(nodes)
	}
	if workers == 0 {
		return &Result{
			ShortestPath: map[string]map[string][]string{},
			ShPathLength: map[string]map[string]float64{},
			Efficiency:   map[string][]EfficiencyEntry{},
			Backend:      BackendDijkstraParallel,
		}, nil
	}

	chunks := chunkNodes(nodes, workers)
	outcomes := make(chan sourceOutcome, len(nodes))

	grp := &errgroup.Group{}
	for _, chunk := range chunks {
		chunk := chunk
		grp.Go(func() error {
			for _, source := range chunk {
				sssp, err := singleSourceDijkstra(g, source)
				if err != nil {
					return err
				}
				outcomes <- sourceOutcome{source: source, sssp: sssp}
			}

			return nil
		})
	}

	// Close the channel once every worker has finished so the collector
	// loop below terminates; the error (if any) is observed after drain
	// so a failed worker never lets partial APSP state be consumed as if
	// it were complete.
	go func() {
		_ = grp.Wait()
		close(outcomes)
	}()

	res := &Result{
		ShortestPath: make(map[string]map[string][]string, len(nodes)),
		ShPathLength: make(map[string]map[string]float64, len(nodes)),
		Efficiency:   make(map[string][]EfficiencyEntry, len(nodes)),
		Backend:      BackendDijkstraParallel,
	}
	for oc := range outcomes {
		paths, lengths, eff := ssspToEntry(g, oc.source, oc.sssp)
		res.ShortestPath[oc.source] = paths
		res.ShPathLength[oc.source] = lengths
		res.Efficiency[oc.source] = eff
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return res, nil
}

// chunkNodes splits nodes into n contiguous chunks, balancing sizes the
// same way the dense back-end's partitionRows does.
func chunkNodes(nodes []string, n int) [][]string {
	chunks := make([][]string, 0, n)
	base := len(nodes) / n
	rem := len(nodes) % n
	start := 0
	for i := 0; i < n; i++ {
		size := base
		if i < rem {
			size++
		}
		if size == 0 {
			continue
		}
		chunks = append(chunks, nodes[start:start+size])
		start += size
	}

	return chunks
}
