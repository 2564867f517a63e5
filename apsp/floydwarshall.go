package apsp

import (
	"math"
	"sync"

	"github.com/latticekit/plantgraph/core"
)

// denseMatrices holds the relabeled distance and predecessor matrices for
// the dense Floyd–Warshall back-end. Nodes are relabeled 0..n-1 by sorted
// Mark, using a row-major flat buffer (as lvlath's matrix.Dense does)
// rather than a slice-of-slices.
type denseMatrices struct {
	n     int
	dist  []float64 // row-major n*n
	pred  []float64 // row-major n*n; math.Inf(1) means "no predecessor"
	ids   []string  // label -> Mark
	index map[string]int
}

// newDenseMatrices builds the initial adjacency-derived dist/pred matrices:
// dist[i][j] = edge weight where an edge exists, +Inf elsewhere, 0 on the
// diagonal; pred[u][v] = u where an edge u->v exists, +Inf elsewhere.
func newDenseMatrices(g *core.Graph) *denseMatrices {
	ids := g.Nodes()
	n := len(ids)
	index := make(map[string]int, n)
	for i, m := range ids {
		index[m] = i
	}

	dist := make([]float64, n*n)
	pred := make([]float64, n*n)
	for i := 0; i < n*n; i++ {
		dist[i] = math.Inf(1)
		pred[i] = math.Inf(1)
	}
	for i := 0; i < n; i++ {
		dist[i*n+i] = 0
	}
	for _, e := range g.Edges() {
		u, v := index[e.From], index[e.To]
		// The graph holds at most one edge per ordered pair; taking the
		// minimum keeps the single adjacency-matrix cell well-defined.
		if w := e.Weight; w < dist[u*n+v] {
			dist[u*n+v] = w
			pred[u*n+v] = float64(u)
		}
	}

	return &denseMatrices{n: n, dist: dist, pred: pred, ids: ids, index: index}
}

// floydWarshallSerialKernel runs the canonical k->i->j triple loop in
// place, exactly as lvlath's matrix.floydWarshallInPlace does, plus
// predecessor-matrix maintenance for path reconstruction.
func floydWarshallSerialKernel(dist, pred []float64, n int) {
	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			ik := dist[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI := i * n
			for j := 0; j < n; j++ {
				kj := dist[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand := ik + kj
				if cand < dist[baseI+j] {
					dist[baseI+j] = cand
					pred[baseI+j] = pred[baseK+j]
				}
			}
		}
	}
}

// floydWarshallParallelKernel partitions the row space into contiguous
// bands, one per worker, and synchronizes on a cyclic barrier after each
// intermediate vertex k so that every row reflects iteration k before any
// worker begins k+1.
func floydWarshallParallelKernel(dist, pred []float64, n, workers int) {
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	bands := partitionRows(n, workers)
	b := newCyclicBarrier(len(bands))

	var wg sync.WaitGroup
	wg.Add(len(bands))
	for _, band := range bands {
		lo, hi := band[0], band[1]
		go func(lo, hi int) {
			defer wg.Done()
			for k := 0; k < n; k++ {
				baseK := k * n
				for i := lo; i < hi; i++ {
					ik := dist[i*n+k]
					if !math.IsInf(ik, 1) {
						baseI := i * n
						for j := 0; j < n; j++ {
							kj := dist[baseK+j]
							if math.IsInf(kj, 1) {
								continue
							}
							cand := ik + kj
							if cand < dist[baseI+j] {
								dist[baseI+j] = cand
								pred[baseI+j] = pred[baseK+j]
							}
						}
					}
				}
				b.wait()
			}
		}(lo, hi)
	}
	wg.Wait()
}

// partitionRows splits [0,n) into `workers` contiguous row bands, as close
// to equal as possible, the same balancing lvlath's chunk_it helper does.
func partitionRows(n, workers int) [][2]int {
	bands := make([][2]int, 0, workers)
	base := n / workers
	rem := n % workers
	start := 0
	for i := 0; i < workers; i++ {
		size := base
		if i < rem {
			size++
		}
		if size == 0 {
			continue
		}
		bands = append(bands, [2]int{start, start + size})
		start += size
	}

	return bands
}

// constructPath walks the predecessor matrix from source s to target t,
// reconstructing the shortest path Floyd–Warshall found.
func constructPath(pred []float64, n, s, t int) []int {
	if s == t {
		return []int{s}
	}
	curr := pred[s*n+t]
	if math.IsInf(curr, 1) {
		return nil
	}
	path := []int{t, int(curr)}
	for int(curr) != s {
		curr = pred[s*n+int(curr)]
		path = append(path, int(curr))
	}
	// Reverse in place.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// buildResult walks every (s,t) pair through constructPath and derives the
// shortest path, its length, and the nodal efficiency entry for each.
func (m *denseMatrices) buildResult(backend Backend) *Result {
	res := &Result{
		ShortestPath: make(map[string]map[string][]string, m.n),
		ShPathLength: make(map[string]map[string]float64, m.n),
		Efficiency:   make(map[string][]EfficiencyEntry, m.n),
		Backend:      backend,
	}

	for i := 0; i < m.n; i++ {
		srcMark := m.ids[i]
		paths := make(map[string][]string)
		lengths := make(map[string]float64)
		var eff []EfficiencyEntry
		for j := 0; j < m.n; j++ {
			nodes := constructPath(m.pred, m.n, i, j)
			if len(nodes) == 0 {
				continue
			}
			tgtMark := m.ids[j]
			seq := make([]string, len(nodes))
			for k, id := range nodes {
				seq[k] = m.ids[id]
			}
			paths[tgtMark] = seq
			length := m.dist[i*m.n+j]
			lengths[tgtMark] = length
			eff = append(eff, EfficiencyEntry{Target: tgtMark, Value: deriveEfficiency(length)})
		}
		res.ShortestPath[srcMark] = paths
		res.ShPathLength[srcMark] = lengths
		res.Efficiency[srcMark] = eff
	}

	return res
}

func floydWarshallSerial(g *core.Graph) (*Result, error) {
	m := newDenseMatrices(g)
	floydWarshallSerialKernel(m.dist, m.pred, m.n)

	return m.buildResult(BackendFloydWarshallSerial), nil
}

func floydWarshallParallel(g *core.Graph, workers int) (*Result, error) {
	m := newDenseMatrices(g)
	floydWarshallParallelKernel(m.dist, m.pred, m.n, workers)

	return m.buildResult(BackendFloydWarshallParallel), nil
}
