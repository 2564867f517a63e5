package core

// HasPath reports whether target is reachable from source via a directed
// walk of existing edges (a plain BFS reachability test).
func (g *Graph) HasPath(source, target string) bool {
	if source == target {
		return g.HasNode(source)
	}
	if !g.HasNode(source) || !g.HasNode(target) {
		return false
	}

	visited := map[string]struct{}{source: {}}
	queue := []string{source}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, m := range g.SuccessorMarks(cur) {
			if m == target {
				return true
			}
			if _, ok := visited[m]; ok {
				continue
			}
			visited[m] = struct{}{}
			queue = append(queue, m)
		}
	}

	return false
}

// AllSimplePaths enumerates every simple path (no repeated node) from
// source to target, as node-Mark sequences including both endpoints,
// mirroring networkx.all_simple_paths which the original GRAPE tool uses
// to build the service-paths table.
func (g *Graph) AllSimplePaths(source, target string) [][]string {
	if !g.HasNode(source) || !g.HasNode(target) {
		return nil
	}

	var out [][]string
	visited := map[string]struct{}{source: {}}
	path := []string{source}

	var walk func(cur string)
	walk = func(cur string) {
		if cur == target {
			cp := make([]string, len(path))
			copy(cp, path)
			out = append(out, cp)
			return
		}
		for _, next := range g.SuccessorMarks(cur) {
			if _, ok := visited[next]; ok {
				continue
			}
			visited[next] = struct{}{}
			path = append(path, next)
			walk(next)
			path = path[:len(path)-1]
			delete(visited, next)
		}
	}
	walk(source)

	return out
}
