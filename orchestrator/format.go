package orchestrator

import (
	"sort"
	"strconv"
	"strings"

	"github.com/latticekit/plantgraph/core"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptFloat(v *float64) string {
	if v == nil {
		return ""
	}

	return formatFloat(*v)
}

func joinPath(path []string) string {
	return strings.Join(path, ",")
}

func joinSimplePaths(paths [][]string) string {
	parts := make([]string, len(paths))
	for i, p := range paths {
		parts[i] = joinPath(p)
	}

	return strings.Join(parts, ";")
}

func lookupEfficiency(entries []core.EfficiencyEntry, target string) (float64, bool) {
	for _, e := range entries {
		if e.Target == target {
			return e.Value, true
		}
	}

	return 0, false
}

// sourcesAndUsers returns the Marks of SOURCE nodes and of USER nodes, each
// list sorted by Mark; nodes of any other Type are left out.
func sourcesAndUsers(g *core.Graph) ([]string, []string) {
	var sources, users []string
	for _, mark := range g.Nodes() {
		node, err := g.Node(mark)
		if err != nil {
			continue
		}
		switch node.Type {
		case core.TypeSource:
			sources = append(sources, mark)
		case core.TypeUser:
			users = append(users, mark)
		}
	}
	sort.Strings(sources)
	sort.Strings(users)

	return sources, users
}

// resolveStatusField implements update_status's per-mark rule: a mark in
// alreadyUpdated always reads blank; otherwise it reads statusMap's value
// if present, else blank.
func resolveStatusField(mark string, statusMap map[string]string, alreadyUpdated map[string]bool) string {
	if alreadyUpdated[mark] {
		return ""
	}
	if v, ok := statusMap[mark]; ok {
		return v
	}

	return ""
}

func containsString(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}

	return false
}
