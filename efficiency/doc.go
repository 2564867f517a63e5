// Package efficiency computes nodal, local, and global efficiency plus
// betweenness, closeness, and in-/out-/total-degree centrality from an
// APSP result.
//
// Every function here reads and writes core.Node fields directly; none
// of them touch the graph's topology, only its derived attributes.
package efficiency
