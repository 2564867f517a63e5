// Package apsp is the All-Pairs-Shortest-Path engine, plus the
// Floyd–Warshall path reconstruction step.
//
// ComputeShortestPaths is the single entry point; it picks between a dense
// (Floyd–Warshall) and a sparse (multi-source Dijkstra) back-end, each with
// a serial and a parallel variant, using a node-count/density threshold.
package apsp
