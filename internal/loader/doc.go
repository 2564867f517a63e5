// Package loader parses the plant topology input CSV into a *core.Graph.
// It uses encoding/csv rather than a third-party CSV library — see
// DESIGN.md for why.
package loader
