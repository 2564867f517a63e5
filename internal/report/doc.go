// Package report writes orchestrator.Result tables to CSV in three
// output formats: node characterization, service paths, and the
// Gephi-friendly topology dump. Like internal/loader, this uses
// encoding/csv rather than a third-party library — see DESIGN.md.
package report
