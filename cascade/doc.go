// Package cascade implements the failure-propagation engine: an iterative
// depth-first walk over successors that marks nodes broken according to
// their predecessor logic (SINGLE/AND/OR/ORPHAN) and toggles isolation
// valves.
//
// An Engine's Broken/NewStatus/FinalStatus maps persist across every
// PropagateFrom call made during one perturbation, matching the source
// behavior of accumulating cascade state across multiple removed roots
// within a single delete_node or simulate_area_perturbation run.
package cascade
