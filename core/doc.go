// Package core is the Graph Store: an immutable-topology, mutable-attribute
// directed graph of plant elements.
//
// Graph.Clone() is the only deep copy; it is what the orchestrator uses to
// freeze the pre-cascade snapshot before mutating the live graph via
// RemoveNode.
package core
