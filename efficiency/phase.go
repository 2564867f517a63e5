package efficiency

// Phase selects which snapshot of a node's efficiency fields a computation
// writes to: Before the graph has seen any perturbation, or After a
// cascade has mutated it — the "original_*" vs "final_*" fields.
type Phase int

const (
	// Before writes the original_* efficiency fields.
	Before Phase = iota
	// After writes the final_* efficiency fields.
	After
)
