package exprtree

// ComputableLeaf is the evaluation contract for leaf node types: given the
// externally owned context, produce a value. C is the context type shared
// by every node of one tree, O the output domain shared by leaves and
// branches.
//
// Compute must be total and bounded: it runs inside the caller's tick
// budget, so it must not block and has no error channel. A leaf that
// cannot produce a meaningful value encodes that in O (a sentinel, a
// zero, an Option-like wrapper) rather than failing the call.
//
// A leaf type that keeps cross-call state (a running filter, an
// accumulator) must be instantiated as a pointer type argument so that the
// state addressed by the tree's arena slot is the state being mutated; a
// value type argument computes against a copy and its mutations are lost.
type ComputableLeaf[C, O any] interface {
	Compute(ctx *C) O
}

// ComputableBranch is the evaluation contract for branch node types.
// leafOutputs holds the outputs of this branch's direct leaf children and
// branchOutputs those of its direct branch children, each in the order the
// children were attached during building. Both slices are views into
// tree-owned scratch and are only valid for the duration of the call.
//
// The totality, bounded-time and statefulness rules of ComputableLeaf
// apply unchanged.
type ComputableBranch[C, O any] interface {
	Compute(ctx *C, leafOutputs []O, branchOutputs []O) O
}
