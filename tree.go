package exprtree

import "fmt"

// Tree is a frozen computation tree. It is only produced by
// Builder.Finish, which guarantees the structural invariants (acyclicity,
// single ownership, index validity, arity bounds, full reachability); the
// hot path trusts them and never re-checks.
//
// Structural change requires building a new tree from a new Builder. Node
// state is owned by the tree and only mutated through each node's own
// Compute call.
type Tree[C, O any, L ComputableLeaf[C, O], B ComputableBranch[C, O], LM, BM any] struct {
	caps     Caps
	leaves   []leafSlot[L, LM]
	branches []branchSlot[B, BM]
	root     NodeRef

	// Evaluation scratch, sized at Finish and reused by every Compute
	// call. Branch i owns the [i*arity, (i+1)*arity) span of each output
	// region, mirroring the edge regions.
	leafOuts   []O
	branchOuts []O
	stack      []evalFrame
}

// Caps returns the capacity configuration the tree was built under.
func (t *Tree[C, O, L, B, LM, BM]) Caps() Caps { return t.caps }

// Root returns the designated root node.
func (t *Tree[C, O, L, B, LM, BM]) Root() NodeRef { return t.root }

// LeafCount returns the populated leaf count.
func (t *Tree[C, O, L, B, LM, BM]) LeafCount() int { return len(t.leaves) }

// BranchCount returns the populated branch count.
func (t *Tree[C, O, L, B, LM, BM]) BranchCount() int { return len(t.branches) }

// LeafMeta returns the static metadata recorded with AddLeaf.
func (t *Tree[C, O, L, B, LM, BM]) LeafMeta(r LeafRef) (LM, error) {
	if int(r) >= len(t.leaves) {
		var zero LM
		return zero, fmt.Errorf("%w: leaf %d", ErrUnknownIndex, r)
	}
	return t.leaves[r].meta, nil
}

// BranchMeta returns the static metadata recorded with AddBranch.
func (t *Tree[C, O, L, B, LM, BM]) BranchMeta(r BranchRef) (BM, error) {
	if int(r) >= len(t.branches) {
		var zero BM
		return zero, fmt.Errorf("%w: branch %d", ErrUnknownIndex, r)
	}
	return t.branches[r].meta, nil
}

// LeafChildren appends the direct leaf children of r to dst, in
// registration order, and returns the extended slice. Passing a dst with
// sufficient capacity keeps the call allocation free.
func (t *Tree[C, O, L, B, LM, BM]) LeafChildren(r BranchRef, dst []LeafRef) ([]LeafRef, error) {
	if int(r) >= len(t.branches) {
		return dst, fmt.Errorf("%w: branch %d", ErrUnknownIndex, r)
	}
	return append(dst, t.branches[r].leafKids...), nil
}

// BranchChildren appends the direct branch children of r to dst, in
// registration order, and returns the extended slice.
func (t *Tree[C, O, L, B, LM, BM]) BranchChildren(r BranchRef, dst []BranchRef) ([]BranchRef, error) {
	if int(r) >= len(t.branches) {
		return dst, fmt.Errorf("%w: branch %d", ErrUnknownIndex, r)
	}
	return append(dst, t.branches[r].branchKids...), nil
}
