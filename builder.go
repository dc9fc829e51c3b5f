package exprtree

import "fmt"

// Builder accumulates nodes and edges and freezes them into a Tree.
//
// Validation is incremental: every attach re-establishes the structural
// invariants before recording anything, so a configuration error is
// reported at the offending call and the structure-so-far is always a
// valid forest. Finish only has to check root validity and reachability.
//
// The zero Builder is not usable; construct with NewBuilder.
type Builder[C, O any, L ComputableLeaf[C, O], B ComputableBranch[C, O], LM, BM any] struct {
	caps Caps

	leaves   []leafSlot[L, LM]
	branches []branchSlot[B, BM]

	// Preallocated edge regions; branch i owns the half-open span
	// [i*arity, (i+1)*arity) of each.
	leafEdges   []LeafRef
	branchEdges []BranchRef

	// Ownership tracking for the single-ownership invariant and the
	// ancestor walk. NoBranch marks an unowned node.
	leafParent   []BranchRef
	branchParent []BranchRef

	finished bool
}

// NewBuilder validates caps and preallocates every region a tree of that
// shape can need. This is the only growth point: AddLeaf, AddBranch and
// the attach operations never allocate.
func NewBuilder[C, O any, L ComputableLeaf[C, O], B ComputableBranch[C, O], LM, BM any](
	caps Caps,
) (*Builder[C, O, L, B, LM, BM], error) {
	if err := CheckCaps(caps); err != nil {
		return nil, err
	}
	b := &Builder[C, O, L, B, LM, BM]{
		caps:         caps,
		leaves:       make([]leafSlot[L, LM], 0, caps.Leaves),
		branches:     make([]branchSlot[B, BM], 0, caps.Branches),
		leafEdges:    make([]LeafRef, LeafEdgeSlots(caps)),
		branchEdges:  make([]BranchRef, BranchEdgeSlots(caps)),
		leafParent:   make([]BranchRef, 0, caps.Leaves),
		branchParent: make([]BranchRef, 0, caps.Branches),
	}
	return b, nil
}

// Caps returns the capacity configuration the builder was created with.
func (b *Builder[C, O, L, B, LM, BM]) Caps() Caps { return b.caps }

// LeafCount returns the number of leaves added so far.
func (b *Builder[C, O, L, B, LM, BM]) LeafCount() int { return len(b.leaves) }

// BranchCount returns the number of branches added so far.
func (b *Builder[C, O, L, B, LM, BM]) BranchCount() int { return len(b.branches) }

// AddLeaf moves leaf and its static metadata into the leaf arena and
// returns its ref. Fails with ErrCapacityExceeded when the arena is full;
// the builder is unchanged on failure.
func (b *Builder[C, O, L, B, LM, BM]) AddLeaf(leaf L, meta LM) (LeafRef, error) {
	if b.finished {
		return NoLeaf, ErrBuilderFinished
	}
	if len(b.leaves) == int(b.caps.Leaves) {
		return NoLeaf, fmt.Errorf("%w: leaf arena at %d", ErrCapacityExceeded, b.caps.Leaves)
	}
	ref := LeafRef(len(b.leaves))
	b.leaves = append(b.leaves, leafSlot[L, LM]{leaf: leaf, meta: meta})
	b.leafParent = append(b.leafParent, NoBranch)
	return ref, nil
}

// AddBranch moves branch and its static metadata into the branch arena,
// with no children yet, and returns its ref. Fails with
// ErrCapacityExceeded when the arena is full.
func (b *Builder[C, O, L, B, LM, BM]) AddBranch(branch B, meta BM) (BranchRef, error) {
	if b.finished {
		return NoBranch, ErrBuilderFinished
	}
	if len(b.branches) == int(b.caps.Branches) {
		return NoBranch, fmt.Errorf("%w: branch arena at %d", ErrCapacityExceeded, b.caps.Branches)
	}
	ref := BranchRef(len(b.branches))

	// Carve this branch's edge spans: zero length, capacity pinned at the
	// declared arity so appends record in place.
	lbase := int(ref) * int(b.caps.LeafArity)
	bbase := int(ref) * int(b.caps.BranchArity)
	b.branches = append(b.branches, branchSlot[B, BM]{
		branch:     branch,
		meta:       meta,
		leafKids:   b.leafEdges[lbase:lbase : lbase+int(b.caps.LeafArity)],
		branchKids: b.branchEdges[bbase:bbase : bbase+int(b.caps.BranchArity)],
	})
	b.branchParent = append(b.branchParent, NoBranch)
	return ref, nil
}

// AttachLeaf records that parent owns child as its next leaf child.
func (b *Builder[C, O, L, B, LM, BM]) AttachLeaf(parent BranchRef, child LeafRef) error {
	if b.finished {
		return ErrBuilderFinished
	}
	if int(parent) >= len(b.branches) {
		return fmt.Errorf("%w: parent branch %d", ErrUnknownIndex, parent)
	}
	if int(child) >= len(b.leaves) {
		return fmt.Errorf("%w: child leaf %d", ErrUnknownIndex, child)
	}
	if b.leafParent[child] != NoBranch {
		return fmt.Errorf("%w: leaf %d owned by branch %d", ErrAlreadyOwned, child, b.leafParent[child])
	}
	s := &b.branches[parent]
	if len(s.leafKids) == int(b.caps.LeafArity) {
		return fmt.Errorf("%w: branch %d at leaf arity %d", ErrArityExceeded, parent, b.caps.LeafArity)
	}
	s.leafKids = append(s.leafKids, child)
	b.leafParent[child] = parent
	return nil
}

// AttachBranch records that parent owns child as its next branch child.
// Beyond the AttachLeaf checks it rejects, with ErrCycleDetected, any
// child that is parent itself or one of parent's ancestors. The ancestor
// walk is bounded by the current tree depth; because every attach is
// checked, the structure is acyclic by induction and the walk terminates.
func (b *Builder[C, O, L, B, LM, BM]) AttachBranch(parent, child BranchRef) error {
	if b.finished {
		return ErrBuilderFinished
	}
	if int(parent) >= len(b.branches) {
		return fmt.Errorf("%w: parent branch %d", ErrUnknownIndex, parent)
	}
	if int(child) >= len(b.branches) {
		return fmt.Errorf("%w: child branch %d", ErrUnknownIndex, child)
	}
	for a := parent; a != NoBranch; a = b.branchParent[a] {
		if a == child {
			return fmt.Errorf("%w: branch %d is an ancestor of branch %d", ErrCycleDetected, child, parent)
		}
	}
	if b.branchParent[child] != NoBranch {
		return fmt.Errorf("%w: branch %d owned by branch %d", ErrAlreadyOwned, child, b.branchParent[child])
	}
	s := &b.branches[parent]
	if len(s.branchKids) == int(b.caps.BranchArity) {
		return fmt.Errorf("%w: branch %d at branch arity %d", ErrArityExceeded, parent, b.caps.BranchArity)
	}
	s.branchKids = append(s.branchKids, child)
	b.branchParent[child] = parent
	return nil
}

// Finish validates the global invariants and freezes the builder into an
// immutable Tree.
//
// root must address a populated slot (ErrInvalidRoot) and every populated
// slot must be reachable from it (ErrUnreachableNodes) - orphaned nodes
// are a usage error, never silently dropped. On failure the builder stays
// usable, so a host can attach the orphans and retry; on success the
// builder is dead and all further operations return ErrBuilderFinished.
func (b *Builder[C, O, L, B, LM, BM]) Finish(root NodeRef) (*Tree[C, O, L, B, LM, BM], error) {
	if b.finished {
		return nil, ErrBuilderFinished
	}
	switch root.Kind {
	case KindLeaf:
		if int(root.Index) >= len(b.leaves) {
			return nil, fmt.Errorf("%w: leaf %d", ErrInvalidRoot, root.Index)
		}
		// A leaf root reaches nothing but itself.
		if len(b.branches) != 0 || len(b.leaves) != 1 {
			return nil, fmt.Errorf("%w: leaf-rooted tree holds %d branches and %d leaves",
				ErrUnreachableNodes, len(b.branches), len(b.leaves))
		}
	case KindBranch:
		if int(root.Index) >= len(b.branches) {
			return nil, fmt.Errorf("%w: branch %d", ErrInvalidRoot, root.Index)
		}
		if err := b.checkReachable(BranchRef(root.Index)); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: kind %d", ErrInvalidRoot, root.Kind)
	}

	t := &Tree[C, O, L, B, LM, BM]{
		caps:     b.caps,
		leaves:   b.leaves,
		branches: b.branches,
		root:     root,
		// Evaluation scratch, the last allocations this tree ever makes.
		// One output slot per edge slot, one frame per branch.
		leafOuts:   make([]O, LeafEdgeSlots(b.caps)),
		branchOuts: make([]O, BranchEdgeSlots(b.caps)),
		stack:      make([]evalFrame, len(b.branches)),
	}
	b.finished = true
	return t, nil
}

// checkReachable walks the forest from root and verifies that it covers
// every populated slot. Single ownership makes over-counting impossible,
// so plain counting suffices; the walk visits each branch once.
func (b *Builder[C, O, L, B, LM, BM]) checkReachable(root BranchRef) error {
	stack := make([]BranchRef, 0, len(b.branches))
	stack = append(stack, root)
	seenBranches, seenLeaves := 0, 0
	for len(stack) > 0 {
		br := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		s := &b.branches[br]
		seenBranches++
		seenLeaves += len(s.leafKids)
		stack = append(stack, s.branchKids...)
	}
	if seenBranches != len(b.branches) || seenLeaves != len(b.leaves) {
		return fmt.Errorf("%w: reached %d/%d branches, %d/%d leaves",
			ErrUnreachableNodes, seenBranches, len(b.branches), seenLeaves, len(b.leaves))
	}
	return nil
}
