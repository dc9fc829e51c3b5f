package exprtree

// The evaluator. Post-order, explicit frame stack, zero allocation: all
// scratch was sized at Finish. See doc.go for the ordering contract.

// evalFrame tracks one branch mid-traversal. next is the cursor into the
// branch's branchKids span; its leaf row is already computed by the time
// the frame is on the stack.
type evalFrame struct {
	branch BranchRef
	next   int
}

// Compute evaluates the tree against ctx and returns the root's output.
//
// Every node's Compute runs exactly once per call. Leaf children run at
// their parent's entry, before any sibling branch is descended; siblings
// of either kind run in registration order. Compute takes the tree's
// exclusive access for its duration and must not be called concurrently
// on one tree.
//
// There is no error channel and no cancellation: a tick either completes
// or the caller must not start it. Missing-value conditions belong in O.
func (t *Tree[C, O, L, B, LM, BM]) Compute(ctx *C) O {
	if t.root.Kind == KindLeaf {
		return t.leaves[t.root.Index].leaf.Compute(ctx)
	}

	rootBranch := BranchRef(t.root.Index)
	sp := 0
	t.stack[0] = evalFrame{branch: rootBranch}
	t.computeLeafRow(ctx, rootBranch)

	for {
		f := &t.stack[sp]
		s := &t.branches[f.branch]

		if f.next < len(s.branchKids) {
			// Descend into the next registered branch child.
			child := s.branchKids[f.next]
			f.next++
			sp++
			t.stack[sp] = evalFrame{branch: child}
			t.computeLeafRow(ctx, child)
			continue
		}

		// All children of this branch are computed; fold.
		out := s.branch.Compute(ctx, t.leafRow(f.branch), t.branchRow(f.branch))
		if sp == 0 {
			return out
		}
		sp--
		// The parent's cursor is one past the edge slot this child fills.
		parent := &t.stack[sp]
		t.branchRow(parent.branch)[parent.next-1] = out
	}
}

// computeLeafRow runs the direct leaf children of br, in registration
// order, writing their outputs into the branch's span of the leaf output
// region.
func (t *Tree[C, O, L, B, LM, BM]) computeLeafRow(ctx *C, br BranchRef) {
	s := &t.branches[br]
	row := t.leafOuts[int(br)*int(t.caps.LeafArity):]
	for i, lr := range s.leafKids {
		row[i] = t.leaves[lr].leaf.Compute(ctx)
	}
}

// leafRow returns br's computed leaf outputs, length equal to its leaf
// child count.
func (t *Tree[C, O, L, B, LM, BM]) leafRow(br BranchRef) []O {
	base := int(br) * int(t.caps.LeafArity)
	return t.leafOuts[base : base+len(t.branches[br].leafKids)]
}

// branchRow returns br's sub-branch output span, length equal to its
// branch child count.
func (t *Tree[C, O, L, B, LM, BM]) branchRow(br BranchRef) []O {
	base := int(br) * int(t.caps.BranchArity)
	return t.branchOuts[base : base+len(t.branches[br].branchKids)]
}
