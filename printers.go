package exprtree

import (
	"fmt"
	"strings"
)

// debug utilities

// Sprint renders the tree shape with refs and metadata, one node per line,
// indented by depth. Host-side diagnostics only: it allocates freely and
// has no place on the tick path.
func (t *Tree[C, O, L, B, LM, BM]) Sprint() string {
	var sb strings.Builder
	if t.root.Kind == KindLeaf {
		lr := LeafRef(t.root.Index)
		fmt.Fprintf(&sb, "leaf %d (root) meta=%v\n", lr, t.leaves[lr].meta)
		return sb.String()
	}
	t.sprintBranch(&sb, BranchRef(t.root.Index), 0)
	return sb.String()
}

func (t *Tree[C, O, L, B, LM, BM]) sprintBranch(sb *strings.Builder, br BranchRef, depth int) {
	indent := strings.Repeat("  ", depth)
	s := &t.branches[br]
	fmt.Fprintf(sb, "%sbranch %d meta=%v\n", indent, br, s.meta)
	for _, lr := range s.leafKids {
		fmt.Fprintf(sb, "%s  leaf %d meta=%v\n", indent, lr, t.leaves[lr].meta)
	}
	for _, cb := range s.branchKids {
		t.sprintBranch(sb, cb, depth+1)
	}
}
