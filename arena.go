package exprtree

// Arena slot layouts. Slots hold the application-supplied node values by
// value; ownership moves into the arena at AddLeaf/AddBranch and never
// leaves it again.

// leafSlot holds one leaf node and its static metadata. Leaves are
// terminal: no edges.
type leafSlot[L, LM any] struct {
	leaf L
	meta LM
}

// branchSlot holds one branch node, its static metadata and its ordered
// child spans. The spans alias fixed per-branch segments of the builder's
// preallocated edge regions: appending within their capacity records an
// edge without moving anything.
type branchSlot[B, BM any] struct {
	branch     B
	meta       BM
	leafKids   []LeafRef
	branchKids []BranchRef
}
