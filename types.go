package exprtree

import "errors"

// LeafRef is a leaf arena slot index. Refs are only meaningful relative to
// the Builder/Tree instance that issued them.
type LeafRef uint32

// BranchRef is a branch arena slot index.
type BranchRef uint32

// NoLeaf and NoBranch are the reserved "absent" ref values. CheckCaps
// rejects capacities that could issue them.
const (
	NoLeaf   = LeafRef(^uint32(0))
	NoBranch = BranchRef(^uint32(0))
)

type NodeKind uint8

const (
	KindLeaf   NodeKind = 1
	KindBranch NodeKind = 2
)

// NodeRef identifies either a leaf or a branch slot. It exists so the root
// of a tree can be declared as either kind; the degenerate single-leaf tree
// is a leaf-rooted tree.
type NodeRef struct {
	Kind  NodeKind
	Index uint32
}

// Node converts a leaf ref for use where either node kind is accepted.
func (r LeafRef) Node() NodeRef { return NodeRef{Kind: KindLeaf, Index: uint32(r)} }

// Node converts a branch ref for use where either node kind is accepted.
func (r BranchRef) Node() NodeRef { return NodeRef{Kind: KindBranch, Index: uint32(r)} }

// Caps fixes every capacity of one tree up front. All storage, including
// the evaluation scratch, is sized from these four numbers; nothing grows
// afterwards.
type Caps struct {
	// Leaves and Branches bound the arena populations.
	Leaves   uint32
	Branches uint32
	// LeafArity and BranchArity bound the direct children of every branch.
	LeafArity   uint32
	BranchArity uint32
}

var (
	ErrBadCaps          = errors.New("exprtree: invalid capacity configuration")
	ErrCapacityExceeded = errors.New("exprtree: node arena full")
	ErrUnknownIndex     = errors.New("exprtree: ref does not address a populated slot")
	ErrAlreadyOwned     = errors.New("exprtree: child is already attached to a parent")
	ErrArityExceeded    = errors.New("exprtree: parent's child slots are full")
	ErrCycleDetected    = errors.New("exprtree: child is an ancestor of parent")
	ErrUnreachableNodes = errors.New("exprtree: populated node not reachable from root")
	ErrInvalidRoot      = errors.New("exprtree: root does not address a populated slot")
	ErrBuilderFinished  = errors.New("exprtree: builder already finished")
)
