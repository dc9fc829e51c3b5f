package exprtree

import "fmt"

// Capacity arithmetic for the arenas, edge regions and evaluation scratch.
// All sizes derive from Caps alone so a host can budget memory for a tree
// shape before building anything.

// maxEdgeSlots bounds the per-kind edge regions so span arithmetic stays in
// int range on 32 bit targets.
const maxEdgeSlots = uint64(1) << 30

// LeafEdgeSlots returns the number of LeafRef slots in the leaf edge
// region: every branch gets a span of exactly LeafArity slots.
func LeafEdgeSlots(c Caps) uint64 {
	return uint64(c.Branches) * uint64(c.LeafArity)
}

// BranchEdgeSlots returns the number of BranchRef slots in the branch edge
// region.
func BranchEdgeSlots(c Caps) uint64 {
	return uint64(c.Branches) * uint64(c.BranchArity)
}

// MaxNodes returns the total node population a tree with these caps can
// hold.
func MaxNodes(c Caps) uint64 {
	return uint64(c.Leaves) + uint64(c.Branches)
}

// ScratchSlots returns the number of output slots held for evaluation: one
// per leaf edge plus one per branch edge. Together with the frame stack
// (one frame per branch) this is the whole per-tree evaluation footprint.
func ScratchSlots(c Caps) uint64 {
	return LeafEdgeSlots(c) + BranchEdgeSlots(c)
}

// CheckCaps rejects capacity configurations the arena layout cannot
// represent. NewBuilder applies it; it is exported so hosts can vet a
// static configuration table without constructing anything.
func CheckCaps(c Caps) error {
	if c.Leaves == 0 && c.Branches == 0 {
		return fmt.Errorf("%w: no node capacity at all", ErrBadCaps)
	}
	// The all-ones refs are reserved as NoLeaf/NoBranch.
	if c.Leaves == ^uint32(0) || c.Branches == ^uint32(0) {
		return fmt.Errorf("%w: arena capacity reserves the NoRef value", ErrBadCaps)
	}
	if LeafEdgeSlots(c) > maxEdgeSlots || BranchEdgeSlots(c) > maxEdgeSlots {
		return fmt.Errorf("%w: edge region exceeds %d slots", ErrBadCaps, maxEdgeSlots)
	}
	return nil
}
