package exprtreetesting

import (
	"fmt"

	"go.uber.org/zap"

	exprtree "github.com/Eisverygoodletter/tiny-expr-tree"
)

// Aliases pin down the generic instantiations once, the way hosts are
// expected to.
type (
	SumTree    = exprtree.Tree[Tick, int64, ConstLeaf, SumBranch, Tag, Tag]
	SumBuilder = exprtree.Builder[Tick, int64, ConstLeaf, SumBranch, Tag, Tag]
)

// NewFanoutTree builds a balanced sum tree with depth levels of branches,
// every branch owning fanout children of the next level and the deepest
// level owning fanout constant leaves each. It returns the tree and the
// value one Compute call must produce.
func NewFanoutTree(depth, fanout int, leafValue int64) (*SumTree, int64, error) {
	if depth < 1 || fanout < 1 {
		return nil, 0, fmt.Errorf("fanout tree needs depth and fanout >= 1, got %d/%d", depth, fanout)
	}

	branches, width := 0, 1
	for i := 0; i < depth; i++ {
		branches += width
		width *= fanout
	}
	leaves := width

	b, err := exprtree.NewBuilder[Tick, int64, ConstLeaf, SumBranch, Tag, Tag](exprtree.Caps{
		Leaves:      uint32(leaves),
		Branches:    uint32(branches),
		LeafArity:   uint32(fanout),
		BranchArity: uint32(fanout),
	})
	if err != nil {
		return nil, 0, err
	}

	root, err := b.AddBranch(SumBranch{}, 0)
	if err != nil {
		return nil, 0, err
	}
	level := []exprtree.BranchRef{root}
	for d := 1; d < depth; d++ {
		next := make([]exprtree.BranchRef, 0, len(level)*fanout)
		for _, parent := range level {
			for i := 0; i < fanout; i++ {
				child, err := b.AddBranch(SumBranch{}, Tag(d))
				if err != nil {
					return nil, 0, err
				}
				if err := b.AttachBranch(parent, child); err != nil {
					return nil, 0, err
				}
				next = append(next, child)
			}
		}
		level = next
	}
	for _, parent := range level {
		for i := 0; i < fanout; i++ {
			leaf, err := b.AddLeaf(ConstLeaf{V: leafValue}, Tag(depth))
			if err != nil {
				return nil, 0, err
			}
			if err := b.AttachLeaf(parent, leaf); err != nil {
				return nil, 0, err
			}
		}
	}

	tree, err := b.Finish(root.Node())
	if err != nil {
		return nil, 0, err
	}
	return tree, int64(leaves) * leafValue, nil
}

// BuildFanout is NewFanoutTree under the harness: failures fail the test
// and the shape is logged against the run id.
func (c *TestContext) BuildFanout(depth, fanout int, leafValue int64) (*SumTree, int64) {
	tree, want, err := NewFanoutTree(depth, fanout, leafValue)
	if err != nil {
		c.T.Fatalf("build fanout tree: %v", err)
	}
	c.Log.Info("built fanout tree",
		zap.String("run", c.RunID),
		zap.Int("depth", depth),
		zap.Int("fanout", fanout),
		zap.Int("branches", tree.BranchCount()),
		zap.Int("leaves", tree.LeafCount()),
	)
	return tree, want
}
