package exprtreetesting

// Ready-made context and node types for integer-valued trees. They cover
// the common test shapes: constants, context reads, additive folds.

// Tick is the evaluation context: one control-loop iteration's raw channel
// samples.
type Tick struct {
	Raw []int64
}

// Tag is the static node metadata used throughout the helpers.
type Tag uint16

// ConstLeaf ignores the context.
type ConstLeaf struct {
	V int64
}

func (l ConstLeaf) Compute(ctx *Tick) int64 { return l.V }

// ChannelLeaf reads one raw channel from the tick; an absent channel is
// zero in the output domain.
type ChannelLeaf struct {
	Channel int
}

func (l ChannelLeaf) Compute(ctx *Tick) int64 {
	if l.Channel < 0 || l.Channel >= len(ctx.Raw) {
		return 0
	}
	return ctx.Raw[l.Channel]
}

// SumBranch adds both child rows.
type SumBranch struct{}

func (SumBranch) Compute(ctx *Tick, leafOutputs, branchOutputs []int64) int64 {
	var total int64
	for _, v := range leafOutputs {
		total += v
	}
	for _, v := range branchOutputs {
		total += v
	}
	return total
}
