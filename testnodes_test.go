package exprtree

// Instrumented node types shared by the package tests, in the spirit of
// the canonical test db used by the mmr tests. The context is a control
// tick carrying raw channel samples; outputs are int64 throughout.

type tick struct {
	raw []int64
}

// constLeaf ignores the context entirely.
type constLeaf struct {
	v int64
}

func (l constLeaf) Compute(ctx *tick) int64 { return l.v }

// chanLeaf reads one raw channel. A channel missing from the tick is
// encoded in the output domain as zero; leaves have no error channel.
type chanLeaf struct {
	ch int
}

func (l chanLeaf) Compute(ctx *tick) int64 {
	if l.ch < 0 || l.ch >= len(ctx.raw) {
		return 0
	}
	return ctx.raw[l.ch]
}

// sequencer hands out strictly increasing stamps so tests can assert
// evaluation order across nodes.
type sequencer struct {
	n int
}

func (s *sequencer) next() int {
	s.n++
	return s.n
}

// countLeaf records how often and in what order it ran. Pointer type
// argument so the arena-held state is the state mutated.
type countLeaf struct {
	v        int64
	seq      *sequencer
	computes int
	stamp    int
}

func (l *countLeaf) Compute(ctx *tick) int64 {
	l.computes++
	l.stamp = l.seq.next()
	return l.v
}

// sumBranch folds both child rows by addition.
type sumBranch struct{}

func (sumBranch) Compute(ctx *tick, leafOutputs, branchOutputs []int64) int64 {
	var total int64
	for _, v := range leafOutputs {
		total += v
	}
	for _, v := range branchOutputs {
		total += v
	}
	return total
}

type branchOp uint8

const (
	opSum branchOp = iota
	opPass
)

// opBranch selects its fold per node value, the way a host application
// would encode a small operator set in one branch type.
type opBranch struct {
	op branchOp
}

func (b opBranch) Compute(ctx *tick, leafOutputs, branchOutputs []int64) int64 {
	switch b.op {
	case opPass:
		// Pass the single child's value through unchanged, preferring the
		// sub-branch channel.
		if len(branchOutputs) > 0 {
			return branchOutputs[0]
		}
		if len(leafOutputs) > 0 {
			return leafOutputs[0]
		}
		return 0
	default:
		return sumBranch{}.Compute(ctx, leafOutputs, branchOutputs)
	}
}

// countBranch is sumBranch with run accounting.
type countBranch struct {
	seq      *sequencer
	computes int
	stamp    int
}

func (b *countBranch) Compute(ctx *tick, leafOutputs, branchOutputs []int64) int64 {
	b.computes++
	b.stamp = b.seq.next()
	return sumBranch{}.Compute(ctx, leafOutputs, branchOutputs)
}

// accumBranch keeps a running total across ticks.
type accumBranch struct {
	total int64
}

func (b *accumBranch) Compute(ctx *tick, leafOutputs, branchOutputs []int64) int64 {
	b.total += sumBranch{}.Compute(ctx, leafOutputs, branchOutputs)
	return b.total
}
