package exprtree

/*

# Tiny expression trees for constrained targets

This package provides a fixed-capacity computation tree: branch nodes fold
the outputs of their children, leaf nodes produce raw values from an
externally owned context. A tree is assembled once, validated, frozen, and
then evaluated on every control-loop tick with no allocation and no
structural re-checks.

It follows the same "preallocated storage, integer refs" style as the
forestrie index primitives:

- nodes live in fixed-capacity arenas and are addressed by LeafRef /
  BranchRef, never by pointer
- child edges are ordered spans carved out of one preallocated edge region
  per edge kind
- all storage is sized up front from a Caps value; Compute never allocates
- the construction path validates, the evaluation path trusts

## Core invariants

A frozen Tree guarantees:

 1. acyclicity: following branch-child edges from the root terminates
 2. single ownership: every non-root node is the child of exactly one branch
 3. index validity: every child ref addresses a populated slot
 4. arity: recorded child counts never exceed the declared per-branch caps

(1)-(4) are enforced by the Builder, mostly incrementally on each attach so
that a configuration mistake surfaces at the offending call. Finish checks
what cannot be checked incrementally: that the declared root is populated
and that every populated slot is reachable from it. The evaluator never
re-validates any of this.

## Evaluation order

Compute performs a post-order traversal driven by an explicit frame stack
(no language-level recursion; the stack is preallocated at Finish and its
depth is bounded by the branch count). On entering a branch its direct leaf
children are computed first, in registration order. Its branch children are
then descended depth-first, in registration order. Finally the branch's own
Compute is invoked with two buffers: the leaf outputs and the sub-branch
outputs, both in registration order. Sibling order is therefore
deterministic, which matters for nodes that keep cross-call state.

Compute has no error channel. A node that cannot produce a meaningful value
must encode that in the output domain; halting a control loop mid-tick is
not an option the library offers.

## Ownership and concurrency

The Tree owns all node state. Compute takes the tree's exclusive access for
its duration; there is no internal locking and concurrent Compute calls on
one tree require external mutual exclusion. The context is borrowed
read-only for the duration of a call.

Construction (NewBuilder, Finish) may allocate; it is expected to run on
the host, or once at startup, never on the tick path.

*/
