package exprtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSprintShowsShapeAndMeta(t *testing.T) {
	b := newTestBuilder(t, testCaps)

	root, err := b.AddBranch(sumBranch{}, 10)
	require.NoError(t, err)
	sub, err := b.AddBranch(sumBranch{}, 11)
	require.NoError(t, err)
	l0, err := b.AddLeaf(constLeaf{v: 1}, 20)
	require.NoError(t, err)
	l1, err := b.AddLeaf(constLeaf{v: 2}, 21)
	require.NoError(t, err)
	require.NoError(t, b.AttachLeaf(root, l0))
	require.NoError(t, b.AttachBranch(root, sub))
	require.NoError(t, b.AttachLeaf(sub, l1))

	tree, err := b.Finish(root.Node())
	require.NoError(t, err)

	want := "branch 0 meta=10\n" +
		"  leaf 0 meta=20\n" +
		"  branch 1 meta=11\n" +
		"    leaf 1 meta=21\n"
	require.Equal(t, want, tree.Sprint())
}

func TestSprintLeafRoot(t *testing.T) {
	b := newTestBuilder(t, Caps{Leaves: 1})
	l0, err := b.AddLeaf(constLeaf{v: 1}, 5)
	require.NoError(t, err)
	tree, err := b.Finish(l0.Node())
	require.NoError(t, err)

	require.Equal(t, "leaf 0 (root) meta=5\n", tree.Sprint())
}
