package merkle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"mimcstark/field"
)

func TestCombineNonCommutative(t *testing.T) {
	a := Node(field.New(1).String())
	b := Node(field.New(2).String())

	ab, err := Combine(a, b)
	assert.NoError(t, err)
	ba, err := Combine(b, a)
	assert.NoError(t, err)

	assert.NotEqual(t, ab, ba)
}

func TestBuildAndVerifyRoundTrip(t *testing.T) {
	leaves := []field.Value{field.New(1), field.New(2), field.New(3), field.New(4), field.New(5)}
	tree, err := Build(leaves)
	assert.NoError(t, err)

	for i, leaf := range leaves {
		path, err := tree.GetPath(i)
		assert.NoError(t, err)
		ok, err := VerifyPath(tree.Root(), i, leaf, path)
		assert.NoError(t, err)
		assert.True(t, ok, "leaf %d failed to verify", i)
	}
}

// TestSwappedPairRejected pins S6 from spec.md §8: build a two-leaf tree,
// compute the root with the pair combined in swapped order, then verify
// leaf 0 with its genuine path against that swapped root. The verifier must
// reject.
func TestSwappedPairRejected(t *testing.T) {
	leaves := []field.Value{field.New(1), field.New(2)}
	tree, err := Build(leaves)
	assert.NoError(t, err)

	swappedRoot, err := Combine(Node(leaves[1].String()), Node(leaves[0].String()))
	assert.NoError(t, err)
	assert.NotEqual(t, tree.Root(), swappedRoot)

	path, err := tree.GetPath(0)
	assert.NoError(t, err)
	ok, err := VerifyPath(swappedRoot, 0, leaves[0], path)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestMutatedPathEntryRejected(t *testing.T) {
	leaves := []field.Value{field.New(10), field.New(20), field.New(30), field.New(40)}
	tree, err := Build(leaves)
	assert.NoError(t, err)

	path, err := tree.GetPath(1)
	assert.NoError(t, err)
	mutated := append(Path{}, path...)
	mutated[0] = Node(field.New(999999).String())

	ok, err := VerifyPath(tree.Root(), 1, leaves[1], mutated)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestOddLeafCountPadsWithEmptySibling(t *testing.T) {
	leaves := []field.Value{field.New(7), field.New(8), field.New(9)}
	tree, err := Build(leaves)
	assert.NoError(t, err)

	for i, leaf := range leaves {
		path, err := tree.GetPath(i)
		assert.NoError(t, err)
		ok, err := VerifyPath(tree.Root(), i, leaf, path)
		assert.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestUnparseablePathEntryRejected(t *testing.T) {
	leaves := []field.Value{field.New(1), field.New(2)}
	tree, err := Build(leaves)
	assert.NoError(t, err)

	path, err := tree.GetPath(0)
	assert.NoError(t, err)
	path[0] = Node("0xdeadbeef")

	_, err = VerifyPath(tree.Root(), 0, leaves[0], path)
	assert.Error(t, err)
}

func TestSingleLeafTreeRootIsLeaf(t *testing.T) {
	leaves := []field.Value{field.New(42)}
	tree, err := Build(leaves)
	assert.NoError(t, err)
	assert.Equal(t, Node(field.New(42).String()), tree.Root())

	path, err := tree.GetPath(0)
	assert.NoError(t, err)
	assert.Len(t, path, 0)
}

func TestHeightMatchesLayerCount(t *testing.T) {
	leaves := []field.Value{field.New(1), field.New(2), field.New(3), field.New(4), field.New(5)}
	tree, err := Build(leaves)
	assert.NoError(t, err)
	// 5 leaves -> 3 -> 2 -> 1, so 4 layers including the leaf layer.
	assert.Equal(t, 4, tree.Height())
}

func TestStringDumpsEveryLayer(t *testing.T) {
	leaves := []field.Value{field.New(1), field.New(2), field.New(3)}
	tree, err := Build(leaves)
	assert.NoError(t, err)

	dump := tree.String()
	assert.Contains(t, dump, "layer 0 (3 nodes)")
	assert.Contains(t, dump, string(tree.Root()))
}
