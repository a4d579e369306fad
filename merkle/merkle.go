// Package merkle implements the algebraic Merkle commitment of spec.md §4.3:
// a binary tree built bottom-up over field-valued leaves, combined with the
// MiMC permutation rather than a collision-resistant hash. Node and leaf
// encoding is canonical decimal throughout, matching the style of the
// teacher's in-memory tree (store/providers/merkletree.MemoryMerkleTree) but
// built once from a complete leaf sequence rather than incrementally.
package merkle

import (
	"fmt"
	"strings"

	"mimcstark/field"
	"mimcstark/mimc"
)

// emptySibling is the distinguished token used to pad odd-sized layers.
// Per spec.md §6 it is the empty string, interpreted as field 0.
const emptySibling = ""

// Node is one entry of a tree layer: its canonical-decimal encoding.
type Node string

// fieldOf parses a node's canonical decimal encoding, treating the empty
// sibling token as field 0. A node that is neither the empty token nor a
// canonical decimal is an EncodingMismatch.
func fieldOf(n Node) (field.Value, error) {
	if n == emptySibling {
		return field.Zero, nil
	}
	v, err := field.Parse(string(n))
	if err != nil {
		return field.Zero, fmt.Errorf("merkle: encoding mismatch: %w", err)
	}
	return v, nil
}

// Combine is the node combiner h(a, b) = mimc_hash((a + 2b) mod p, key=0).
// The factor of 2 on b makes the combined input order-dependent:
// a + 2b != b + 2a whenever a != b, so h(a, b) and h(b, a) normally differ,
// which path verification below relies on to detect swapped siblings. The
// cube S-box is not injective (3 divides p-1), so some pairs a != b still
// give h(a, b) == h(b, a).
func Combine(a, b Node) (Node, error) {
	av, err := fieldOf(a)
	if err != nil {
		return "", err
	}
	bv, err := fieldOf(b)
	if err != nil {
		return "", err
	}
	two := field.FromUint64(2)
	combined := av.Add(two.Mul(bv))
	h := mimc.Hash(combined, field.Zero)
	return Node(h.String()), nil
}

// Tree is a complete algebraic Merkle tree over an ordered leaf sequence.
// Layers are numbered 0 (leaves) upward; layers is immutable once Build
// returns.
type Tree struct {
	layers [][]Node
}

// Build constructs a Tree bottom-up from trace leaves, encoding each leaf in
// canonical decimal. Odd-sized layers are padded with the empty-sibling
// token. Build stops once a layer has length 1; that node is the root.
func Build(leaves []field.Value) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, fmt.Errorf("merkle: cannot build a tree over zero leaves")
	}

	layer0 := make([]Node, len(leaves))
	for i, v := range leaves {
		layer0[i] = Node(v.String())
	}

	layers := [][]Node{layer0}
	cur := layer0
	for len(cur) > 1 {
		next := make([]Node, 0, (len(cur)+1)/2)
		for i := 0; i < len(cur); i += 2 {
			left := cur[i]
			var right Node
			if i+1 < len(cur) {
				right = cur[i+1]
			} else {
				right = emptySibling
			}
			combined, err := Combine(left, right)
			if err != nil {
				return nil, err
			}
			next = append(next, combined)
		}
		layers = append(layers, next)
		cur = next
	}

	return &Tree{layers: layers}, nil
}

// Root returns the tree's single top-layer node.
func (t *Tree) Root() Node {
	return t.layers[len(t.layers)-1][0]
}

// Path is the ordered sequence of sibling nodes encountered walking from a
// leaf to the root, one per layer below the root.
type Path []Node

// GetPath walks up from leaf i, appending the sibling at each layer (the
// empty token if the sibling index is out of range), then halving the index.
func (t *Tree) GetPath(i int) (Path, error) {
	if i < 0 || i >= len(t.layers[0]) {
		return nil, fmt.Errorf("merkle: leaf index %d out of bounds", i)
	}

	path := make(Path, 0, len(t.layers)-1)
	idx := i
	for layer := 0; layer < len(t.layers)-1; layer++ {
		siblingIdx := idx ^ 1
		nodes := t.layers[layer]
		var sibling Node
		if siblingIdx < len(nodes) {
			sibling = nodes[siblingIdx]
		} else {
			sibling = emptySibling
		}
		path = append(path, sibling)
		idx /= 2
	}
	return path, nil
}

// VerifyPath folds from the leaf value, combining with each sibling in
// path according to the current index's parity, and accepts iff the final
// fold equals root. An unparseable path entry (not the empty-sibling token
// and not canonical decimal) is rejected as an EncodingMismatch.
func VerifyPath(root Node, index int, value field.Value, path Path) (bool, error) {
	current := Node(value.String())
	idx := index

	for _, sibling := range path {
		// reject anything that is not the empty-sibling token or canonical decimal
		if _, err := fieldOf(sibling); err != nil {
			return false, err
		}

		var combined Node
		var err error
		if idx%2 == 0 {
			combined, err = Combine(current, sibling)
		} else {
			combined, err = Combine(sibling, current)
		}
		if err != nil {
			return false, err
		}
		current = combined
		idx /= 2
	}

	return current == root, nil
}

// Height returns the number of layers, including the leaf layer.
func (t *Tree) Height() int {
	return len(t.layers)
}

// String renders the tree layer-by-layer for debugging, in the style of the
// teacher's MemoryMerkleTree.String().
func (t *Tree) String() string {
	var b strings.Builder
	for layer := len(t.layers) - 1; layer >= 0; layer-- {
		fmt.Fprintf(&b, "layer %d (%d nodes):\n", layer, len(t.layers[layer]))
		for _, n := range t.layers[layer] {
			if n == emptySibling {
				fmt.Fprintf(&b, "\t<empty>")
			} else {
				fmt.Fprintf(&b, "\t%s", string(n))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
