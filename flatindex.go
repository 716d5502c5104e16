package fht

import "math/bits"

// The flat in-order layout stores a binary tree in a contiguous array with
// no pointers: even positions are leaves, odd positions are internal, and
// every topological relation is a pure function of the position's bits.
// The first 15 positions form this shape:
//
//	3                7
//	              /     \
//	2          3           11
//	         /   \        /   \
//	1       1     5      9     13
//	       / \   / \    / \    /  \
//	0     0   2 4   6  8   10 12   14
//
// Level(i) is the number of trailing one bits of i, the k-th leaf lives at
// position 2k, and parent, sibling and children are reached by adding or
// subtracting a power of two derived from the level.

// Level returns the height of position i in the tree: 0 for leaves,
// increasing toward the root.
func Level(i int) int {
	return bits.TrailingZeros64(^uint64(i))
}

// IsLeftChild reports whether position i is the left child of its parent.
// Bit Level(i)+1 of i decides: clear means left.
func IsLeftChild(i int) bool {
	return (i>>(Level(i)+1))&1 == 0
}

// Parent returns the position of i's parent. The root of a perfect tree has
// no parent stored anywhere; callers bound their walk by leaf count instead.
func Parent(i int) int {
	if IsLeftChild(i) {
		return i + (1 << Level(i))
	}
	return i - (1 << Level(i))
}

// Sibling returns the position sharing a parent with i. The sibling lies in
// the same direction as the parent, twice as far along the array.
func Sibling(i int) int {
	if IsLeftChild(i) {
		return i + (2 << Level(i))
	}
	return i - (2 << Level(i))
}

// LeftChild returns the position of i's left child. Valid only for internal
// positions, i.e. Level(i) >= 1.
func LeftChild(i int) int {
	return i - (1 << (Level(i) - 1))
}

// RightChild returns the position of i's right child. Valid only for
// internal positions.
func RightChild(i int) int {
	return i + (1 << (Level(i) - 1))
}

// LeafPosition returns the flat position of the k-th (zero-based) leaf.
func LeafPosition(k int) int {
	return 2 * k
}

// subtreeRoot returns the position of the root of the perfect subtree
// covering the 2^height leaves starting at leaf offset off.
func subtreeRoot(off, height int) int {
	return 2*off + (1 << height) - 1
}
