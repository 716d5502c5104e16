// Package fht implements an append-only Merkle hash tree over a pointer-free
// flat in-order array.
//
// Leaves are appended one at a time and every append updates only the
// O(log n) ancestors of the new leaf; no other position is ever touched and
// nodes are never relocated. The tree's topology is not stored anywhere:
// parent, sibling and children of a position are pure functions of the
// position's bit pattern (see Level, Parent, Sibling).
//
// Leaf and internal node hashes are domain separated with single-byte tags
// (LeafPrefix, NodePrefix) so that a crafted leaf payload cannot collide
// with an internal node, closing the classic second-preimage proof forgery.
//
// For leaf counts that are not a power of two the root is defined by bagging
// the peaks, the roots of the maximal perfect subtrees covering the current
// leaves, right to left. Inclusion proofs produced by Tree.Prove embed the
// same bagging order, so Proof.Verify needs nothing but the proof, the leaf
// data, the claimed root, and an identically configured Hasher.
//
// A Tree is single writer: Append must not run concurrently with any other
// method on the same instance. Proof.Verify is pure and safe to call from
// any number of goroutines, each with its own Hasher.
package fht
