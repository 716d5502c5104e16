package fht

import "github.com/flathash/fht/digest"

// Side records where a proof step's sibling digest sits relative to the
// running accumulator during verification.
type Side byte

const (
	// Left means the sibling is the left operand of the node combinator.
	Left Side = iota
	// Right means the sibling is the right operand.
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// ProofStep carries one sibling digest on the path from a leaf to the root.
type ProofStep struct {
	Sibling digest.Digest
	Side    Side
}

// Proof is an inclusion proof: the ordered sibling digests, leaf to root,
// that recompute a tree's root from one leaf's data. A Proof is an
// immutable value; it stays valid independently of the tree it was created
// from and is safe to share.
type Proof struct {
	// index of the proven leaf.
	leafIndex int
	// sibling digests and sides that together with the leaf data
	// recompute the root.
	steps []ProofStep
}

// NewProof constructs a proof from its raw parts. Proofs are normally
// produced by Tree.Prove; NewProof exists for verifiers that receive the
// parts over an external channel.
func NewProof(leafIndex int, steps []ProofStep) Proof {
	return Proof{leafIndex: leafIndex, steps: steps}
}

// LeafIndex returns the index of the proven leaf.
func (proof Proof) LeafIndex() int {
	return proof.leafIndex
}

// Steps returns the proof steps in leaf-to-root order.
func (proof Proof) Steps() []ProofStep {
	return proof.steps
}

// Verify reports whether data is a leaf of the tree with the claimed root.
// It is pure and involves no tree instance: only the proof, the leaf data,
// the root, and a Hasher configured identically to the producer's.
// Malformed input, including digest size mismatches, yields false rather
// than an error.
func (proof Proof) Verify(hasher *Hasher, data []byte, root digest.Digest) bool {
	if root.Size() != hasher.Size() {
		return false
	}
	acc := digest.Digest(hasher.HashLeaf(data))
	for _, step := range proof.steps {
		var (
			next []byte
			err  error
		)
		switch step.Side {
		case Right:
			next, err = hasher.HashNode(acc, step.Sibling)
		case Left:
			next, err = hasher.HashNode(step.Sibling, acc)
		default:
			return false
		}
		if err != nil {
			return false
		}
		acc = next
	}
	return acc.Equal(root)
}
