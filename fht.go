package fht

import (
	"errors"
	"fmt"
	"hash"

	"github.com/flathash/fht/digest"
)

const (
	// DefaultCapacity is the number of flat positions a tree allocates when
	// the Capacity option is not given: 127 positions hold 64 leaves.
	DefaultCapacity = 127
	// MaxCapacity is the hard upper bound on the Capacity option.
	MaxCapacity = 1<<31 - 1
)

var (
	ErrInvalidCapacity = errors.New("invalid tree capacity")
	ErrTreeFull        = errors.New("tree is at maximum leaf capacity")
	ErrIndexOutOfRange = errors.New("leaf index out of range")
	ErrLeafNotFound    = errors.New("no leaf found for data")
)

type Options struct {
	Capacity   int
	DigestSize int
}

type Option func(*Options)

// Capacity sets the number of flat positions the tree allocates, fixed for
// the tree's lifetime. A tree of capacity c holds up to (c+1)/2 leaves.
// Defaults to DefaultCapacity.
func Capacity(capacity int) Option {
	return func(opts *Options) {
		opts.Capacity = capacity
	}
}

// DigestSize sets the byte width of every digest the tree produces.
// Defaults to the full output size of the base hasher.
func DigestSize(size int) Option {
	return func(opts *Options) {
		opts.DigestSize = size
	}
}

// Tree is an append-only Merkle tree stored in a flat in-order array. All
// node state lives in the one backing slice; topology is computed from
// positions, never stored. See the package documentation for the layout.
//
// A Tree is single writer: Append must not run concurrently with itself or
// with Root/Prove on the same instance. Callers needing shared access must
// serialize externally.
type Tree struct {
	hasher    *Hasher
	nodes     [][]byte
	capacity  int
	leafCount int
}

// New returns an empty tree backed by baseHasher. The capacity and digest
// size are fixed at construction; New returns ErrInvalidCapacity or
// ErrInvalidDigestSize for out-of-range options.
func New(baseHasher hash.Hash, setters ...Option) (*Tree, error) {
	// default options:
	opts := &Options{
		Capacity:   DefaultCapacity,
		DigestSize: baseHasher.Size(),
	}
	for _, setter := range setters {
		setter(opts)
	}
	if opts.Capacity < 1 || opts.Capacity > MaxCapacity {
		return nil, fmt.Errorf("%w: got: %v, want 1 <= capacity <= %v",
			ErrInvalidCapacity, opts.Capacity, MaxCapacity)
	}
	hasher, err := NewHasher(baseHasher, opts.DigestSize)
	if err != nil {
		return nil, err
	}
	return &Tree{
		hasher:   hasher,
		nodes:    make([][]byte, opts.Capacity),
		capacity: opts.Capacity,
	}, nil
}

// Capacity returns the number of flat positions fixed at construction.
func (t *Tree) Capacity() int {
	return t.capacity
}

// MaxLeaves returns the number of leaves the tree can hold.
func (t *Tree) MaxLeaves() int {
	return (t.capacity + 1) / 2
}

// LeafCount returns the number of leaves appended so far.
func (t *Tree) LeafCount() int {
	return t.leafCount
}

// DigestSize returns the byte width of the tree's digests.
func (t *Tree) DigestSize() int {
	return t.hasher.Size()
}

// Append hashes data into the next leaf position and rehashes the leaf's
// ancestors whose subtrees it completes. Returns ErrTreeFull once MaxLeaves
// leaves are stored; the failed call leaves the tree unchanged.
func (t *Tree) Append(data []byte) error {
	if t.leafCount == t.MaxLeaves() {
		return fmt.Errorf("%w: %v leaves", ErrTreeFull, t.leafCount)
	}
	p := LeafPosition(t.leafCount)
	t.nodes[p] = t.hasher.HashLeaf(data)
	t.leafCount++

	// A right child completes its parent's subtree: leaves arrive left to
	// right, so the left sibling subtree is already populated. Climb until
	// the path reaches a left child, whose sibling subtree is still open.
	for !IsLeftChild(p) {
		p = Parent(p)
		node, err := t.hasher.HashNode(t.nodes[LeftChild(p)], t.nodes[RightChild(p)])
		if err != nil {
			return err
		}
		t.nodes[p] = node
	}
	return nil
}

// Root returns the digest covering all leaves appended so far, nil for an
// empty tree. For leaf counts that are not a power of two the root is the
// right-to-left bag of the peak digests; the bag is recomputed on each call
// and stored positions are never mutated.
func (t *Tree) Root() digest.Digest {
	if t.leafCount == 0 {
		return nil
	}
	pk := peaks(t.leafCount)
	digests := make([][]byte, len(pk))
	for i, p := range pk {
		digests[i] = t.nodes[p]
	}
	root, err := bagPeaks(t.hasher, digests)
	if err != nil {
		// stored digests always match the configured size
		panic(err)
	}
	// clone so a caller can never reach the backing array through the root
	return digest.Digest(root).Clone()
}

// Prove returns an inclusion proof for the leaf at leafIndex against the
// current root. Returns ErrIndexOutOfRange unless 0 <= leafIndex <
// LeafCount(). The proof is a value independent of the tree: later appends
// do not alter it (though they do change the root it verifies against).
func (t *Tree) Prove(leafIndex int) (Proof, error) {
	if leafIndex < 0 || leafIndex >= t.leafCount {
		return Proof{}, fmt.Errorf("%w: got: %v, want 0 <= index < %v",
			ErrIndexOutOfRange, leafIndex, t.leafCount)
	}
	pk := peaks(t.leafCount)

	// locate the peak whose leaf span contains leafIndex
	peakIdx, off := 0, 0
	for {
		span := 1 << Level(pk[peakIdx])
		if leafIndex < off+span {
			break
		}
		off += span
		peakIdx++
	}

	steps := make([]ProofStep, 0, Level(pk[peakIdx])+len(pk)-1)

	// sibling digests from the leaf up to its covering peak
	p := LeafPosition(leafIndex)
	for p != pk[peakIdx] {
		step := ProofStep{Sibling: digest.Digest(t.nodes[Sibling(p)]).Clone()}
		if IsLeftChild(p) {
			step.Side = Right
		} else {
			step.Side = Left
		}
		steps = append(steps, step)
		p = Parent(p)
	}

	// Bagging tail: every peak right of ours is pre-bagged into a single
	// right operand, then the peaks to our left apply one by one, nearest
	// first. This reproduces exactly the combination order of Root().
	if peakIdx < len(pk)-1 {
		right := make([][]byte, 0, len(pk)-peakIdx-1)
		for _, q := range pk[peakIdx+1:] {
			right = append(right, t.nodes[q])
		}
		bagged, err := bagPeaks(t.hasher, right)
		if err != nil {
			return Proof{}, err
		}
		steps = append(steps, ProofStep{Sibling: digest.Digest(bagged).Clone(), Side: Right})
	}
	for i := peakIdx - 1; i >= 0; i-- {
		steps = append(steps, ProofStep{
			Sibling: digest.Digest(t.nodes[pk[i]]).Clone(),
			Side:    Left,
		})
	}
	return NewProof(leafIndex, steps), nil
}

// ProveData returns an inclusion proof for the first leaf whose stored
// digest matches data, scanning leaves in append order. Returns
// ErrLeafNotFound if no leaf hashes to the same digest.
func (t *Tree) ProveData(data []byte) (Proof, error) {
	want := digest.Digest(t.hasher.HashLeaf(data))
	for k := 0; k < t.leafCount; k++ {
		if want.Equal(t.nodes[LeafPosition(k)]) {
			return t.Prove(k)
		}
	}
	return Proof{}, fmt.Errorf("%w: leaf digest: %v", ErrLeafNotFound, want)
}
