package fht

import (
	"errors"
	"fmt"
	"hash"
)

const (
	// LeafPrefix and NodePrefix are the single-byte domain separation tags
	// prepended to leaf data and to child digest pairs before hashing. The
	// distinct tags make it infeasible for a crafted leaf payload to hash to
	// an internal node's digest, or vice versa.
	LeafPrefix = 0
	NodePrefix = 1
)

var (
	ErrInvalidDigestSize = errors.New("invalid digest size")
	ErrInvalidNodeLen    = errors.New("invalid node size")
)

// Hasher wraps a base hash function with the two domain-separated
// combinators used by the tree: HashLeaf for caller data and HashNode for
// child digest pairs.
//
// A Hasher owns its stateful base hash and is not safe for concurrent use;
// construct one per goroutine. A Tree owns its own Hasher, verifiers build
// their own with the same base hash and digest size as the proof producer.
type Hasher struct {
	baseHasher hash.Hash
	digestSize int
}

// NewHasher returns a Hasher producing digests of digestSize bytes. Digests
// narrower than the base hash output are plain truncations; it is the
// caller's responsibility to pick a width that keeps collisions infeasible.
func NewHasher(baseHasher hash.Hash, digestSize int) (*Hasher, error) {
	if digestSize < 1 || digestSize > baseHasher.Size() {
		return nil, fmt.Errorf("%w: got: %v, want 1 <= size <= %v",
			ErrInvalidDigestSize, digestSize, baseHasher.Size())
	}
	return &Hasher{
		baseHasher: baseHasher,
		digestSize: digestSize,
	}, nil
}

// Size returns the number of bytes in every digest this Hasher produces.
func (n *Hasher) Size() int {
	return n.digestSize
}

// HashLeaf computes the digest of a leaf data item as
// H(LeafPrefix || data), truncated to the configured digest size.
//
//nolint:errcheck
func (n *Hasher) HashLeaf(data []byte) []byte {
	h := n.baseHasher
	h.Reset()

	prefixed := make([]byte, 0, len(data)+1)
	prefixed = append(prefixed, LeafPrefix)
	prefixed = append(prefixed, data...)
	h.Write(prefixed)
	return h.Sum(nil)[:n.digestSize]
}

// HashNode computes the digest of an internal node from its children as
// H(NodePrefix || left || right), truncated to the configured digest size.
// It returns ErrInvalidNodeLen unless both children are exactly Size()
// bytes.
//
//nolint:errcheck
func (n *Hasher) HashNode(left, right []byte) ([]byte, error) {
	if err := n.ValidateNodeFormat(left); err != nil {
		return nil, err
	}
	if err := n.ValidateNodeFormat(right); err != nil {
		return nil, err
	}
	h := n.baseHasher
	h.Reset()

	// Note a single Write of the concatenation is a little faster than
	// several Writes on the underlying hash (see:
	// https://github.com/google/trillian/pull/1503):
	data := make([]byte, 0, 1+len(left)+len(right))
	data = append(data, NodePrefix)
	data = append(data, left...)
	data = append(data, right...)
	h.Write(data)
	return h.Sum(nil)[:n.digestSize], nil
}

// ValidateNodeFormat checks whether node has the exact length of a digest
// produced by this Hasher and returns ErrInvalidNodeLen if it does not.
func (n *Hasher) ValidateNodeFormat(node []byte) error {
	if len(node) != n.digestSize {
		return fmt.Errorf("%w: got: %v, want: %v",
			ErrInvalidNodeLen, len(node), n.digestSize)
	}
	return nil
}
