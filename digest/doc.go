// Package digest contains the fixed-size hash value type shared by the
// tree, its proofs, and stateless verifiers. A Digest is produced only by
// the tree's hash engine; its length is fixed per tree at construction time
// and is identical for leaf and internal node digests.
package digest
