package digest

import (
	"crypto/subtle"
	"encoding/hex"
)

// Digest is the fixed-size output of a hash engine combinator.
type Digest []byte

// Equal reports whether d and other hold the same bytes. The comparison
// runs in constant time so that digest checks leak no timing information.
func (d Digest) Equal(other Digest) bool {
	if len(d) != len(other) {
		return false
	}
	return subtle.ConstantTimeCompare(d, other) == 1
}

// Size returns the byte size of the digest.
func (d Digest) Size() int {
	return len(d)
}

// String returns the hexadecimal encoding of the digest. The output of
// d.String() is not equivalent to string(d).
func (d Digest) String() string {
	return hex.EncodeToString(d)
}

// Clone returns an independent copy of the digest.
func (d Digest) Clone() Digest {
	if d == nil {
		return nil
	}
	c := make(Digest, len(d))
	copy(c, d)
	return c
}
