package fht

import "math/bits"

// peaks returns the flat positions of the roots of the maximal perfect
// subtrees covering the first leafCount leaves, highest (left-most) subtree
// first. There is exactly one peak per set bit of leafCount; for a power of
// two leaf count the single peak is the root itself.
func peaks(leafCount int) []int {
	if leafCount <= 0 {
		return nil
	}
	pk := make([]int, 0, bits.OnesCount64(uint64(leafCount)))
	off := 0
	for h := bits.Len64(uint64(leafCount)) - 1; h >= 0; h-- {
		if leafCount&(1<<h) == 0 {
			continue
		}
		pk = append(pk, subtreeRoot(off, h))
		off += 1 << h
	}
	return pk
}

// bagPeaks folds peak digests into a single root, right to left: the two
// right-most peaks combine first and every peak further left is applied as
// the left operand of the next combination. Proofs embed the same order, so
// bagging here and in Tree.Prove must never diverge.
func bagPeaks(hasher *Hasher, digests [][]byte) ([]byte, error) {
	acc := digests[len(digests)-1]
	for i := len(digests) - 2; i >= 0; i-- {
		var err error
		acc, err = hasher.HashNode(digests[i], acc)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}
