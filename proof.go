package merklebatch

import (
	"bytes"
)

// Proof is an inclusion proof for one leaf of a batch tree: the ordered
// list of sibling digests needed to recompute the root from that leaf.
type Proof struct {
	// index is the leaf's 0-based position in the batch ordering.
	index int
	// siblings are ordered leaf-to-root: siblings[i] is the sibling digest
	// at layer i of the tree.
	siblings [][]byte
}

// NewProof constructs a proof from a leaf index and its leaf-to-root
// sibling digests.
func NewProof(index int, siblings [][]byte) Proof {
	return Proof{index: index, siblings: siblings}
}

// Index returns the leaf's 0-based position in the batch ordering.
func (proof Proof) Index() int {
	return proof.index
}

// Siblings returns the sibling digests, ordered leaf-to-root.
func (proof Proof) Siblings() [][]byte {
	return proof.siblings
}

// VerifyInclusion reports whether the proof places leafDigest at the
// proof's index in the tree committed to by root. It recomputes the root by
// folding the path leaf-to-root: at each layer the running digest is the
// left child when the walked index is even and the right child when odd.
//
// Verification fails closed: a negative index, a digest of the wrong
// length, a path too short for the index, or any recomputation mismatch
// all return false. It never panics on untrusted input.
func (proof Proof) VerifyInclusion(th *TreeHasher, leafDigest, root []byte) bool {
	size := th.Size()
	if proof.index < 0 || len(leafDigest) != size || len(root) != size {
		return false
	}

	current := leafDigest
	idx := proof.index
	h := th.New()
	for _, sibling := range proof.siblings {
		if len(sibling) != size {
			return false
		}
		if idx%2 == 0 {
			current = hashNodeInto(h, current, sibling)
		} else {
			current = hashNodeInto(h, sibling, current)
		}
		idx /= 2
	}
	// A leftover index means the claimed position lies deeper than the path
	// can reach.
	if idx != 0 {
		return false
	}
	return bytes.Equal(current, root)
}
