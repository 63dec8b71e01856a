package merklebatch

import (
	"crypto"
	"hash"
)

// TreeHasher computes the leaf and inner-node digests of a batch tree. Both
// operations use the same underlying compression function: a leaf is
// hash(message) and an inner node is hash(left || right). In particular the
// root of a single-leaf tree equals the hash of its one message.
//
// The zero value is not usable; construct with NewTreeHasher.
type TreeHasher struct {
	crypto.Hash
}

// NewTreeHasher returns a TreeHasher over the given base hash function.
// The base hash must be registered (its package imported); otherwise the
// first hashing call panics, same as calling baseHasher.New directly.
func NewTreeHasher(baseHasher crypto.Hash) *TreeHasher {
	return &TreeHasher{Hash: baseHasher}
}

// HashLeaf hashes a raw message into its leaf digest.
func (th *TreeHasher) HashLeaf(message []byte) []byte {
	h := th.New()
	//nolint:errcheck
	h.Write(message)
	return h.Sum(nil)
}

// HashNode computes the parent digest of two child digests as
// hash(left || right). The caller is responsible for the left/right order;
// it is part of the committed structure.
func (th *TreeHasher) HashNode(left, right []byte) []byte {
	h := th.New()
	return hashNodeInto(h, left, right)
}

// hashNodeInto is the allocation-light variant used by the layer hashers,
// which keep one hash.Hash per worker and Reset it between nodes.
func hashNodeInto(h hash.Hash, left, right []byte) []byte {
	h.Reset()
	// Note a single Write of the concatenation is a little faster than two
	// separate Writes (see: https://github.com/google/trillian/pull/1503):
	data := make([]byte, 0, len(left)+len(right))
	data = append(data, left...)
	data = append(data, right...)
	//nolint:errcheck
	h.Write(data)
	return h.Sum(nil)
}
