package merklebatch

import (
	"crypto"
	"errors"
	"fmt"
	"math/bits"
)

var (
	ErrEmptyBatch      = errors.New("batch contains no leaves")
	ErrIndexOutOfRange = errors.New("leaf index out of range")
	ErrInvalidLeafLen  = errors.New("leaf digest length does not match hasher size")
)

// BatchTree is a binary hash tree over an ordered batch of messages. Leaves
// are pushed in batch order, the tree is built bottom-up on the first Root
// or Prove call, and all layers are kept so that every proof in the batch
// is served from the one build.
//
// If a layer has an odd number of nodes, the trailing node is paired with
// itself to form its parent. This holds at every layer, including the leaf
// layer, and the proof and verification logic relies on it.
//
// A BatchTree is not safe for concurrent mutation; build and prove from a
// single goroutine, or finish pushing before sharing it.
type BatchTree struct {
	th *TreeHasher
	lh *layerHasher

	// leaves holds the leaf digests in push order. It is layer zero of the
	// built tree.
	leaves [][]byte

	// layers[0] == leaves; layers[len-1] is the single-node root layer.
	// nil until the first Root or Prove call, and reset by any push.
	layers [][][]byte
}

// New initializes a BatchTree over the given base hash function.
func New(baseHasher crypto.Hash, setters ...Option) *BatchTree {
	opts := defaultOptions()
	for _, setter := range setters {
		setter(opts)
	}
	th := NewTreeHasher(baseHasher)
	return &BatchTree{
		th:     th,
		lh:     newLayerHasher(th, opts),
		leaves: make([][]byte, 0, opts.InitialCapacity),
	}
}

// TreeHasher returns the hasher the tree commits with.
func (t *BatchTree) TreeHasher() *TreeHasher { return t.th }

// Push hashes a raw message and appends its leaf digest to the batch.
// Duplicate messages are allowed; they occupy distinct batch positions.
func (t *BatchTree) Push(message []byte) {
	t.leaves = append(t.leaves, t.th.HashLeaf(message))
	t.layers = nil
}

// PushLeaf appends an already-hashed leaf digest to the batch. It returns
// ErrInvalidLeafLen if the digest length does not match the tree's hasher.
func (t *BatchTree) PushLeaf(leafDigest []byte) error {
	if len(leafDigest) != t.th.Size() {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidLeafLen, len(leafDigest), t.th.Size())
	}
	leaf := append(make([]byte, 0, len(leafDigest)), leafDigest...)
	t.leaves = append(t.leaves, leaf)
	t.layers = nil
	return nil
}

// Size returns the number of leaves pushed so far.
func (t *BatchTree) Size() int { return len(t.leaves) }

// Height returns ceil(log2(N)) for N pushed leaves: the length of every
// authentication path. A single-leaf tree has height zero.
func (t *BatchTree) Height() int {
	if len(t.leaves) == 0 {
		return 0
	}
	return bits.Len(uint(len(t.leaves) - 1))
}

// LeafDigest returns the leaf digest at the given batch position.
func (t *BatchTree) LeafDigest(index int) ([]byte, error) {
	if index < 0 || index >= len(t.leaves) {
		return nil, fmt.Errorf("%w: index %d, batch size %d", ErrIndexOutOfRange, index, len(t.leaves))
	}
	return t.leaves[index], nil
}

// Root builds the tree if necessary and returns the root digest. It returns
// ErrEmptyBatch if no leaves have been pushed.
func (t *BatchTree) Root() ([]byte, error) {
	if err := t.build(); err != nil {
		return nil, err
	}
	return t.layers[len(t.layers)-1][0], nil
}

// Prove returns the authentication path for the leaf at the given batch
// position. The path is ordered leaf-to-root: entry i is the sibling digest
// at layer i. When the leaf (or one of its ancestors) is the odd trailing
// node of its layer, the path entry is that node's own digest, matching the
// duplicate-pairing rule of the build.
func (t *BatchTree) Prove(index int) (Proof, error) {
	if index < 0 || index >= len(t.leaves) {
		return Proof{}, fmt.Errorf("%w: index %d, batch size %d", ErrIndexOutOfRange, index, len(t.leaves))
	}
	if err := t.build(); err != nil {
		return Proof{}, err
	}

	siblings := make([][]byte, 0, t.Height())
	idx := index
	// The top layer holds only the root, which never contributes a sibling.
	for _, layer := range t.layers[:len(t.layers)-1] {
		sib := idx ^ 1
		if sib >= len(layer) {
			sib = idx
		}
		siblings = append(siblings, layer[sib])
		idx >>= 1
	}
	return NewProof(index, siblings), nil
}

// build computes all layers bottom-up. Calling it again without an
// intervening push is a no-op.
func (t *BatchTree) build() error {
	if t.layers != nil {
		return nil
	}
	if len(t.leaves) == 0 {
		return fmt.Errorf("%w: push at least one leaf before building", ErrEmptyBatch)
	}

	layers := [][][]byte{t.leaves}
	for layer := t.leaves; len(layer) > 1; {
		layer = t.lh.hashLayer(layer)
		layers = append(layers, layer)
	}
	t.layers = layers
	return nil
}
