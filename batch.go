package merklebatch

import (
	"crypto"
	"fmt"
)

// Signer is the external signature scheme the batching core amortizes. The
// core hands it exactly one digest per batch (the root) and treats the
// returned signature as an opaque blob. Implementations live outside this
// package; see blssig and ed25519sig for two schemes.
type Signer interface {
	// Sign signs a digest. An error aborts the whole batch-signing
	// operation; the core never retries.
	Sign(digest []byte) ([]byte, error)
	// Verify reports whether sig is a valid signature over digest.
	Verify(digest, sig []byte) bool
}

// ProofBundle is the per-message output of a batch signing: everything a
// verifier needs, next to the message itself, to check membership in the
// signed batch. Signature and Root are shared by all bundles of a batch.
type ProofBundle struct {
	Index     int      `json:"index"`
	Path      [][]byte `json:"path"`
	Signature []byte   `json:"signature"`
	Root      []byte   `json:"root"`
}

// Proof returns the bundle's authentication path as a Proof.
func (b ProofBundle) Proof() Proof {
	return NewProof(b.Index, b.Path)
}

// Overhead returns the amortized per-message byte cost of this bundle in a
// batch of the given size: the shared signature's share plus the full
// authentication path.
func (b ProofBundle) Overhead(batchSize int) float64 {
	pathBytes := 0
	for _, sibling := range b.Path {
		pathBytes += len(sibling)
	}
	return float64(len(b.Signature))/float64(batchSize) + float64(pathBytes)
}

// SignBatch commits to an ordered batch of messages with a single signature
// invocation: it hashes every message into a leaf, builds the batch tree,
// signs the root, and returns the root together with one ProofBundle per
// message.
//
// The operation is all-or-nothing. An empty batch fails with ErrEmptyBatch
// before the signer is invoked, and a signer failure aborts with no bundles
// emitted.
func SignBatch(messages [][]byte, baseHasher crypto.Hash, signer Signer, setters ...Option) ([]byte, []ProofBundle, error) {
	if len(messages) == 0 {
		return nil, nil, fmt.Errorf("%w: nothing to sign", ErrEmptyBatch)
	}

	opts := defaultOptions()
	opts.InitialCapacity = len(messages)
	for _, setter := range setters {
		setter(opts)
	}

	tree := &BatchTree{
		th: NewTreeHasher(baseHasher),
	}
	tree.lh = newLayerHasher(tree.th, opts)
	tree.leaves = hashLeaves(tree.th, messages, opts.NumWorkers)

	root, err := tree.Root()
	if err != nil {
		return nil, nil, err
	}

	signature, err := signer.Sign(root)
	if err != nil {
		return nil, nil, fmt.Errorf("signing batch root: %w", err)
	}

	bundles := make([]ProofBundle, len(messages))
	for i := range messages {
		proof, err := tree.Prove(i)
		if err != nil {
			return nil, nil, err
		}
		bundles[i] = ProofBundle{
			Index:     i,
			Path:      proof.Siblings(),
			Signature: signature,
			Root:      root,
		}
	}
	return root, bundles, nil
}

// VerifyBundle reports whether the bundle proves that message was part of
// the batch whose root the signer signed. It checks the signature over the
// bundle's root first, then the inclusion proof against it. Like all
// verification in this package it fails closed and never panics on
// untrusted input.
func VerifyBundle(message []byte, bundle ProofBundle, baseHasher crypto.Hash, signer Signer) bool {
	if !signer.Verify(bundle.Root, bundle.Signature) {
		return false
	}
	th := NewTreeHasher(baseHasher)
	return bundle.Proof().VerifyInclusion(th, th.HashLeaf(message), bundle.Root)
}
