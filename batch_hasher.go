package merklebatch

import (
	"crypto"
	"crypto/sha256"
	"sync"

	"github.com/prysmaticlabs/gohashtree"
)

// parallelThreshold is the number of parent nodes below which a layer is
// hashed serially; goroutine fan-out costs more than it saves on small
// layers.
const parallelThreshold = 512

// layerHasher collapses one tree layer into the next. It owns the choice
// between the serial path, the worker-pool path, and the vectorized sha256
// path; all three produce identical digests. Whatever path is taken, a full
// layer is completed before the next one starts, since every parent depends
// on two finished children.
type layerHasher struct {
	th         *TreeHasher
	numWorkers int
	sha256Fast bool
}

func newLayerHasher(th *TreeHasher, opts *Options) *layerHasher {
	return &layerHasher{
		th:         th,
		numWorkers: opts.NumWorkers,
		// gohashtree computes sha256 compressions specifically, so the fast
		// path is only sound when the tree hashes with crypto.SHA256.
		sha256Fast: opts.Sha256Compression && th.Hash == crypto.SHA256,
	}
}

// hashLayer returns the parent layer of the given layer. An odd trailing
// node is paired with itself.
func (lh *layerHasher) hashLayer(layer [][]byte) [][]byte {
	parents := (len(layer) + 1) / 2
	if lh.sha256Fast {
		if next, err := lh.hashLayerSha256(layer, parents); err == nil {
			return next
		}
		// fall through to the generic path; correctness over speed
	}
	if parents < parallelThreshold || lh.numWorkers <= 1 {
		return lh.hashLayerSerial(layer, parents)
	}
	return lh.hashLayerParallel(layer, parents)
}

func (lh *layerHasher) hashLayerSerial(layer [][]byte, parents int) [][]byte {
	next := make([][]byte, parents)
	h := lh.th.New()
	for p := 0; p < parents; p++ {
		left, right := pairAt(layer, 2*p)
		next[p] = hashNodeInto(h, left, right)
	}
	return next
}

func (lh *layerHasher) hashLayerParallel(layer [][]byte, parents int) [][]byte {
	next := make([][]byte, parents)

	workers := lh.numWorkers
	if workers > parents {
		workers = parents
	}
	chunk := (parents + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > parents {
			end = parents
		}
		if start >= end {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			// One hasher per worker; hash.Hash is not safe to share.
			h := lh.th.New()
			for p := start; p < end; p++ {
				left, right := pairAt(layer, 2*p)
				next[p] = hashNodeInto(h, left, right)
			}
		}(start, end)
	}
	wg.Wait()
	return next
}

// hashLayerSha256 hashes all parents of a layer with one vectorized call.
// The layer's digests are packed into contiguous 64-byte chunks (odd
// trailing node duplicated) and compressed in a single pass.
func (lh *layerHasher) hashLayerSha256(layer [][]byte, parents int) ([][]byte, error) {
	chunks := make([]byte, parents*2*sha256.Size)
	for p := 0; p < parents; p++ {
		left, right := pairAt(layer, 2*p)
		copy(chunks[p*2*sha256.Size:], left)
		copy(chunks[p*2*sha256.Size+sha256.Size:], right)
	}

	digests := make([]byte, parents*sha256.Size)
	if err := gohashtree.HashByteSlice(digests, chunks); err != nil {
		return nil, err
	}

	next := make([][]byte, parents)
	for p := 0; p < parents; p++ {
		next[p] = digests[p*sha256.Size : (p+1)*sha256.Size : (p+1)*sha256.Size]
	}
	return next, nil
}

// pairAt returns the children of the parent whose left child sits at index
// i, applying the duplicate-pairing rule for an odd trailing node.
func pairAt(layer [][]byte, i int) (left, right []byte) {
	left = layer[i]
	if i+1 < len(layer) {
		return left, layer[i+1]
	}
	return left, left
}

// hashLeaves hashes a batch of raw messages into leaf digests, in order,
// fanning out across workers for large batches. Leaf hashing is
// embarrassingly parallel: every leaf depends only on its own message.
func hashLeaves(th *TreeHasher, messages [][]byte, numWorkers int) [][]byte {
	leaves := make([][]byte, len(messages))
	if len(messages) < parallelThreshold || numWorkers <= 1 {
		for i, m := range messages {
			leaves[i] = th.HashLeaf(m)
		}
		return leaves
	}

	workers := numWorkers
	if workers > len(messages) {
		workers = len(messages)
	}
	chunk := (len(messages) + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > len(messages) {
			end = len(messages)
		}
		if start >= end {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			h := th.New()
			for i := start; i < end; i++ {
				h.Reset()
				//nolint:errcheck
				h.Write(messages[i])
				leaves[i] = h.Sum(nil)
			}
		}(start, end)
	}
	wg.Wait()
	return leaves
}
