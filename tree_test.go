package merklebatch_test

import (
	"crypto"
	_ "crypto/sha256"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merklebatch/merklebatch"
)

// newTestTree builds a tree over messages "message-0" .. "message-N-1".
func newTestTree(t testing.TB, n int, setters ...merklebatch.Option) *merklebatch.BatchTree {
	t.Helper()
	tree := merklebatch.New(crypto.SHA256, setters...)
	for i := 0; i < n; i++ {
		tree.Push([]byte("message-" + strconv.Itoa(i)))
	}
	return tree
}

func TestRootDeterminism(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 7, 64} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			first, err := newTestTree(t, n).Root()
			require.NoError(t, err)
			second, err := newTestTree(t, n).Root()
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestSingleLeafRoot(t *testing.T) {
	tree := merklebatch.New(crypto.SHA256)
	tree.Push([]byte("the only message"))

	root, err := tree.Root()
	require.NoError(t, err)

	// a single-leaf tree has height zero and its root is the leaf digest
	assert.Equal(t, tree.TreeHasher().HashLeaf([]byte("the only message")), root)
	assert.Equal(t, 0, tree.Height())
}

func TestEmptyTree(t *testing.T) {
	tree := merklebatch.New(crypto.SHA256)

	_, err := tree.Root()
	require.ErrorIs(t, err, merklebatch.ErrEmptyBatch)

	_, err = tree.Prove(0)
	require.ErrorIs(t, err, merklebatch.ErrIndexOutOfRange)
}

func TestHeight(t *testing.T) {
	tests := []struct {
		leaves int
		height int
	}{
		{1, 0}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {7, 3}, {8, 3}, {9, 4}, {64, 6},
	}
	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.leaves), func(t *testing.T) {
			assert.Equal(t, tt.height, newTestTree(t, tt.leaves).Height())
		})
	}
}

func TestProveIndexOutOfRange(t *testing.T) {
	tree := newTestTree(t, 64)
	for _, idx := range []int{-1, 64, 100} {
		_, err := tree.Prove(idx)
		assert.ErrorIs(t, err, merklebatch.ErrIndexOutOfRange, "index %d", idx)
	}
}

// TestOddLayerDuplication pins down the convention for unbalanced trees:
// a lone trailing node is paired with itself, so its proof entry at that
// layer is its own digest, and the parent is hash(node || node).
func TestOddLayerDuplication(t *testing.T) {
	tree := newTestTree(t, 3)
	th := tree.TreeHasher()

	root, err := tree.Root()
	require.NoError(t, err)

	leaf0 := th.HashLeaf([]byte("message-0"))
	leaf1 := th.HashLeaf([]byte("message-1"))
	leaf2 := th.HashLeaf([]byte("message-2"))

	parent01 := th.HashNode(leaf0, leaf1)
	parent22 := th.HashNode(leaf2, leaf2)
	require.Equal(t, th.HashNode(parent01, parent22), root)

	proof, err := tree.Prove(2)
	require.NoError(t, err)
	require.Len(t, proof.Siblings(), 2)
	assert.Equal(t, leaf2, proof.Siblings()[0], "trailing leaf must be its own sibling")
	assert.Equal(t, parent01, proof.Siblings()[1])

	assert.True(t, proof.VerifyInclusion(th, leaf2, root))
}

func TestPushLeaf(t *testing.T) {
	tree := merklebatch.New(crypto.SHA256)
	th := tree.TreeHasher()

	require.NoError(t, tree.PushLeaf(th.HashLeaf([]byte("message-0"))))
	require.ErrorIs(t, tree.PushLeaf([]byte("too short")), merklebatch.ErrInvalidLeafLen)

	root, err := tree.Root()
	require.NoError(t, err)
	assert.Equal(t, th.HashLeaf([]byte("message-0")), root)
}

func TestPushInvalidatesCachedRoot(t *testing.T) {
	tree := newTestTree(t, 4)
	before, err := tree.Root()
	require.NoError(t, err)

	tree.Push([]byte("message-4"))
	after, err := tree.Root()
	require.NoError(t, err)

	assert.NotEqual(t, before, after)
	assert.Equal(t, 5, tree.Size())
	assert.Equal(t, 3, tree.Height())
}

// TestLayerHashingPathsAgree cross-checks the serial, parallel and
// vectorized sha256 layer hashers over a range of batch sizes, including
// every odd-layer shape up to 65.
func TestLayerHashingPathsAgree(t *testing.T) {
	for n := 1; n <= 65; n++ {
		serial, err := newTestTree(t, n, merklebatch.NumWorkers(1)).Root()
		require.NoError(t, err)

		fast, err := newTestTree(t, n, merklebatch.Sha256Compression()).Root()
		require.NoError(t, err)
		require.Equal(t, serial, fast, "vectorized root mismatch at n=%d", n)
	}

	// a batch big enough to cross the parallel threshold
	const n = 4096
	serial, err := newTestTree(t, n, merklebatch.NumWorkers(1)).Root()
	require.NoError(t, err)
	parallel, err := newTestTree(t, n, merklebatch.NumWorkers(8)).Root()
	require.NoError(t, err)
	assert.Equal(t, serial, parallel)

	fast, err := newTestTree(t, n, merklebatch.Sha256Compression()).Root()
	require.NoError(t, err)
	assert.Equal(t, serial, fast)
}

func TestLeafDigest(t *testing.T) {
	tree := newTestTree(t, 3)
	th := tree.TreeHasher()

	leaf, err := tree.LeafDigest(1)
	require.NoError(t, err)
	assert.Equal(t, th.HashLeaf([]byte("message-1")), leaf)

	_, err = tree.LeafDigest(3)
	assert.ErrorIs(t, err, merklebatch.ErrIndexOutOfRange)
}
