package merklebatch_test

import (
	"bytes"
	"crypto"
	_ "crypto/sha256"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merklebatch/merklebatch"
	"github.com/merklebatch/merklebatch/ed25519sig"
)

var testSeed = bytes.Repeat([]byte{0x42}, 32)

func testMessages(n int) [][]byte {
	messages := make([][]byte, n)
	for i := range messages {
		messages[i] = []byte("message-" + strconv.Itoa(i))
	}
	return messages
}

func TestSignBatchEndToEnd(t *testing.T) {
	const n = 64
	messages := testMessages(n)

	signer, err := ed25519sig.FromSeed(testSeed)
	require.NoError(t, err)

	root, bundles, err := merklebatch.SignBatch(messages, crypto.SHA256, signer)
	require.NoError(t, err)
	require.Len(t, bundles, n)

	// same root as a tree built by hand
	wantRoot, err := newTestTree(t, n).Root()
	require.NoError(t, err)
	require.Equal(t, wantRoot, root)

	for i, bundle := range bundles {
		assert.Equal(t, i, bundle.Index)
		assert.Equal(t, root, bundle.Root)
		assert.Equal(t, bundles[0].Signature, bundle.Signature, "signature must be shared across the batch")
		assert.True(t, merklebatch.VerifyBundle(messages[i], bundle, crypto.SHA256, signer), "bundle %d", i)
	}

	// ceil(log2(64)) = 6 path entries of 32 bytes each, plus the signature's
	// 1/64 share
	require.Len(t, bundles[0].Path, 6)
	sigLen := len(bundles[0].Signature)
	assert.InDelta(t, float64(sigLen)/64+6*32, bundles[0].Overhead(n), 1e-9)
}

func TestSignBatchEmpty(t *testing.T) {
	signer := &countingSigner{}
	_, bundles, err := merklebatch.SignBatch(nil, crypto.SHA256, signer)
	require.ErrorIs(t, err, merklebatch.ErrEmptyBatch)
	assert.Nil(t, bundles)
	assert.Zero(t, signer.calls, "signer must not be invoked for an empty batch")
}

func TestSignBatchSignerFailure(t *testing.T) {
	wantErr := errors.New("key unavailable")
	_, bundles, err := merklebatch.SignBatch(testMessages(8), crypto.SHA256, &failingSigner{err: wantErr})
	require.ErrorIs(t, err, wantErr)
	assert.Nil(t, bundles, "no partial bundles on signer failure")
}

func TestSignBatchDuplicateMessages(t *testing.T) {
	messages := [][]byte{
		[]byte("same message"),
		[]byte("same message"),
		[]byte("another one"),
	}
	signer, err := ed25519sig.FromSeed(testSeed)
	require.NoError(t, err)

	_, bundles, err := merklebatch.SignBatch(messages, crypto.SHA256, signer)
	require.NoError(t, err)
	require.Len(t, bundles, 3)

	// identical messages occupy distinct positions, each independently
	// verifiable
	for i := range messages {
		assert.Equal(t, i, bundles[i].Index)
		assert.True(t, merklebatch.VerifyBundle(messages[i], bundles[i], crypto.SHA256, signer))
	}
}

func TestVerifyBundleFailsClosed(t *testing.T) {
	messages := testMessages(16)
	signer, err := ed25519sig.FromSeed(testSeed)
	require.NoError(t, err)

	_, bundles, err := merklebatch.SignBatch(messages, crypto.SHA256, signer)
	require.NoError(t, err)
	bundle := bundles[7]

	t.Run("wrong message", func(t *testing.T) {
		assert.False(t, merklebatch.VerifyBundle([]byte("message-8"), bundle, crypto.SHA256, signer))
	})

	t.Run("wrong signer", func(t *testing.T) {
		other, err := ed25519sig.NewSigner(nil)
		require.NoError(t, err)
		assert.False(t, merklebatch.VerifyBundle(messages[7], bundle, crypto.SHA256, other))
	})

	t.Run("tampered signature", func(t *testing.T) {
		tampered := bundle
		tampered.Signature = flipBit(bundle.Signature, 12)
		assert.False(t, merklebatch.VerifyBundle(messages[7], tampered, crypto.SHA256, signer))
	})

	t.Run("tampered root", func(t *testing.T) {
		tampered := bundle
		tampered.Root = flipBit(bundle.Root, 12)
		assert.False(t, merklebatch.VerifyBundle(messages[7], tampered, crypto.SHA256, signer))
	})
}

type failingSigner struct {
	err error
}

func (s *failingSigner) Sign([]byte) ([]byte, error) { return nil, s.err }
func (s *failingSigner) Verify([]byte, []byte) bool  { return false }

type countingSigner struct {
	calls int
}

func (s *countingSigner) Sign(digest []byte) ([]byte, error) {
	s.calls++
	return []byte("sig"), nil
}
func (s *countingSigner) Verify([]byte, []byte) bool { return true }
