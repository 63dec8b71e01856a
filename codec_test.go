package merklebatch_test

import (
	"crypto"
	_ "crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/merklebatch/merklebatch"
	"github.com/merklebatch/merklebatch/ed25519sig"
)

func TestProofProtoRoundTrip(t *testing.T) {
	tree := newTestTree(t, 7)
	proof, err := tree.Prove(4)
	require.NoError(t, err)

	data, err := proof.MarshalBinary()
	require.NoError(t, err)

	got, err := merklebatch.UnmarshalProofBinary(data)
	require.NoError(t, err)
	assert.Equal(t, proof.Index(), got.Index())
	assert.Equal(t, proof.Siblings(), got.Siblings())

	root, err := tree.Root()
	require.NoError(t, err)
	leaf, err := tree.LeafDigest(4)
	require.NoError(t, err)
	assert.True(t, got.VerifyInclusion(tree.TreeHasher(), leaf, root))
}

func TestProofBundleProtoRoundTrip(t *testing.T) {
	signer, err := ed25519sig.FromSeed(testSeed)
	require.NoError(t, err)

	messages := testMessages(7)
	_, bundles, err := merklebatch.SignBatch(messages, crypto.SHA256, signer)
	require.NoError(t, err)

	for _, bundle := range bundles {
		data, err := bundle.MarshalBinary()
		require.NoError(t, err)

		got, err := merklebatch.UnmarshalProofBundleBinary(data)
		require.NoError(t, err)
		require.Equal(t, bundle, got)
		assert.True(t, merklebatch.VerifyBundle(messages[got.Index], got, crypto.SHA256, signer))
	}
}

func TestProofJSON(t *testing.T) {
	tree := newTestTree(t, 4)
	proof, err := tree.Prove(2)
	require.NoError(t, err)

	data, err := json.Marshal(proof)
	require.NoError(t, err)

	// spot-check the document shape rather than comparing marshaled bytes
	assert.EqualValues(t, 2, gjson.GetBytes(data, "index").Int())
	siblings := gjson.GetBytes(data, "siblings").Array()
	require.Len(t, siblings, 2)
	wantFirst := base64.StdEncoding.EncodeToString(proof.Siblings()[0])
	assert.Equal(t, wantFirst, siblings[0].String())

	var got merklebatch.Proof
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, proof.Index(), got.Index())
	assert.Equal(t, proof.Siblings(), got.Siblings())
}

func TestProofBundleJSONRoundTrip(t *testing.T) {
	signer, err := ed25519sig.FromSeed(testSeed)
	require.NoError(t, err)

	_, bundles, err := merklebatch.SignBatch(testMessages(3), crypto.SHA256, signer)
	require.NoError(t, err)

	data, err := json.Marshal(bundles[1])
	require.NoError(t, err)
	assert.EqualValues(t, 1, gjson.GetBytes(data, "index").Int())

	var got merklebatch.ProofBundle
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, bundles[1], got)
}
