// Package ed25519sig implements merklebatch.Signer with Ed25519. It is the
// cheap baseline scheme: signing is fast and signatures are 64 bytes, so
// batching buys little. Its use is tests and demos, where an expensive
// scheme would only slow things down.
package ed25519sig

import (
	"crypto/ed25519"
	"fmt"
	"io"
)

// Signer wraps an Ed25519 keypair.
type Signer struct {
	priv ed25519.PrivateKey
	pub  ed25519.PublicKey
}

// NewSigner generates a keypair from the given entropy source, or
// crypto/rand when rand is nil.
func NewSigner(rand io.Reader) (*Signer, error) {
	pub, priv, err := ed25519.GenerateKey(rand)
	if err != nil {
		return nil, fmt.Errorf("generating ed25519 key: %w", err)
	}
	return &Signer{priv: priv, pub: pub}, nil
}

// FromSeed derives a deterministic signer from a 32-byte seed.
func FromSeed(seed []byte) (*Signer, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return &Signer{
		priv: priv,
		pub:  priv.Public().(ed25519.PublicKey),
	}, nil
}

// PubKeyBytes returns the 32-byte public key.
func (s *Signer) PubKeyBytes() []byte {
	return append([]byte(nil), s.pub...)
}

// Sign signs the digest directly; Ed25519 performs its own internal
// hashing, so no pre-hash variant is needed for fixed-size digests.
func (s *Signer) Sign(digest []byte) ([]byte, error) {
	return ed25519.Sign(s.priv, digest), nil
}

// Verify reports whether sig is this signer's valid signature over digest.
func (s *Signer) Verify(digest, sig []byte) bool {
	if len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(s.pub, digest, sig)
}
