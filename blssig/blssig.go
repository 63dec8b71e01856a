// Package blssig implements merklebatch.Signer with minimized-signature
// BLS over BLS12-381: signatures on G1 (48 compressed bytes), public keys
// on G2 (96 compressed bytes).
package blssig

import (
	"errors"
	"fmt"

	blst "github.com/supranational/blst/bindings/go"
)

// The domain separation tag is a requirement per RFC9380 (Hashing to
// Elliptic Curves); this is the ciphersuite ID of the basic min-sig scheme
// from draft-irtf-cfrg-bls-signature-05, section 4.1.
var DomainSeparationTag = []byte("BLS_SIG_BLS12381G1_XMD:SHA-256_SSWU_RO_NUL_")

const (
	// SignatureLength is the length of a compressed G1 signature.
	SignatureLength = blst.BLST_P1_COMPRESS_BYTES
	// PubKeyLength is the length of a compressed G2 public key.
	PubKeyLength = blst.BLST_P2_COMPRESS_BYTES
)

// Signer holds a BLS secret scalar and its public point.
type Signer struct {
	secret blst.SecretKey

	// The point is the effective public key; it is insufficient to derive
	// the secret.
	point blst.P2Affine
}

// NewSigner derives a signer from initial key material, which must be at
// least 32 bytes and should be cryptographically random.
func NewSigner(ikm []byte) (*Signer, error) {
	if len(ikm) < blst.BLST_SCALAR_BYTES {
		return nil, fmt.Errorf(
			"ikm data too short: got %d, need at least %d",
			len(ikm), blst.BLST_SCALAR_BYTES,
		)
	}

	secret := blst.KeyGen(ikm)
	if secret == nil {
		return nil, errors.New("failed to derive secret key")
	}

	point := new(blst.P2Affine)
	point = point.From(secret)

	return &Signer{
		secret: *secret,
		point:  *point,
	}, nil
}

// PubKeyBytes returns the compressed public key point.
func (s *Signer) PubKeyBytes() []byte {
	return s.point.Compress()
}

// Sign produces the compressed signature point for the given digest, using
// the package's DomainSeparationTag.
func (s *Signer) Sign(digest []byte) ([]byte, error) {
	sig := new(blst.P1Affine).Sign(&s.secret, digest, DomainSeparationTag)

	// sig could be nil only if option parsing failed.
	if sig == nil {
		return nil, errors.New("failed to sign")
	}
	return sig.Compress(), nil
}

// Verify reports whether sig is this signer's valid signature over digest.
func (s *Signer) Verify(digest, sig []byte) bool {
	p1 := new(blst.P1Affine).Uncompress(sig)
	if p1 == nil {
		return false
	}
	if !p1.SigValidate(false) {
		return false
	}
	return p1.Verify(false, &s.point, false, blst.Message(digest), DomainSeparationTag)
}
