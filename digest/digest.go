// Package digest names the hash suites the batching core is known to work
// with and registers their implementations. Importing it is enough to make
// crypto.SHA256, crypto.SHA3_256 and crypto.BLAKE2b_256 available to
// merklebatch.New.
package digest

import (
	"crypto"
	"fmt"

	// register the suite implementations with the crypto package
	_ "crypto/sha256"

	_ "golang.org/x/crypto/blake2b"
	_ "golang.org/x/crypto/sha3"
)

// Suite is a named, fixed-output-length hash construction.
type Suite struct {
	Name string
	Hash crypto.Hash
}

// Size returns the suite's digest length in bytes.
func (s Suite) Size() int { return s.Hash.Size() }

var (
	SHA256     = Suite{Name: "sha256", Hash: crypto.SHA256}
	SHA3256    = Suite{Name: "sha3-256", Hash: crypto.SHA3_256}
	BLAKE2b256 = Suite{Name: "blake2b-256", Hash: crypto.BLAKE2b_256}
)

// Suites returns all named suites, 32-byte digests each.
func Suites() []Suite {
	return []Suite{SHA256, SHA3256, BLAKE2b256}
}

// FromName resolves a suite by its name.
func FromName(name string) (Suite, error) {
	for _, s := range Suites() {
		if s.Name == name {
			return s, nil
		}
	}
	return Suite{}, fmt.Errorf("unknown hash suite %q", name)
}
