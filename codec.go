package merklebatch

import (
	"encoding/json"

	"github.com/merklebatch/merklebatch/pb"
)

// ToProto exports the proof into its protobuf representation.
func (proof Proof) ToProto() pb.Proof {
	return pb.Proof{
		Index:    int64(proof.index),
		Siblings: proof.siblings,
	}
}

// ProofFromProto restores a proof from its protobuf representation.
func ProofFromProto(p pb.Proof) Proof {
	return NewProof(int(p.Index), p.Siblings)
}

// MarshalBinary encodes the proof in its protobuf wire format.
func (proof Proof) MarshalBinary() ([]byte, error) {
	p := proof.ToProto()
	return p.Marshal()
}

// UnmarshalProofBinary decodes a proof from its protobuf wire format.
func UnmarshalProofBinary(data []byte) (Proof, error) {
	var p pb.Proof
	if err := p.Unmarshal(data); err != nil {
		return Proof{}, err
	}
	return ProofFromProto(p), nil
}

// proofJSON mirrors Proof for JSON round-tripping; the digests encode as
// base64 strings, encoding/json's default for byte slices.
type proofJSON struct {
	Index    int      `json:"index"`
	Siblings [][]byte `json:"siblings"`
}

// MarshalJSON encodes the proof as {"index": ..., "siblings": [...]}.
func (proof Proof) MarshalJSON() ([]byte, error) {
	return json.Marshal(proofJSON{
		Index:    proof.index,
		Siblings: proof.siblings,
	})
}

// UnmarshalJSON restores a proof encoded by MarshalJSON.
func (proof *Proof) UnmarshalJSON(data []byte) error {
	var p proofJSON
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	proof.index = p.Index
	proof.siblings = p.Siblings
	return nil
}

// ToProto exports the bundle into its protobuf representation.
func (b ProofBundle) ToProto() pb.ProofBundle {
	return pb.ProofBundle{
		Index:     int64(b.Index),
		Path:      b.Path,
		Signature: b.Signature,
		Root:      b.Root,
	}
}

// ProofBundleFromProto restores a bundle from its protobuf representation.
func ProofBundleFromProto(p pb.ProofBundle) ProofBundle {
	return ProofBundle{
		Index:     int(p.Index),
		Path:      p.Path,
		Signature: p.Signature,
		Root:      p.Root,
	}
}

// MarshalBinary encodes the bundle in its protobuf wire format.
func (b ProofBundle) MarshalBinary() ([]byte, error) {
	p := b.ToProto()
	return p.Marshal()
}

// UnmarshalProofBundleBinary decodes a bundle from its protobuf wire
// format.
func UnmarshalProofBundleBinary(data []byte) (ProofBundle, error) {
	var p pb.ProofBundle
	if err := p.Unmarshal(data); err != nil {
		return ProofBundle{}, err
	}
	return ProofBundleFromProto(p), nil
}
