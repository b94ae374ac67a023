package commitment

import (
	"crypto/ecdsa"
	"crypto/rand"
	"fmt"

	"github.com/veraison/go-cose"
)

// CheckpointState is the payload of a signed checkpoint: the minimal facts
// an off-chain holder needs to tie a root to a publish cycle. It is
// CBOR encoded with integer keys to keep the signed payload small and
// stable.
type CheckpointState struct {
	Root         []byte `cbor:"1,keyasint"`
	TotalLeaves  uint64 `cbor:"2,keyasint"`
	// Timestamp is unix milliseconds at build time. Including it allows the
	// same root to be re-signed across publish cycles.
	Timestamp    int64  `cbor:"3,keyasint"`
	CommitmentID string `cbor:"4,keyasint"`
	Issuer       string `cbor:"5,keyasint"`
}

// CheckpointSigner produces a COSE Sign1 attestation over a commitment.
// The signature commits to the checkpoint state; it should only be created
// after Build's self check has passed, since a signed checkpoint is
// effectively irrevocable once shared.
type CheckpointSigner struct {
	issuer string
	codec  CBORCodec
}

func NewCheckpointSigner(issuer string, codec CBORCodec) CheckpointSigner {
	return CheckpointSigner{issuer: issuer, codec: codec}
}

// Sign1 signs the checkpoint state for c with an ES256 key and returns the
// encoded COSE Sign1 message. keyIdentifier lands in the protected kid
// header so verifiers can locate the right public key.
func (cs CheckpointSigner) Sign1(key *ecdsa.PrivateKey, keyIdentifier string, c *Commitment) ([]byte, error) {
	state := CheckpointState{
		Root:         c.Root[:],
		TotalLeaves:  uint64(len(c.Leaves)),
		Timestamp:    c.GeneratedAt.UnixMilli(),
		CommitmentID: c.ID,
		Issuer:       cs.issuer,
	}
	payload, err := cs.codec.MarshalCBOR(state)
	if err != nil {
		return nil, err
	}

	signer, err := cose.NewSigner(cose.AlgorithmES256, key)
	if err != nil {
		return nil, err
	}

	msg := cose.Sign1Message{
		Headers: cose.Headers{
			Protected: cose.ProtectedHeader{
				cose.HeaderLabelKeyID: []byte(keyIdentifier),
			},
		},
		Payload: payload,
	}
	if err = msg.Sign(rand.Reader, nil, signer); err != nil {
		return nil, err
	}
	return msg.MarshalCBOR()
}

// VerifyCheckpoint checks the Sign1 signature with publicKey and, on
// success, decodes and returns the attested state. Callers are expected to
// compare state.Root against the root they obtained independently.
func VerifyCheckpoint(codec CBORCodec, signed []byte, publicKey *ecdsa.PublicKey) (CheckpointState, error) {
	var msg cose.Sign1Message
	if err := msg.UnmarshalCBOR(signed); err != nil {
		return CheckpointState{}, fmt.Errorf("%w: %v", ErrCheckpointVerify, err)
	}

	verifier, err := cose.NewVerifier(cose.AlgorithmES256, publicKey)
	if err != nil {
		return CheckpointState{}, err
	}
	if err := msg.Verify(nil, verifier); err != nil {
		return CheckpointState{}, fmt.Errorf("%w: %v", ErrCheckpointVerify, err)
	}

	var state CheckpointState
	if err := codec.UnmarshalCBOR(msg.Payload, &state); err != nil {
		return CheckpointState{}, fmt.Errorf("%w: %v", ErrCheckpointVerify, err)
	}
	return state, nil
}
