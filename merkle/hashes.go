package merkle

import (
	"encoding/binary"
	"hash"

	"golang.org/x/crypto/sha3"
)

// HashBytes is the fixed width of leaf and interior node hashes.
const HashBytes = 32

// IndexBytes is the fixed width of the big-endian index prefix in a leaf
// pre-image. It matches the packed uint256 encoding recomputed by on-chain
// verifiers.
const IndexBytes = 32

// NewHasher returns the Keccak-256 state used for all leaf and interior
// node hashing. Callers on concurrent paths must create one hasher per
// goroutine; hash.Hash is not safe for concurrent use.
func NewHasher() hash.Hash {
	return sha3.NewLegacyKeccak256()
}

// HashWriteUint256 writes value to the hasher as a 32 byte big-endian field
// - most significant byte at the lowest offset, zero padded on the left.
func HashWriteUint256(hasher hash.Hash, value uint64) {
	b := [IndexBytes]byte{}
	binary.BigEndian.PutUint64(b[IndexBytes-8:], value)
	hasher.Write(b[:])
}
