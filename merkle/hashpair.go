package merkle

import (
	"bytes"
	"hash"
)

// HashPair returns H(min(a,b) || max(a,b)) using byte-lexicographic
// comparison, so the result never depends on argument order.
// ** the hasher is reset **
func HashPair(hasher hash.Hash, a, b [HashBytes]byte) [HashBytes]byte {
	hasher.Reset()
	if bytes.Compare(a[:], b[:]) <= 0 {
		hasher.Write(a[:])
		hasher.Write(b[:])
	} else {
		hasher.Write(b[:])
		hasher.Write(a[:])
	}

	var out [HashBytes]byte
	sum := hasher.Sum(out[:0])
	copy(out[:], sum)
	return out
}
