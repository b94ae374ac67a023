package merkle

import (
	"hash"
	"unicode/utf8"
)

// EncodeLeaf computes:
//
//	Keccak256( index_be32 || uriBytes )
//
// The result is a pure function of (index, uri); identical inputs yield an
// identical leaf on any platform. ** the hasher is reset **
func EncodeLeaf(hasher hash.Hash, index uint64, uri string) ([HashBytes]byte, error) {
	if uri == "" {
		return [HashBytes]byte{}, ErrEmptyURI
	}
	if !utf8.ValidString(uri) {
		return [HashBytes]byte{}, ErrInvalidURI
	}
	hasher.Reset()
	HashWriteUint256(hasher, index)
	hasher.Write([]byte(uri))

	var out [HashBytes]byte
	sum := hasher.Sum(out[:0])
	if len(sum) != HashBytes {
		return [HashBytes]byte{}, ErrBadHashSize
	}
	copy(out[:], sum)
	return out, nil
}
