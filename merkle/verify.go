package merkle

import "hash"

// VerifyInclusion returns true if folding proof over leafHash with HashPair
// reproduces root.
//
// The sorted pair rule means no left/right direction information is needed:
// the verifier simply combines the running hash with each witness in order.
// An empty proof verifies iff leafHash equals root, which is the single
// leaf tree case.
func VerifyInclusion(hasher hash.Hash, leafHash [HashBytes]byte, proof [][HashBytes]byte, root [HashBytes]byte) bool {
	elementHash := leafHash
	for _, sibling := range proof {
		elementHash = HashPair(hasher, elementHash, sibling)
	}
	return elementHash == root
}
