package merkle

/*

# Commitment tree primitives

This package provides the primitives for building a binary hash tree over a
finalized set of leaf hashes, producing a single 32 byte root suitable for
publication as an on-chain commitment, and for generating and verifying
inclusion proofs against that root.

It follows a "functional primitives" style:

- small, composable functions
- an injected `hash.Hash` (Keccak-256, see NewHasher) on hot paths
- explicit byte layouts

## Hashing rules

The rules below are the binding external contract of the whole system. Any
independent reimplementation (in particular the on-chain verifier) must
reproduce byte-identical leaves and roots, so none of them may change for a
root that has already been published.

1. A leaf is `Keccak256(index_be32 || uriBytes)`. The index is a fixed width
   32 byte big-endian field, matching the packed uint256 convention used by
   on-chain verifiers. There is no delimiter between the two fields; this is
   unambiguous only because the index width is fixed.

2. Interior nodes combine children as `Keccak256(min(a,b) || max(a,b))`,
   ordered by byte-lexicographic comparison. A parent hash therefore never
   depends on which child was left and which was right, and a verifier can
   fold a proof without any position information.

3. An odd trailing node on a level is promoted to the next level unchanged.
   It is not duplicated and not re-hashed with itself.

## Lifecycle

A Tree is built once from a finalized leaf set, read for a root and one
proof per leaf, and then discarded. There is no append or update operation;
any change to the underlying record set is a new tree and a new, distinct
commitment.

*/
