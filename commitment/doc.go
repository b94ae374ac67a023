package commitment

/*

Package commitment turns a finalized index -> URI record set into a
published commitment: a Keccak-256 merkle root over all records, one
inclusion proof per index, and the artifact shapes downstream consumers
depend on.

The pipeline is four pure stages: validate, encode, build, prove, with a
mandatory self check folded into the prove stage. Every generated proof is
verified against the computed root before Build returns; a single failure
aborts the publish. There is no partial success mode for a commitment.

The artifact writers (JSON summary and full export, CSV audit table,
deterministic CBOR, signed checkpoint, language binding constants) only
reshape an already verified Commitment. None of them hash anything, and an
artifact write failure never invalidates the in-memory commitment.

*/
