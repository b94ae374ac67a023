package commitment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/orbforge/go-orb-commitment/merkle"
)

// Leaf pairs one record with its computed leaf hash.
type Leaf struct {
	Index uint64
	URI   string
	Hash  [merkle.HashBytes]byte
}

// Commitment is a fully built, fully self-checked publication unit. It is
// immutable: a changed record set is a new Commitment with a new root and a
// new ID, which downstream consumers must treat as a distinct version.
type Commitment struct {
	// ID distinguishes publish cycles that may commit to identical roots.
	ID string

	Root        [merkle.HashBytes]byte
	GeneratedAt time.Time

	// Leaves in ascending index order, the canonical artifact layout.
	Leaves []Leaf

	// Proofs holds the sibling path for every committed index, ordered
	// leaf to root.
	Proofs map[uint64][][merkle.HashBytes]byte
}

type buildOptions struct {
	encodeWorkers int
}

// Option configures Build.
type Option func(*buildOptions)

// WithEncodeWorkers sets the leaf encoding concurrency. Zero or negative
// selects GOMAXPROCS.
func WithEncodeWorkers(n int) Option {
	return func(o *buildOptions) { o.encodeWorkers = n }
}

// Build runs the whole pipeline over a finalized record set:
//
//	validate -> encode leaves -> build tree -> prove every index -> verify
//
// The verify pass is mandatory: every generated proof is checked against
// the computed root before the Commitment is returned, and a single
// failure aborts with ErrSelfCheckFailed. Nothing is exported, and nothing
// should be published, from a Build that returned an error.
func Build(records []Record, opts ...Option) (*Commitment, error) {
	o := buildOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	if err := ValidateRecords(records); err != nil {
		return nil, err
	}
	recs := sortedRecords(records)

	leaves, err := encodeLeaves(recs, o.encodeWorkers)
	if err != nil {
		return nil, err
	}

	tree, err := merkle.BuildTree(merkle.NewHasher(), leaves)
	if err != nil {
		return nil, err
	}
	root := tree.Root()

	hasher := merkle.NewHasher()
	proofs := make(map[uint64][][merkle.HashBytes]byte, len(recs))
	for i, r := range recs {
		proof, err := tree.Proof(i)
		if err != nil {
			return nil, err
		}
		if !merkle.VerifyInclusion(hasher, leaves[i], proof, root) {
			return nil, fmt.Errorf("%w: index %d", ErrSelfCheckFailed, r.Index)
		}
		proofs[r.Index] = proof
	}

	c := &Commitment{
		ID:          uuid.NewString(),
		Root:        root,
		GeneratedAt: time.Now().UTC(),
		Leaves:      make([]Leaf, len(recs)),
		Proofs:      proofs,
	}
	for i, r := range recs {
		c.Leaves[i] = Leaf{Index: r.Index, URI: r.URI, Hash: leaves[i]}
	}
	return c, nil
}

// Proof returns the sibling path for index, ordered leaf to root.
func (c *Commitment) Proof(index uint64) ([][merkle.HashBytes]byte, error) {
	proof, ok := c.Proofs[index]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownIndex, index)
	}
	return proof, nil
}
