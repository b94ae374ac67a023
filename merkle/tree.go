package merkle

import "hash"

// Tree is a fully materialized commitment tree. Level 0 holds the leaves in
// the order they were supplied; the last level holds exactly the root. All
// levels are retained so that proof generation is a simple walk with no
// re-hashing.
//
// A Tree is immutable once built and safe for concurrent readers.
type Tree struct {
	levels [][][HashBytes]byte
}

// BuildTree constructs the tree over leaves.
//
// Each level pairs adjacent nodes with HashPair. An odd trailing node is
// promoted to the next level unchanged; it is never duplicated or hashed
// with itself. Construction stops when a level holds a single node, the
// root. For a single leaf the root is the leaf itself.
func BuildTree(hasher hash.Hash, leaves [][HashBytes]byte) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyLeaves
	}

	level := make([][HashBytes]byte, len(leaves))
	copy(level, leaves)

	levels := [][][HashBytes]byte{level}
	for len(level) > 1 {
		next := make([][HashBytes]byte, 0, (len(level)+1)/2)
		for i := 0; i+1 < len(level); i += 2 {
			next = append(next, HashPair(hasher, level[i], level[i+1]))
		}
		if len(level)%2 == 1 {
			// promote the odd trailing node unchanged
			next = append(next, level[len(level)-1])
		}
		levels = append(levels, next)
		level = next
	}

	return &Tree{levels: levels}, nil
}

// Root returns the single node of the last level.
func (t *Tree) Root() [HashBytes]byte {
	top := t.levels[len(t.levels)-1]
	return top[0]
}

// LeafCount returns the number of leaves the tree was built over.
func (t *Tree) LeafCount() int {
	return len(t.levels[0])
}

// Height returns the number of levels, leaves and root included.
func (t *Tree) Height() int {
	return len(t.levels)
}

// Leaf returns the leaf hash at position i of level 0.
func (t *Tree) Leaf(i int) ([HashBytes]byte, error) {
	if i < 0 || i >= t.LeafCount() {
		return [HashBytes]byte{}, ErrLeafIndexRange
	}
	return t.levels[0][i], nil
}
