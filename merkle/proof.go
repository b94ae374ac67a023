package merkle

// Proof collects the sibling hashes witnessing the leaf at position i,
// ordered from the leaf level towards the root.
//
// At each level the witness is the node the current node was combined with.
// A promoted trailing node has no sibling at that level and contributes
// nothing to the path, so proofs over the same tree may have different
// lengths.
//
// For the three leaf tree
//
//	      R
//	     / \
//	  P01   L2
//	  / \
//	L0   L1
//
// the proof for position 0 is [L1, L2] and the proof for position 2 is
// [P01]: L2 is the promoted singleton on level 1, so its first witness is
// already on that level.
func (t *Tree) Proof(i int) ([][HashBytes]byte, error) {
	if i < 0 || i >= t.LeafCount() {
		return nil, ErrLeafIndexRange
	}

	var proof [][HashBytes]byte
	pos := i
	for _, level := range t.levels[:len(t.levels)-1] {
		if pos%2 == 0 {
			if pos+1 < len(level) {
				proof = append(proof, level[pos+1])
			}
			// otherwise pos is the promoted singleton; no witness here
		} else {
			proof = append(proof, level[pos-1])
		}
		// A promoted node keeps its ordinal halved like a paired one: the
		// nodes before it form exactly pos/2 pairs.
		pos /= 2
	}
	return proof, nil
}
