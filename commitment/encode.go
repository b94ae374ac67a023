package commitment

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/orbforge/go-orb-commitment/merkle"
)

// encodeLeaves computes the leaf hash for every record, preserving record
// order in the result. Leaf encoding is a pure function per record so it
// fans out over a fixed set of workers; each worker owns its own Keccak
// state because hash.Hash is not safe for concurrent use. Workers stride
// the slice and write to disjoint positions, so results land in canonical
// order with no further collation.
func encodeLeaves(records []Record, workers int) ([][merkle.HashBytes]byte, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(records) {
		workers = len(records)
	}

	leaves := make([][merkle.HashBytes]byte, len(records))
	errCh := make(chan error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			hasher := merkle.NewHasher()
			for i := w; i < len(records); i += workers {
				leaf, err := merkle.EncodeLeaf(hasher, records[i].Index, records[i].URI)
				if err != nil {
					errCh <- fmt.Errorf("record %d: %w", records[i].Index, err)
					return
				}
				leaves[i] = leaf
			}
		}(w)
	}
	wg.Wait()
	close(errCh)

	// Validation runs before encoding, so this only trips if a caller
	// bypassed ValidateRecords.
	if err := <-errCh; err != nil {
		return nil, err
	}
	return leaves, nil
}
