package commitment

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/orbforge/go-orb-commitment/merkle"
)

// Record is one entry of the finalized index -> URI mapping. The index is
// unique across the input set; the URI is an opaque pointer to permanently
// stored content (typically ar://).
type Record struct {
	Index uint64 `json:"index" yaml:"index"`
	URI   string `json:"uri" yaml:"uri"`
}

// ValidateRecords rejects empty sets, duplicate indices and malformed URIs.
// It runs before any hashing is attempted; a validation failure is fatal to
// the whole publish.
func ValidateRecords(records []Record) error {
	if len(records) == 0 {
		return ErrNoRecords
	}
	seen := make(map[uint64]struct{}, len(records))
	for _, r := range records {
		if _, ok := seen[r.Index]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateIndex, r.Index)
		}
		seen[r.Index] = struct{}{}

		if r.URI == "" {
			return fmt.Errorf("%w: record %d", merkle.ErrEmptyURI, r.Index)
		}
		if !utf8.ValidString(r.URI) {
			return fmt.Errorf("%w: record %d", merkle.ErrInvalidURI, r.Index)
		}
	}
	return nil
}

// sortedRecords returns a copy of records in ascending index order, the
// single canonical ordering used for artifact layout. The root does not
// depend on this ordering; proofs and exports do.
func sortedRecords(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}
