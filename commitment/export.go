package commitment

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/orbforge/go-orb-commitment/merkle"
)

// RootSummary is the minimal published shape: enough to anchor the
// commitment on-chain and date it, nothing else.
type RootSummary struct {
	Root        string `json:"root"`
	TotalLeaves int    `json:"totalLeaves"`
	GeneratedAt string `json:"generatedAt"`
}

// ExportLeaf is one (index, uri, leaf) row of the full export.
type ExportLeaf struct {
	Index uint64 `json:"index"`
	URI   string `json:"uri"`
	Leaf  string `json:"leaf"`
}

// Export is the full downstream shape: the summary plus every leaf and
// every proof. It is a pure reshaping of a verified Commitment; no field
// may be altered or truncated on the way out.
type Export struct {
	ID          string              `json:"id"`
	Root        string              `json:"root"`
	TotalLeaves int                 `json:"totalLeaves"`
	GeneratedAt string              `json:"generatedAt"`
	Leaves      []ExportLeaf        `json:"leaves"`
	Proofs      map[uint64][]string `json:"proofs"`
}

// HashHex formats a hash the way every artifact does: 0x-prefixed lower
// case hex.
func HashHex(h [merkle.HashBytes]byte) string {
	return "0x" + hex.EncodeToString(h[:])
}

// ParseHashHex parses a 0x-prefixed 32 byte hex hash.
func ParseHashHex(s string) ([merkle.HashBytes]byte, error) {
	var out [merkle.HashBytes]byte
	if !strings.HasPrefix(s, "0x") {
		return out, fmt.Errorf("%w: missing 0x prefix: %q", ErrBadHashHex, s)
	}
	b, err := hex.DecodeString(s[2:])
	if err != nil {
		return out, fmt.Errorf("%w: %q", ErrBadHashHex, s)
	}
	if len(b) != merkle.HashBytes {
		return out, fmt.Errorf("%w: want %d bytes, got %d", ErrBadHashHex, merkle.HashBytes, len(b))
	}
	copy(out[:], b)
	return out, nil
}

// Summary returns the root commitment shape.
func (c *Commitment) Summary() RootSummary {
	return RootSummary{
		Root:        HashHex(c.Root),
		TotalLeaves: len(c.Leaves),
		GeneratedAt: c.GeneratedAt.Format(time.RFC3339),
	}
}

// Export returns the full export shape.
func (c *Commitment) Export() Export {
	e := Export{
		ID:          c.ID,
		Root:        HashHex(c.Root),
		TotalLeaves: len(c.Leaves),
		GeneratedAt: c.GeneratedAt.Format(time.RFC3339),
		Leaves:      make([]ExportLeaf, len(c.Leaves)),
		Proofs:      make(map[uint64][]string, len(c.Proofs)),
	}
	for i, l := range c.Leaves {
		e.Leaves[i] = ExportLeaf{Index: l.Index, URI: l.URI, Leaf: HashHex(l.Hash)}
	}
	for index, proof := range c.Proofs {
		siblings := make([]string, len(proof))
		for i, h := range proof {
			siblings[i] = HashHex(h)
		}
		e.Proofs[index] = siblings
	}
	return e
}

// WriteSummaryFile writes the root commitment JSON to path.
func WriteSummaryFile(path string, c *Commitment) error {
	return writeJSONFile(path, c.Summary())
}

// WriteExportFile writes the full export JSON to path.
func WriteExportFile(path string, c *Commitment) error {
	return writeJSONFile(path, c.Export())
}

// ReadExportFile reads a previously written full export.
func ReadExportFile(path string) (Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Export{}, fmt.Errorf("%w: %v", ErrExport, err)
	}
	var e Export
	if err := json.Unmarshal(data, &e); err != nil {
		return Export{}, fmt.Errorf("%w: %v", ErrExport, err)
	}
	return e, nil
}

// VerifyExportProof recomputes the leaf for (index, uri) and folds the
// stored proof to the stored root. An empty uri means "use the uri the
// export carries for that index"; passing an explicit uri lets a holder
// check their own copy of the content pointer against the commitment.
func VerifyExportProof(e Export, index uint64, uri string) error {
	var entry *ExportLeaf
	for i := range e.Leaves {
		if e.Leaves[i].Index == index {
			entry = &e.Leaves[i]
			break
		}
	}
	if entry == nil {
		return fmt.Errorf("%w: %d", ErrUnknownIndex, index)
	}
	if uri == "" {
		uri = entry.URI
	}

	siblings, ok := e.Proofs[index]
	if !ok {
		return fmt.Errorf("%w: no proof for %d", ErrUnknownIndex, index)
	}
	proof := make([][merkle.HashBytes]byte, len(siblings))
	for i, s := range siblings {
		h, err := ParseHashHex(s)
		if err != nil {
			return err
		}
		proof[i] = h
	}
	root, err := ParseHashHex(e.Root)
	if err != nil {
		return err
	}

	hasher := merkle.NewHasher()
	leaf, err := merkle.EncodeLeaf(hasher, index, uri)
	if err != nil {
		return err
	}
	if !merkle.VerifyInclusion(hasher, leaf, proof, root) {
		return fmt.Errorf("%w: index %d", ErrProofInvalid, index)
	}
	return nil
}

func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	return nil
}
