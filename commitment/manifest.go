package commitment

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// manifestDoc is the on-disk shape of a record manifest:
//
//	records:
//	  - index: 0
//	    uri: ar://...
type manifestDoc struct {
	Records []manifestRecord `yaml:"records"`
}

// manifestRecord uses a pointer index so a missing field is
// distinguishable from an explicit zero, and a signed type so negative
// indices are caught here rather than wrapping silently.
type manifestRecord struct {
	Index *int64 `yaml:"index"`
	URI   string `yaml:"uri"`
}

// LoadManifest reads the finalized index -> URI mapping produced by the
// content pipeline. Structural problems (missing fields, negative indices)
// are rejected here; set-level validation (duplicates, URI encoding) is
// ValidateRecords' job and runs inside Build.
func LoadManifest(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc manifestDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestRecord, err)
	}
	if len(doc.Records) == 0 {
		return nil, ErrNoRecords
	}

	records := make([]Record, len(doc.Records))
	for i, m := range doc.Records {
		if m.Index == nil {
			return nil, fmt.Errorf("%w: entry %d has no index", ErrManifestRecord, i)
		}
		if *m.Index < 0 {
			return nil, fmt.Errorf("%w: entry %d index %d", ErrIndexOutOfRange, i, *m.Index)
		}
		if m.URI == "" {
			return nil, fmt.Errorf("%w: entry %d has no uri", ErrManifestRecord, i)
		}
		records[i] = Record{Index: uint64(*m.Index), URI: m.URI}
	}
	return records, nil
}
