package commitment

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteCSV writes the (index, uri, leaf) audit table. The table carries no
// proofs; it exists so the leaf set can be independently recomputed and
// diffed without parsing the full export.
func WriteCSV(w io.Writer, c *Commitment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"index", "uri", "leaf"}); err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	for _, l := range c.Leaves {
		row := []string{strconv.FormatUint(l.Index, 10), l.URI, HashHex(l.Hash)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("%w: %v", ErrExport, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	return nil
}

// WriteCSVFile writes the audit table to path.
func WriteCSVFile(path string, c *Commitment) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	if err := WriteCSV(f, c); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	return nil
}
