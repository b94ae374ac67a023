package commitment

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"
)

// The binding writers are pure reshaping of the export: a root constant
// and a lookup(index) -> {uri, proof} accessor. They contain no hashing
// logic and must never reorder, alter or truncate the exported data.

// bindingEntry carries pre-quoted literals so the templates stay a plain
// line-per-entry with no quoting logic inside them.
type bindingEntry struct {
	Index   uint64
	URI     string // quoted string literal
	GoProof string // {"0x...", ...}
	TSProof string // ["0x...", ...]
}

type bindingData struct {
	Package string
	Root    string
	Entries []bindingEntry
}

const goBindingTemplate = `// Code generated by orbforge. DO NOT EDIT.

package {{.Package}}

// Root is the published commitment root.
const Root = "{{.Root}}"

// Entry is one committed (uri, proof) pair.
type Entry struct {
	URI   string
	Proof []string
}

var entries = map[uint64]Entry{
{{- range .Entries}}
	{{.Index}}: {URI: {{.URI}}, Proof: []string{{.GoProof}}},
{{- end}}
}

// Lookup returns the committed entry for index.
func Lookup(index uint64) (Entry, bool) {
	e, ok := entries[index]
	return e, ok
}
`

const tsBindingTemplate = `// Code generated by orbforge. DO NOT EDIT.

export const ROOT = "{{.Root}}";

export interface Entry {
  uri: string;
  proof: string[];
}

const ENTRIES: Record<number, Entry> = {
{{- range .Entries}}
  {{.Index}}: { uri: {{.URI}}, proof: {{.TSProof}} },
{{- end}}
};

export function lookup(index: number): Entry | undefined {
  return ENTRIES[index];
}
`

var (
	goBinding = template.Must(template.New("go").Parse(goBindingTemplate))
	tsBinding = template.Must(template.New("ts").Parse(tsBindingTemplate))
)

func bindingDataFor(pkg string, c *Commitment) (bindingData, error) {
	d := bindingData{
		Package: pkg,
		Root:    HashHex(c.Root),
		Entries: make([]bindingEntry, len(c.Leaves)),
	}
	for i, l := range c.Leaves {
		proof, err := c.Proof(l.Index)
		if err != nil {
			return bindingData{}, err
		}
		quoted := make([]string, len(proof))
		for j, h := range proof {
			quoted[j] = strconv.Quote(HashHex(h))
		}
		list := strings.Join(quoted, ", ")
		d.Entries[i] = bindingEntry{
			Index:   l.Index,
			URI:     strconv.Quote(l.URI),
			GoProof: "{" + list + "}",
			TSProof: "[" + list + "]",
		}
	}
	return d, nil
}

// WriteGoBinding writes a Go constants file for pkg exposing the root and
// a Lookup accessor.
func WriteGoBinding(w io.Writer, pkg string, c *Commitment) error {
	d, err := bindingDataFor(pkg, c)
	if err != nil {
		return err
	}
	if err := goBinding.Execute(w, d); err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	return nil
}

// WriteTSBinding writes the TypeScript equivalent.
func WriteTSBinding(w io.Writer, c *Commitment) error {
	d, err := bindingDataFor("", c)
	if err != nil {
		return err
	}
	if err := tsBinding.Execute(w, d); err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	return nil
}

// WriteBindingFile dispatches on lang ("go" or "ts") and writes to path.
func WriteBindingFile(path, lang, pkg string, c *Commitment) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	switch lang {
	case "go":
		err = WriteGoBinding(f, pkg, c)
	case "ts":
		err = WriteTSBinding(f, c)
	default:
		err = fmt.Errorf("%w: unknown binding language %q", ErrExport, lang)
	}
	if err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	return nil
}
