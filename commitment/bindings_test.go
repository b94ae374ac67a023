package commitment

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/orbforge/go-orb-commitment/merkle"
)

// fixtureCommitment is a hand built commitment with patterned hashes, so
// the rendered artifacts are stable bytes suitable for golden comparison.
// Real hash values are covered by the pipeline tests; these tests pin the
// artifact layout.
func fixtureCommitment() *Commitment {
	fill := func(b byte) [merkle.HashBytes]byte {
		var h [merkle.HashBytes]byte
		for i := range h {
			h[i] = b
		}
		return h
	}
	return &Commitment{
		ID:          "00000000-0000-0000-0000-000000000000",
		Root:        fill(0x11),
		GeneratedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Leaves: []Leaf{
			{Index: 0, URI: "ar://a", Hash: fill(0x22)},
			{Index: 1, URI: "ar://b", Hash: fill(0x33)},
			{Index: 2, URI: "ar://c", Hash: fill(0x44)},
		},
		Proofs: map[uint64][][merkle.HashBytes]byte{
			0: {fill(0x33), fill(0x44)},
			1: {fill(0x22), fill(0x44)},
			2: {fill(0x55)},
		},
	}
}

func goldenT(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestGoBindingGolden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGoBinding(&buf, "orbmanifest", fixtureCommitment()))
	goldenT(t).Assert(t, "binding_go", buf.Bytes())
}

func TestTSBindingGolden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTSBinding(&buf, fixtureCommitment()))
	goldenT(t).Assert(t, "binding_ts", buf.Bytes())
}

func TestCSVGolden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, fixtureCommitment()))
	goldenT(t).Assert(t, "leaves_csv", buf.Bytes())
}

func TestGoBindingEmptyProof(t *testing.T) {
	c := fixtureCommitment()
	c.Leaves = c.Leaves[:1]
	c.Proofs = map[uint64][][merkle.HashBytes]byte{0: nil}

	var buf bytes.Buffer
	require.NoError(t, WriteGoBinding(&buf, "orbmanifest", c))
	require.Contains(t, buf.String(), "Proof: []string{}")
}

func TestWriteBindingFileRejectsUnknownLanguage(t *testing.T) {
	err := WriteBindingFile(t.TempDir()+"/out.rb", "ruby", "x", fixtureCommitment())
	require.ErrorIs(t, err, ErrExport)
	require.True(t, strings.Contains(err.Error(), "ruby"))
}
