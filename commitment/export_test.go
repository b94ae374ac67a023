package commitment

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSummaryShape(t *testing.T) {
	c, err := Build(workedRecords())
	require.NoError(t, err)

	s := c.Summary()
	require.Equal(t, HashHex(c.Root), s.Root)
	require.Equal(t, 3, s.TotalLeaves)

	parsed, err := time.Parse(time.RFC3339, s.GeneratedAt)
	require.NoError(t, err)
	require.WithinDuration(t, c.GeneratedAt, parsed, time.Second)
}

func TestExportRoundTrip(t *testing.T) {
	c, err := Build(workedRecords())
	require.NoError(t, err)

	dir := t.TempDir()
	exportPath := filepath.Join(dir, "commitment.json")
	require.NoError(t, WriteExportFile(exportPath, c))
	require.NoError(t, WriteSummaryFile(filepath.Join(dir, "root.json"), c))

	e, err := ReadExportFile(exportPath)
	require.NoError(t, err)
	require.Equal(t, c.ID, e.ID)
	require.Equal(t, HashHex(c.Root), e.Root)
	require.Equal(t, 3, e.TotalLeaves)
	require.Len(t, e.Leaves, 3)
	require.Len(t, e.Proofs, 3)

	for _, l := range e.Leaves {
		require.NoError(t, VerifyExportProof(e, l.Index, ""))
		require.NoError(t, VerifyExportProof(e, l.Index, l.URI))
	}
}

func TestVerifyExportProofRejectsTamperedURI(t *testing.T) {
	c, err := Build(workedRecords())
	require.NoError(t, err)
	e := c.Export()

	err = VerifyExportProof(e, 1, "ar://not-b")
	require.ErrorIs(t, err, ErrProofInvalid)
}

func TestVerifyExportProofUnknownIndex(t *testing.T) {
	c, err := Build(workedRecords())
	require.NoError(t, err)

	err = VerifyExportProof(c.Export(), 42, "")
	require.ErrorIs(t, err, ErrUnknownIndex)
}

func TestCBORExportRoundTrip(t *testing.T) {
	c, err := Build(workedRecords())
	require.NoError(t, err)

	codec, err := NewCBORCodec()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "commitment.cbor")
	require.NoError(t, WriteCBORFile(path, codec, c))

	e, err := ReadCBORFile(path, codec)
	require.NoError(t, err)
	require.Equal(t, c.Export(), e)

	for _, l := range e.Leaves {
		require.NoError(t, VerifyExportProof(e, l.Index, ""))
	}
}

func TestParseHashHex(t *testing.T) {
	c, err := Build(workedRecords())
	require.NoError(t, err)

	h, err := ParseHashHex(HashHex(c.Root))
	require.NoError(t, err)
	require.Equal(t, c.Root, h)

	_, err = ParseHashHex("deadbeef")
	require.ErrorIs(t, err, ErrBadHashHex)
	_, err = ParseHashHex("0xzz")
	require.ErrorIs(t, err, ErrBadHashHex)
	_, err = ParseHashHex("0xdeadbeef")
	require.ErrorIs(t, err, ErrBadHashHex)
}
