package cli

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orbforge/go-orb-commitment/commitment"
)

const testManifest = `
records:
  - index: 0
    uri: ar://a
  - index: 1
    uri: ar://b
  - index: 2
    uri: ar://c
`

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeTestKey(t *testing.T, dir string) string {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	der, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)
	path := filepath.Join(dir, "publish.pem")
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: der})
	require.NoError(t, os.WriteFile(path, pemBytes, 0o600))
	return path
}

func TestCommitThenVerify(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "records.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte(testManifest), 0o644))
	outDir := filepath.Join(dir, "out")
	keyPath := writeTestKey(t, dir)
	archivePath := filepath.Join(dir, "commitments.db")

	out, err := runCommand(t,
		"commit",
		"--manifest", manifest,
		"--out", outDir,
		"--archive", archivePath,
		"--sign", keyPath,
		"--issuer", "orbforge.dev",
		"--bindings", "go,ts",
	)
	require.NoError(t, err, out)
	require.Contains(t, out, "root: 0x")

	for _, name := range []string{
		"root.json", "commitment.json", "leaves.csv", "commitment.cbor",
		"commitment_gen.go", "commitment_gen.ts", "checkpoint.cbor",
	} {
		_, err := os.Stat(filepath.Join(outDir, name))
		require.NoError(t, err, "expected artifact %s", name)
	}

	exportPath := filepath.Join(outDir, "commitment.json")
	out, err = runCommand(t, "verify", "--export", exportPath, "--index", "2")
	require.NoError(t, err, out)
	require.Contains(t, out, "index 2 verified")

	// A holder checking a uri the commitment never contained must fail.
	_, err = runCommand(t, "verify", "--export", exportPath, "--index", "2", "--uri", "ar://tampered")
	require.ErrorIs(t, err, commitment.ErrProofInvalid)
}

func TestCommitDuplicateIndexFails(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "records.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte(`
records:
  - index: 0
    uri: ar://a
  - index: 0
    uri: ar://b
`), 0o644))

	outDir := filepath.Join(dir, "out")
	_, err := runCommand(t, "commit", "--manifest", manifest, "--out", outDir)
	require.ErrorIs(t, err, commitment.ErrDuplicateIndex)

	// Fatal before any artifact write: the output dir must not exist.
	_, statErr := os.Stat(outDir)
	require.True(t, os.IsNotExist(statErr))
}

func TestInspectArchive(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "records.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte(testManifest), 0o644))
	archivePath := filepath.Join(dir, "commitments.db")

	out, err := runCommand(t,
		"commit", "--manifest", manifest, "--out", filepath.Join(dir, "out"), "--archive", archivePath)
	require.NoError(t, err, out)

	out, err = runCommand(t, "inspect", "--archive", archivePath)
	require.NoError(t, err)
	require.Contains(t, out, "leaves=3")
}
