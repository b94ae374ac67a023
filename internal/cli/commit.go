package cli

import (
	"crypto/ecdsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/spf13/cobra"

	"github.com/orbforge/go-orb-commitment/archive"
	"github.com/orbforge/go-orb-commitment/commitment"
)

// CommitOptions holds flags for the commit command.
type CommitOptions struct {
	Manifest   string
	OutDir     string
	Archive    string
	SignKey    string
	Issuer     string
	KeyID      string
	Bindings   []string
	BindingPkg string
	Workers    int
}

// NewCommitCommand builds, self-checks and exports a commitment from a
// record manifest. The build is all or nothing: no artifact is written
// unless every proof verified against the root.
func NewCommitCommand(root *RootOptions) *cobra.Command {
	opts := &CommitOptions{}

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "build a commitment from a manifest and write its artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := commitment.LoadManifest(opts.Manifest)
			if err != nil {
				return err
			}

			c, err := commitment.Build(records, commitment.WithEncodeWorkers(opts.Workers))
			if err != nil {
				return err
			}
			log := logger.Sugar.WithServiceName("commit")
			log.Infof("built commitment %s root=%s leaves=%d", c.ID, commitment.HashHex(c.Root), len(c.Leaves))

			if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
				return err
			}
			if err := commitment.WriteSummaryFile(filepath.Join(opts.OutDir, "root.json"), c); err != nil {
				return err
			}
			if err := commitment.WriteExportFile(filepath.Join(opts.OutDir, "commitment.json"), c); err != nil {
				return err
			}
			if err := commitment.WriteCSVFile(filepath.Join(opts.OutDir, "leaves.csv"), c); err != nil {
				return err
			}
			codec, err := commitment.NewCBORCodec()
			if err != nil {
				return err
			}
			if err := commitment.WriteCBORFile(filepath.Join(opts.OutDir, "commitment.cbor"), codec, c); err != nil {
				return err
			}

			for _, lang := range opts.Bindings {
				name := "commitment_gen." + lang
				if err := commitment.WriteBindingFile(filepath.Join(opts.OutDir, name), lang, opts.BindingPkg, c); err != nil {
					return err
				}
				log.Infof("wrote %s binding", lang)
			}

			if opts.Archive != "" {
				a, err := archive.Open(opts.Archive, logger.Sugar.WithServiceName("archive"))
				if err != nil {
					return err
				}
				defer a.Close()
				if err := a.Put(c); err != nil {
					return err
				}
			}

			if opts.SignKey != "" {
				key, err := loadSigningKey(opts.SignKey)
				if err != nil {
					return err
				}
				signer := commitment.NewCheckpointSigner(opts.Issuer, codec)
				signed, err := signer.Sign1(key, opts.KeyID, c)
				if err != nil {
					return err
				}
				if err := os.WriteFile(filepath.Join(opts.OutDir, "checkpoint.cbor"), signed, 0o644); err != nil {
					return err
				}
				log.Infof("wrote signed checkpoint issuer=%s kid=%s", opts.Issuer, opts.KeyID)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "root: %s\nleaves: %d\n", commitment.HashHex(c.Root), len(c.Leaves))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "record manifest (yaml) to commit")
	cmd.Flags().StringVar(&opts.OutDir, "out", "commitment-out", "artifact output directory")
	cmd.Flags().StringVar(&opts.Archive, "archive", "", "sqlite archive to append the commitment to")
	cmd.Flags().StringVar(&opts.SignKey, "sign", "", "PEM encoded ECDSA P-256 key for the signed checkpoint")
	cmd.Flags().StringVar(&opts.Issuer, "issuer", "", "issuer recorded in the signed checkpoint")
	cmd.Flags().StringVar(&opts.KeyID, "kid", "publish-key", "key identifier recorded in the checkpoint header")
	cmd.Flags().StringSliceVar(&opts.Bindings, "bindings", nil, "binding languages to generate (go, ts)")
	cmd.Flags().StringVar(&opts.BindingPkg, "binding-pkg", "orbmanifest", "package name for the go binding")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "leaf encoding workers (0 = GOMAXPROCS)")
	_ = cmd.MarkFlagRequired("manifest")

	return cmd
}

// loadSigningKey reads a PEM encoded ECDSA private key, accepting both
// SEC1 ("EC PRIVATE KEY") and PKCS#8 blocks.
func loadSigningKey(path string) (*ecdsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("no PEM block in %s", path)
	}
	switch block.Type {
	case "EC PRIVATE KEY":
		return x509.ParseECPrivateKey(block.Bytes)
	case "PRIVATE KEY":
		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, err
		}
		ecKey, ok := key.(*ecdsa.PrivateKey)
		if !ok {
			return nil, errors.New("signing key is not an ECDSA key")
		}
		return ecKey, nil
	default:
		return nil, fmt.Errorf("unsupported PEM block %q in %s", block.Type, path)
	}
}
