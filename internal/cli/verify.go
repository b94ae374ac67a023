package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orbforge/go-orb-commitment/commitment"
)

// VerifyOptions holds flags for the verify command.
type VerifyOptions struct {
	Export string
	Index  uint64
	URI    string
}

// NewVerifyCommand re-derives a leaf from (index, uri) and folds its stored
// proof to the stored root, exactly as an independent holder would. A
// mismatch exits non-zero.
func NewVerifyCommand(root *RootOptions) *cobra.Command {
	opts := &VerifyOptions{}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "verify one inclusion proof from a full export",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := commitment.ReadExportFile(opts.Export)
			if err != nil {
				return err
			}
			if err := commitment.VerifyExportProof(e, opts.Index, opts.URI); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "index %d verified against root %s\n", opts.Index, e.Root)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Export, "export", "", "full export file (commitment.json)")
	cmd.Flags().Uint64Var(&opts.Index, "index", 0, "record index to verify")
	cmd.Flags().StringVar(&opts.URI, "uri", "", "uri to verify (defaults to the uri in the export)")
	_ = cmd.MarkFlagRequired("export")
	_ = cmd.MarkFlagRequired("index")

	return cmd
}
