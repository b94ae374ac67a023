package cli

import (
	"encoding/json"
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/spf13/cobra"

	"github.com/orbforge/go-orb-commitment/archive"
)

// InspectOptions holds flags for the inspect command.
type InspectOptions struct {
	Archive string
	Root    string
}

// NewInspectCommand lists archived commitments, or dumps the full export
// for one root.
func NewInspectCommand(root *RootOptions) *cobra.Command {
	opts := &InspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "list or show commitments in a local archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := archive.Open(opts.Archive, logger.Sugar.WithServiceName("archive"))
			if err != nil {
				return err
			}
			defer a.Close()

			if opts.Root != "" {
				e, err := a.Get(opts.Root)
				if err != nil {
					return err
				}
				data, err := json.MarshalIndent(e, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			entries, err := a.List()
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  leaves=%d  %s\n", e.GeneratedAt, e.Root, e.TotalLeaves, e.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Archive, "archive", "", "sqlite archive to inspect")
	cmd.Flags().StringVar(&opts.Root, "root", "", "show the full export for this root")
	_ = cmd.MarkFlagRequired("archive")

	return cmd
}
