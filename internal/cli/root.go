// Package cli wires the commitment pipeline to the orbforge command line.
// Commands only orchestrate: all hashing, validation and artifact shaping
// lives in the merkle and commitment packages.
package cli

import (
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the orbforge CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "orbforge",
		Short: "orbforge - merkle commitments over finalized index -> URI record sets",
		Long: "Builds a Keccak-256 merkle commitment over a finalized index -> URI\n" +
			"manifest, self-checks every inclusion proof, and writes the artifacts\n" +
			"downstream consumers and the on-chain verifier depend on.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "INFO"
			if opts.Verbose {
				level = "DEBUG"
			}
			logger.New(level)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.OnExit()
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewCommitCommand(opts))
	cmd.AddCommand(NewVerifyCommand(opts))
	cmd.AddCommand(NewInspectCommand(opts))

	return cmd
}
