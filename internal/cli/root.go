// Package cli implements the hl7defgen command line interface.
package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the hl7defgen CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "hl7defgen",
		Short: "Generate the compiled-in HL7 v2.x definition data",
		Long: `hl7defgen compiles the HL7 v2.x catalog documents into static Go
source for the hl7def package. The generation manifest decides which
standard versions and capabilities are included.`,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewGenerateCommand(opts))

	return cmd
}
