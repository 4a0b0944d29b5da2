package flags

import (
	"compressor/pkg"
	"compressor/pkg/logger"

	"github.com/spf13/cobra"
)

// Register adds the flags shared by every command that writes a file.
func Register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("output", "O", "", "Output file path (default: next to the input)")
	cmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress informational output")
}

// Options builds codec options from the flags of cmd.
func Options(cmd *cobra.Command) pkg.Options {
	opts := pkg.DefaultOptions()
	opts.Output, _ = cmd.Flags().GetString("output")
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		opts.Logger = logger.Nop()
	}

	return opts
}
