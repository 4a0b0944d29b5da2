package decode

import (
	"fmt"

	"compressor/cmd/flags"
	"compressor/pkg"

	"github.com/spf13/cobra"
)

var DecodeCmd = &cobra.Command{
	Use:   "decode [archive]",
	Short: "Restore a text file from a .huf archive",
	Long:  "Restore the original text from a .huf archive. The text is written next to the archive as <stem>_decode.txt.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(args[0], flags.Options(cmd))
	},
}

func Run(src string, opts pkg.Options) error {
	dest, err := pkg.DecodeFile(src, opts)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", src, err)
	}

	opts.Log().Infof("successfully decoded %s into %s", src, dest)
	return nil
}
