package encode

import (
	"fmt"

	"compressor/cmd/flags"
	"compressor/pkg"

	"github.com/spf13/cobra"
)

var EncodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Compress a text file into a .huf archive",
	Long:  "Compress a text file with a Huffman code. The archive is written next to the input as <stem>.huf.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(args[0], flags.Options(cmd))
	},
}

func Run(src string, opts pkg.Options) error {
	dest, err := pkg.EncodeFile(src, opts)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", src, err)
	}

	opts.Log().Infof("successfully encoded %s into %s", src, dest)
	return nil
}
