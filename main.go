package main

import (
	"os"

	"compressor/cmd/decode"
	"compressor/cmd/encode"
	"compressor/cmd/flags"
	"compressor/cmd/inspect"
	"compressor/cmd/version"
	"compressor/pkg/logger"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "compressor [file]",
	Short: "Huffman text compressor",
	Long:  "compressor compresses text files with a Huffman code and restores them from the resulting .huf archives.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := flags.Options(cmd)
		if decodeMode, _ := cmd.Flags().GetBool("decode"); decodeMode {
			return decode.Run(args[0], opts)
		}

		return encode.Run(args[0], opts)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags.Register(rootCmd)
	rootCmd.Flags().BoolP("decode", "d", false, "Decode a .huf archive instead of encoding")

	rootCmd.AddCommand(encode.EncodeCmd)
	rootCmd.AddCommand(decode.DecodeCmd)
	rootCmd.AddCommand(inspect.InspectCmd)
	rootCmd.AddCommand(version.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.New().Errorf("%s", err)
		os.Exit(1)
	}
}
