package inspect

import (
	"fmt"
	"strconv"

	"compressor/pkg"

	"github.com/spf13/cobra"
)

var InspectCmd = &cobra.Command{
	Use:   "inspect [archive]",
	Short: "View a .huf archive",
	Long:  "Inspect the header of a .huf archive and print the code table it implies",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		archive := args[0]
		quiet, _ := cmd.Flags().GetBool("quiet")
		byLength, _ := cmd.Flags().GetBool("by-length")

		summary, err := pkg.Inspect(archive)
		if err != nil {
			return fmt.Errorf("inspecting archive %s: %w", archive, err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Archive %s:\n", archive)
		fmt.Fprintf(out, "\tBits: %d\n\tHeader: %d bytes\n\tPayload: %d bytes\n\tSymbols: %d\n\tAlphabet: %d\n",
			summary.Bits, summary.HeaderSize, summary.PayloadSize, summary.Symbols, len(summary.Codes))
		if quiet {
			return nil
		}

		codes := summary.Codes
		if byLength {
			codes = summary.SortByCodeLength()
		}

		fmt.Fprintln(out, "=====================")
		for _, c := range codes {
			fmt.Fprintf(out, "%s | %d | %s\n", quoteSymbol(c.Symbol), c.Count, c.Code)
		}

		return nil
	},
}

// quoteSymbol keeps whitespace and control characters readable in the table.
func quoteSymbol(r rune) string {
	q := strconv.QuoteRune(r)
	return q[1 : len(q)-1]
}

func init() {
	InspectCmd.Flags().BoolP("by-length", "L", false, "Order the code table by code length")
}
