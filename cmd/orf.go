package main

import (
	"fmt"

	"dnapf/internal/seq"

	"github.com/spf13/cobra"
)

// orfCmd lists forward-strand open reading frames.
var orfCmd = &cobra.Command{
	Use:                        "orf",
	Short:                      "Find forward-strand open reading frames",
	Aliases:                    []string{"orfs"},
	SuggestionsMinimumDistance: 2,
	Long: `Find regions opening with ATG and closed by the first in-frame stop
codon (TAA, TAG or TGA). Overlapping ORFs are all reported; coordinates
are 1-based and inclusive.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, s, err := loadSequence()
		if err != nil {
			return err
		}
		orfs := seq.FindORFs(s)

		fmt.Printf("ORFs found: %d\n", len(orfs))
		for i, o := range orfs {
			fmt.Printf("  ORF %d: start %d, stop %d, length %d\n",
				i+1, o.Start+1, o.End+1, o.Length())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(orfCmd)
}
