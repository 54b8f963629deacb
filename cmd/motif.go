package main

import (
	"fmt"

	"dnapf/internal/seq"

	"github.com/spf13/cobra"
)

// motifCmd searches the sequence for every (possibly overlapping)
// occurrence of the given motif.
var motifCmd = &cobra.Command{
	Use:                        "motif [MOTIF]",
	Short:                      "Find all occurrences of a motif",
	Args:                       cobra.ExactArgs(1),
	SuggestionsMinimumDistance: 2,
	Example:                    "  dnapf motif ATG -s genome.txt",
	Long: `Find every position where the motif occurs in the sequence.
Matches may overlap; positions are reported 1-based in ascending order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, s, err := loadSequence()
		if err != nil {
			return err
		}
		motif, err := seq.NewMotif(args[0], s)
		if err != nil {
			return err
		}
		positions := seq.FindMotif(s, motif)

		fmt.Printf("Motif %s: %d occurrence(s)\n", motif, len(positions))
		for _, p := range positions {
			fmt.Printf("  position %d\n", p+1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(motifCmd)
}
