package main

import (
	"fmt"

	"dnapf/internal/seq"

	"github.com/spf13/cobra"
)

// summaryCmd prints the sequence length, base counts and overall GC
// percentage.
var summaryCmd = &cobra.Command{
	Use:                        "summary",
	Short:                      "Show sequence length, base counts and GC content",
	Aliases:                    []string{"stats"},
	SuggestionsMinimumDistance: 2,
	RunE: func(cmd *cobra.Command, args []string) error {
		source, s, err := loadSequence()
		if err != nil {
			return err
		}
		counts := seq.CountResidues(s)
		gc, err := seq.GCPercent(s)
		if err != nil {
			return err
		}

		fmt.Printf("Source: %s\n", source)
		fmt.Printf("Length: %d\n", len(s))
		fmt.Printf("Base counts: A=%d C=%d G=%d T=%d\n",
			counts['A'], counts['C'], counts['G'], counts['T'])
		fmt.Printf("GC content: %.1f%%\n", gc)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
