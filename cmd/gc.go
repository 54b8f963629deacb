package main

import (
	"fmt"

	"dnapf/internal/seq"

	"github.com/spf13/cobra"
)

// gcCmd reports overall GC content plus a per-window breakdown and
// summary statistics over the windows.
var gcCmd = &cobra.Command{
	Use:                        "gc",
	Short:                      "Show overall and windowed GC content",
	SuggestionsMinimumDistance: 2,
	Example:                    "  dnapf gc -w 50 -s genome.txt",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, s, err := loadSequence()
		if err != nil {
			return err
		}
		size, err := cmd.Flags().GetInt("window")
		if err != nil {
			return err
		}
		if size == 0 {
			size = cfg.WindowSize
		}

		overall, err := seq.GCPercent(s)
		if err != nil {
			return err
		}
		windows, err := seq.WindowedGC(s, size)
		if err != nil {
			return err
		}

		fmt.Printf("Overall GC content: %.1f%%\n", overall)
		fmt.Printf("Windows (size %d):\n", size)
		for _, w := range windows {
			fmt.Printf("  window %d [%d-%d]: %.1f%%\n", w.Index, w.Start, w.End, w.GCPercent)
		}
		stats := seq.SummarizeWindows(windows)
		fmt.Printf("Window GC mean %.1f%%, stddev %.1f, min %.1f%%, max %.1f%%\n",
			stats.Mean, stats.StdDev, stats.Min, stats.Max)
		return nil
	},
}

func init() {
	gcCmd.Flags().IntP("window", "w", 0, "window size in bases (default from config)")
	rootCmd.AddCommand(gcCmd)
}
