package main

import (
	"fmt"

	"dnapf/internal/report"
	"dnapf/internal/seq"

	"github.com/spf13/cobra"
)

// reportCmd runs every analysis and writes the text report. The motif
// section reads "(none)" unless --motif is given.
var reportCmd = &cobra.Command{
	Use:                        "report",
	Short:                      "Run all analyses and export a text report",
	SuggestionsMinimumDistance: 2,
	Example:                    "  dnapf report -s genome.txt -m TATA -o genome-report.txt",
	RunE: func(cmd *cobra.Command, args []string) error {
		source, s, err := loadSequence()
		if err != nil {
			return err
		}
		out, err := cmd.Flags().GetString("out")
		if err != nil {
			return err
		}
		if out == "" {
			out = cfg.ReportPath
		}
		motifFlag, err := cmd.Flags().GetString("motif")
		if err != nil {
			return err
		}

		gc, err := seq.GCPercent(s)
		if err != nil {
			return err
		}
		sum := report.Summary{
			Source:    source,
			Sequence:  s,
			Counts:    seq.CountResidues(s),
			GCPercent: gc,
			ORFs:      seq.FindORFs(s),
		}
		if motifFlag != "" {
			motif, err := seq.NewMotif(motifFlag, s)
			if err != nil {
				return err
			}
			sum.Motif = motif
			sum.MotifPositions = seq.FindMotif(s, motif)
			sum.MotifSearched = true
		}

		if err := report.Write(out, sum); err != nil {
			return err
		}
		logger.Info("report written", "path", out, "source", source)
		fmt.Printf("Report written to %s\n", out)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringP("out", "o", "", "output report path (default from config)")
	reportCmd.Flags().StringP("motif", "m", "", "motif to include in the report")
	rootCmd.AddCommand(reportCmd)
}
