// Package report serializes analysis results into the flat text report
// the program exports. It consumes plain values from internal/seq and
// never re-runs analyses itself.
package report

import (
	"fmt"
	"os"
	"strings"

	"dnapf/internal/seq"
)

// Summary carries the results of one analysis session. MotifSearched
// distinguishes "no motif searched" from "motif searched, zero hits".
type Summary struct {
	Source         string
	Sequence       seq.Sequence
	Counts         map[byte]int
	GCPercent      float64
	Motif          seq.Motif
	MotifPositions []int
	MotifSearched  bool
	ORFs           []seq.ORF
}

// Compose renders the fixed report layout: title and source, length and
// base counts, overall GC to one decimal, the last searched motif (or
// "(none)"), and each ORF with 1-based start/stop coordinates.
func Compose(s Summary) string {
	var b strings.Builder

	source := s.Source
	if source == "" {
		source = "n/a"
	}
	fmt.Fprintln(&b, "DNA Pattern Finder report")
	fmt.Fprintf(&b, "Source: %s\n", source)
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "Sequence length: %d\n", len(s.Sequence))
	fmt.Fprintf(&b, "Base counts: A=%d C=%d G=%d T=%d\n",
		s.Counts['A'], s.Counts['C'], s.Counts['G'], s.Counts['T'])
	fmt.Fprintf(&b, "GC content: %.1f%%\n", s.GCPercent)
	fmt.Fprintln(&b)

	if s.MotifSearched {
		fmt.Fprintf(&b, "Motif: %s (%d occurrences)\n", s.Motif, len(s.MotifPositions))
	} else {
		fmt.Fprintln(&b, "Motif: (none)")
	}

	fmt.Fprintf(&b, "ORFs found: %d\n", len(s.ORFs))
	for i, o := range s.ORFs {
		fmt.Fprintf(&b, "  ORF %d: start %d, stop %d, length %d\n",
			i+1, o.Start+1, o.End+1, o.Length())
	}
	return b.String()
}

// Write composes the report and writes it to path.
func Write(path string, s Summary) error {
	if err := os.WriteFile(path, []byte(Compose(s)), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
