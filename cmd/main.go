// Command dnapf analyzes a single DNA sequence from a text file: base
// composition, GC content (overall and windowed), motif search, forward
// strand ORF detection and a text report export. The interactive menu
// lives in the companion tui binary.
package main

import (
	"fmt"
	"os"
	"strings"

	"dnapf/internal/config"
	"dnapf/internal/seq"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// version can be overridden at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

var (
	cfg    *config.Config
	logger *log.Logger

	configFlag   string
	sequenceFlag string
	verboseFlag  bool
)

var rootCmd = &cobra.Command{
	Use:     "dnapf",
	Short:   "Analyze a DNA sequence: composition, GC content, motifs and ORFs",
	Version: version,
	Long: `DNA Pattern Finder reads one DNA sequence from a text file (plain
residues, or a single-record FASTA) and runs common analyses on it:
summary statistics, motif search, GC content and forward-strand ORFs.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configFlag)
		if err != nil {
			return err
		}
		if sequenceFlag != "" {
			cfg.SequencePath = sequenceFlag
		}

		logger = log.New(os.Stderr)
		if verboseFlag {
			logger.SetLevel(log.DebugLevel)
		} else {
			switch strings.ToLower(cfg.LogLevel) {
			case "debug":
				logger.SetLevel(log.DebugLevel)
			case "info", "":
				logger.SetLevel(log.InfoLevel)
			case "warn", "warning":
				logger.SetLevel(log.WarnLevel)
			case "error":
				logger.SetLevel(log.ErrorLevel)
			default:
				logger.SetLevel(log.InfoLevel)
				logger.Warn("unknown log-level in config, defaulting to info", "provided", cfg.LogLevel)
			}
		}
		logger.Debug("loaded config", "sequence", cfg.SequencePath, "window-size", cfg.WindowSize, "report", cfg.ReportPath)
		return nil
	},
}

// loadSequence reads the configured sequence file and validates it. The
// returned source identifier is the FASTA header when present, the file
// name otherwise.
func loadSequence() (string, seq.Sequence, error) {
	data, err := os.ReadFile(cfg.SequencePath)
	if err != nil {
		return "", "", fmt.Errorf("reading sequence file: %w", err)
	}
	id, s, err := seq.ParseText(string(data))
	if err != nil {
		return "", "", fmt.Errorf("loading %s: %w", cfg.SequencePath, err)
	}
	if id == "" {
		id = cfg.SequencePath
	}
	logger.Debug("sequence loaded", "source", id, "length", len(s))
	return id, s, nil
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&sequenceFlag, "sequence", "s", "", "path to the sequence text file")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file (optional)")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "enable verbose (debug) logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
