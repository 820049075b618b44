package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	scoringFile string
	logLevel    string
	verbose     bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dinotradez",
	Short: "DinoTradez - market analytics backend",
	Long: `DinoTradez Unified CLI

Dark-pool estimates, lotto picks, technical watchlists and SEC filing
scans on top of Yahoo Finance, openinsider and EDGAR.

Usage:
  go run ./cmd/dinotradez [command]

Examples:
  go run ./cmd/dinotradez api
  go run ./cmd/dinotradez scan darkpool AAPL,TSLA
  go run ./cmd/dinotradez scheduler list
  go run ./cmd/dinotradez universe list`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&scoringFile, "scoring", "", "scoring thresholds YAML (overrides SCORING_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
}
