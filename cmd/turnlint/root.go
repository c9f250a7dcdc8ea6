package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"turnlint-hq/turnlint/pkg/config"
	"turnlint-hq/turnlint/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "turnlint",
	Short: "Turnlint - conversational dataset validator",
	Long: `Turnlint validates multi-turn conversational datasets for LLM training.

It checks conversations against a configurable schema:
  - Required fields and value types per turn
  - Speaker roles and speaker-conditional content
  - Tool-call triplets (tool_used, tool_input, tool_output)
  - Message length bounds and confidence-score ranges
  - turn_id uniqueness and sequencing

Validation is exhaustive: every problem in a dataset is reported, not just
the first one found.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "rule configuration file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadRuleConfig loads the rule configuration named by --config, or the
// defaults when no file was given.
func loadRuleConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.Load(cfgFile)
}

// newLogger builds the command logger, raising the level to debug when
// --verbose is set.
func newLogger() (*slog.Logger, error) {
	level := "info"
	if verbose {
		level = "debug"
	}
	return logging.New(logging.Config{Level: level, Format: "text"})
}
