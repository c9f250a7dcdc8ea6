package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"turnlint-hq/turnlint/pkg/cli"
	"turnlint-hq/turnlint/pkg/dataset"
	dserrors "turnlint-hq/turnlint/pkg/dataset/errors"
	"turnlint-hq/turnlint/pkg/dataset/report"
)

var validateFlags struct {
	format string
	output string
	strict bool
}

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Validate dataset files",
	Long: `Validate conversational dataset files against the rule configuration.

Input files may be JSON arrays, JSON Lines, or YAML. Every file is checked
completely: validation collects all errors and warnings instead of stopping
at the first problem.

Examples:
  # Validate a single file with the default rules
  turnlint validate conversations.json

  # Validate several files with a custom configuration
  turnlint validate --config turnlint.yaml train.jsonl eval.jsonl

  # Markdown report written to a file
  turnlint validate --format markdown --output report.md conversations.json

  # JSON output for CI/CD
  turnlint validate --format json conversations.json

  # Treat warnings as failures
  turnlint validate --strict conversations.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: validateDatasets,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFlags.format, "format", "f", "text", "output format: text, json, markdown")
	validateCmd.Flags().StringVarP(&validateFlags.output, "output", "o", "", "write the report to a file instead of stdout")
	validateCmd.Flags().BoolVar(&validateFlags.strict, "strict", false, "treat warnings as errors")
}

func validateDatasets(cmd *cobra.Command, args []string) error {
	cfg, err := loadRuleConfig()
	if err != nil {
		return cli.NewConfigError(cfgFile, err.Error())
	}

	logger, err := newLogger()
	if err != nil {
		return cli.NewCommandError("validate", err)
	}

	results := make([]*dserrors.Result, 0, len(args))
	for _, path := range args {
		logger.Debug("validating dataset", "path", path)
		result := dataset.ValidateFile(path, cfg)
		logger.Info("validation completed",
			"source", path,
			"run_id", result.RunID,
			"valid", result.IsValid,
			"turns", result.TotalTurns,
			"errors", result.Count(),
			"warnings", len(result.Warnings),
		)
		results = append(results, result)
	}

	out, closeOut, err := reportWriter()
	if err != nil {
		return cli.NewCommandError("validate", err)
	}
	defer closeOut()

	if err := renderResults(out, results, validateFlags.format); err != nil {
		return cli.NewCommandError("validate", err)
	}

	failed := 0
	for _, result := range results {
		if !result.IsValid || (validateFlags.strict && len(result.Warnings) > 0) {
			failed++
		}
	}
	if failed > 0 {
		return cli.NewCommandError("validate",
			fmt.Errorf("%d of %d file(s) failed validation", failed, len(results)))
	}
	return nil
}

// reportWriter returns the report destination: the --output file when set,
// stdout otherwise.
func reportWriter() (io.Writer, func(), error) {
	if validateFlags.output == "" {
		return os.Stdout, func() {}, nil
	}

	f, err := os.Create(validateFlags.output)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create report file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// renderResults writes every result in the requested format.
func renderResults(w io.Writer, results []*dserrors.Result, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "markdown":
		for _, result := range results {
			if err := report.WriteMarkdown(w, result); err != nil {
				return err
			}
		}
		return nil
	case "text":
		for _, result := range results {
			if err := report.WriteConsole(w, result); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (expected text, json, or markdown)", format)
	}
}
