package report

import (
	"fmt"
	"io"
	"strings"

	dserrors "turnlint-hq/turnlint/pkg/dataset/errors"
)

// WriteConsole renders a validation result as console text.
func WriteConsole(w io.Writer, result *dserrors.Result) error {
	if result.IsValid && len(result.Warnings) == 0 {
		_, err := fmt.Fprintf(w, "✓ All validations passed: %d turn(s)\n", result.TotalTurns)
		return err
	}

	var sb strings.Builder

	if result.Source != "" {
		sb.WriteString(fmt.Sprintf("Validating %s\n", result.Source))
	}

	if result.HasErrors() {
		sb.WriteString(fmt.Sprintf("✗ Found %d validation error(s):\n\n", result.Count()))
		for _, err := range result.Errors {
			sb.WriteString(fmt.Sprintf("  %s: %s [%s]\n", err.Locator(), err.Message, err.Type))
			if err.Suggestion != "" {
				sb.WriteString(fmt.Sprintf("    suggestion: %s\n", err.Suggestion))
			}
		}
		sb.WriteString("\n")
	}

	for _, warning := range result.Warnings {
		sb.WriteString(fmt.Sprintf("  ⚠ %s\n", warning))
	}
	if len(result.Warnings) > 0 {
		sb.WriteString("\n")
	}

	sb.WriteString("Summary:\n")
	sb.WriteString(fmt.Sprintf("  %d error(s), %d warning(s), %d turn(s)\n",
		result.Count(), len(result.Warnings), result.TotalTurns))
	sb.WriteString(fmt.Sprintf("  run: %s\n", result.RunID))

	_, err := io.WriteString(w, sb.String())
	return err
}

// Console renders a validation result as console text and returns it.
func Console(result *dserrors.Result) string {
	var sb strings.Builder
	_ = WriteConsole(&sb, result)
	return sb.String()
}
