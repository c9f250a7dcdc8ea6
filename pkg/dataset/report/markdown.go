package report

import (
	"fmt"
	"io"
	"strings"

	dserrors "turnlint-hq/turnlint/pkg/dataset/errors"
)

// errorTypeOrder fixes the section order of the markdown report so the
// output is deterministic for a given result.
var errorTypeOrder = []dserrors.ErrorType{
	dserrors.ErrorTypeStructure,
	dserrors.ErrorTypeRequiredFieldMissing,
	dserrors.ErrorTypeInvalidFieldType,
	dserrors.ErrorTypeInvalidFieldValue,
	dserrors.ErrorTypeSequence,
	dserrors.ErrorTypeContent,
	dserrors.ErrorTypeTool,
}

// WriteMarkdown renders a validation result as a markdown document, with
// errors grouped by category.
func WriteMarkdown(w io.Writer, result *dserrors.Result) error {
	var sb strings.Builder

	sb.WriteString("# Validation Report\n\n")
	if result.Source != "" {
		sb.WriteString(fmt.Sprintf("Source: `%s`\n\n", result.Source))
	}
	sb.WriteString(fmt.Sprintf("Run: `%s`\n\n", result.RunID))

	if result.IsValid {
		sb.WriteString(fmt.Sprintf("✅ **All validations passed.** %d turn(s) checked.\n", result.TotalTurns))
	} else {
		sb.WriteString(fmt.Sprintf("❌ **Found %d validation error(s)** across %d turn(s).\n\n",
			result.Count(), result.TotalTurns))

		for _, errType := range errorTypeOrder {
			group := result.ByType(errType)
			if len(group) == 0 {
				continue
			}

			sb.WriteString(fmt.Sprintf("## %s\n\n", sectionTitle(errType)))
			for _, err := range group {
				sb.WriteString(fmt.Sprintf("- **%s**: %s\n", err.Locator(), err.Message))
				if err.Suggestion != "" {
					sb.WriteString(fmt.Sprintf("  - Suggestion: %s\n", err.Suggestion))
				}
			}
			sb.WriteString("\n")
		}
	}

	if len(result.Warnings) > 0 {
		sb.WriteString("## Warnings\n\n")
		for _, warning := range result.Warnings {
			sb.WriteString(fmt.Sprintf("- %s\n", warning))
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Markdown renders a validation result as markdown and returns it.
func Markdown(result *dserrors.Result) string {
	var sb strings.Builder
	_ = WriteMarkdown(&sb, result)
	return sb.String()
}

// sectionTitle maps an error category to its report heading.
func sectionTitle(errType dserrors.ErrorType) string {
	switch errType {
	case dserrors.ErrorTypeStructure:
		return "Structure Errors"
	case dserrors.ErrorTypeRequiredFieldMissing:
		return "Missing Required Fields"
	case dserrors.ErrorTypeInvalidFieldType:
		return "Invalid Field Types"
	case dserrors.ErrorTypeInvalidFieldValue:
		return "Invalid Field Values"
	case dserrors.ErrorTypeSequence:
		return "Sequence Errors"
	case dserrors.ErrorTypeContent:
		return "Content Errors"
	case dserrors.ErrorTypeTool:
		return "Tool Errors"
	default:
		return string(errType)
	}
}
