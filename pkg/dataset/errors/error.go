package errors

import (
	"fmt"
	"strings"
)

// ErrorType categorizes the kind of problem found while validating a dataset.
// The set is closed: every finding the validator can produce carries exactly
// one of these tags, so reporters and callers can handle them exhaustively.
type ErrorType string

const (
	// ErrorTypeStructure covers problems with the shape of the document
	// itself: root is not an array, the array is empty, the turn count is
	// out of bounds, an element is not an object, or the input could not
	// be parsed at all.
	ErrorTypeStructure ErrorType = "structure"

	// ErrorTypeRequiredFieldMissing indicates a required field is absent
	// from a turn.
	ErrorTypeRequiredFieldMissing ErrorType = "required_field_missing"

	// ErrorTypeInvalidFieldType indicates a field is present but has the
	// wrong type (e.g. a string turn_id).
	ErrorTypeInvalidFieldType ErrorType = "invalid_field_type"

	// ErrorTypeInvalidFieldValue indicates a field has the right type but
	// an out-of-range or disallowed value.
	ErrorTypeInvalidFieldValue ErrorType = "invalid_field_value"

	// ErrorTypeSequence indicates duplicate or non-consecutive turn_id
	// values across the conversation.
	ErrorTypeSequence ErrorType = "sequence"

	// ErrorTypeContent indicates a message body violates content rules:
	// empty when empty messages are disallowed, or outside length bounds.
	ErrorTypeContent ErrorType = "content"

	// ErrorTypeTool indicates an incomplete tool triplet or a tool name
	// outside the allowed set.
	ErrorTypeTool ErrorType = "tool"
)

// Error describes one problem found during validation. It carries enough
// context to localize the finding: the 1-based position of the element in
// the conversation, the turn_id when one was readable, and the field name
// when the finding concerns a single field.
//
// Errors are created by the validators and never mutated afterwards.
type Error struct {
	// Type is the category of the finding.
	Type ErrorType `json:"type"`

	// Message is a human-readable description of the finding.
	Message string `json:"message"`

	// Position is the 1-based index of the element in the conversation.
	// Zero when the finding concerns the document as a whole.
	Position int `json:"position,omitempty"`

	// TurnID is the turn's declared turn_id, when it was present and
	// integral. Zero when unknown.
	TurnID int `json:"turn_id,omitempty"`

	// Field names the turn field the finding concerns, when applicable.
	Field string `json:"field,omitempty"`

	// Suggestion is an optional hint on how to fix the problem.
	Suggestion string `json:"suggestion,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] ", e.Type))

	switch {
	case e.TurnID > 0:
		sb.WriteString(fmt.Sprintf("turn %d: ", e.TurnID))
	case e.Position > 0:
		sb.WriteString(fmt.Sprintf("position %d: ", e.Position))
	}

	sb.WriteString(e.Message)

	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf(" (suggestion: %s)", e.Suggestion))
	}

	return sb.String()
}

// Locator returns a short label identifying where the finding occurred,
// preferring the turn_id over the raw position. Reporters use it for the
// leading "Turn N" column.
func (e *Error) Locator() string {
	switch {
	case e.TurnID > 0:
		return fmt.Sprintf("Turn %d", e.TurnID)
	case e.Position > 0:
		return fmt.Sprintf("Position %d", e.Position)
	default:
		return "Document"
	}
}
