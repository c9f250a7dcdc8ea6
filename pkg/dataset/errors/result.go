package errors

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Result accumulates every finding from one validation pass and exposes the
// final verdict. It is mutable while a pass is running and treated as
// read-only once returned to the caller.
//
// A Result is never shared between concurrent validation passes; each call
// builds its own.
type Result struct {
	// RunID uniquely identifies this validation run. It appears in logs
	// and reports so findings can be correlated across outputs.
	RunID string `json:"run_id"`

	// Source is the input the run validated (file path or caller-supplied
	// name). Empty when validating an in-memory value directly.
	Source string `json:"source,omitempty"`

	// IsValid is true iff no errors were collected. Derived by Finalize.
	IsValid bool `json:"is_valid"`

	// TotalTurns is the number of elements that were valid objects.
	TotalTurns int `json:"total_turns"`

	// Errors holds every error found, in the order it was found.
	Errors []*Error `json:"errors"`

	// Warnings holds advisory findings that do not affect IsValid.
	Warnings []string `json:"warnings"`
}

// NewResult creates an empty result with a fresh run identifier.
func NewResult() *Result {
	return &Result{
		RunID:    uuid.NewString(),
		Errors:   make([]*Error, 0),
		Warnings: make([]string, 0),
	}
}

// Add appends an error to the result.
func (r *Result) Add(err *Error) {
	r.Errors = append(r.Errors, err)
}

// AddError creates and appends an error with the given category and message.
func (r *Result) AddError(errType ErrorType, message string) {
	r.Add(&Error{Type: errType, Message: message})
}

// AddWarning appends an advisory finding.
func (r *Result) AddWarning(warning string) {
	r.Warnings = append(r.Warnings, warning)
}

// Merge appends all errors and warnings from other onto r, preserving order.
func (r *Result) Merge(errs []*Error, warnings []string) {
	r.Errors = append(r.Errors, errs...)
	r.Warnings = append(r.Warnings, warnings...)
}

// Finalize derives IsValid from the collected errors. It must be called
// exactly once, at the end of a validation pass.
func (r *Result) Finalize() *Result {
	r.IsValid = len(r.Errors) == 0
	return r
}

// HasErrors returns true if any errors were collected.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// Count returns the number of errors collected.
func (r *Result) Count() int {
	return len(r.Errors)
}

// ByType returns all errors of the given category, in collection order.
func (r *Result) ByType(errType ErrorType) []*Error {
	var out []*Error
	for _, err := range r.Errors {
		if err.Type == errType {
			out = append(out, err)
		}
	}
	return out
}

// HasType returns true if at least one error of the given category exists.
func (r *Result) HasType(errType ErrorType) bool {
	for _, err := range r.Errors {
		if err.Type == errType {
			return true
		}
	}
	return false
}

// Summary returns a one-line description of the outcome, suitable for logs.
func (r *Result) Summary() string {
	if r.IsValid {
		return fmt.Sprintf("valid: %d turn(s), %d warning(s)", r.TotalTurns, len(r.Warnings))
	}
	return fmt.Sprintf("invalid: %d error(s), %d warning(s) across %d turn(s)",
		len(r.Errors), len(r.Warnings), r.TotalTurns)
}

// ToError returns nil when the result is valid, otherwise an error listing
// every finding. Callers that want error-return semantics use this; the
// Result itself remains the complete artifact.
func (r *Result) ToError() error {
	if !r.HasErrors() {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("found %d validation error(s):\n", len(r.Errors)))
	for _, err := range r.Errors {
		sb.WriteString("  - ")
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}
	return fmt.Errorf("%s", sb.String())
}
