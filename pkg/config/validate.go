package config

import (
	"fmt"
	"strings"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the yaml name of the configuration field (e.g., "min_turns").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a
// configuration. It implements the error interface and provides access to
// all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate checks the configuration for internal consistency and returns a
// ValidationError describing every problem found, or nil when the
// configuration is valid. An inconsistent configuration fails here, at
// construction time, rather than silently misbehaving during validation.
func Validate(cfg *Config) error {
	var errs []FieldError

	if cfg.MinTurns < 0 {
		errs = append(errs, FieldError{Field: "min_turns", Message: "must not be negative"})
	}
	if cfg.MaxTurns < 0 {
		errs = append(errs, FieldError{Field: "max_turns", Message: "must not be negative"})
	}
	if cfg.MinTurns > cfg.MaxTurns {
		errs = append(errs, FieldError{
			Field:   "min_turns",
			Message: fmt.Sprintf("must not exceed max_turns (%d > %d)", cfg.MinTurns, cfg.MaxTurns),
		})
	}

	errs = append(errs, validateLengthPair("message_length", cfg.MinMessageLength, cfg.MaxMessageLength)...)
	errs = append(errs, validateLengthPair("assistant_reply_length", cfg.MinAssistantReplyLength, cfg.MaxAssistantReplyLength)...)

	if len(cfg.AllowedSpeakers) == 0 {
		errs = append(errs, FieldError{Field: "allowed_speakers", Message: "must not be empty"})
	}
	for _, s := range cfg.AllowedSpeakers {
		if s == "" {
			errs = append(errs, FieldError{Field: "allowed_speakers", Message: "must not contain empty values"})
			break
		}
	}

	min, max := cfg.ConfidenceRange()
	if min > max {
		errs = append(errs, FieldError{
			Field:   "confidence_score_min",
			Message: fmt.Sprintf("must not exceed confidence_score_max (%g > %g)", min, max),
		})
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

// validateLengthPair checks a min/max length bound pair.
func validateLengthPair(name string, min, max int) []FieldError {
	var errs []FieldError

	if min < 0 {
		errs = append(errs, FieldError{Field: "min_" + name, Message: "must not be negative"})
	}
	if max < 0 {
		errs = append(errs, FieldError{Field: "max_" + name, Message: "must not be negative"})
	}
	if min > max {
		errs = append(errs, FieldError{
			Field:   "min_" + name,
			Message: fmt.Sprintf("must not exceed max_%s (%d > %d)", name, min, max),
		})
	}

	return errs
}
