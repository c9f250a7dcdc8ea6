// Package errors defines the closed error taxonomy for dataset validation
// and the Result aggregate that collects findings across a validation pass.
//
// Validation never stops at the first problem: every violated rule appends
// one Error to the shared Result, and the final verdict is derived from the
// collected set. Data-quality problems are always represented as values,
// never as panics or returned Go errors.
//
// # Error categories
//
//   - structure: document shape (not an array, empty, element not an object)
//   - required_field_missing: a required field is absent
//   - invalid_field_type: a field has the wrong type
//   - invalid_field_value: a field value is out of range or disallowed
//   - sequence: duplicate or non-consecutive turn_id values
//   - content: empty or out-of-bounds message text
//   - tool: incomplete tool triplet or disallowed tool name
package errors
