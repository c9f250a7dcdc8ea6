package validator

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	dserrors "turnlint-hq/turnlint/pkg/dataset/errors"
)

// checkMetadataSchema validates a turn's metadata object against the
// configured JSON Schema, when one is set. Each leaf schema violation
// becomes one invalid_field_value finding. Without a configured schema,
// metadata is unvalidated beyond the object type check.
func checkMetadataSchema(c *Context) {
	schema := c.Config.CompiledMetadataSchema()
	if schema == nil {
		return
	}

	v, ok := c.Turn["metadata"]
	if !ok || !isObject(v) {
		return
	}

	// Round-trip through encoding/json so YAML-decoded values are in the
	// representation the schema library expects.
	raw, err := json.Marshal(v)
	if err != nil {
		c.Add(&dserrors.Error{
			Type:    dserrors.ErrorTypeInvalidFieldValue,
			Message: fmt.Sprintf("metadata is not JSON-compatible: %v", err),
			Field:   "metadata",
		})
		return
	}

	var normalized any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		c.Add(&dserrors.Error{
			Type:    dserrors.ErrorTypeInvalidFieldValue,
			Message: fmt.Sprintf("metadata is not JSON-compatible: %v", err),
			Field:   "metadata",
		})
		return
	}

	if err := schema.Validate(normalized); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			for _, msg := range schemaLeafMessages(ve) {
				c.Add(&dserrors.Error{
					Type:       dserrors.ErrorTypeInvalidFieldValue,
					Message:    fmt.Sprintf("metadata does not match schema: %s", msg),
					Field:      "metadata",
					Suggestion: "align metadata with the configured metadata_schema document",
				})
			}
			return
		}

		c.Add(&dserrors.Error{
			Type:    dserrors.ErrorTypeInvalidFieldValue,
			Message: fmt.Sprintf("metadata does not match schema: %v", err),
			Field:   "metadata",
		})
	}
}

// schemaLeafMessages flattens a schema validation error into its leaf
// causes, which carry the actionable messages.
func schemaLeafMessages(ve *jsonschema.ValidationError) []string {
	if len(ve.Causes) == 0 {
		if ve.InstanceLocation != "" {
			return []string{fmt.Sprintf("%s: %s", ve.InstanceLocation, ve.Message)}
		}
		return []string{ve.Message}
	}

	var out []string
	for _, cause := range ve.Causes {
		out = append(out, schemaLeafMessages(cause)...)
	}
	return out
}
