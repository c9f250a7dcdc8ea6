package validator

import (
	"encoding/json"
)

// integerValue extracts an integer from a decoded scalar. It accepts the
// integer types the JSON and YAML decoders produce, including json.Number
// values without a fractional part. Booleans, floats, and numeric strings
// are rejected.
func integerValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

// numberValue extracts a float64 from a decoded scalar, accepting both
// integer and floating-point representations. Booleans and strings are
// rejected.
func numberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// isObject reports whether v is a decoded JSON/YAML object.
func isObject(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

// typeName returns the JSON-style name for a decoded value's type, used in
// error messages ("expected integer, got string").
func typeName(v any) string {
	switch n := v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case int, int64, uint64:
		return "integer"
	case float64:
		return "number"
	case json.Number:
		if _, err := n.Int64(); err == nil {
			return "integer"
		}
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return "unknown"
	}
}
