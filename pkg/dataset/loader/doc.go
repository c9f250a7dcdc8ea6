// Package loader parses dataset files into the in-memory representation the
// validation engine consumes: nested []any / map[string]any / scalar values.
//
// Three formats are supported: a JSON array document, JSON Lines (one turn
// object per line), and YAML. JSON numbers decode as json.Number so the
// type rules can distinguish integers from floats.
//
// The loader owns all I/O and deserialization; the rule engine never reads
// files itself. Parse failures surface as structure-category validation
// errors rather than raw Go errors.
package loader
