package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	dserrors "turnlint-hq/turnlint/pkg/dataset/errors"
)

// Load reads and parses a dataset file into an in-memory value. The format
// is chosen by extension and content: .yaml/.yml files parse as YAML,
// content starting with '[' parses as a JSON array, and anything else
// parses as JSON Lines (one object per line).
//
// Parse failures never propagate as raw errors; they are returned as
// structure-category validation errors so the caller can fold them into a
// Result. For JSON Lines input, a malformed line produces one error and is
// skipped; the remaining lines still load.
func Load(path string) (any, []*dserrors.Error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, []*dserrors.Error{{
			Type:       dserrors.ErrorTypeStructure,
			Message:    fmt.Sprintf("failed to read file: %v", err),
			Suggestion: "check the file path and permissions",
		}}
	}

	return Parse(data, path)
}

// Parse parses raw dataset bytes. The name is used only to pick the format
// (YAML for .yaml/.yml) and does not need to reference a real file.
func Parse(data []byte, name string) (any, []*dserrors.Error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return parseYAML(data)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return parseJSONArray(trimmed)
	}

	return parseJSONLines(trimmed)
}

// parseJSONArray decodes a single JSON array document. Numbers decode as
// json.Number so the validator can tell integers and floats apart.
func parseJSONArray(data []byte) (any, []*dserrors.Error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, []*dserrors.Error{{
			Type:       dserrors.ErrorTypeStructure,
			Message:    fmt.Sprintf("invalid JSON: %v", err),
			Suggestion: "fix the JSON syntax error",
		}}
	}

	return value, nil
}

// parseJSONLines decodes line-delimited JSON. Blank lines are skipped;
// malformed lines each yield one structure error and are excluded from the
// returned sequence.
func parseJSONLines(data []byte) (any, []*dserrors.Error) {
	var (
		turns = make([]any, 0)
		errs  []*dserrors.Error
	)

	for i, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		dec := json.NewDecoder(bytes.NewReader(line))
		dec.UseNumber()

		var value any
		if err := dec.Decode(&value); err != nil {
			errs = append(errs, &dserrors.Error{
				Type:       dserrors.ErrorTypeStructure,
				Message:    fmt.Sprintf("invalid JSON on line %d: %v", i+1, err),
				Suggestion: "fix the JSON syntax error",
			})
			continue
		}

		turns = append(turns, value)
	}

	return turns, errs
}

// parseYAML decodes a YAML document.
func parseYAML(data []byte) (any, []*dserrors.Error) {
	var value any
	if err := yaml.Unmarshal(data, &value); err != nil {
		return nil, []*dserrors.Error{{
			Type:       dserrors.ErrorTypeStructure,
			Message:    fmt.Sprintf("invalid YAML: %v", err),
			Suggestion: "fix the YAML syntax error",
		}}
	}

	return value, nil
}
