package loader

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	dserrors "turnlint-hq/turnlint/pkg/dataset/errors"
)

func TestParseJSONArray(t *testing.T) {
	data := []byte(`[
		{"turn_id": 1, "speaker": "user", "message": "hi"},
		{"turn_id": 2, "speaker": "assistant", "assistant_reply": "hello"}
	]`)

	value, errs := Parse(data, "conv.json")
	if len(errs) != 0 {
		t.Fatalf("Parse() errors = %v, want none", errs)
	}

	turns, ok := value.([]any)
	if !ok {
		t.Fatalf("parsed value is %T, want []any", value)
	}
	if len(turns) != 2 {
		t.Fatalf("len(turns) = %d, want 2", len(turns))
	}

	first, ok := turns[0].(map[string]any)
	if !ok {
		t.Fatalf("turn is %T, want map[string]any", turns[0])
	}
	// numbers must survive as json.Number so integer checks stay exact
	if _, ok := first["turn_id"].(json.Number); !ok {
		t.Errorf("turn_id decoded as %T, want json.Number", first["turn_id"])
	}
}

func TestParseJSONArrayMalformed(t *testing.T) {
	_, errs := Parse([]byte(`[{"turn_id": 1,]`), "conv.json")
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if errs[0].Type != dserrors.ErrorTypeStructure {
		t.Errorf("error type = %s, want structure", errs[0].Type)
	}
	if !strings.Contains(errs[0].Message, "invalid JSON") {
		t.Errorf("message = %q", errs[0].Message)
	}
}

func TestParseJSONLines(t *testing.T) {
	data := []byte(`{"turn_id": 1, "speaker": "user", "message": "hi"}

{"turn_id": 2 "broken"
{"turn_id": 3, "speaker": "assistant", "assistant_reply": "hello"}
`)

	value, errs := Parse(data, "conv.jsonl")
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1 for the malformed line", len(errs))
	}
	if !strings.Contains(errs[0].Message, "line 3") {
		t.Errorf("error should name line 3, got %q", errs[0].Message)
	}

	turns := value.([]any)
	if len(turns) != 2 {
		t.Errorf("len(turns) = %d, want 2 good lines kept", len(turns))
	}
}

func TestParseJSONLinesEmpty(t *testing.T) {
	value, errs := Parse([]byte(""), "conv.jsonl")
	if len(errs) != 0 {
		t.Fatalf("got %d errors, want none", len(errs))
	}
	if turns := value.([]any); len(turns) != 0 {
		t.Errorf("len(turns) = %d, want 0", len(turns))
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
- turn_id: 1
  speaker: user
  message: hi
- turn_id: 2
  speaker: assistant
  assistant_reply: hello
  confidence_score: 0.9
`)

	value, errs := Parse(data, "conv.yaml")
	if len(errs) != 0 {
		t.Fatalf("Parse() errors = %v, want none", errs)
	}

	turns, ok := value.([]any)
	if !ok {
		t.Fatalf("parsed value is %T, want []any", value)
	}
	if len(turns) != 2 {
		t.Fatalf("len(turns) = %d, want 2", len(turns))
	}

	second := turns[1].(map[string]any)
	if _, ok := second["turn_id"].(int); !ok {
		t.Errorf("yaml turn_id decoded as %T, want int", second["turn_id"])
	}
	if _, ok := second["confidence_score"].(float64); !ok {
		t.Errorf("yaml confidence_score decoded as %T, want float64", second["confidence_score"])
	}
}

func TestParseYAMLMalformed(t *testing.T) {
	_, errs := Parse([]byte("- turn_id: [unclosed"), "conv.yml")
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if !strings.Contains(errs[0].Message, "invalid YAML") {
		t.Errorf("message = %q", errs[0].Message)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conv.json")
	content := `[{"turn_id": 1, "speaker": "user", "message": "hi"}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	value, errs := Load(path)
	if len(errs) != 0 {
		t.Fatalf("Load() errors = %v, want none", errs)
	}
	if turns := value.([]any); len(turns) != 1 {
		t.Errorf("len(turns) = %d, want 1", len(turns))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, errs := Load(filepath.Join(t.TempDir(), "missing.json"))
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if errs[0].Type != dserrors.ErrorTypeStructure {
		t.Errorf("error type = %s, want structure", errs[0].Type)
	}
	if !strings.Contains(errs[0].Message, "failed to read file") {
		t.Errorf("message = %q", errs[0].Message)
	}
}
