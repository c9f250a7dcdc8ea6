package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadBytes(t *testing.T) {
	data := []byte(`
min_turns: 2
max_turns: 50
allowed_speakers:
  - human
  - bot
allowed_tools:
  - search
strict_mode: true
require_tool_output: false
confidence_score_max: 0.99
`)

	cfg, err := LoadBytes(data)
	if err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}

	if cfg.MinTurns != 2 || cfg.MaxTurns != 50 {
		t.Errorf("turn bounds = [%d, %d], want [2, 50]", cfg.MinTurns, cfg.MaxTurns)
	}
	if !cfg.IsAllowedSpeaker("human") || cfg.IsAllowedSpeaker("user") {
		t.Error("allowed_speakers not taken from file")
	}
	if !cfg.StrictMode {
		t.Error("strict_mode not taken from file")
	}
	if cfg.ToolOutputRequired() {
		t.Error("require_tool_output: false not honored")
	}
	if cfg.ToolInputRequired() != true {
		t.Error("unset require_tool_input should default to true")
	}

	// unspecified values fall back to defaults
	if cfg.MaxMessageLength != DefaultMaxMessageLength {
		t.Errorf("MaxMessageLength = %d, want default %d", cfg.MaxMessageLength, DefaultMaxMessageLength)
	}
	_, max := cfg.ConfidenceRange()
	if max != 0.99 {
		t.Errorf("confidence max = %g, want 0.99", max)
	}
}

func TestLoadBytesInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{
			name: "malformed yaml",
			data: "min_turns: [unclosed",
			want: "failed to parse configuration",
		},
		{
			name: "inconsistent bounds",
			data: "min_turns: 10\nmax_turns: 2\n",
			want: "min_turns",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadBytes([]byte(tc.data))
			if err == nil {
				t.Fatal("LoadBytes() = nil, want error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "turnlint.yaml")
	if err := os.WriteFile(path, []byte("min_turns: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MinTurns != 3 {
		t.Errorf("MinTurns = %d, want 3", cfg.MinTurns)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() on missing file should fail")
	}
}

func TestLoadCompilesMetadataSchema(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "metadata.schema.json")
	schema := `{"type": "object", "required": ["source"]}`
	if err := os.WriteFile(schemaPath, []byte(schema), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBytes([]byte("metadata_schema: " + schemaPath + "\n"))
	if err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}
	if cfg.CompiledMetadataSchema() == nil {
		t.Fatal("metadata schema was not compiled")
	}

	if _, err := LoadBytes([]byte("metadata_schema: " + filepath.Join(dir, "nope.json") + "\n")); err == nil {
		t.Error("missing schema file should fail to compile")
	}
}
