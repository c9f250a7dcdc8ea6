package validator

import (
	"encoding/json"
	"strings"
	"testing"

	"turnlint-hq/turnlint/pkg/config"
	dserrors "turnlint-hq/turnlint/pkg/dataset/errors"
)

// runTurn validates a single turn in isolation with the given config.
func runTurn(t *testing.T, turn map[string]any, cfg *config.Config) ([]*dserrors.Error, []string) {
	t.Helper()
	return NewTurnValidator().ValidateTurn(turn, 1, []any{turn}, cfg)
}

func typeCounts(errs []*dserrors.Error) map[dserrors.ErrorType]int {
	counts := map[dserrors.ErrorType]int{}
	for _, err := range errs {
		counts[err.Type]++
	}
	return counts
}

func TestCheckRequiredFields(t *testing.T) {
	errs, _ := runTurn(t, map[string]any{"message": "hi"}, config.Default())

	counts := typeCounts(errs)
	if counts[dserrors.ErrorTypeRequiredFieldMissing] != 2 {
		t.Fatalf("got %d required-field errors, want 2 (turn_id, speaker): %v", counts[dserrors.ErrorTypeRequiredFieldMissing], errs)
	}

	fields := map[string]bool{}
	for _, err := range errs {
		fields[err.Field] = true
		if err.Suggestion == "" {
			t.Errorf("missing-field error for %q should carry a suggestion", err.Field)
		}
	}
	if !fields["turn_id"] || !fields["speaker"] {
		t.Errorf("errors should name turn_id and speaker: %v", errs)
	}
}

func TestCheckRequiredFieldsConfigured(t *testing.T) {
	cfg := config.Default()
	cfg.RequiredFields = []string{"metadata", "speaker"} // speaker overlaps the built-ins

	errs, _ := runTurn(t, userTurn(1, "hi"), cfg)

	missing := typeCounts(errs)[dserrors.ErrorTypeRequiredFieldMissing]
	if missing != 1 {
		t.Errorf("got %d required-field errors, want 1 (metadata only, no duplicate for speaker): %v", missing, errs)
	}
}

func TestCheckSpeakerRequirements(t *testing.T) {
	tests := []struct {
		name        string
		turn        map[string]any
		mutateCfg   func(*config.Config)
		wantMissing string // field named by the expected error, "" for none
	}{
		{
			name:        "user without message",
			turn:        map[string]any{"turn_id": 1, "speaker": "user"},
			wantMissing: "message",
		},
		{
			name:        "assistant without reply",
			turn:        map[string]any{"turn_id": 1, "speaker": "assistant", "message": "noted"},
			wantMissing: "assistant_reply",
		},
		{
			name: "user without message but message optional",
			turn: map[string]any{"turn_id": 1, "speaker": "user"},
			mutateCfg: func(cfg *config.Config) {
				cfg.OptionalFields = append(cfg.OptionalFields, "message")
			},
		},
		{
			name: "unknown speaker skips the conditional",
			turn: map[string]any{"turn_id": 1, "speaker": "narrator"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			if tc.mutateCfg != nil {
				tc.mutateCfg(cfg)
			}

			errs, _ := runTurn(t, tc.turn, cfg)

			var got []*dserrors.Error
			for _, err := range errs {
				if err.Type == dserrors.ErrorTypeRequiredFieldMissing {
					got = append(got, err)
				}
			}

			if tc.wantMissing == "" {
				if len(got) != 0 {
					t.Errorf("unexpected required-field errors: %v", got)
				}
				return
			}
			if len(got) != 1 || got[0].Field != tc.wantMissing {
				t.Errorf("got %v, want one error for field %q", got, tc.wantMissing)
			}
		})
	}
}

func TestCheckFieldTypes(t *testing.T) {
	tests := []struct {
		name      string
		turn      map[string]any
		wantField string
		wantMsg   string
	}{
		{
			name:      "string turn_id",
			turn:      map[string]any{"turn_id": "2", "speaker": "user", "message": "hi"},
			wantField: "turn_id",
			wantMsg:   "turn_id must be an integer, got string",
		},
		{
			name:      "float turn_id",
			turn:      map[string]any{"turn_id": json.Number("1.5"), "speaker": "user", "message": "hi"},
			wantField: "turn_id",
			wantMsg:   "turn_id must be an integer, got number",
		},
		{
			name:      "numeric speaker",
			turn:      map[string]any{"turn_id": 1, "speaker": 42, "message": "hi"},
			wantField: "speaker",
			wantMsg:   "speaker must be a string, got integer",
		},
		{
			name:      "string tool_input",
			turn:      map[string]any{"turn_id": 1, "speaker": "user", "message": "hi", "tool_used": "search", "tool_input": "query", "tool_output": map[string]any{}},
			wantField: "tool_input",
			wantMsg:   "tool_input must be an object, got string",
		},
		{
			name:      "string confidence_score",
			turn:      map[string]any{"turn_id": 1, "speaker": "user", "message": "hi", "confidence_score": "high"},
			wantField: "confidence_score",
			wantMsg:   "confidence_score must be a number, got string",
		},
		{
			name:      "array metadata",
			turn:      map[string]any{"turn_id": 1, "speaker": "user", "message": "hi", "metadata": []any{"a"}},
			wantField: "metadata",
			wantMsg:   "metadata must be an object, got array",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs, _ := runTurn(t, tc.turn, config.Default())

			typed := typeCounts(errs)[dserrors.ErrorTypeInvalidFieldType]
			if typed != 1 {
				t.Fatalf("got %d type errors, want exactly 1: %v", typed, errs)
			}
			for _, err := range errs {
				if err.Type != dserrors.ErrorTypeInvalidFieldType {
					continue
				}
				if err.Field != tc.wantField {
					t.Errorf("Field = %q, want %q", err.Field, tc.wantField)
				}
				if !strings.Contains(err.Message, tc.wantMsg) {
					t.Errorf("Message = %q, want %q", err.Message, tc.wantMsg)
				}
			}
		})
	}
}

func TestCheckFieldTypesAcceptsDecoderVariants(t *testing.T) {
	// JSON decoding yields json.Number, YAML yields int; both must pass.
	for _, id := range []any{1, int64(1), json.Number("1")} {
		turn := map[string]any{"turn_id": id, "speaker": "user", "message": "hi"}
		if errs, _ := runTurn(t, turn, config.Default()); len(errs) != 0 {
			t.Errorf("turn_id of %T should be accepted, got %v", id, errs)
		}
	}
}

func TestCheckFieldValues(t *testing.T) {
	tests := []struct {
		name    string
		turn    map[string]any
		wantMsg string
	}{
		{
			name:    "zero turn_id",
			turn:    map[string]any{"turn_id": 0, "speaker": "user", "message": "hi"},
			wantMsg: "turn_id must be a positive integer",
		},
		{
			name:    "negative turn_id",
			turn:    map[string]any{"turn_id": -3, "speaker": "user", "message": "hi"},
			wantMsg: "turn_id must be a positive integer",
		},
		{
			name:    "disallowed speaker",
			turn:    map[string]any{"turn_id": 1, "speaker": "narrator"},
			wantMsg: `invalid speaker "narrator"`,
		},
		{
			name:    "confidence above max",
			turn:    map[string]any{"turn_id": 1, "speaker": "user", "message": "hi", "confidence_score": json.Number("1.5")},
			wantMsg: "confidence_score 1.5 outside range [0, 1]",
		},
		{
			name:    "confidence below min",
			turn:    map[string]any{"turn_id": 1, "speaker": "user", "message": "hi", "confidence_score": -0.1},
			wantMsg: "confidence_score -0.1 outside range [0, 1]",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs, _ := runTurn(t, tc.turn, config.Default())

			values := typeCounts(errs)[dserrors.ErrorTypeInvalidFieldValue]
			if values != 1 {
				t.Fatalf("got %d value errors, want 1: %v", values, errs)
			}
			found := false
			for _, err := range errs {
				if strings.Contains(err.Message, tc.wantMsg) {
					found = true
				}
			}
			if !found {
				t.Errorf("no error mentions %q in %v", tc.wantMsg, errs)
			}
		})
	}
}

func TestCheckFieldValuesInRange(t *testing.T) {
	turn := map[string]any{"turn_id": 1, "speaker": "user", "message": "hi", "confidence_score": 0.5}
	if errs, _ := runTurn(t, turn, config.Default()); len(errs) != 0 {
		t.Errorf("in-range confidence should be accepted, got %v", errs)
	}

	// bounds are inclusive
	for _, score := range []any{json.Number("0"), json.Number("1"), 0.0, 1.0} {
		turn["confidence_score"] = score
		if errs, _ := runTurn(t, turn, config.Default()); len(errs) != 0 {
			t.Errorf("boundary confidence %v should be accepted, got %v", score, errs)
		}
	}
}

func TestCheckContent(t *testing.T) {
	tests := []struct {
		name      string
		turn      map[string]any
		mutateCfg func(*config.Config)
		wantCount int
		wantMsg   string
	}{
		{
			name:      "empty message",
			turn:      userTurn(1, ""),
			wantCount: 1,
			wantMsg:   "message must not be empty",
		},
		{
			name:      "empty message allowed",
			turn:      userTurn(1, ""),
			mutateCfg: func(cfg *config.Config) { cfg.AllowEmptyMessages = true },
			wantCount: 0,
		},
		{
			name:      "message over max length",
			turn:      userTurn(1, "hello there"),
			mutateCfg: func(cfg *config.Config) { cfg.MaxMessageLength = 5 },
			wantCount: 1,
			wantMsg:   "message length 11 outside range [1, 5]",
		},
		{
			name:      "reply under min length",
			turn:      assistantTurn(1, "ok"),
			mutateCfg: func(cfg *config.Config) { cfg.MinAssistantReplyLength = 10 },
			wantCount: 1,
			wantMsg:   "assistant_reply length 2 outside range [10, 20000]",
		},
		{
			name:      "length measured in runes not bytes",
			turn:      userTurn(1, "héllo"),
			mutateCfg: func(cfg *config.Config) { cfg.MaxMessageLength = 5 },
			wantCount: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			if tc.mutateCfg != nil {
				tc.mutateCfg(cfg)
			}

			errs, _ := runTurn(t, tc.turn, cfg)

			content := typeCounts(errs)[dserrors.ErrorTypeContent]
			if content != tc.wantCount {
				t.Fatalf("got %d content errors, want %d: %v", content, tc.wantCount, errs)
			}
			if tc.wantMsg != "" {
				found := false
				for _, err := range errs {
					if strings.Contains(err.Message, tc.wantMsg) {
						found = true
					}
				}
				if !found {
					t.Errorf("no error mentions %q in %v", tc.wantMsg, errs)
				}
			}
		})
	}
}

func TestCheckToolTriplet(t *testing.T) {
	tests := []struct {
		name       string
		turn       map[string]any
		mutateCfg  func(*config.Config)
		wantFields []string // fields named by the expected tool errors
	}{
		{
			name: "tool_used alone needs input and output",
			turn: map[string]any{
				"turn_id": 1, "speaker": "assistant", "assistant_reply": "done",
				"tool_used": "calculator",
			},
			wantFields: []string{"tool_input", "tool_output"},
		},
		{
			name: "tool_input without tool_used",
			turn: map[string]any{
				"turn_id": 1, "speaker": "assistant", "assistant_reply": "done",
				"tool_input": map[string]any{"q": "2+2"}, "tool_output": "4",
			},
			wantFields: []string{"tool_used"},
		},
		{
			name: "complete triplet",
			turn: map[string]any{
				"turn_id": 1, "speaker": "assistant", "assistant_reply": "done",
				"tool_used": "calculator", "tool_input": map[string]any{"q": "2+2"}, "tool_output": "4",
			},
		},
		{
			name: "input requirement disabled",
			turn: map[string]any{
				"turn_id": 1, "speaker": "assistant", "assistant_reply": "done",
				"tool_used": "calculator",
			},
			mutateCfg: func(cfg *config.Config) {
				no := false
				cfg.RequireToolInput = &no
			},
			wantFields: []string{"tool_output"},
		},
		{
			name: "disallowed tool name",
			turn: map[string]any{
				"turn_id": 1, "speaker": "assistant", "assistant_reply": "done",
				"tool_used": "calculator", "tool_input": map[string]any{}, "tool_output": "4",
			},
			mutateCfg: func(cfg *config.Config) {
				cfg.AllowedTools = []string{"search", "weather_api"}
			},
			wantFields: []string{"tool_used"},
		},
		{
			name: "no tool fields at all",
			turn: map[string]any{"turn_id": 1, "speaker": "user", "message": "hi"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			if tc.mutateCfg != nil {
				tc.mutateCfg(cfg)
			}

			errs, _ := runTurn(t, tc.turn, cfg)

			var got []string
			for _, err := range errs {
				if err.Type == dserrors.ErrorTypeTool {
					got = append(got, err.Field)
				}
			}

			if len(got) != len(tc.wantFields) {
				t.Fatalf("got %d tool errors (%v), want %d (%v)", len(got), got, len(tc.wantFields), tc.wantFields)
			}
			for i, field := range tc.wantFields {
				if got[i] != field {
					t.Errorf("tool error %d names field %q, want %q", i, got[i], field)
				}
			}
		})
	}
}

func TestCheckUnknownFields(t *testing.T) {
	turn := map[string]any{
		"turn_id": 1, "speaker": "user", "message": "hi",
		"mesage":           "typo",
		"zz_custom":        true,
		"confidence_score": 0.5,
	}

	// without strict mode: silence
	if _, warnings := runTurn(t, turn, config.Default()); len(warnings) != 0 {
		t.Errorf("non-strict mode should not warn, got %v", warnings)
	}

	cfg := config.Default()
	cfg.StrictMode = true
	errs, warnings := runTurn(t, turn, cfg)

	// unknown fields never fail validation
	for _, err := range errs {
		t.Errorf("unexpected error: %v", err)
	}

	if len(warnings) != 2 {
		t.Fatalf("got %d warnings, want 2: %v", len(warnings), warnings)
	}
	// sorted by field name for deterministic output
	if !strings.Contains(warnings[0], `"mesage"`) || !strings.Contains(warnings[0], `did you mean "message"?`) {
		t.Errorf("warnings[0] = %q, want typo hint", warnings[0])
	}
	if !strings.Contains(warnings[1], `"zz_custom"`) || strings.Contains(warnings[1], "did you mean") {
		t.Errorf("warnings[1] = %q, want plain unknown-field warning", warnings[1])
	}
	if !strings.HasPrefix(warnings[0], "Turn 1:") {
		t.Errorf("warnings[0] = %q, want turn locator prefix", warnings[0])
	}
}

func TestErrorsStampedWithLocation(t *testing.T) {
	turn := map[string]any{"turn_id": 7, "speaker": "user"}
	errs, _ := NewTurnValidator().ValidateTurn(turn, 3, []any{turn}, config.Default())

	if len(errs) == 0 {
		t.Fatal("expected at least one error")
	}
	for _, err := range errs {
		if err.Position != 3 {
			t.Errorf("Position = %d, want 3", err.Position)
		}
		if err.TurnID != 7 {
			t.Errorf("TurnID = %d, want 7", err.TurnID)
		}
	}
}
