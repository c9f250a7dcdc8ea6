package config

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		wantErrs []string // substrings of expected field errors
	}{
		{
			name:   "valid defaults",
			mutate: func(cfg *Config) {},
		},
		{
			name:     "negative min_turns",
			mutate:   func(cfg *Config) { cfg.MinTurns = -1 },
			wantErrs: []string{"min_turns"},
		},
		{
			name: "min greater than max",
			mutate: func(cfg *Config) {
				cfg.MinTurns = 10
				cfg.MaxTurns = 2
			},
			wantErrs: []string{"min_turns"},
		},
		{
			name:     "empty allowed_speakers",
			mutate:   func(cfg *Config) { cfg.AllowedSpeakers = []string{} },
			wantErrs: []string{"allowed_speakers"},
		},
		{
			name:     "blank speaker entry",
			mutate:   func(cfg *Config) { cfg.AllowedSpeakers = []string{"user", ""} },
			wantErrs: []string{"allowed_speakers"},
		},
		{
			name: "inverted message length bounds",
			mutate: func(cfg *Config) {
				cfg.MinMessageLength = 100
				cfg.MaxMessageLength = 10
			},
			wantErrs: []string{"min_message_length"},
		},
		{
			name: "inverted confidence range",
			mutate: func(cfg *Config) {
				lo, hi := 0.9, 0.1
				cfg.ConfidenceScoreMin = &lo
				cfg.ConfidenceScoreMax = &hi
			},
			wantErrs: []string{"confidence_score_min"},
		},
		{
			name: "multiple violations collected",
			mutate: func(cfg *Config) {
				cfg.MinTurns = -1
				cfg.AllowedSpeakers = nil
			},
			wantErrs: []string{"min_turns", "allowed_speakers"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)

			err := Validate(cfg)
			if len(tc.wantErrs) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}

			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error type = %T, want ValidationError", err)
			}
			if len(verr.Errors) != len(tc.wantErrs) {
				t.Fatalf("got %d field errors (%v), want %d", len(verr.Errors), verr, len(tc.wantErrs))
			}
			for _, want := range tc.wantErrs {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q does not mention %q", err, want)
				}
			}
		})
	}
}
