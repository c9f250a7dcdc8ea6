package config

// Default values for configuration fields.
const (
	DefaultMinTurns = 1
	DefaultMaxTurns = 10000

	DefaultMinMessageLength        = 1
	DefaultMaxMessageLength        = 10000
	DefaultMinAssistantReplyLength = 1
	DefaultMaxAssistantReplyLength = 20000

	DefaultRequireToolInput  = true
	DefaultRequireToolOutput = true

	DefaultConfidenceScoreMin = 0.0
	DefaultConfidenceScoreMax = 1.0

	DefaultStrictMode         = false
	DefaultCheckTurnSequence  = true
	DefaultAllowEmptyMessages = false
)

// DefaultAllowedSpeakers returns the default accepted speaker values.
func DefaultAllowedSpeakers() []string {
	return []string{"user", "assistant"}
}

// DefaultOptionalFields returns the default optional field set. The
// speaker-conditional fields (message, assistant_reply) are deliberately
// absent: listing them in optional_fields is how a configuration opts out
// of the conditional requirement.
func DefaultOptionalFields() []string {
	return []string{"tool_used", "tool_input", "tool_output", "confidence_score", "metadata"}
}

// Default returns a configuration with every field set to its default.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills zero-valued fields with their defaults. Explicitly
// configured values, including explicit false/zero for pointer-typed
// fields, are left untouched.
func ApplyDefaults(cfg *Config) {
	if cfg.MinTurns == 0 {
		cfg.MinTurns = DefaultMinTurns
	}
	if cfg.MaxTurns == 0 {
		cfg.MaxTurns = DefaultMaxTurns
	}

	if cfg.MinMessageLength == 0 {
		cfg.MinMessageLength = DefaultMinMessageLength
	}
	if cfg.MaxMessageLength == 0 {
		cfg.MaxMessageLength = DefaultMaxMessageLength
	}
	if cfg.MinAssistantReplyLength == 0 {
		cfg.MinAssistantReplyLength = DefaultMinAssistantReplyLength
	}
	if cfg.MaxAssistantReplyLength == 0 {
		cfg.MaxAssistantReplyLength = DefaultMaxAssistantReplyLength
	}

	if cfg.RequiredFields == nil {
		cfg.RequiredFields = []string{}
	}
	if cfg.OptionalFields == nil {
		cfg.OptionalFields = DefaultOptionalFields()
	}
	if cfg.AllowedSpeakers == nil {
		cfg.AllowedSpeakers = DefaultAllowedSpeakers()
	}

	if cfg.RequireToolInput == nil {
		cfg.RequireToolInput = boolPtr(DefaultRequireToolInput)
	}
	if cfg.RequireToolOutput == nil {
		cfg.RequireToolOutput = boolPtr(DefaultRequireToolOutput)
	}

	if cfg.ConfidenceScoreMin == nil {
		cfg.ConfidenceScoreMin = floatPtr(DefaultConfidenceScoreMin)
	}
	if cfg.ConfidenceScoreMax == nil {
		cfg.ConfidenceScoreMax = floatPtr(DefaultConfidenceScoreMax)
	}

	if cfg.CheckTurnSequence == nil {
		cfg.CheckTurnSequence = boolPtr(DefaultCheckTurnSequence)
	}
}

func boolPtr(v bool) *bool {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}
