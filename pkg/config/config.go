package config

import (
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Config holds every tunable validation parameter. It is constructed once
// per validation run (from a YAML file or from Default), validated fail-fast,
// and never mutated afterwards, so a single Config may be shared freely
// across concurrent validations.
type Config struct {
	// MinTurns is the minimum number of turns a conversation must have.
	// Default: 1
	MinTurns int `yaml:"min_turns"`

	// MaxTurns is the maximum number of turns a conversation may have.
	// Default: 10000
	MaxTurns int `yaml:"max_turns"`

	// MinMessageLength is the minimum character count for a non-empty
	// user message. Default: 1
	MinMessageLength int `yaml:"min_message_length"`

	// MaxMessageLength is the maximum character count for a user message.
	// Default: 10000
	MaxMessageLength int `yaml:"max_message_length"`

	// MinAssistantReplyLength is the minimum character count for a
	// non-empty assistant reply. Default: 1
	MinAssistantReplyLength int `yaml:"min_assistant_reply_length"`

	// MaxAssistantReplyLength is the maximum character count for an
	// assistant reply. Default: 20000
	MaxAssistantReplyLength int `yaml:"max_assistant_reply_length"`

	// RequiredFields lists fields that must be present on every turn, in
	// addition to turn_id and speaker which are always required.
	// Default: empty
	RequiredFields []string `yaml:"required_fields"`

	// OptionalFields lists fields that are recognized but not required.
	// Listing "message" or "assistant_reply" here disables the
	// speaker-conditional requirement for that field.
	// Default: tool_used, tool_input, tool_output, confidence_score, metadata
	OptionalFields []string `yaml:"optional_fields"`

	// AllowedSpeakers is the set of accepted speaker values. Membership is
	// case-sensitive. Must not be empty.
	// Default: user, assistant
	AllowedSpeakers []string `yaml:"allowed_speakers"`

	// AllowedTools restricts the accepted tool_used values. A nil/empty
	// list means any tool name is accepted.
	// Default: unrestricted
	AllowedTools []string `yaml:"allowed_tools"`

	// RequireToolInput requires tool_input whenever any tool field is
	// present on a turn. Default: true
	RequireToolInput *bool `yaml:"require_tool_input"`

	// RequireToolOutput requires tool_output whenever any tool field is
	// present on a turn. Default: true
	RequireToolOutput *bool `yaml:"require_tool_output"`

	// ConfidenceScoreMin is the inclusive lower bound for
	// confidence_score. Default: 0.0
	ConfidenceScoreMin *float64 `yaml:"confidence_score_min"`

	// ConfidenceScoreMax is the inclusive upper bound for
	// confidence_score. Default: 1.0
	ConfidenceScoreMax *float64 `yaml:"confidence_score_max"`

	// StrictMode flags turn fields outside the recognized set as warnings.
	// Default: false
	StrictMode bool `yaml:"strict_mode"`

	// CheckTurnSequence enables the whole-conversation turn_id uniqueness
	// and consecutiveness check. Default: true
	CheckTurnSequence *bool `yaml:"check_turn_sequence"`

	// AllowEmptyMessages accepts empty message and assistant_reply
	// strings. Default: false
	AllowEmptyMessages bool `yaml:"allow_empty_messages"`

	// MetadataSchema is an optional path to a JSON Schema document. When
	// set, each turn's metadata object is validated against it.
	// Default: none
	MetadataSchema string `yaml:"metadata_schema"`

	// metadataSchema is the compiled form of MetadataSchema, populated by
	// CompileMetadataSchema during Load.
	metadataSchema *jsonschema.Schema
}

// SequenceChecked reports whether the turn_id sequence check is enabled.
func (c *Config) SequenceChecked() bool {
	return c.CheckTurnSequence == nil || *c.CheckTurnSequence
}

// ToolInputRequired reports whether tool_input must accompany tool usage.
func (c *Config) ToolInputRequired() bool {
	return c.RequireToolInput == nil || *c.RequireToolInput
}

// ToolOutputRequired reports whether tool_output must accompany tool usage.
func (c *Config) ToolOutputRequired() bool {
	return c.RequireToolOutput == nil || *c.RequireToolOutput
}

// ConfidenceRange returns the inclusive [min, max] bounds for
// confidence_score, falling back to the defaults when unset.
func (c *Config) ConfidenceRange() (float64, float64) {
	min, max := DefaultConfidenceScoreMin, DefaultConfidenceScoreMax
	if c.ConfidenceScoreMin != nil {
		min = *c.ConfidenceScoreMin
	}
	if c.ConfidenceScoreMax != nil {
		max = *c.ConfidenceScoreMax
	}
	return min, max
}

// IsAllowedSpeaker reports whether s is an accepted speaker value.
func (c *Config) IsAllowedSpeaker(s string) bool {
	for _, v := range c.AllowedSpeakers {
		if v == s {
			return true
		}
	}
	return false
}

// ToolsRestricted reports whether an allowed-tools set is configured.
func (c *Config) ToolsRestricted() bool {
	return len(c.AllowedTools) > 0
}

// IsAllowedTool reports whether name is an accepted tool. Always true when
// the tool set is unrestricted.
func (c *Config) IsAllowedTool(name string) bool {
	if !c.ToolsRestricted() {
		return true
	}
	for _, v := range c.AllowedTools {
		if v == name {
			return true
		}
	}
	return false
}

// IsRequired reports whether field is unconditionally required on every turn.
func (c *Config) IsRequired(field string) bool {
	for _, v := range c.RequiredFields {
		if v == field {
			return true
		}
	}
	return false
}

// IsOptional reports whether field is listed in the optional set. A
// speaker-conditional field listed here loses its conditional requirement.
func (c *Config) IsOptional(field string) bool {
	for _, v := range c.OptionalFields {
		if v == field {
			return true
		}
	}
	return false
}

// KnownFields returns every field name the configuration recognizes:
// required, optional, the always-present turn_id and speaker, and the
// speaker-conditional content fields. Strict mode flags anything else.
func (c *Config) KnownFields() map[string]bool {
	known := map[string]bool{
		"turn_id":         true,
		"speaker":         true,
		"message":         true,
		"assistant_reply": true,
	}
	for _, v := range c.RequiredFields {
		known[v] = true
	}
	for _, v := range c.OptionalFields {
		known[v] = true
	}
	return known
}

// CompiledMetadataSchema returns the compiled metadata schema, or nil when
// no schema is configured.
func (c *Config) CompiledMetadataSchema() *jsonschema.Schema {
	return c.metadataSchema
}

// CompileMetadataSchema compiles MetadataSchema if one is configured.
// Load calls this after defaulting; callers constructing a Config by hand
// must call it themselves before validating datasets.
func (c *Config) CompileMetadataSchema() error {
	if c.MetadataSchema == "" {
		c.metadataSchema = nil
		return nil
	}

	schema, err := jsonschema.Compile(c.MetadataSchema)
	if err != nil {
		return err
	}
	c.metadataSchema = schema
	return nil
}
