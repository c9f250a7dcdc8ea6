package validator

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"turnlint-hq/turnlint/pkg/config"
	dserrors "turnlint-hq/turnlint/pkg/dataset/errors"
)

// Rule is one independent per-turn check. Rules read the turn through the
// context and append their findings; they never abort the pass. Adding a
// custom check means registering another Rule, not wrapping the validator.
type Rule func(*Context)

// Context carries everything a rule needs to evaluate one turn: the turn
// object, its 1-based position, the full conversation for cross-turn
// lookups, and the active configuration.
type Context struct {
	Turn         map[string]any
	Position     int
	Conversation []any
	Config       *config.Config

	turnID   int
	errors   []*dserrors.Error
	warnings []string
}

// TurnID returns the turn's declared turn_id when it was present, integral,
// and positive; zero otherwise.
func (c *Context) TurnID() int {
	return c.turnID
}

// Add appends a finding, stamping the turn's position and turn_id onto it
// when the rule did not set them.
func (c *Context) Add(err *dserrors.Error) {
	if err.Position == 0 {
		err.Position = c.Position
	}
	if err.TurnID == 0 {
		err.TurnID = c.turnID
	}
	c.errors = append(c.errors, err)
}

// Warnf appends an advisory finding prefixed with the turn's locator.
func (c *Context) Warnf(format string, args ...any) {
	loc := fmt.Sprintf("Position %d", c.Position)
	if c.turnID > 0 {
		loc = fmt.Sprintf("Turn %d", c.turnID)
	}
	c.warnings = append(c.warnings, fmt.Sprintf("%s: %s", loc, fmt.Sprintf(format, args...)))
}

// TurnValidator applies an ordered list of independent rules to one turn.
// The built-in rules cover required fields, types, value ranges, content
// bounds, and the tool triplet; Register appends custom rules after them.
type TurnValidator struct {
	rules []Rule
}

// NewTurnValidator creates a turn validator with the built-in rule set.
func NewTurnValidator() *TurnValidator {
	v := &TurnValidator{}
	v.rules = []Rule{
		checkRequiredFields,
		checkSpeakerRequirements,
		checkFieldTypes,
		checkFieldValues,
		checkContent,
		checkToolTriplet,
		checkMetadataSchema,
		checkUnknownFields,
	}
	return v
}

// Register appends a custom rule. Rules run in registration order.
func (v *TurnValidator) Register(rule Rule) {
	v.rules = append(v.rules, rule)
}

// ValidateTurn runs every rule against one turn and returns the collected
// findings. All rules are evaluated; an earlier failure never suppresses a
// later rule, except where a field's absence or wrong type makes the later
// check inapplicable.
func (v *TurnValidator) ValidateTurn(turn map[string]any, position int, conversation []any, cfg *config.Config) ([]*dserrors.Error, []string) {
	ctx := &Context{
		Turn:         turn,
		Position:     position,
		Conversation: conversation,
		Config:       cfg,
	}

	if id, ok := integerValue(turn["turn_id"]); ok && id > 0 {
		ctx.turnID = id
	}

	for _, rule := range v.rules {
		rule(ctx)
	}

	return ctx.errors, ctx.warnings
}

// checkRequiredFields verifies presence of turn_id, speaker, and every
// configured required field.
func checkRequiredFields(c *Context) {
	checked := map[string]bool{}

	for _, field := range append([]string{"turn_id", "speaker"}, c.Config.RequiredFields...) {
		if checked[field] {
			continue
		}
		checked[field] = true

		if _, ok := c.Turn[field]; !ok {
			c.Add(&dserrors.Error{
				Type:       dserrors.ErrorTypeRequiredFieldMissing,
				Message:    fmt.Sprintf("missing required field %q", field),
				Field:      field,
				Suggestion: dserrors.SuggestMissingField(field, fieldExample(field)),
			})
		}
	}
}

// checkSpeakerRequirements enforces the speaker-conditional content fields:
// user turns need a message and assistant turns need an assistant_reply,
// unless the field is explicitly listed as optional (or already
// unconditionally required, which checkRequiredFields covers).
func checkSpeakerRequirements(c *Context) {
	speaker, ok := c.Turn["speaker"].(string)
	if !ok {
		return
	}

	var field string
	switch speaker {
	case "user":
		field = "message"
	case "assistant":
		field = "assistant_reply"
	default:
		return
	}

	if c.Config.IsOptional(field) || c.Config.IsRequired(field) {
		return
	}

	if _, present := c.Turn[field]; !present {
		c.Add(&dserrors.Error{
			Type:       dserrors.ErrorTypeRequiredFieldMissing,
			Message:    fmt.Sprintf("%s turns must include a %q field", speaker, field),
			Field:      field,
			Suggestion: dserrors.SuggestMissingField(field, fieldExample(field)),
		})
	}
}

// checkFieldTypes verifies the declared type of every known field that is
// present on the turn.
func checkFieldTypes(c *Context) {
	if v, ok := c.Turn["turn_id"]; ok {
		if _, isInt := integerValue(v); !isInt {
			c.Add(&dserrors.Error{
				Type:       dserrors.ErrorTypeInvalidFieldType,
				Message:    fmt.Sprintf("turn_id must be an integer, got %s", typeName(v)),
				Field:      "turn_id",
				Suggestion: dserrors.SuggestType("turn_id", "an integer"),
			})
		}
	}

	for _, field := range []string{"speaker", "message", "assistant_reply", "tool_used"} {
		v, ok := c.Turn[field]
		if !ok {
			continue
		}
		if _, isString := v.(string); !isString {
			c.Add(&dserrors.Error{
				Type:       dserrors.ErrorTypeInvalidFieldType,
				Message:    fmt.Sprintf("%s must be a string, got %s", field, typeName(v)),
				Field:      field,
				Suggestion: dserrors.SuggestType(field, "a string"),
			})
		}
	}

	for _, field := range []string{"tool_input", "metadata"} {
		v, ok := c.Turn[field]
		if !ok {
			continue
		}
		if !isObject(v) {
			c.Add(&dserrors.Error{
				Type:       dserrors.ErrorTypeInvalidFieldType,
				Message:    fmt.Sprintf("%s must be an object, got %s", field, typeName(v)),
				Field:      field,
				Suggestion: dserrors.SuggestType(field, "an object"),
			})
		}
	}

	if v, ok := c.Turn["confidence_score"]; ok {
		if _, isNum := numberValue(v); !isNum {
			c.Add(&dserrors.Error{
				Type:       dserrors.ErrorTypeInvalidFieldType,
				Message:    fmt.Sprintf("confidence_score must be a number, got %s", typeName(v)),
				Field:      "confidence_score",
				Suggestion: dserrors.SuggestType("confidence_score", "a number"),
			})
		}
	}
}

// checkFieldValues verifies value constraints on well-typed fields:
// positive turn_id, allowed speaker, confidence_score range.
func checkFieldValues(c *Context) {
	if v, ok := c.Turn["turn_id"]; ok {
		if id, isInt := integerValue(v); isInt && id <= 0 {
			c.Add(&dserrors.Error{
				Type:       dserrors.ErrorTypeInvalidFieldValue,
				Message:    fmt.Sprintf("turn_id must be a positive integer, got %d", id),
				Field:      "turn_id",
				Suggestion: "number turns starting at 1",
			})
		}
	}

	if speaker, ok := c.Turn["speaker"].(string); ok {
		if !c.Config.IsAllowedSpeaker(speaker) {
			c.Add(&dserrors.Error{
				Type:       dserrors.ErrorTypeInvalidFieldValue,
				Message:    fmt.Sprintf("invalid speaker %q", speaker),
				Field:      "speaker",
				Suggestion: dserrors.SuggestAllowedValues("speaker", c.Config.AllowedSpeakers),
			})
		}
	}

	if v, ok := c.Turn["confidence_score"]; ok {
		if score, isNum := numberValue(v); isNum {
			min, max := c.Config.ConfidenceRange()
			if score < min || score > max {
				c.Add(&dserrors.Error{
					Type:       dserrors.ErrorTypeInvalidFieldValue,
					Message:    fmt.Sprintf("confidence_score %g outside range [%g, %g]", score, min, max),
					Field:      "confidence_score",
					Suggestion: dserrors.SuggestRange("confidence_score", min, max),
				})
			}
		}
	}
}

// checkContent verifies message and assistant_reply content: empty strings
// when empty messages are disallowed, and character-count bounds for
// non-empty strings. Length is measured in runes, not bytes.
func checkContent(c *Context) {
	checkLength := func(field string, minLen, maxLen int) {
		v, ok := c.Turn[field]
		if !ok {
			return
		}
		s, isString := v.(string)
		if !isString {
			return // type rule already reported this
		}

		if s == "" {
			if !c.Config.AllowEmptyMessages {
				c.Add(&dserrors.Error{
					Type:       dserrors.ErrorTypeContent,
					Message:    fmt.Sprintf("%s must not be empty", field),
					Field:      field,
					Suggestion: fmt.Sprintf("provide a non-empty %s or enable allow_empty_messages", field),
				})
			}
			return
		}

		if n := utf8.RuneCountInString(s); n < minLen || n > maxLen {
			c.Add(&dserrors.Error{
				Type:       dserrors.ErrorTypeContent,
				Message:    fmt.Sprintf("%s length %d outside range [%d, %d]", field, n, minLen, maxLen),
				Field:      field,
				Suggestion: fmt.Sprintf("keep %s between %d and %d characters", field, minLen, maxLen),
			})
		}
	}

	checkLength("message", c.Config.MinMessageLength, c.Config.MaxMessageLength)
	checkLength("assistant_reply", c.Config.MinAssistantReplyLength, c.Config.MaxAssistantReplyLength)
}

// checkToolTriplet verifies the tool_used/tool_input/tool_output triplet:
// when any member is present, tool_used is always required and the other
// two are required subject to the require_tool_input/require_tool_output
// flags. A restricted allowed_tools set also constrains the tool name.
func checkToolTriplet(c *Context) {
	_, hasUsed := c.Turn["tool_used"]
	_, hasInput := c.Turn["tool_input"]
	_, hasOutput := c.Turn["tool_output"]

	if !hasUsed && !hasInput && !hasOutput {
		return
	}

	if !hasUsed {
		c.Add(&dserrors.Error{
			Type:       dserrors.ErrorTypeTool,
			Message:    "tool_input or tool_output present but tool_used is missing",
			Field:      "tool_used",
			Suggestion: dserrors.SuggestMissingField("tool_used", `"search"`),
		})
	}

	if c.Config.ToolInputRequired() && !hasInput {
		c.Add(&dserrors.Error{
			Type:       dserrors.ErrorTypeTool,
			Message:    "tool usage requires tool_input, which is missing",
			Field:      "tool_input",
			Suggestion: dserrors.SuggestMissingField("tool_input", `{"query": "..."}`),
		})
	}

	if c.Config.ToolOutputRequired() && !hasOutput {
		c.Add(&dserrors.Error{
			Type:       dserrors.ErrorTypeTool,
			Message:    "tool usage requires tool_output, which is missing",
			Field:      "tool_output",
			Suggestion: dserrors.SuggestMissingField("tool_output", `{"result": "..."}`),
		})
	}

	if name, ok := c.Turn["tool_used"].(string); ok && !c.Config.IsAllowedTool(name) {
		c.Add(&dserrors.Error{
			Type:       dserrors.ErrorTypeTool,
			Message:    fmt.Sprintf("tool %q is not in the allowed tools set", name),
			Field:      "tool_used",
			Suggestion: dserrors.SuggestAllowedValues("tool_used", c.Config.AllowedTools),
		})
	}
}

// checkUnknownFields flags, in strict mode only, field names outside the
// recognized set. Unknown fields are warnings, not errors.
func checkUnknownFields(c *Context) {
	if !c.Config.StrictMode {
		return
	}

	known := c.Config.KnownFields()

	names := make([]string, 0, len(c.Turn))
	for name := range c.Turn {
		if !known[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	knownList := make([]string, 0, len(known))
	for name := range known {
		knownList = append(knownList, name)
	}
	sort.Strings(knownList)

	for _, name := range names {
		if hint := dserrors.SuggestClosestName(name, knownList); hint != "" {
			c.Warnf("unexpected field %q (%s)", name, hint)
			continue
		}
		c.Warnf("unexpected field %q", name)
	}
}

// fieldExample returns a literal example value for a field, used in
// suggestions for missing fields.
func fieldExample(field string) string {
	switch field {
	case "turn_id":
		return "1"
	case "speaker":
		return `"user"`
	case "message":
		return `"What's the weather like today?"`
	case "assistant_reply":
		return `"I'll help you check the weather."`
	case "tool_used":
		return `"weather_api"`
	case "tool_input":
		return `{"location": "current"}`
	case "tool_output":
		return `{"temperature": "72F"}`
	case "confidence_score":
		return "0.95"
	case "metadata":
		return `{"source": "synthetic"}`
	default:
		return `"..."`
	}
}
