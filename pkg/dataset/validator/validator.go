package validator

import (
	"fmt"

	"turnlint-hq/turnlint/pkg/config"
	dserrors "turnlint-hq/turnlint/pkg/dataset/errors"
)

// ConversationValidator orchestrates validation of a whole conversation:
// structural checks on the document, per-turn dispatch to the turn
// validator, and the whole-conversation turn_id sequence check.
//
// Validation is exhaustive: every rule that can meaningfully run is run,
// and every finding is collected. The pass returns early only when a
// structural failure at the root (not an array, empty) makes turn-level
// checks meaningless.
type ConversationValidator struct {
	turns *TurnValidator
}

// New creates a conversation validator with the built-in turn rules.
func New() *ConversationValidator {
	return &ConversationValidator{
		turns: NewTurnValidator(),
	}
}

// Turns exposes the underlying turn validator, so callers can register
// custom rules before validating.
func (v *ConversationValidator) Turns() *TurnValidator {
	return v.turns
}

// Validate runs the full validation pass over an already-parsed value and
// returns the complete Result. Data-quality problems never surface as Go
// errors or panics; the Result is always the answer.
func (v *ConversationValidator) Validate(data any, cfg *config.Config) *dserrors.Result {
	result := dserrors.NewResult()

	turns, ok := data.([]any)
	if !ok {
		result.Add(&dserrors.Error{
			Type:       dserrors.ErrorTypeStructure,
			Message:    fmt.Sprintf("root must be an array of turn objects, got %s", typeName(data)),
			Suggestion: "wrap the turns in a top-level array",
		})
		return result.Finalize()
	}

	if len(turns) == 0 {
		result.Add(&dserrors.Error{
			Type:       dserrors.ErrorTypeStructure,
			Message:    "no turns provided",
			Suggestion: "add at least one turn object to the conversation",
		})
		return result.Finalize()
	}

	if len(turns) < cfg.MinTurns || len(turns) > cfg.MaxTurns {
		result.Add(&dserrors.Error{
			Type:    dserrors.ErrorTypeStructure,
			Message: fmt.Sprintf("conversation has %d turn(s), outside range [%d, %d]", len(turns), cfg.MinTurns, cfg.MaxTurns),
		})
		// Turn-level checks still apply; keep going.
	}

	var ids []turnID

	for i, element := range turns {
		position := i + 1

		turn, isObject := element.(map[string]any)
		if !isObject {
			result.Add(&dserrors.Error{
				Type:       dserrors.ErrorTypeStructure,
				Message:    fmt.Sprintf("turn must be an object, got %s", typeName(element)),
				Position:   position,
				Suggestion: "make each conversation turn a JSON object with key-value pairs",
			})
			continue
		}

		result.TotalTurns++

		errs, warnings := v.turns.ValidateTurn(turn, position, turns, cfg)
		result.Merge(errs, warnings)

		if id, isInt := integerValue(turn["turn_id"]); isInt {
			ids = append(ids, turnID{Position: position, ID: id})
		}
	}

	if cfg.SequenceChecked() {
		checkSequence(result, ids)
	}

	return result.Finalize()
}
