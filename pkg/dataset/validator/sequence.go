package validator

import (
	"fmt"

	dserrors "turnlint-hq/turnlint/pkg/dataset/errors"
)

// turnID pairs a readable turn_id with the 1-based position it appeared at.
// Only turns whose turn_id was present and integral participate in the
// sequence check.
type turnID struct {
	Position int
	ID       int
}

// checkSequence validates turn_id uniqueness and ordering across the whole
// conversation: every id must be unique, and the ids must form a
// consecutive run starting at 1 in list order.
//
// Each duplicate yields one sequence error naming both colliding positions.
// The consecutiveness scan runs only when no duplicates were found, and
// reports a single error at the first point of divergence; a duplicate
// already breaks the run, and reporting the divergence too would count the
// same defect twice.
func checkSequence(result *dserrors.Result, ids []turnID) {
	firstAt := make(map[int]int, len(ids))
	duplicates := false

	for _, t := range ids {
		first, seen := firstAt[t.ID]
		if !seen {
			firstAt[t.ID] = t.Position
			continue
		}

		duplicates = true
		result.Add(&dserrors.Error{
			Type:       dserrors.ErrorTypeSequence,
			Message:    fmt.Sprintf("duplicate turn_id %d at positions %d and %d", t.ID, first, t.Position),
			Position:   t.Position,
			TurnID:     t.ID,
			Field:      "turn_id",
			Suggestion: "renumber turns so every turn_id is unique",
		})
	}

	if duplicates {
		return
	}

	expected := 1
	for _, t := range ids {
		if t.ID != expected {
			result.Add(&dserrors.Error{
				Type:       dserrors.ErrorTypeSequence,
				Message:    fmt.Sprintf("expected turn_id %d, got %d", expected, t.ID),
				Position:   t.Position,
				TurnID:     t.ID,
				Field:      "turn_id",
				Suggestion: "renumber turns so turn_ids form a consecutive run starting at 1",
			})
			return
		}
		expected++
	}
}
