package errors

import (
	"fmt"
	"strings"
)

// SuggestMissingField returns a suggestion for adding an absent field.
func SuggestMissingField(field, example string) string {
	return fmt.Sprintf("add a %q field, e.g. %s", field, example)
}

// SuggestAllowedValues returns a suggestion listing the accepted values for
// a field. Long sets are truncated to keep report lines readable.
func SuggestAllowedValues(field string, allowed []string) string {
	if len(allowed) == 0 {
		return ""
	}
	if len(allowed) > 5 {
		return fmt.Sprintf("allowed values for %s include: %s, ...", field, strings.Join(allowed[:5], ", "))
	}
	return fmt.Sprintf("allowed values for %s: %s", field, strings.Join(allowed, ", "))
}

// SuggestType returns a suggestion for correcting a field's type.
func SuggestType(field, want string) string {
	return fmt.Sprintf("change %s to %s", field, want)
}

// SuggestRange returns a suggestion for bringing a numeric field into range.
func SuggestRange(field string, min, max float64) string {
	return fmt.Sprintf("use a value between %g and %g for %s", min, max, field)
}

// SuggestClosestName suggests the nearest known field name for an unknown
// one, using Levenshtein distance. Returns "" when nothing is close.
func SuggestClosestName(unknown string, known []string) string {
	best := ""
	bestDist := 5 // only suggest reasonably close matches

	for _, name := range known {
		if d := levenshteinDistance(unknown, name); d < bestDist {
			bestDist = d
			best = name
		}
	}

	if best == "" {
		return ""
	}
	return fmt.Sprintf("did you mean %q?", best)
}

// levenshteinDistance computes the edit distance between two strings.
func levenshteinDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
