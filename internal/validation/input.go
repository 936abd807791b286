package validation

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// SanitizeSelection cleans text typed into a selection field: trims it,
// flattens control whitespace and collapses runs of spaces.
func SanitizeSelection(input string, maxLen int) string {
	input = strings.TrimSpace(input)

	// maxLen counts runes, like textinput's CharLimit.
	if runes := []rune(input); maxLen > 0 && len(runes) > maxLen {
		input = string(runes[:maxLen])
	}

	input = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(input)

	return strings.Join(strings.Fields(input), " ")
}

// MatchOption returns the option equal to input ignoring case. Exact matches
// win over case-insensitive ones.
func MatchOption(input string, options []string) (string, bool) {
	for _, o := range options {
		if o == input {
			return o, true
		}
	}
	for _, o := range options {
		if strings.EqualFold(o, input) {
			return o, true
		}
	}
	return "", false
}

// ClosestOption returns the option nearest to input by edit distance,
// ignoring case. Nothing is returned when every option is further than a
// third of the input's length (and at least 2 edits) away.
func ClosestOption(input string, options []string) (string, bool) {
	input = strings.ToLower(input)
	if input == "" {
		return "", false
	}

	limit := len(input) / 3
	if limit < 2 {
		limit = 2
	}

	best, bestDist := "", limit+1
	for _, o := range options {
		if d := levenshtein.ComputeDistance(input, strings.ToLower(o)); d < bestDist {
			best, bestDist = o, d
		}
	}
	return best, best != ""
}
