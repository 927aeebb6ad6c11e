package exercise

import (
	"slices"
	"strconv"
	"strings"
)

// CheckChoice compares the learner's input against a multiple-choice item.
// The input may be the option text (case-insensitive, trimmed) or its
// 1-based index.
func CheckChoice(input string, options []string, correct string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}
	if idx, err := strconv.Atoi(input); err == nil && idx >= 1 && idx <= len(options) {
		return strings.EqualFold(strings.TrimSpace(options[idx-1]), strings.TrimSpace(correct))
	}
	return strings.EqualFold(input, strings.TrimSpace(correct))
}

// CheckSpelling reports whether input spells word. Case and surrounding
// whitespace are ignored; letters are not.
func CheckSpelling(input string, item *SpellingItem) bool {
	input = strings.TrimSpace(input)
	return input != "" && strings.EqualFold(input, item.Word)
}

// CheckOrdering reports whether tokens match one of the item's accepted
// orderings. Word tokens compare case-insensitively.
func CheckOrdering(tokens []string, item *BuilderItem) bool {
	for _, accepted := range item.Accepted {
		if slices.EqualFunc(tokens, accepted, strings.EqualFold) {
			return true
		}
	}
	return false
}

// CheckCloze returns, per blank, whether the matching input is correct.
// Missing inputs count as wrong.
func CheckCloze(inputs []string, item *ClozeItem) []bool {
	out := make([]bool, len(item.Blanks))
	for i, b := range item.Blanks {
		if i < len(inputs) {
			out[i] = CheckChoice(inputs[i], b.Options, b.Answer)
		}
	}
	return out
}
