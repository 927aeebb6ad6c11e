package quality

import (
	"fmt"
	"strings"

	"github.com/abhisek/lingodrill/internal/distractor"
	"github.com/abhisek/lingodrill/internal/exercise"
)

// BlankValidator checks that every single-blank question has exactly one
// blank and that cloze sentences have one blank per answer.
type BlankValidator struct{}

func (v *BlankValidator) Name() string { return "blank" }

func (v *BlankValidator) Validate(set *exercise.Set) []Issue {
	var out []Issue
	check := func(kind exercise.Kind, items []exercise.MultipleChoice) {
		for _, q := range items {
			if n := strings.Count(q.Sentence, exercise.Blank); n != 1 {
				out = append(out, v.issue(kind, q.ID, fmt.Sprintf("sentence has %d blanks, want 1", n)))
			}
		}
	}
	check(exercise.KindFillBlank, set.FillBlank)
	check(exercise.KindGrammarChallenge, set.GrammarChallenge)
	for _, c := range set.AdvancedCloze {
		if n := strings.Count(c.Sentence, exercise.Blank); n != len(c.Blanks) || n == 0 {
			out = append(out, v.issue(exercise.KindAdvancedCloze, c.ID,
				fmt.Sprintf("sentence has %d blanks for %d answers", n, len(c.Blanks))))
		}
	}
	return out
}

func (v *BlankValidator) issue(kind exercise.Kind, id, msg string) Issue {
	return Issue{Validator: v.Name(), Severity: SeverityError, Kind: kind, ItemID: id, Message: msg}
}

// OptionsValidator checks the option invariant on every multiple-choice
// question and cloze blank: four non-empty options, pairwise distinct
// ignoring case, one of them the answer.
type OptionsValidator struct{}

func (v *OptionsValidator) Name() string { return "options" }

func (v *OptionsValidator) Validate(set *exercise.Set) []Issue {
	var out []Issue
	add := func(kind exercise.Kind, id string, options []string, answer string) {
		if msg := CheckOptions(options, answer); msg != "" {
			out = append(out, Issue{Validator: v.Name(), Severity: SeverityError, Kind: kind, ItemID: id, Message: msg})
		}
	}
	for _, q := range set.FillBlank {
		add(exercise.KindFillBlank, q.ID, q.Options, q.CorrectAnswer)
	}
	for _, q := range set.GrammarChallenge {
		add(exercise.KindGrammarChallenge, q.ID, q.Options, q.CorrectAnswer)
	}
	for _, c := range set.AdvancedCloze {
		for _, b := range c.Blanks {
			add(exercise.KindAdvancedCloze, c.ID, b.Options, b.Answer)
		}
	}
	return out
}

// CheckOptions returns a description of the first rule a multiple-choice
// option list violates, or "" when the list is valid.
func CheckOptions(options []string, answer string) string {
	if len(options) != distractor.OptionCount {
		return fmt.Sprintf("has %d options, want %d", len(options), distractor.OptionCount)
	}
	seen := make(map[string]bool, len(options))
	found := false
	for _, o := range options {
		key := strings.ToLower(strings.TrimSpace(o))
		if key == "" {
			return "has an empty option"
		}
		if seen[key] {
			return fmt.Sprintf("duplicate option %q", o)
		}
		seen[key] = true
		if o == answer {
			found = true
		}
	}
	if !found {
		return fmt.Sprintf("correct answer %q not among options", answer)
	}
	return ""
}

// DuplicateWordValidator checks that flashcards and spelling items each
// cover distinct words.
type DuplicateWordValidator struct{}

func (v *DuplicateWordValidator) Name() string { return "duplicate-words" }

func (v *DuplicateWordValidator) Validate(set *exercise.Set) []Issue {
	var out []Issue
	seen := make(map[string]bool)
	for _, c := range set.Flashcards {
		w := strings.ToLower(c.Word)
		if seen[w] {
			out = append(out, v.issue(exercise.KindFlashcard, c.ID, w))
		}
		seen[w] = true
	}
	clear(seen)
	for _, s := range set.Spelling {
		w := strings.ToLower(s.Word)
		if seen[w] {
			out = append(out, v.issue(exercise.KindSpelling, s.ID, w))
		}
		seen[w] = true
	}
	return out
}

func (v *DuplicateWordValidator) issue(kind exercise.Kind, id, word string) Issue {
	return Issue{Validator: v.Name(), Severity: SeverityError, Kind: kind, ItemID: id,
		Message: fmt.Sprintf("word %q appears more than once", word)}
}

// TranslationValidator warns about flashcards and spelling items without a
// translation. A syllable hint does not count.
type TranslationValidator struct{}

func (v *TranslationValidator) Name() string { return "translation" }

func (v *TranslationValidator) Validate(set *exercise.Set) []Issue {
	var out []Issue
	for _, c := range set.Flashcards {
		if strings.TrimSpace(c.Translation) == "" {
			out = append(out, Issue{Validator: v.Name(), Severity: SeverityWarning,
				Kind: exercise.KindFlashcard, ItemID: c.ID, Message: fmt.Sprintf("no translation for %q", c.Word)})
		}
	}
	for _, s := range set.Spelling {
		if strings.TrimSpace(s.Translation) == "" {
			out = append(out, Issue{Validator: v.Name(), Severity: SeverityWarning,
				Kind: exercise.KindSpelling, ItemID: s.ID, Message: fmt.Sprintf("no translation for %q", s.Word)})
		}
	}
	return out
}

// ExampleValidator warns when a flashcard example, or a spelling sentence
// that is present, does not contain its word.
type ExampleValidator struct{}

func (v *ExampleValidator) Name() string { return "example" }

func (v *ExampleValidator) Validate(set *exercise.Set) []Issue {
	var out []Issue
	for _, c := range set.Flashcards {
		if !containsWord(c.Example, c.Word) {
			out = append(out, Issue{Validator: v.Name(), Severity: SeverityWarning,
				Kind: exercise.KindFlashcard, ItemID: c.ID, Message: fmt.Sprintf("example does not use %q", c.Word)})
		}
	}
	for _, s := range set.Spelling {
		if s.Sentence != "" && !containsWord(s.Sentence, s.Word) {
			out = append(out, Issue{Validator: v.Name(), Severity: SeverityWarning,
				Kind: exercise.KindSpelling, ItemID: s.ID, Message: fmt.Sprintf("sentence does not use %q", s.Word)})
		}
	}
	return out
}

// containsWord matches word as a prefix of a token so inflections such as
// "traveled" count for "travel".
func containsWord(sentence, word string) bool {
	word = strings.ToLower(word)
	if word == "" {
		return false
	}
	for _, tok := range strings.FieldsFunc(strings.ToLower(sentence), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r == '\'')
	}) {
		if strings.HasPrefix(strings.Trim(tok, "'"), word) {
			return true
		}
	}
	return false
}

// VolumeValidator warns when the set size leaves the advisory band.
type VolumeValidator struct {
	Min, Max int
}

func (v *VolumeValidator) Name() string { return "volume" }

func (v *VolumeValidator) Validate(set *exercise.Set) []Issue {
	n := set.Total()
	if n >= v.Min && n <= v.Max {
		return nil
	}
	return []Issue{{Validator: v.Name(), Severity: SeverityWarning,
		Message: fmt.Sprintf("%d items, outside the advised range %d-%d", n, v.Min, v.Max)}}
}
