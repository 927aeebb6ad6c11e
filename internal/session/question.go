// Package session holds the state of an interactive drill over a generated
// exercise set. It has no terminal dependencies; the drill screen drives it.
package session

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/abhisek/lingodrill/internal/exercise"
)

// AnswerFormat is how the learner answers a question.
type AnswerFormat string

const (
	FormatChoice AnswerFormat = "multiple_choice"
	FormatTyped  AnswerFormat = "typed"
)

// Question is one drill prompt derived from an exercise item.
type Question struct {
	ItemID string
	Kind   exercise.Kind
	Format AnswerFormat

	Prompt  string
	Choices []string // FormatChoice only

	// Answer is what the feedback screen shows as correct.
	Answer      string
	Hint        string
	Explanation string

	check func(input string) bool
}

// Check reports whether input answers q.
func (q *Question) Check(input string) bool {
	if q.check == nil || strings.TrimSpace(input) == "" {
		return false
	}
	return q.check(input)
}

// DefaultOrder is the order kinds are drilled in: recognition first, then
// production.
var DefaultOrder = []exercise.Kind{
	exercise.KindFlashcard,
	exercise.KindFillBlank,
	exercise.KindGrammarChallenge,
	exercise.KindAdvancedCloze,
	exercise.KindSpelling,
	exercise.KindSentenceBuilder,
}

// FromSet builds questions from set, grouped by kind in the given order.
// With no kinds, DefaultOrder is used. Items that cannot be asked without
// giving the answer away are skipped.
func FromSet(set exercise.Set, kinds ...exercise.Kind) []Question {
	if len(kinds) == 0 {
		kinds = DefaultOrder
	}
	var qs []Question
	for _, k := range kinds {
		switch k {
		case exercise.KindFlashcard:
			for _, f := range set.Flashcards {
				if q, ok := flashcardQuestion(f); ok {
					qs = append(qs, q)
				}
			}
		case exercise.KindSpelling:
			for i := range set.Spelling {
				qs = append(qs, spellingQuestion(&set.Spelling[i]))
			}
		case exercise.KindFillBlank:
			for _, mc := range set.FillBlank {
				qs = append(qs, choiceQuestion(k, mc))
			}
		case exercise.KindGrammarChallenge:
			for _, mc := range set.GrammarChallenge {
				qs = append(qs, choiceQuestion(k, mc))
			}
		case exercise.KindAdvancedCloze:
			for _, c := range set.AdvancedCloze {
				qs = append(qs, clozeQuestions(c)...)
			}
		case exercise.KindSentenceBuilder:
			for i := range set.SentenceBuilder {
				qs = append(qs, builderQuestion(&set.SentenceBuilder[i]))
			}
		}
	}
	return qs
}

func flashcardQuestion(f exercise.Flashcard) (Question, bool) {
	if f.Word == "" {
		return Question{}, false
	}
	q := Question{
		ItemID: f.ID,
		Kind:   exercise.KindFlashcard,
		Format: FormatTyped,
		Answer: f.Word,
		Hint:   fmt.Sprintf("Starts with %q", f.Word[:1]),
		check:  func(in string) bool { return strings.EqualFold(strings.TrimSpace(in), f.Word) },
	}
	switch {
	case f.Translation != "":
		q.Prompt = fmt.Sprintf("Which English word means %q?", f.Translation)
		q.Explanation = f.Example
	default:
		blanked, ok := blankOut(f.Example, f.Word)
		if !ok {
			return Question{}, false
		}
		q.Prompt = "Complete the sentence:\n" + blanked
	}
	return q, true
}

func spellingQuestion(item *exercise.SpellingItem) Question {
	prompt := "Spell the word. " + item.Hint
	if blanked, ok := blankOut(item.Sentence, item.Word); ok {
		prompt += "\n" + blanked
	}
	return Question{
		ItemID: item.ID,
		Kind:   exercise.KindSpelling,
		Format: FormatTyped,
		Prompt: prompt,
		Answer: item.Word,
		Hint:   fmt.Sprintf("%d letters", len(item.Word)),
		check:  func(in string) bool { return exercise.CheckSpelling(in, item) },
	}
}

func choiceQuestion(kind exercise.Kind, mc exercise.MultipleChoice) Question {
	return Question{
		ItemID:      mc.ID,
		Kind:        kind,
		Format:      FormatChoice,
		Prompt:      mc.Sentence,
		Choices:     mc.Options,
		Answer:      mc.CorrectAnswer,
		Hint:        mc.Hint,
		Explanation: mc.Explanation,
		check:       func(in string) bool { return exercise.CheckChoice(in, mc.Options, mc.CorrectAnswer) },
	}
}

// clozeQuestions asks each blank separately, marking the blank in play.
func clozeQuestions(c exercise.ClozeItem) []Question {
	qs := make([]Question, 0, len(c.Blanks))
	for i, b := range c.Blanks {
		qs = append(qs, Question{
			ItemID:      c.ID,
			Kind:        exercise.KindAdvancedCloze,
			Format:      FormatChoice,
			Prompt:      markBlank(c.Sentence, i),
			Choices:     b.Options,
			Answer:      b.Answer,
			Explanation: c.Original,
			check:       func(in string) bool { return exercise.CheckChoice(in, b.Options, b.Answer) },
		})
	}
	return qs
}

func builderQuestion(item *exercise.BuilderItem) Question {
	q := Question{
		ItemID: item.ID,
		Kind:   exercise.KindSentenceBuilder,
		Format: FormatTyped,
		Prompt: "Put the words in order:\n" + strings.Join(item.Scrambled, "  /  "),
		Answer: exercise.JoinTokens(item.Tokens),
		check: func(in string) bool {
			return exercise.CheckOrdering(exercise.Tokenize(in), item)
		},
	}
	if len(item.Tokens) > 0 {
		q.Hint = fmt.Sprintf("Starts with %q", item.Tokens[0])
	}
	return q
}

// markBlank numbers the blanks of a cloze sentence and highlights blank n.
func markBlank(sentence string, n int) string {
	parts := strings.Split(sentence, exercise.Blank)
	var b strings.Builder
	for i, p := range parts {
		b.WriteString(p)
		if i == len(parts)-1 {
			break
		}
		if i == n {
			fmt.Fprintf(&b, "[%d: ____]", i+1)
		} else {
			fmt.Fprintf(&b, "(%d)", i+1)
		}
	}
	return b.String()
}

// blankOut replaces the first whole-word occurrence of word in sentence.
func blankOut(sentence, word string) (string, bool) {
	if sentence == "" || word == "" {
		return "", false
	}
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	loc := re.FindStringIndex(sentence)
	if loc == nil {
		return "", false
	}
	return sentence[:loc[0]] + exercise.Blank + sentence[loc[1]:], true
}
