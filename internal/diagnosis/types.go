package diagnosis

import "github.com/abhisek/lingodrill/internal/textnorm"

// ErrorTag classifies a student mistake into the grammar-error taxonomy.
type ErrorTag string

const (
	TagVerbTense         ErrorTag = "grammar_verb_tense"
	TagSubjectVerb       ErrorTag = "grammar_subject_verb_agreement"
	TagArticle           ErrorTag = "grammar_article"
	TagPlural            ErrorTag = "grammar_plural"
	TagPreposition       ErrorTag = "grammar_preposition"
	TagGerundInfinitive  ErrorTag = "grammar_gerund_infinitive"
	TagWordForm          ErrorTag = "vocabulary_word_form"
	TagSentenceStructure ErrorTag = "grammar_sentence_structure"
	TagGeneral           ErrorTag = "grammar_general"
)

// ClassifyInput holds a tokenised (incorrect, correct) pair. Build it with
// [NewClassifyInput] so the token diff is computed once for every classifier.
type ClassifyInput struct {
	Incorrect string
	Correct   string

	IncorrectTokens []string // lowercase word tokens
	CorrectTokens   []string

	// Removed are tokens of Incorrect absent from Correct; Added the reverse.
	Removed []string
	Added   []string
}

// NewClassifyInput tokenises the pair and computes the token diff.
func NewClassifyInput(incorrect, correct string) *ClassifyInput {
	in := &ClassifyInput{
		Incorrect:       incorrect,
		Correct:         correct,
		IncorrectTokens: textnorm.LowerWords(incorrect),
		CorrectTokens:   textnorm.LowerWords(correct),
	}
	in.Removed = difference(in.IncorrectTokens, in.CorrectTokens)
	in.Added = difference(in.CorrectTokens, in.IncorrectTokens)
	return in
}

// Changed reports whether any added or removed token satisfies pred.
func (in *ClassifyInput) Changed(pred func(string) bool) bool {
	for _, w := range in.Removed {
		if pred(w) {
			return true
		}
	}
	for _, w := range in.Added {
		if pred(w) {
			return true
		}
	}
	return false
}

// Result is the output of classifying a mistake.
type Result struct {
	Tag            ErrorTag
	Rule           string
	ClassifierName string
}

func difference(a, b []string) []string {
	set := make(map[string]struct{}, len(b))
	for _, w := range b {
		set[w] = struct{}{}
	}
	var out []string
	for _, w := range a {
		if _, ok := set[w]; !ok {
			out = append(out, w)
		}
	}
	return out
}
