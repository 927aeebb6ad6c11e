package exercise

import (
	"regexp"
	"strings"

	"github.com/abhisek/lingodrill/internal/diagnosis"
	"github.com/abhisek/lingodrill/internal/distractor"
	"github.com/abhisek/lingodrill/internal/extract"
	"github.com/abhisek/lingodrill/internal/textnorm"
)

// conceptHints are the learner-facing hints shown for each concept.
var conceptHints = map[distractor.Hint]string{
	distractor.HintThirdPerson: "Check the verb form for this subject.",
	distractor.HintVerbForms:   "Which form of the verb fits the time?",
	distractor.HintArticle:     "a, an, the, or nothing?",
	distractor.HintPreposition: "Which small linking word fits?",
	distractor.HintPlural:      "One, or more than one?",
	distractor.HintNone:        "Read the whole sentence before choosing.",
}

// ConceptFor maps a grammar-error tag to the hint used for its distractors.
func ConceptFor(tag diagnosis.ErrorTag) distractor.Hint {
	switch tag {
	case diagnosis.TagVerbTense, diagnosis.TagSubjectVerb:
		return distractor.HintThirdPerson
	case diagnosis.TagArticle:
		return distractor.HintArticle
	case diagnosis.TagPreposition:
		return distractor.HintPreposition
	case diagnosis.TagPlural:
		return distractor.HintPlural
	}
	return distractor.HintNone
}

// answerToken picks the word a mistake exercise asks for: the first word of
// the correction that the student did not use, as written in the correction.
// Returns "" when the correction only reorders words.
func answerToken(m extract.Mistake) string {
	in := diagnosis.NewClassifyInput(m.Incorrect, m.Correct)
	if len(in.Added) == 0 {
		return ""
	}
	for _, w := range textnorm.Words(m.Correct) {
		if strings.EqualFold(w, in.Added[0]) {
			return w
		}
	}
	return ""
}

// blankWord replaces the first whole-word, case-insensitive occurrence of
// word in sentence with Blank.
func blankWord(sentence, word string) (string, bool) {
	if sentence == "" || word == "" {
		return "", false
	}
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	loc := re.FindStringIndex(sentence)
	if loc == nil {
		return "", false
	}
	return sentence[:loc[0]] + Blank + sentence[loc[1]:], true
}

// asSentence capitalises s and gives it terminal punctuation.
func asSentence(s string) string {
	s = textnorm.Capitalize(strings.TrimSpace(s))
	if s != "" && !strings.ContainsAny(s[len(s)-1:], ".!?") {
		s += "."
	}
	return s
}

func sentenceDifficulty(s string) extract.Difficulty {
	return extract.DifficultyOf(textnorm.LowerWords(strings.ReplaceAll(s, Blank, "")))
}
