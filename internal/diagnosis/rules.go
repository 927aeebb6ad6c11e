package diagnosis

import (
	"strings"

	"github.com/antzucaro/matchr"
)

// WordFormSimilarity is the minimum Jaro-Winkler similarity for a single
// swapped word to count as a word-form slip (happy -> happiness).
const WordFormSimilarity = 0.80

// VerbTenseClassifier flags past-tense forms, over-regularised pasts
// ("goed") and tense auxiliaries that appear on only one side.
type VerbTenseClassifier struct{}

func (c *VerbTenseClassifier) Name() string { return "verb-tense" }

func (c *VerbTenseClassifier) Classify(in *ClassifyInput) ErrorTag {
	if isAgreementSwap(in) {
		return ""
	}
	if in.Changed(isPastForm) || in.Changed(isTenseAuxiliary) {
		return TagVerbTense
	}
	return ""
}

// SubjectVerbClassifier flags be/have/do agreement swaps and third-person -s
// changes on a verb that directly follows a subject pronoun.
type SubjectVerbClassifier struct{}

func (c *SubjectVerbClassifier) Name() string { return "subject-verb" }

func (c *SubjectVerbClassifier) Classify(in *ClassifyInput) ErrorTag {
	if isAgreementSwap(in) {
		return TagSubjectVerb
	}
	for _, r := range in.Removed {
		for _, a := range in.Added {
			if !isSForm(r, a) && !isSForm(a, r) {
				continue
			}
			if followsPronoun(in.IncorrectTokens, r) || followsPronoun(in.CorrectTokens, a) {
				return TagSubjectVerb
			}
		}
	}
	return ""
}

// ArticleClassifier flags an added, removed or swapped article.
type ArticleClassifier struct{}

func (c *ArticleClassifier) Name() string { return "article" }

func (c *ArticleClassifier) Classify(in *ClassifyInput) ErrorTag {
	if in.Changed(isArticle) {
		return TagArticle
	}
	return ""
}

// PluralClassifier flags singular/plural swaps, regular or irregular, and
// irregular nouns given a regular ending (childs -> children).
type PluralClassifier struct{}

func (c *PluralClassifier) Name() string { return "plural" }

func (c *PluralClassifier) Classify(in *ClassifyInput) ErrorTag {
	for _, r := range in.Removed {
		for _, a := range in.Added {
			if isSForm(r, a) || isSForm(a, r) || irregularPlurals[r] == a || irregularPlurals[a] == r {
				return TagPlural
			}
			if isRegularisedPlural(r, a) {
				return TagPlural
			}
		}
	}
	return ""
}

// PrepositionClassifier flags a missing, extra or swapped preposition such as
// "listening music" -> "listening to music". A "to" that trades places with an
// -ing form is left to [GerundInfinitiveClassifier].
type PrepositionClassifier struct{}

func (c *PrepositionClassifier) Name() string { return "preposition" }

func (c *PrepositionClassifier) Classify(in *ClassifyInput) ErrorTag {
	if in.Changed(isIngForm) {
		return ""
	}
	if in.Changed(isPreposition) {
		return TagPreposition
	}
	return ""
}

// GerundInfinitiveClassifier flags -ing versus to + verb confusion.
type GerundInfinitiveClassifier struct{}

func (c *GerundInfinitiveClassifier) Name() string { return "gerund-infinitive" }

func (c *GerundInfinitiveClassifier) Classify(in *ClassifyInput) ErrorTag {
	if !in.Changed(isIngForm) {
		return ""
	}
	if in.Changed(func(w string) bool { return w == "to" }) {
		return TagGerundInfinitive
	}
	for _, r := range in.Removed {
		for _, a := range in.Added {
			if isGerundOf(r, a) || isGerundOf(a, r) {
				return TagGerundInfinitive
			}
		}
	}
	return ""
}

// WordFormClassifier flags a single word replaced by a related form of the
// same word.
type WordFormClassifier struct{}

func (c *WordFormClassifier) Name() string { return "word-form" }

func (c *WordFormClassifier) Classify(in *ClassifyInput) ErrorTag {
	if len(in.Removed) != 1 || len(in.Added) != 1 {
		return ""
	}
	r, a := in.Removed[0], in.Added[0]
	if len(r) <= 3 || len(a) <= 3 {
		return ""
	}
	if commonPrefix(r, a) >= 4 || matchr.JaroWinkler(r, a, false) >= WordFormSimilarity {
		return TagWordForm
	}
	return ""
}

// StructureClassifier flags longer sentences that differ in more than one
// word position, which covers word-order problems.
type StructureClassifier struct{}

func (c *StructureClassifier) Name() string { return "structure" }

func (c *StructureClassifier) Classify(in *ClassifyInput) ErrorTag {
	if len(in.IncorrectTokens) < 3 || len(in.CorrectTokens) < 3 {
		return ""
	}
	if positionalDiff(in.IncorrectTokens, in.CorrectTokens) > 1 {
		return TagSentenceStructure
	}
	return ""
}

func isAgreementSwap(in *ClassifyInput) bool {
	for _, r := range in.Removed {
		for _, a := range in.Added {
			if agreementPairs[r] != nil && agreementPairs[r][a] {
				return true
			}
		}
	}
	return false
}

func isPastForm(w string) bool {
	if pastForms[w] || overRegularised[w] {
		return true
	}
	return len(w) > 4 && strings.HasSuffix(w, "ed") && !notPast[w]
}

// isRegularisedPlural reports whether wrong is the -s form of the singular
// whose irregular plural is right.
func isRegularisedPlural(wrong, right string) bool {
	for singular, plural := range irregularPlurals {
		if plural == right && isSForm(wrong, singular) {
			return true
		}
	}
	return false
}

func isTenseAuxiliary(w string) bool { return tenseAuxiliaries[w] }

func isArticle(w string) bool { return w == "a" || w == "an" || w == "the" }

func isPreposition(w string) bool { return prepositions[w] }

func isIngForm(w string) bool { return len(w) > 4 && strings.HasSuffix(w, "ing") }

// isSForm reports whether long is base with an -s, -es or -ies ending.
func isSForm(long, base string) bool {
	switch {
	case long == base+"s", long == base+"es":
		return true
	case strings.HasSuffix(base, "y") && long == base[:len(base)-1]+"ies":
		return true
	}
	return false
}

// isGerundOf reports whether g is the -ing form of base (swim -> swimming,
// make -> making, read -> reading).
func isGerundOf(g, base string) bool {
	if !strings.HasSuffix(g, "ing") || base == "" {
		return false
	}
	stem := g[:len(g)-3]
	if stem == base {
		return true
	}
	if strings.HasSuffix(base, "e") && stem == base[:len(base)-1] {
		return true
	}
	n := len(stem)
	return n > 1 && stem[n-1] == stem[n-2] && stem[:n-1] == base
}

func followsPronoun(tokens []string, word string) bool {
	for i := 1; i < len(tokens); i++ {
		if tokens[i] == word && subjectPronouns[tokens[i-1]] {
			return true
		}
	}
	return false
}

func commonPrefix(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

func positionalDiff(a, b []string) int {
	n := max(len(a), len(b))
	diff := 0
	for i := range n {
		if i >= len(a) || i >= len(b) || a[i] != b[i] {
			diff++
		}
	}
	return diff
}
