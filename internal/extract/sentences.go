package extract

import (
	"strings"

	"github.com/abhisek/lingodrill/internal/dialogue"
	"github.com/abhisek/lingodrill/internal/textnorm"
)

var (
	beVerbs    = set("am", "is", "are", "was", "were", "be", "been", "being")
	haveVerbs  = set("have", "has", "had")
	modalVerbs = set("can", "could", "will", "would", "should", "may", "might", "must", "shall")
	doVerbs    = set("do", "does", "did")
)

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// Sentences selects up to limit practice sentences from plain transcript
// text. Candidates are split on periods and must have MinSentenceWords to
// MaxSentenceWords words, a verb signal, no question mark and at least two
// words longer than four letters. Duplicates are dropped case-insensitively.
func Sentences(plain string, limit int) []PracticeSentence {
	var out []PracticeSentence
	seen := make(map[string]bool)
	for _, cand := range dialogue.SplitOnPeriods(plain) {
		if len(out) >= limit {
			break
		}
		words := textnorm.LowerWords(cand)
		if len(words) < MinSentenceWords || len(words) > MaxSentenceWords {
			continue
		}
		key := strings.ToLower(cand)
		if seen[key] {
			continue
		}
		seen[key] = true
		if strings.Contains(cand, "?") || !hasVerbSignal(words) || countLonger(words, 4) < 2 {
			continue
		}
		out = append(out, PracticeSentence{
			Sentence:   cand + ".",
			WordCount:  len(words),
			Difficulty: DifficultyOf(words),
			Type:       ClassifySentence(words),
		})
	}
	return out
}

func hasVerbSignal(words []string) bool {
	for _, w := range words {
		if beVerbs[w] || haveVerbs[w] || modalVerbs[w] || doVerbs[w] {
			return true
		}
		if len(w) > 2 && (strings.HasSuffix(w, "ed") || strings.HasSuffix(w, "ing") || strings.HasSuffix(w, "s")) {
			return true
		}
	}
	return false
}

func countLonger(words []string, n int) int {
	c := 0
	for _, w := range words {
		if len(w) > n {
			c++
		}
	}
	return c
}

// DifficultyOf grades words by average word length.
func DifficultyOf(words []string) Difficulty {
	if len(words) == 0 {
		return Beginner
	}
	total := 0
	for _, w := range words {
		total += len(w)
	}
	avg := float64(total) / float64(len(words))
	switch {
	case avg < 4:
		return Beginner
	case avg < 6:
		return Intermediate
	}
	return Advanced
}

// ClassifySentence reports the verb pattern of a lowercase token list.
func ClassifySentence(words []string) SentenceType {
	for _, class := range []struct {
		verbs map[string]bool
		typ   SentenceType
	}{
		{beVerbs, BeVerb},
		{haveVerbs, HaveVerb},
		{modalVerbs, ModalVerb},
	} {
		for _, w := range words {
			if class.verbs[w] {
				return class.typ
			}
		}
	}
	return ActionVerb
}
