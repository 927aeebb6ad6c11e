package extract

import (
	"regexp"
	"slices"
	"strings"

	"github.com/abhisek/lingodrill/internal/dialogue"
	"github.com/abhisek/lingodrill/internal/textnorm"
)

// explicitList matches teacher call-outs such as "Vocabulary: airport,
// luggage and passport".
var explicitList = regexp.MustCompile(`(?i)\b(?:important|key|vocabulary|words?)\s*:\s*([^.!?\n]+)`)

var listSeparator = regexp.MustCompile(`\s*(?:,|;|\band\b)\s*`)

// Vocabulary collects up to limit vocabulary items in three passes:
// words from teacher corrections, explicitly listed words, and content words
// from the first sentences of plain. Earlier passes win when the same word
// appears twice.
func Vocabulary(utterances []dialogue.Utterance, plain string, limit int) []VocabularyItem {
	v := vocabCollector{limit: limit, seen: make(map[string]bool)}

	for _, u := range dialogue.BySpeaker(utterances, dialogue.SpeakerTeacher) {
		for _, c := range FindCorrections(u.Text) {
			for _, w := range textnorm.LowerWords(CleanPhrase(c.Correct)) {
				if len(w) > 2 && !stopwords[w] && !functionWords[w] {
					v.add(w, u.Text, CategoryCorrectedUsage, PriorityHigh)
				}
			}
		}
	}

	for _, u := range utterances {
		for _, m := range explicitList.FindAllStringSubmatch(u.Text, -1) {
			for _, item := range listSeparator.Split(m[1], -1) {
				w := strings.ToLower(CleanPhrase(item))
				if len(w) > 2 && len(strings.Fields(w)) <= 3 {
					v.add(w, u.Text, CategoryExplicit, PriorityHigh)
				}
			}
		}
	}

	sentences := dialogue.SplitSentences(plain)
	if len(sentences) > contentSentenceScan {
		sentences = sentences[:contentSentenceScan]
	}
	for _, s := range sentences {
		for _, w := range contentWords(s) {
			v.add(w, s, CategoryContentWord, PriorityMedium)
		}
	}
	return v.out
}

// contentWords picks up to contentWordsPerLine candidate words from one
// sentence, preferring capitalised or long words.
func contentWords(sentence string) []string {
	type cand struct {
		word      string
		preferred bool
	}
	var cands []cand
	for _, tok := range textnorm.Words(sentence) {
		w := strings.ToLower(tok)
		if len(w) <= 4 || stopwords[w] || strings.ContainsRune(w, '\'') {
			continue
		}
		titled := tok[0] >= 'A' && tok[0] <= 'Z'
		cands = append(cands, cand{word: w, preferred: titled || len(w) > 6})
	}
	slices.SortStableFunc(cands, func(a, b cand) int {
		switch {
		case a.preferred == b.preferred:
			return 0
		case a.preferred:
			return -1
		}
		return 1
	})

	var out []string
	for _, c := range cands {
		if len(out) == contentWordsPerLine {
			break
		}
		if !slices.Contains(out, c.word) {
			out = append(out, c.word)
		}
	}
	return out
}

type vocabCollector struct {
	limit int
	seen  map[string]bool
	out   []VocabularyItem
}

func (v *vocabCollector) add(word, context string, cat Category, prio Priority) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" || len(v.out) >= v.limit || v.seen[word] {
		return
	}
	v.seen[word] = true
	v.out = append(v.out, VocabularyItem{Word: word, Context: context, Category: cat, Priority: prio})
}

// DedupVocabulary lowercases words, drops empty and repeated ones, and caps
// the list at limit. Collaborator output goes through it so the uniqueness
// guarantee holds whichever path produced the list.
func DedupVocabulary(items []VocabularyItem, limit int) []VocabularyItem {
	v := vocabCollector{limit: limit, seen: make(map[string]bool)}
	for _, it := range items {
		cat, prio := it.Category, it.Priority
		if cat == "" {
			cat = CategoryContentWord
		}
		if prio == "" {
			prio = PriorityMedium
		}
		v.add(it.Word, it.Context, cat, prio)
	}
	return v.out
}

// functionWords are short grammar words that can appear in a correction but
// are not vocabulary.
var functionWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "was": true, "were": true,
	"has": true, "have": true, "had": true, "did": true, "does": true, "you": true,
	"she": true, "her": true, "his": true, "him": true, "they": true, "them": true,
	"our": true, "its": true, "not": true, "but": true, "with": true, "from": true,
	"this": true, "that": true, "than": true, "then": true, "into": true, "can": true,
	"will": true, "your": true, "my": true, "been": true, "what": true, "who": true,
}
