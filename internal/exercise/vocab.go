package exercise

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/lingodrill/internal/extract"
)

// Flashcards builds one card per distinct vocabulary word, up to the
// flashcard limit. sentences are transcript sentences searched for examples.
func (g *Generator) Flashcards(ctx context.Context, vocab []extract.VocabularyItem, sentences []string) []Flashcard {
	var out []Flashcard
	seen := make(map[string]bool)
	for _, item := range vocab {
		if len(out) >= g.limits.Flashcards {
			break
		}
		word := strings.ToLower(strings.TrimSpace(item.Word))
		if word == "" || seen[word] {
			continue
		}
		seen[word] = true
		out = append(out, Flashcard{
			ID:          g.id(KindFlashcard, len(out), word),
			Word:        word,
			Translation: g.tr.lookup(ctx, word),
			Example:     resolveExample(word, withContext(item.Context, sentences)),
			Difficulty:  WordDifficulty(word),
			Category:    item.Category,
			Source:      SourceVocabulary,
		})
	}
	return out
}

// Spelling builds one spelling drill per distinct vocabulary word, up to the
// spelling limit.
func (g *Generator) Spelling(ctx context.Context, vocab []extract.VocabularyItem, sentences []string) []SpellingItem {
	var out []SpellingItem
	seen := make(map[string]bool)
	for _, item := range vocab {
		if len(out) >= g.limits.Spelling {
			break
		}
		word := strings.ToLower(strings.TrimSpace(item.Word))
		if word == "" || seen[word] {
			continue
		}
		seen[word] = true
		translation := g.tr.lookup(ctx, word)
		out = append(out, SpellingItem{
			ID:          g.id(KindSpelling, len(out), word),
			Word:        word,
			Hint:        spellingHint(word, translation),
			Translation: translation,
			Sentence:    sampleSentence(word, withContext(item.Context, sentences)),
			Difficulty:  WordDifficulty(word),
			Source:      SourceVocabulary,
		})
	}
	return out
}

// withContext puts the sentence a word was extracted from ahead of the other
// transcript sentences.
func withContext(source string, sentences []string) []string {
	if source == "" {
		return sentences
	}
	return append([]string{source}, sentences...)
}

func spellingHint(word, translation string) string {
	if translation != "" {
		return translation
	}
	switch n := Syllables(word); n {
	case 0:
		return "Spell the word carefully."
	case 1:
		return "1 syllable"
	default:
		return fmt.Sprintf("%d syllables", n)
	}
}

// Syllables estimates syllables by counting vowel groups, discounting a
// silent final e.
func Syllables(word string) int {
	word = strings.ToLower(word)
	n := 0
	inVowel := false
	for _, r := range word {
		v := strings.ContainsRune("aeiouy", r)
		if v && !inVowel {
			n++
		}
		inVowel = v
	}
	if n > 1 && strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") {
		n--
	}
	return n
}

// WordDifficulty grades a single word by length.
func WordDifficulty(word string) extract.Difficulty {
	switch n := len(word); {
	case n <= 4:
		return extract.Beginner
	case n <= 7:
		return extract.Intermediate
	}
	return extract.Advanced
}
