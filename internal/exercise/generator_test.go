package exercise

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lingodrill/internal/diagnosis"
	"github.com/abhisek/lingodrill/internal/distractor"
	"github.com/abhisek/lingodrill/internal/extract"
)

type fakeTranslator struct {
	table map[string]string
	err   error
	calls map[string]int
}

func (f *fakeTranslator) Translate(_ context.Context, word string) (string, error) {
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[word]++
	if f.err != nil {
		return "", f.err
	}
	return f.table[word], nil
}

func newTestGenerator(tr Translator) *Generator {
	return NewGenerator(Options{
		Lesson:     1,
		Limits:     DefaultLimits(),
		Rand:       rand.New(rand.NewPCG(1, 2)),
		Translator: tr,
		Language:   "Spanish",
	})
}

func assertOptionSet(t *testing.T, options []string, answer string) {
	t.Helper()
	require.Len(t, options, distractor.OptionCount)
	assert.Contains(t, options, answer)
	seen := map[string]bool{}
	for _, o := range options {
		assert.NotEmpty(t, strings.TrimSpace(o))
		assert.False(t, seen[strings.ToLower(o)], "duplicate option %q in %q", o, options)
		seen[strings.ToLower(o)] = true
	}
}

func TestFlashcards(t *testing.T) {
	tr := &fakeTranslator{table: map[string]string{"went": "fue", "summer": "verano"}}
	g := newTestGenerator(tr)
	vocab := []extract.VocabularyItem{
		{Word: "went", Category: extract.CategoryCorrectedUsage},
		{Word: "Summer"},
		{Word: "summer"},
		{Word: "  "},
		{Word: "zebra"},
		{Word: "bank"},
	}
	sentences := []string{"Um we traveled last summer.", "We traveled across the country last summer."}

	got := g.Flashcards(context.Background(), vocab, sentences)

	require.Len(t, got, 4)
	assert.Equal(t, []string{"went", "summer", "zebra", "bank"}, []string{got[0].Word, got[1].Word, got[2].Word, got[3].Word})
	assert.Equal(t, "fue", got[0].Translation)
	assert.Equal(t, cleanExamples["went"], got[0].Example)
	assert.Equal(t, extract.CategoryCorrectedUsage, got[0].Category)
	assert.Equal(t, "We traveled across the country last summer.", got[1].Example)
	assert.Equal(t, "I use the word 'zebra' in my English class.", got[2].Example)
	assert.Empty(t, got[2].Translation)
	assert.Equal(t, "banco", got[3].Translation)
	assert.Zero(t, tr.calls["bank"], "override words should not reach the translator")
	for _, c := range got {
		assert.NotEmpty(t, c.ID)
	}
}

func TestFlashcardsAndSpellingTranslateOnce(t *testing.T) {
	tr := &fakeTranslator{table: map[string]string{"market": "mercado"}}
	g := newTestGenerator(tr)
	vocab := []extract.VocabularyItem{{Word: "market"}}

	g.Flashcards(context.Background(), vocab, nil)
	spelling := g.Spelling(context.Background(), vocab, nil)

	assert.Equal(t, 1, tr.calls["market"])
	require.Len(t, spelling, 1)
	assert.Equal(t, "mercado", spelling[0].Hint)
	assert.Equal(t, "mercado", spelling[0].Translation)
	assert.Equal(t, cleanExamples["market"], spelling[0].Sentence)
}

func TestTranslatorFailureLeavesTranslationEmpty(t *testing.T) {
	g := newTestGenerator(&fakeTranslator{err: errors.New("unavailable")})
	got := g.Flashcards(context.Background(), []extract.VocabularyItem{{Word: "market"}}, nil)

	require.Len(t, got, 1)
	assert.Empty(t, got[0].Translation)
}

func TestVocabularyLimits(t *testing.T) {
	var vocab []extract.VocabularyItem
	for i := range 20 {
		vocab = append(vocab, extract.VocabularyItem{Word: fmt.Sprintf("word%c", 'a'+i)})
	}
	g := newTestGenerator(nil)
	assert.Len(t, g.Flashcards(context.Background(), vocab, nil), 8)
	assert.Len(t, g.Spelling(context.Background(), vocab, nil), 8)
}

func TestSpellingHints(t *testing.T) {
	g := newTestGenerator(nil)
	got := g.Spelling(context.Background(), []extract.VocabularyItem{
		{Word: "airport"},
		{Word: "went"},
		{Word: "psst"},
	}, nil)

	require.Len(t, got, 3)
	assert.Equal(t, "2 syllables", got[0].Hint)
	assert.Equal(t, "1 syllable", got[1].Hint)
	assert.Equal(t, "Spell the word carefully.", got[2].Hint)
	assert.Empty(t, got[2].Sentence)
}

func TestSyllables(t *testing.T) {
	tests := map[string]int{
		"went":      1,
		"airport":   2,
		"make":      1,
		"table":     2,
		"beautiful": 3,
		"psst":      0,
	}
	for w, want := range tests {
		assert.Equal(t, want, Syllables(w), "Syllables(%q)", w)
	}
}

func TestWordDifficulty(t *testing.T) {
	assert.Equal(t, extract.Beginner, WordDifficulty("went"))
	assert.Equal(t, extract.Intermediate, WordDifficulty("airport"))
	assert.Equal(t, extract.Advanced, WordDifficulty("restaurant"))
}

func TestFillBlank_FromMistakes(t *testing.T) {
	g := newTestGenerator(nil)
	mistakes := []extract.Mistake{
		{Incorrect: "goed", Correct: "went", Type: diagnosis.TagVerbTense, Context: "Not 'goed', say 'went'.", Rule: "r1"},
		{Incorrect: "I eats bread", Correct: "I eat bread", Type: diagnosis.TagSubjectVerb, Context: "I eats bread."},
		{Incorrect: "I music like", Correct: "I like music", Type: diagnosis.TagSentenceStructure, Context: "I music like."},
		{Incorrect: "goed", Correct: "went", Type: diagnosis.TagVerbTense},
		{Incorrect: "a apple", Correct: "an apple", Type: diagnosis.TagArticle, Context: "I have a apple"},
	}

	got := g.FillBlank(mistakes, nil)

	require.Len(t, got, 3)
	assert.Equal(t, "Not 'goed', say '____'.", got[0].Sentence)
	assert.Equal(t, "went", got[0].CorrectAnswer)
	assert.Equal(t, distractor.HintThirdPerson, got[0].Concept)
	assert.Contains(t, got[0].Explanation, "r1")

	assert.Equal(t, "I ____ bread.", got[1].Sentence)
	assert.Equal(t, "eat", got[1].CorrectAnswer)

	assert.Equal(t, "____ apple.", got[2].Sentence)
	assert.Equal(t, "an", got[2].CorrectAnswer)
	assert.Equal(t, distractor.HintArticle, got[2].Concept)

	for _, item := range got {
		assert.Equal(t, 1, strings.Count(item.Sentence, Blank))
		assertOptionSet(t, item.Options, item.CorrectAnswer)
		assert.Equal(t, SourceMistake, item.Source)
	}
}

func TestFillBlank_PrefixWhenAnswerMissing(t *testing.T) {
	g := newTestGenerator(nil)
	got := g.FillBlank([]extract.Mistake{
		{Incorrect: "goed", Correct: "went", Type: diagnosis.TagVerbTense, Context: "I goed there"},
	}, nil)

	require.Len(t, got, 1)
	assert.Equal(t, "____ I goed there", got[0].Sentence)
}

func TestFillBlank_TranscriptSentences(t *testing.T) {
	g := newTestGenerator(nil)
	got := g.FillBlank(nil, []string{
		"Um I think so.",
		"Where is the market?",
		"We visited the market yesterday morning.",
	})

	require.Len(t, got, 1)
	assert.Equal(t, "We ____ the market yesterday morning.", got[0].Sentence)
	assert.Equal(t, "visited", got[0].CorrectAnswer)
	assert.Equal(t, SourceTranscript, got[0].Source)
	assertOptionSet(t, got[0].Options, "visited")
}

func TestFillBlank_Limit(t *testing.T) {
	var sentences []string
	for _, n := range []string{"book", "apple", "house", "car", "city", "dog", "cat", "friend", "family", "school", "lesson"} {
		sentences = append(sentences, fmt.Sprintf("We really liked the %s yesterday evening.", n))
	}
	g := newTestGenerator(nil)
	assert.LessOrEqual(t, len(g.FillBlank(nil, sentences)), DefaultLimits().FillBlank)
}

func TestGrammarChallenge(t *testing.T) {
	g := newTestGenerator(nil)
	got := g.GrammarChallenge([]extract.Mistake{
		{Incorrect: "Yesterday I go to the park", Correct: "Yesterday I went to the park", Type: diagnosis.TagVerbTense, Context: "Yesterday I went to the park"},
		{Incorrect: "I eats bread", Correct: "I eat bread", Type: diagnosis.TagSubjectVerb, Context: "I eats bread."},
		{Incorrect: "goed", Correct: "went", Type: diagnosis.TagVerbTense, Context: "went"},
	})

	require.Len(t, got, 3)
	assert.Equal(t, "Yesterday I ____ to the park", got[0].Sentence)
	assert.Equal(t, SourceMistake, got[0].Source)
	for _, item := range got[1:] {
		assert.Equal(t, SourceTemplate, item.Source)
		assert.Equal(t, distractor.HintThirdPerson, item.Concept)
	}
	for _, item := range got {
		assert.Equal(t, 1, strings.Count(item.Sentence, Blank))
		assertOptionSet(t, item.Options, item.CorrectAnswer)
	}
}

func TestGrammarChallenge_TemplatesOnly(t *testing.T) {
	got := newTestGenerator(nil).GrammarChallenge(nil)
	require.Len(t, got, 3)
	assert.NotEqual(t, got[0].Sentence, got[1].Sentence)
}

func TestSentenceBuilder(t *testing.T) {
	g := newTestGenerator(nil)
	got := g.SentenceBuilder([]extract.PracticeSentence{
		{Sentence: "The children were playing outside happily.", Type: extract.BeVerb},
		{Sentence: "Too short."},
		{Sentence: "I met Maria at the station."},
		{Sentence: "do you like the new teacher."},
		{Sentence: "Well I think so..."},
		{Sentence: "we went home early today"},
		{Sentence: "She reads books every night."},
	})

	require.Len(t, got, 3)
	assert.Equal(t, "The children were playing outside happily.", got[0].Sentence)
	assert.Equal(t, []string{"The", "children", "were", "playing", "outside", "happily", "."}, got[0].Tokens)
	assert.Equal(t, extract.BeVerb, got[0].Type)
	assert.Equal(t, "Do you like the new teacher?", got[1].Sentence)
	assert.Equal(t, "We went home early today.", got[2].Sentence)

	for _, item := range got {
		assert.Equal(t, [][]string{item.Tokens}, item.Accepted)
		scrambled := slices.Clone(item.Scrambled)
		tokens := slices.Clone(item.Tokens)
		slices.Sort(scrambled)
		slices.Sort(tokens)
		assert.Equal(t, tokens, scrambled)
		assert.GreaterOrEqual(t, wordCount(item.Tokens), 4)
	}
}

func TestAdvancedCloze(t *testing.T) {
	g := newTestGenerator(nil)
	got := g.AdvancedCloze([]extract.PracticeSentence{
		{Sentence: "I like tea very much."},
		{Sentence: "My friend Paul likes green tea a lot."},
		{Sentence: "The children were playing outside happily.", Difficulty: extract.Advanced},
	})

	require.Len(t, got, 1)
	item := got[0]
	assert.Equal(t, "The ____ were ____ outside happily.", item.Sentence)
	assert.Equal(t, "The children were playing outside happily.", item.Original)
	require.Len(t, item.Blanks, 2)
	assert.Equal(t, "children", item.Blanks[0].Answer)
	assert.Equal(t, distractor.HintPlural, item.Blanks[0].Concept)
	assert.Equal(t, "playing", item.Blanks[1].Answer)
	assert.Equal(t, distractor.HintVerbForms, item.Blanks[1].Concept)
	for _, b := range item.Blanks {
		assertOptionSet(t, b.Options, b.Answer)
	}
	assert.Equal(t, extract.Advanced, item.Difficulty)
}

func TestGeneratorDeterministic(t *testing.T) {
	mistakes := []extract.Mistake{
		{Incorrect: "I eats bread", Correct: "I eat bread", Type: diagnosis.TagSubjectVerb, Context: "I eats bread."},
	}
	a := newTestGenerator(nil)
	b := newTestGenerator(nil)
	assert.Equal(t, a.FillBlank(mistakes, nil), b.FillBlank(mistakes, nil))
	assert.Equal(t, a.GrammarChallenge(mistakes), b.GrammarChallenge(mistakes))
}

func TestNewID(t *testing.T) {
	a := NewID(KindFlashcard, 1, 0, "went")
	assert.Equal(t, a, NewID(KindFlashcard, 1, 0, "went"))
	assert.NotEqual(t, a, NewID(KindFlashcard, 1, 1, "went"))
	assert.NotEqual(t, a, NewID(KindSpelling, 1, 0, "went"))
	assert.NotEqual(t, a, NewID(KindFlashcard, 2, 0, "went"))
}
