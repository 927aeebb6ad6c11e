package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lingodrill/internal/textnorm"
)

func words(items []VocabularyItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Word
	}
	return out
}

func TestVocabulary_CorrectionThenContent(t *testing.T) {
	raw := "Student: I goed to the airport.\nTeacher: Not 'goed', say 'went'."
	got := Vocabulary(segment(raw), textnorm.Normalize(raw), 15)

	require.Equal(t, []string{"went", "airport"}, words(got))
	assert.Equal(t, CategoryCorrectedUsage, got[0].Category)
	assert.Equal(t, PriorityHigh, got[0].Priority)
	assert.Equal(t, CategoryContentWord, got[1].Category)
	assert.Equal(t, PriorityMedium, got[1].Priority)
	assert.Equal(t, "I goed to the airport.", got[1].Context)
}

func TestVocabulary_ExplicitList(t *testing.T) {
	raw := "Teacher: Vocabulary: airport, luggage and Passport.\nStudent: ok"
	got := Vocabulary(segment(raw), textnorm.Normalize(raw), 15)

	require.Equal(t, []string{"airport", "luggage", "passport"}, words(got))
	for _, it := range got {
		assert.Equal(t, CategoryExplicit, it.Category)
		assert.Equal(t, PriorityHigh, it.Priority)
	}
}

func TestVocabulary_ContentWordsPerSentence(t *testing.T) {
	plain := "Yesterday wonderful adventures happened everywhere around Barcelona."
	got := Vocabulary(nil, plain, 15)

	assert.Len(t, got, 3)
	assert.Equal(t, "yesterday", got[0].Word)
}

func TestVocabulary_CapAndUniqueness(t *testing.T) {
	var b strings.Builder
	for _, w := range []string{"apple", "banana", "cherry", "grape", "lemon", "mango", "melon", "olive", "peach", "pears", "plums", "guava", "kiwis", "limes", "dates", "figgy", "berry"} {
		b.WriteString("I really love " + w + " juices. ")
	}
	got := Vocabulary(nil, b.String(), 15)

	assert.Len(t, got, 15)
	seen := map[string]bool{}
	for _, it := range got {
		key := strings.ToLower(it.Word)
		assert.False(t, seen[key], "duplicate %q", it.Word)
		seen[key] = true
	}
}

func TestDedupVocabulary(t *testing.T) {
	in := []VocabularyItem{
		{Word: "Airport"},
		{Word: "airport", Priority: PriorityHigh},
		{Word: "  "},
		{Word: "Luggage", Category: CategoryExplicit, Priority: PriorityHigh},
	}
	got := DedupVocabulary(in, 15)

	require.Len(t, got, 2)
	assert.Equal(t, VocabularyItem{Word: "airport", Category: CategoryContentWord, Priority: PriorityMedium}, got[0])
	assert.Equal(t, "luggage", got[1].Word)
}
