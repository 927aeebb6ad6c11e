package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lingodrill/internal/diagnosis"
	"github.com/abhisek/lingodrill/internal/dialogue"
	"github.com/abhisek/lingodrill/internal/textnorm"
)

func segment(raw string) []dialogue.Utterance {
	return dialogue.Segment(textnorm.NormalizeLines(raw))
}

func TestMistakes_PatternPair(t *testing.T) {
	got := Mistakes(segment("Teacher: Not 'goed', say 'went'. Student: ok"), 15)

	require.Len(t, got, 1)
	assert.Equal(t, "goed", got[0].Incorrect)
	assert.Equal(t, "went", got[0].Correct)
	assert.Equal(t, diagnosis.TagVerbTense, got[0].Type)
	assert.Equal(t, diagnosis.Rule(diagnosis.TagVerbTense), got[0].Rule)
	assert.Equal(t, SourcePattern, got[0].Source)
}

func TestMistakes_AdjacencyFallback(t *testing.T) {
	got := Mistakes(segment("Student: I eats bread. Teacher: Careful! I eat bread."), 15)

	require.Len(t, got, 1)
	assert.Equal(t, "I eats bread", got[0].Incorrect)
	assert.Equal(t, "I eat bread", got[0].Correct)
	assert.Equal(t, diagnosis.TagSubjectVerb, got[0].Type)
	assert.Equal(t, SourceAdjacency, got[0].Source)
	assert.Equal(t, "I eats bread.", got[0].Context)
}

func TestMistakes_PatternTurnNotReusedByAdjacency(t *testing.T) {
	raw := "Student: He don't like it.\nTeacher: Not \"don't\", say \"doesn't\"."
	got := Mistakes(segment(raw), 15)

	require.Len(t, got, 1)
	assert.Equal(t, "don't", got[0].Incorrect)
	assert.Equal(t, "doesn't", got[0].Correct)
	assert.Equal(t, SourcePattern, got[0].Source)
}

func TestMistakes_CorrectOnlyUsesLastStudentTurn(t *testing.T) {
	raw := "Student: Yesterday I go to the park.\nTeacher: Correction: Yesterday I went to the park."
	got := Mistakes(segment(raw), 15)

	require.NotEmpty(t, got)
	assert.Equal(t, "Yesterday I go to the park", got[0].Incorrect)
	assert.Equal(t, "Yesterday I went to the park", got[0].Correct)
	assert.Equal(t, diagnosis.TagVerbTense, got[0].Type)
}

func TestMistakes_CorrectOnlyWithoutStudentIsSkipped(t *testing.T) {
	got := Mistakes(segment("Teacher: Better: I have been there."), 15)
	assert.Empty(t, got)
}

func TestMistakes_NoLabels(t *testing.T) {
	got := Mistakes(segment("Today we talked about travel. I went to Paris last summer."), 15)
	assert.Empty(t, got)
}

func TestMistakes_AdjacencySkips(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"praise", "Student: I goed home.\nTeacher: Good, I went home too."},
		{"question", "Student: I goed home.\nTeacher: Did you go home early?"},
		{"verbatim echo", "Student: I like green tea.\nTeacher: I like green tea."},
		{"unrelated", "Student: I eats bread.\nTeacher: Let's move on now."},
		{"too short", "Student: no.\nTeacher: No."},
		{"too long", "Student: I like music.\nTeacher: I like music " + strings.Repeat("very ", 40) + "much."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, Mistakes(segment(tt.raw), 15))
		})
	}
}

func TestMistakes_DedupAndEquality(t *testing.T) {
	raw := strings.Join([]string{
		"Teacher: Not 'goed', say 'went'.",
		"Teacher: Not 'GOED', say 'WENT'.",
		"Teacher: Not 'went', say 'Went'.",
	}, "\n")
	got := Mistakes(segment(raw), 15)

	require.Len(t, got, 1)
	assert.Equal(t, "goed", got[0].Incorrect)
}

func TestMistakes_Cap(t *testing.T) {
	var lines []string
	for i := range 20 {
		lines = append(lines, fmt.Sprintf("Teacher: Not 'wrong%d', say 'right%d'.", i, i))
	}
	got := Mistakes(segment(strings.Join(lines, "\n")), 15)
	assert.Len(t, got, 15)
	assert.Equal(t, "wrong0", got[0].Incorrect)
}

func TestMistakes_LengthCap(t *testing.T) {
	long := strings.Repeat("a", 300)
	raw := "Student: " + long + "\nTeacher: Correction: I went home."
	got := Mistakes(segment(raw), 15)

	require.Len(t, got, 1)
	assert.Len(t, got[0].Incorrect, MaxMistakeLen)
	for _, m := range got {
		assert.NotEqual(t, strings.ToLower(m.Incorrect), strings.ToLower(m.Correct))
	}
}

func TestOverlap(t *testing.T) {
	a := textnorm.WordSet("I eats bread")
	b := textnorm.WordSet("Careful! I eat bread.")
	assert.InDelta(t, 2.0/3.0, Overlap(a, b), 1e-9)
	assert.Zero(t, Overlap(nil, b))
}

// Calibrates the adjacency bounds: the student turn has seven distinct
// words, so one shared word falls under MinOverlap and two clear it.
func TestMistakes_AdjacencyOverlapBounds(t *testing.T) {
	const student = "Student: we visited my grandmother last sunday morning\n"
	tests := []struct {
		name  string
		reply string
		want  bool
	}{
		{"one shared word", "Teacher: Sunday is a lovely day.", false},
		{"two shared words", "Teacher: Sunday is my favourite day.", true},
		{"every word shared", "Teacher: Yes we visited my grandmother last sunday morning too.", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mistakes(segment(student+tt.reply), 15)
			assert.Equal(t, tt.want, len(got) == 1, "mistakes = %v", got)
		})
	}
}
