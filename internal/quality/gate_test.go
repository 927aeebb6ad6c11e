package quality

import (
	"reflect"
	"testing"

	"github.com/abhisek/lingodrill/internal/exercise"
)

func validSet() *exercise.Set {
	mc := func(id, sentence, answer string, options ...string) exercise.MultipleChoice {
		return exercise.MultipleChoice{ID: id, Sentence: sentence, CorrectAnswer: answer, Options: options}
	}
	return &exercise.Set{
		Flashcards: []exercise.Flashcard{
			{ID: "f1", Word: "went", Translation: "fue", Example: "Yesterday I went to the cinema."},
			{ID: "f2", Word: "travel", Translation: "viajar", Example: "We traveled by train."},
			{ID: "f3", Word: "zebra", Translation: "cebra", Example: "I use the word 'zebra' in my English class."},
		},
		Spelling: []exercise.SpellingItem{
			{ID: "s1", Word: "went", Hint: "fue", Translation: "fue"},
			{ID: "s2", Word: "travel", Hint: "viajar", Translation: "viajar", Sentence: "I love to travel by train."},
			{ID: "s3", Word: "zebra", Hint: "cebra", Translation: "cebra"},
		},
		FillBlank: []exercise.MultipleChoice{
			mc("b1", "She ____ to school.", "goes", "goes", "go", "going", "went"),
			mc("b2", "I have ____ apple.", "an", "a", "an", "the", "some"),
		},
		GrammarChallenge: []exercise.MultipleChoice{
			mc("g1", "He ____ coffee.", "drinks", "drink", "drinks", "drinking", "drank"),
		},
		AdvancedCloze: []exercise.ClozeItem{{
			ID:       "c1",
			Sentence: "The ____ were ____ outside.",
			Blanks: []exercise.ClozeBlank{
				{Answer: "children", Options: []string{"child", "children", "childs", "kids"}},
				{Answer: "playing", Options: []string{"play", "plays", "played", "playing"}},
			},
		}},
	}
}

func validatorNames(issues []Issue) []string {
	var out []string
	for _, i := range issues {
		out = append(out, i.Validator)
	}
	return out
}

func TestGate_ValidSet(t *testing.T) {
	r := NewGate().Check(validSet())
	if !r.Passed {
		t.Fatalf("expected pass, got errors %v", r.Errors)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("unexpected warnings %v", r.Warnings)
	}
	if r.TotalItems != 10 {
		t.Errorf("TotalItems = %d, want 10", r.TotalItems)
	}
}

func TestGate_MissingBlank(t *testing.T) {
	s := validSet()
	s.FillBlank[0].Sentence = "She goes to school."
	r := NewGate().Check(s)
	if r.Passed {
		t.Fatal("expected failure")
	}
	if got := validatorNames(r.Errors); !reflect.DeepEqual(got, []string{"blank"}) {
		t.Errorf("error validators = %v", got)
	}
	if r.Errors[0].ItemID != "b1" || r.Errors[0].Kind != exercise.KindFillBlank {
		t.Errorf("issue = %+v", r.Errors[0])
	}
}

func TestGate_ClozeBlankCount(t *testing.T) {
	s := validSet()
	s.AdvancedCloze[0].Sentence = "The ____ were playing outside."
	if r := NewGate().Check(s); r.Passed {
		t.Fatal("expected failure for cloze with one blank and two answers")
	}
}

func TestCheckOptions(t *testing.T) {
	tests := []struct {
		name    string
		options []string
		answer  string
		ok      bool
	}{
		{"valid", []string{"a", "an", "the", "some"}, "an", true},
		{"three options", []string{"a", "an", "the"}, "an", false},
		{"empty option", []string{"a", "an", " ", "some"}, "an", false},
		{"case duplicate", []string{"a", "An", "an", "some"}, "an", false},
		{"answer missing", []string{"a", "the", "some", "any"}, "an", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := CheckOptions(tt.options, tt.answer)
			if (msg == "") != tt.ok {
				t.Errorf("CheckOptions() = %q, want ok=%v", msg, tt.ok)
			}
		})
	}
}

func TestGate_OptionsInCloze(t *testing.T) {
	s := validSet()
	s.AdvancedCloze[0].Blanks[1].Options = []string{"play", "plays", "played", "plays"}
	r := NewGate().Check(s)
	if got := validatorNames(r.Errors); !reflect.DeepEqual(got, []string{"options"}) {
		t.Errorf("error validators = %v", got)
	}
}

func TestGate_DuplicateWords(t *testing.T) {
	s := validSet()
	s.Spelling[2].Word = "Went"
	r := NewGate().Check(s)
	if r.Passed {
		t.Fatal("expected failure")
	}
	if r.Errors[0].Validator != "duplicate-words" || r.Errors[0].ItemID != "s3" {
		t.Errorf("issue = %+v", r.Errors[0])
	}
}

func TestGate_WarningsDoNotFail(t *testing.T) {
	s := validSet()
	s.Flashcards[0].Translation = ""
	s.Flashcards[1].Example = "Something unrelated here."
	s.Spelling[1].Sentence = "Nothing to see."
	r := NewGate().Check(s)
	if !r.Passed {
		t.Fatalf("warnings should not fail the gate: %v", r.Errors)
	}
	want := []string{"translation", "example", "example"}
	if got := validatorNames(r.Warnings); !reflect.DeepEqual(got, want) {
		t.Errorf("warning validators = %v, want %v", got, want)
	}
}

func TestGate_SyllableHintIsNotATranslation(t *testing.T) {
	s := validSet()
	s.Spelling[1].Hint = "2 syllables"
	s.Spelling[1].Translation = ""
	r := NewGate().Check(s)
	if len(r.Warnings) != 1 {
		t.Fatalf("warnings = %v, want one", r.Warnings)
	}
	w := r.Warnings[0]
	if w.Validator != "translation" || w.Kind != exercise.KindSpelling || w.ItemID != "s2" {
		t.Errorf("warning = %+v", w)
	}
}

func TestGate_VolumeBand(t *testing.T) {
	r := NewGate().Check(&exercise.Set{})
	if !r.Passed {
		t.Fatal("an empty set has no structural errors")
	}
	if got := validatorNames(r.Warnings); !reflect.DeepEqual(got, []string{"volume"}) {
		t.Errorf("warning validators = %v", got)
	}
}

func TestGate_DoesNotMutate(t *testing.T) {
	s := validSet()
	s.FillBlank[0].Options = []string{"goes", "go"}
	before := validSet()
	before.FillBlank[0].Options = []string{"goes", "go"}
	NewGate().Check(s)
	if !reflect.DeepEqual(s, before) {
		t.Error("Check modified the set")
	}
}

func TestIssueError(t *testing.T) {
	i := &Issue{Validator: "options", Kind: exercise.KindFillBlank, ItemID: "b1", Message: "bad"}
	if got := i.Error(); got != `validator "options": fill_blank b1: bad` {
		t.Errorf("Error() = %q", got)
	}
}
