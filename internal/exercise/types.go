package exercise

import (
	"github.com/abhisek/lingodrill/internal/distractor"
	"github.com/abhisek/lingodrill/internal/extract"
)

// Blank marks the gap in fill-blank, grammar and cloze sentences.
const Blank = "____"

// Kind names an exercise type.
type Kind string

const (
	KindFlashcard        Kind = "flashcard"
	KindSpelling         Kind = "spelling"
	KindFillBlank        Kind = "fill_blank"
	KindGrammarChallenge Kind = "grammar_challenge"
	KindSentenceBuilder  Kind = "sentence_builder"
	KindAdvancedCloze    Kind = "advanced_cloze"
)

// DisplayName returns a human-readable name for the kind.
func (k Kind) DisplayName() string {
	switch k {
	case KindFlashcard:
		return "Flashcards"
	case KindSpelling:
		return "Spelling"
	case KindFillBlank:
		return "Fill in the blank"
	case KindGrammarChallenge:
		return "Grammar challenge"
	case KindSentenceBuilder:
		return "Sentence builder"
	case KindAdvancedCloze:
		return "Cloze passages"
	default:
		return string(k)
	}
}

// Source records where an item's content came from.
type Source string

const (
	SourceVocabulary Source = "vocabulary"
	SourceMistake    Source = "mistake"
	SourceTranscript Source = "transcript"
	SourceTemplate   Source = "template"
	SourceSentence   Source = "practice_sentence"
)

// Flashcard is a word with its translation and an example sentence.
type Flashcard struct {
	ID          string             `json:"id"`
	Word        string             `json:"word"`
	Translation string             `json:"translation"`
	Example     string             `json:"example"`
	Difficulty  extract.Difficulty `json:"difficulty"`
	Category    extract.Category   `json:"category"`
	Source      Source             `json:"source"`
}

// SpellingItem asks the learner to type a word.
type SpellingItem struct {
	ID   string `json:"id"`
	Word string `json:"word"`

	// Hint is the translation, a syllable count, or a generic prompt.
	Hint        string `json:"hint"`
	Translation string `json:"translation"`

	// Sentence is a sample sentence using the word. Empty when none was
	// found.
	Sentence   string             `json:"sentence,omitempty"`
	Difficulty extract.Difficulty `json:"difficulty"`
	Source     Source             `json:"source"`
}

// MultipleChoice is a single-blank question. Fill-blank and grammar
// challenge items share this shape.
type MultipleChoice struct {
	ID string `json:"id"`

	// Sentence contains exactly one Blank.
	Sentence string `json:"sentence"`

	// Options holds exactly four distinct choices, one of which is
	// CorrectAnswer.
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`

	Concept     distractor.Hint    `json:"concept,omitempty"`
	Hint        string             `json:"hint"`
	Explanation string             `json:"explanation"`
	Difficulty  extract.Difficulty `json:"difficulty"`
	Source      Source             `json:"source"`
}

// BuilderItem asks the learner to put scrambled tokens back in order.
type BuilderItem struct {
	ID       string `json:"id"`
	Sentence string `json:"sentence"`

	// Tokens is the canonical token order; Scrambled is what the learner
	// sees.
	Tokens    []string `json:"tokens"`
	Scrambled []string `json:"scrambled"`

	// Accepted lists every token order counted as correct. It always holds
	// Tokens.
	Accepted [][]string `json:"accepted"`

	Type       extract.SentenceType `json:"type"`
	Difficulty extract.Difficulty   `json:"difficulty"`
	Source     Source               `json:"source"`
}

// ClozeBlank is one gap of a cloze item.
type ClozeBlank struct {
	Answer  string          `json:"answer"`
	Options []string        `json:"options"`
	Concept distractor.Hint `json:"concept,omitempty"`
}

// ClozeItem is a sentence with two independent blanks, in sentence order.
type ClozeItem struct {
	ID         string             `json:"id"`
	Sentence   string             `json:"sentence"`
	Original   string             `json:"original"`
	Blanks     []ClozeBlank       `json:"blanks"`
	Difficulty extract.Difficulty `json:"difficulty"`
	Source     Source             `json:"source"`
}

// Set holds every exercise list produced by one run.
type Set struct {
	Flashcards       []Flashcard      `json:"flashcards"`
	Spelling         []SpellingItem   `json:"spelling"`
	FillBlank        []MultipleChoice `json:"fill_blank"`
	SentenceBuilder  []BuilderItem    `json:"sentence_builder"`
	GrammarChallenge []MultipleChoice `json:"grammar_challenge"`
	AdvancedCloze    []ClozeItem      `json:"advanced_cloze"`
}

// Total returns the number of items across all lists.
func (s *Set) Total() int {
	return len(s.Flashcards) + len(s.Spelling) + len(s.FillBlank) +
		len(s.SentenceBuilder) + len(s.GrammarChallenge) + len(s.AdvancedCloze)
}

// Counts returns the item count per kind.
func (s *Set) Counts() map[Kind]int {
	return map[Kind]int{
		KindFlashcard:        len(s.Flashcards),
		KindSpelling:         len(s.Spelling),
		KindFillBlank:        len(s.FillBlank),
		KindSentenceBuilder:  len(s.SentenceBuilder),
		KindGrammarChallenge: len(s.GrammarChallenge),
		KindAdvancedCloze:    len(s.AdvancedCloze),
	}
}

// NonNil replaces nil lists with empty ones so the set always encodes every
// key as a JSON array.
func (s Set) NonNil() Set {
	if s.Flashcards == nil {
		s.Flashcards = []Flashcard{}
	}
	if s.Spelling == nil {
		s.Spelling = []SpellingItem{}
	}
	if s.FillBlank == nil {
		s.FillBlank = []MultipleChoice{}
	}
	if s.SentenceBuilder == nil {
		s.SentenceBuilder = []BuilderItem{}
	}
	if s.GrammarChallenge == nil {
		s.GrammarChallenge = []MultipleChoice{}
	}
	if s.AdvancedCloze == nil {
		s.AdvancedCloze = []ClozeItem{}
	}
	return s
}
