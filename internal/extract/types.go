// Package extract finds vocabulary, student mistakes and practice sentences
// in a segmented lesson transcript.
package extract

import "github.com/abhisek/lingodrill/internal/diagnosis"

// Category records which extraction pass produced a vocabulary item.
type Category string

const (
	CategoryCorrectedUsage Category = "corrected_usage"
	CategoryExplicit       Category = "explicit_vocabulary"
	CategoryContentWord    Category = "content_word"
)

// Priority ranks vocabulary items. High items always precede medium ones.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)

// VocabularyItem is a word worth practising.
type VocabularyItem struct {
	// Word is lowercase and unique (case-insensitively) within a list.
	Word string `json:"word"`

	// Context is the sentence or utterance the word was found in.
	Context string `json:"context"`

	Category Category `json:"category"`
	Priority Priority `json:"priority"`
}

// MistakeSource records how a mistake was found.
type MistakeSource string

const (
	SourcePattern   MistakeSource = "pattern"
	SourceAdjacency MistakeSource = "adjacency"
)

// Mistake is a corrected student error.
type Mistake struct {
	// Incorrect is what the student said. Never empty, at most MaxMistakeLen bytes.
	Incorrect string `json:"incorrect"`

	// Correct is the teacher's corrected form. Never equal to Incorrect
	// under case-insensitive comparison.
	Correct string `json:"correct"`

	Type diagnosis.ErrorTag `json:"type"`

	// Context is the student turn the correction responds to, or the
	// teacher's line when no student turn precedes it.
	Context string `json:"context"`

	// Rule is the human-readable rule for Type.
	Rule string `json:"rule"`

	Source MistakeSource `json:"source"`
}

// Difficulty is a coarse level shared by sentences and exercise items.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// SentenceType is the verb pattern a practice sentence is built around.
type SentenceType string

const (
	BeVerb     SentenceType = "be_verb"
	HaveVerb   SentenceType = "have_verb"
	ModalVerb  SentenceType = "modal_verb"
	ActionVerb SentenceType = "action_verb"
)

// PracticeSentence is a transcript sentence suitable for sentence-level
// exercises.
type PracticeSentence struct {
	Sentence   string       `json:"sentence"`
	WordCount  int          `json:"word_count"`
	Difficulty Difficulty   `json:"difficulty"`
	Type       SentenceType `json:"type"`
}

// Limits bound the size of each extractor's output.
type Limits struct {
	Vocabulary int `yaml:"vocabulary"`
	Mistakes   int `yaml:"mistakes"`
	Sentences  int `yaml:"sentences"`
}

// DefaultLimits returns the standard extractor caps.
func DefaultLimits() Limits {
	return Limits{Vocabulary: 15, Mistakes: 15, Sentences: 15}
}

const (
	// MaxMistakeLen caps the incorrect and correct text of a mistake and the
	// remembered student context.
	MaxMistakeLen = 200

	// dedupPrefix is how much of each side of a mistake is compared when
	// detecting duplicates.
	dedupPrefix = 60

	MinSentenceWords = 4
	MaxSentenceWords = 20

	// contentSentenceScan is how many leading sentences the content-word
	// pass looks at.
	contentSentenceScan = 20
	contentWordsPerLine = 3
)
