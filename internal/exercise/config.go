package exercise

// Limits caps how many items each generator returns.
type Limits struct {
	Flashcards       int `yaml:"flashcards"`
	Spelling         int `yaml:"spelling"`
	FillBlank        int `yaml:"fill_blank"`
	GrammarChallenge int `yaml:"grammar_challenge"`
	SentenceBuilder  int `yaml:"sentence_builder"`
	AdvancedCloze    int `yaml:"advanced_cloze"`
}

// DefaultLimits returns the standard per-generator caps.
func DefaultLimits() Limits {
	return Limits{
		Flashcards:       8,
		Spelling:         8,
		FillBlank:        8,
		GrammarChallenge: 3,
		SentenceBuilder:  3,
		AdvancedCloze:    2,
	}
}

const (
	// minBuilderWords and minClozeWords are the fewest word tokens a
	// sentence needs to feed the sentence builder and the cloze generator.
	minBuilderWords = 4
	minClozeWords   = 6

	// minGrammarContext is the shortest mistake context a grammar challenge
	// accepts.
	minGrammarContext = 10

	maxExampleLen = 150
)
