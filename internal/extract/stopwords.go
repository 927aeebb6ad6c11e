package extract

// stopwords are frequent words long enough to pass the content-word length
// filter but useless as vocabulary.
var stopwords = map[string]bool{}

func init() {
	for _, w := range []string{
		"about", "above", "after", "again", "against", "almost", "along", "already",
		"also", "although", "always", "among", "another", "anyone", "anything",
		"anyway", "around", "because", "become", "before", "behind", "being",
		"below", "between", "both", "cannot", "could", "couldn't", "didn't",
		"doesn't", "doing", "during", "either", "else", "enough", "every",
		"everyone", "everything", "example", "first", "going", "gonna", "great",
		"hello", "here's", "however", "i'll", "important", "inside", "instead", "isn't",
		"just", "later", "least", "lesson", "let's", "little", "maybe", "might",
		"minute", "minutes", "never", "nothing", "often", "okay", "other",
		"others", "please", "pretty", "quite", "rather", "really", "right",
		"said", "saying", "second", "should", "shouldn't", "since", "something",
		"sometimes", "sorry", "still", "student", "students", "sure", "teacher",
		"thank", "thanks", "that's", "their", "there", "there's", "these",
		"thing", "things", "think", "those", "though", "through", "today",
		"together", "under", "until", "using", "usually", "very", "vocabulary", "wanna",
		"wasn't", "we're", "what's", "whatever", "where", "whether", "which",
		"while", "without", "won't", "words", "would", "wouldn't", "yeah", "yes",
		"you're", "yours", "yourself",
	} {
		stopwords[w] = true
	}
}
