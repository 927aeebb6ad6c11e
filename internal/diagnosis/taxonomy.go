package diagnosis

// rules maps every tag to the human-readable rule shown with a mistake.
var rules = map[ErrorTag]string{
	TagVerbTense:         "Use the correct verb tense. Past actions need the past form (go -> went, eat -> ate).",
	TagSubjectVerb:       "The verb must agree with the subject: he/she/it takes -s in the present simple (she goes, they go).",
	TagArticle:           "Use 'a' before consonant sounds, 'an' before vowel sounds, and 'the' for specific things.",
	TagPlural:            "Use the plural form for more than one (one book, two books; one child, two children).",
	TagPreposition:       "Some verbs need a preposition before their object (listen to music, wait for the bus).",
	TagGerundInfinitive:  "Some verbs take -ing and others take to + verb (enjoy swimming, want to swim).",
	TagWordForm:          "Use the right form of the word for its job in the sentence (happy -> happiness, beauty -> beautiful).",
	TagSentenceStructure: "Check the word order: subject + verb + object (I like music, not I music like).",
	TagGeneral:           "Compare your sentence with the corrected version and notice what changed.",
}

// Rule returns the rule text for tag, falling back to the general rule for
// unknown tags.
func Rule(tag ErrorTag) string {
	if r, ok := rules[tag]; ok {
		return r
	}
	return rules[TagGeneral]
}

// AllTags returns every tag in classification priority order, ending with
// the general fallback.
func AllTags() []ErrorTag {
	return []ErrorTag{
		TagVerbTense,
		TagSubjectVerb,
		TagArticle,
		TagPlural,
		TagPreposition,
		TagGerundInfinitive,
		TagWordForm,
		TagSentenceStructure,
		TagGeneral,
	}
}
