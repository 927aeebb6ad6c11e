package diagnosis

// Classifier is a rule-based mistake classifier.
// Returns the tag it recognises, or "" if the rule doesn't apply.
type Classifier interface {
	Name() string
	Classify(input *ClassifyInput) ErrorTag
}

// DefaultClassifiers returns classifiers in priority order.
// Tense comes first so that "goed -> went" is not mistaken for a word-form
// slip, and agreement precedes plural because both look like an -s change.
func DefaultClassifiers() []Classifier {
	return []Classifier{
		&VerbTenseClassifier{},
		&SubjectVerbClassifier{},
		&ArticleClassifier{},
		&PluralClassifier{},
		&PrepositionClassifier{},
		&GerundInfinitiveClassifier{},
		&WordFormClassifier{},
		&StructureClassifier{},
	}
}

// RunClassifiers executes rule-based classifiers in order.
// Returns the first match, or ("", "") if no rules apply.
func RunClassifiers(classifiers []Classifier, input *ClassifyInput) (ErrorTag, string) {
	for _, c := range classifiers {
		if tag := c.Classify(input); tag != "" {
			return tag, c.Name()
		}
	}
	return "", ""
}

// Categorize classifies an (incorrect, correct) pair with the default
// classifiers and attaches the matching rule. Pairs no rule recognises are
// tagged [TagGeneral].
func Categorize(incorrect, correct string) Result {
	tag, name := RunClassifiers(DefaultClassifiers(), NewClassifyInput(incorrect, correct))
	if tag == "" {
		tag, name = TagGeneral, "general"
	}
	return Result{Tag: tag, Rule: Rule(tag), ClassifierName: name}
}
