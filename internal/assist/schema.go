package assist

import "github.com/abhisek/lingodrill/internal/llm"

// VocabularySchema constrains vocabulary extraction replies.
var VocabularySchema = &llm.Schema{
	Name:        "lesson-vocabulary",
	Description: "Words from a language lesson transcript that are worth practising",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"words": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word": map[string]any{
							"type":        "string",
							"description": "A single English word, lowercase, as used in the lesson",
						},
						"context": map[string]any{
							"type":        "string",
							"description": "The transcript sentence the word appears in",
						},
						"corrected": map[string]any{
							"type":        "boolean",
							"description": "True when the teacher corrected the student's use of this word",
						},
					},
					"required":             []any{"word", "context", "corrected"},
					"additionalProperties": false,
				},
				"description": "Most useful words first",
			},
		},
		"required":             []any{"words"},
		"additionalProperties": false,
	},
}

// SentencesSchema constrains practice sentence replies.
var SentencesSchema = &llm.Schema{
	Name:        "practice-sentences",
	Description: "Complete, grammatical sentences from a lesson transcript for reordering and cloze drills",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sentences": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":        "string",
					"description": "A sentence copied from the transcript, 4 to 20 words, ending in . ! or ?",
				},
			},
		},
		"required":             []any{"sentences"},
		"additionalProperties": false,
	},
}

// TranslationSchema constrains single-word translation replies.
var TranslationSchema = &llm.Schema{
	Name:        "word-translation",
	Description: "The translation of one English word for a language learner",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"translation": map[string]any{
				"type":        "string",
				"description": "The most common translation in a classroom context, without articles or notes",
			},
		},
		"required":             []any{"translation"},
		"additionalProperties": false,
	},
}

// EnhanceSchema constrains distractor enhancement replies.
var EnhanceSchema = &llm.Schema{
	Name:        "distractor-enhance",
	Description: "Improved multiple-choice options for fill-in-the-blank questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "string",
							"description": "The id of the question being improved",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"minItems":    4,
							"maxItems":    4,
							"description": "Exactly 4 real English words or phrases including the correct answer",
						},
					},
					"required":             []any{"id", "options"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"items"},
		"additionalProperties": false,
	},
}
