package extract

import (
	"context"
	"log/slog"

	"github.com/abhisek/lingodrill/internal/dialogue"
	"github.com/abhisek/lingodrill/internal/observe"
)

// VocabularyAssistant is an optional collaborator that extracts vocabulary
// from a whole transcript, typically with an LLM.
type VocabularyAssistant interface {
	ExtractVocabulary(ctx context.Context, transcript string, max int) ([]VocabularyItem, error)
}

// SentenceAssistant is an optional collaborator that picks practice
// sentences from a whole transcript.
type SentenceAssistant interface {
	ExtractSentences(ctx context.Context, transcript string, max int) ([]PracticeSentence, error)
}

// Extractor runs the extractors with optional collaborators in front of the
// vocabulary and sentence passes. A collaborator result that is non-empty
// replaces the rule-based result; an error or empty result falls back to it.
// Build one with [NewExtractor]; the zero value has zero limits.
type Extractor struct {
	Limits     Limits
	Vocabulary VocabularyAssistant
	Sentences  SentenceAssistant
	Logger     *slog.Logger
	Metrics    *observe.Metrics
}

// NewExtractor returns a rule-only Extractor with default limits.
func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{Limits: DefaultLimits(), Logger: logger}
}

// ExtractVocabulary returns collaborator vocabulary when available, otherwise
// the rule-based [Vocabulary] result.
func (e *Extractor) ExtractVocabulary(ctx context.Context, utterances []dialogue.Utterance, plain string) []VocabularyItem {
	if e.Vocabulary != nil {
		items, err := e.Vocabulary.ExtractVocabulary(ctx, plain, e.Limits.Vocabulary)
		if err == nil && len(items) > 0 {
			if out := DedupVocabulary(items, e.Limits.Vocabulary); len(out) > 0 {
				return out
			}
		}
		e.fallback(ctx, "vocabulary", err)
	}
	return Vocabulary(utterances, plain, e.Limits.Vocabulary)
}

// ExtractMistakes runs [Mistakes]. No collaborator takes part.
func (e *Extractor) ExtractMistakes(_ context.Context, utterances []dialogue.Utterance) []Mistake {
	return Mistakes(utterances, e.Limits.Mistakes)
}

// ExtractSentences returns collaborator sentences verbatim (capped) when
// available, otherwise the rule-based [Sentences] result.
func (e *Extractor) ExtractSentences(ctx context.Context, plain string) []PracticeSentence {
	if e.Sentences != nil {
		out, err := e.Sentences.ExtractSentences(ctx, plain, e.Limits.Sentences)
		if err == nil && len(out) > 0 {
			if len(out) > e.Limits.Sentences {
				out = out[:e.Limits.Sentences]
			}
			return out
		}
		e.fallback(ctx, "sentences", err)
	}
	return Sentences(plain, e.Limits.Sentences)
}

func (e *Extractor) fallback(ctx context.Context, collaborator string, err error) {
	e.Metrics.RecordFallback(ctx, collaborator)
	if e.Logger == nil {
		return
	}
	if err != nil {
		e.Logger.Warn("collaborator unavailable, using rule-based extraction",
			"collaborator", collaborator, "err", err)
		return
	}
	e.Logger.Debug("collaborator returned nothing, using rule-based extraction",
		"collaborator", collaborator)
}
