package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/lingodrill/internal/extract"
	"github.com/abhisek/lingodrill/internal/llm"
	"github.com/abhisek/lingodrill/internal/textnorm"
)

// maxTranscriptRunes caps how much transcript text goes into a prompt.
const maxTranscriptRunes = 12000

const vocabularySystemPrompt = `You are an English teacher preparing review material after a one-to-one lesson.
Pick the words from the transcript that the student should practise.

Rules:
- Prefer words the teacher corrected or explained, then useful content words.
- Single English words only. No names, numbers, greetings or filler words.
- Copy the context sentence from the transcript exactly.
- Never invent words that are not in the transcript.`

// LLMVocabulary extracts vocabulary with a language model. It implements
// extract.VocabularyAssistant.
type LLMVocabulary struct {
	provider llm.Provider
	opts     Options
}

// NewVocabulary returns an LLMVocabulary backed by p.
func NewVocabulary(p llm.Provider, opts Options) *LLMVocabulary {
	return &LLMVocabulary{provider: p, opts: opts}
}

type vocabularyOutput struct {
	Words []struct {
		Word      string `json:"word"`
		Context   string `json:"context"`
		Corrected bool   `json:"corrected"`
	} `json:"words"`
}

// ExtractVocabulary asks for up to max words. Corrected words come back as
// high priority corrected usage, the rest as medium priority content words.
func (v *LLMVocabulary) ExtractVocabulary(ctx context.Context, transcript string, max int) ([]extract.VocabularyItem, error) {
	prompt := fmt.Sprintf("Return at most %d words.\n\nTranscript:\n%s", max, clip(transcript))
	req := llm.UserRequest(vocabularySystemPrompt, prompt, VocabularySchema, v.opts.MaxTokens)
	req.Temperature = v.opts.Temperature

	var raw vocabularyOutput
	if err := generate(ctx, v.provider, llm.PurposeVocabulary, req, &raw); err != nil {
		return nil, err
	}

	items := make([]extract.VocabularyItem, 0, len(raw.Words))
	for _, w := range raw.Words {
		word := strings.ToLower(strings.TrimSpace(w.Word))
		if toks := textnorm.LowerWords(word); len(toks) != 1 || toks[0] != word {
			continue
		}
		it := extract.VocabularyItem{
			Word:     word,
			Context:  strings.TrimSpace(w.Context),
			Category: extract.CategoryContentWord,
			Priority: extract.PriorityMedium,
		}
		if w.Corrected {
			it.Category, it.Priority = extract.CategoryCorrectedUsage, extract.PriorityHigh
		}
		items = append(items, it)
	}
	if len(items) == 0 {
		return nil, Unavailable(fmt.Errorf("%s: no usable words", llm.PurposeVocabulary))
	}
	return extract.DedupVocabulary(items, max), nil
}

func clip(s string) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= maxTranscriptRunes {
		return string(r)
	}
	return string(r[:maxTranscriptRunes])
}
