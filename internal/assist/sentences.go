package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/lingodrill/internal/extract"
	"github.com/abhisek/lingodrill/internal/llm"
	"github.com/abhisek/lingodrill/internal/textnorm"
)

const sentencesSystemPrompt = `You are an English teacher choosing sentences from a lesson transcript for
sentence-building drills.

Rules:
- Copy sentences exactly as spoken by the teacher. Fix nothing.
- Choose complete statements with a clear verb. Avoid fragments and filler.
- Skip sentences that contain a student's mistake.`

// LLMSentences picks practice sentences with a language model. It implements
// extract.SentenceAssistant.
type LLMSentences struct {
	provider llm.Provider
	opts     Options
}

// NewSentences returns an LLMSentences backed by p.
func NewSentences(p llm.Provider, opts Options) *LLMSentences {
	return &LLMSentences{provider: p, opts: opts}
}

type sentencesOutput struct {
	Sentences []string `json:"sentences"`
}

// ExtractSentences returns up to max sentences. Replies outside the
// extractor's word-count bounds or repeated ones are dropped, and each kept
// sentence is graded the same way as the rule-based extractor grades its own.
func (s *LLMSentences) ExtractSentences(ctx context.Context, transcript string, max int) ([]extract.PracticeSentence, error) {
	prompt := fmt.Sprintf("Return at most %d sentences of %d to %d words.\n\nTranscript:\n%s",
		max, extract.MinSentenceWords, extract.MaxSentenceWords, clip(transcript))
	req := llm.UserRequest(sentencesSystemPrompt, prompt, SentencesSchema, s.opts.MaxTokens)
	req.Temperature = s.opts.Temperature

	var raw sentencesOutput
	if err := generate(ctx, s.provider, llm.PurposeSentences, req, &raw); err != nil {
		return nil, err
	}

	var out []extract.PracticeSentence
	seen := make(map[string]bool)
	for _, sent := range raw.Sentences {
		if len(out) >= max {
			break
		}
		sent = strings.TrimSpace(sent)
		words := textnorm.LowerWords(sent)
		if len(words) < extract.MinSentenceWords || len(words) > extract.MaxSentenceWords {
			continue
		}
		key := strings.ToLower(sent)
		if seen[key] {
			continue
		}
		seen[key] = true
		if !strings.ContainsAny(sent[len(sent)-1:], ".!?") {
			sent += "."
		}
		out = append(out, extract.PracticeSentence{
			Sentence:   sent,
			WordCount:  len(words),
			Difficulty: extract.DifficultyOf(words),
			Type:       extract.ClassifySentence(words),
		})
	}
	if len(out) == 0 {
		return nil, Unavailable(fmt.Errorf("%s: no usable sentences", llm.PurposeSentences))
	}
	return out, nil
}
