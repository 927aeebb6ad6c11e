package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/lingodrill/internal/llm"
)

// LLMTranslator translates single words with a language model. It implements
// exercise.Translator. The generators consult their sense-override table
// before calling it.
type LLMTranslator struct {
	provider llm.Provider
	opts     Options
}

// NewTranslator returns an LLMTranslator backed by p. An empty
// opts.Language means Spanish.
func NewTranslator(p llm.Provider, opts Options) *LLMTranslator {
	if opts.Language == "" {
		opts.Language = DefaultOptions().Language
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 256
	}
	return &LLMTranslator{provider: p, opts: opts}
}

type translationOutput struct {
	Translation string `json:"translation"`
}

// Translate returns the translation of word, or ErrUnavailable.
func (t *LLMTranslator) Translate(ctx context.Context, word string) (string, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return "", Unavailable(fmt.Errorf("%s: empty word", llm.PurposeTranslation))
	}
	system := fmt.Sprintf("You translate English words for %s-speaking language learners. "+
		"Reply with the single most common translation as used in everyday conversation.", t.opts.Language)
	prompt := fmt.Sprintf("Translate into %s: %s", t.opts.Language, word)
	req := llm.UserRequest(system, prompt, TranslationSchema, t.opts.MaxTokens)

	var raw translationOutput
	if err := generate(ctx, t.provider, llm.PurposeTranslation, req, &raw); err != nil {
		return "", err
	}
	out := strings.TrimSpace(raw.Translation)
	if out == "" {
		return "", Unavailable(fmt.Errorf("%s: empty translation for %q", llm.PurposeTranslation, word))
	}
	return out, nil
}
