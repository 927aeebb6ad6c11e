// Package assist holds the LLM-backed collaborators the pipeline can consult:
// vocabulary and sentence extraction, word translation and distractor
// enhancement. Every collaborator reports failure as [ErrUnavailable] so
// callers can fall back to the rule-based path.
package assist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/lingodrill/internal/llm"
)

// ErrUnavailable reports that a collaborator produced nothing usable.
var ErrUnavailable = errors.New("assistant unavailable")

// Unavailable wraps err so that errors.Is(err, ErrUnavailable) holds while
// the provider failure stays reachable through errors.As. A nil err stays nil.
func Unavailable(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUnavailable) {
		return err
	}
	return &unavailableError{cause: err}
}

type unavailableError struct {
	cause error
}

func (e *unavailableError) Error() string {
	return fmt.Sprintf("%s: %v", ErrUnavailable, e.cause)
}

func (e *unavailableError) Unwrap() []error {
	return []error{ErrUnavailable, e.cause}
}

// Options configures the LLM collaborators.
type Options struct {
	// Language is the learner's language used for translations.
	Language string

	MaxTokens   int
	Temperature float64
}

// DefaultOptions returns Spanish translations with a modest token budget.
func DefaultOptions() Options {
	return Options{Language: "Spanish", MaxTokens: 2048}
}

// generate sends one schema-bound request and decodes the reply into out.
func generate(ctx context.Context, p llm.Provider, purpose string, req llm.Request, out any) error {
	if p == nil {
		return Unavailable(errors.New("no provider configured"))
	}
	ctx = llm.WithPurpose(ctx, purpose)
	resp, err := p.Generate(ctx, req)
	if err != nil {
		return Unavailable(fmt.Errorf("%s: %w", purpose, err))
	}
	if err := json.Unmarshal(resp.Content, out); err != nil {
		return Unavailable(fmt.Errorf("%s: failed to parse LLM response: %w", purpose, err))
	}
	return nil
}
