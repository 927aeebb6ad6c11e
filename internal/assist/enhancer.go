package assist

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/lingodrill/internal/exercise"
	"github.com/abhisek/lingodrill/internal/llm"
	"github.com/abhisek/lingodrill/internal/quality"
)

const enhanceSystemPrompt = `You improve the wrong options of English grammar quizzes.

Rules:
- Return exactly 4 options per question, one of them the correct answer unchanged.
- Wrong options must be real English words or phrases a learner could plausibly confuse
  with the answer: other tenses, agreement forms, articles, prepositions or plurals.
- Never invent words. Never make a wrong option also correct.`

// Enhancer rewrites the options of an exercise set. Implementations return
// the input set unchanged together with an error when they cannot help.
type Enhancer interface {
	Enhance(ctx context.Context, set exercise.Set) (exercise.Set, error)
}

// LLMEnhancer asks a language model for better distractors.
type LLMEnhancer struct {
	provider llm.Provider
	opts     Options
}

// NewEnhancer returns an LLMEnhancer backed by p.
func NewEnhancer(p llm.Provider, opts Options) *LLMEnhancer {
	return &LLMEnhancer{provider: p, opts: opts}
}

type enhanceOutput struct {
	Items []struct {
		ID      string   `json:"id"`
		Options []string `json:"options"`
	} `json:"items"`
}

// question is one option list offered for enhancement.
type question struct {
	id       string
	sentence string
	answer   string
	options  []string
}

// Enhance replaces the options of fill-blank, grammar and cloze questions.
// A replacement is applied only if it passes [quality.CheckOptions] against
// the item's correct answer; every other item keeps its options. The input
// set is never modified.
func (e *LLMEnhancer) Enhance(ctx context.Context, set exercise.Set) (exercise.Set, error) {
	qs := collectQuestions(&set)
	if len(qs) == 0 {
		return set, nil
	}

	req := llm.UserRequest(enhanceSystemPrompt, enhancePrompt(qs), EnhanceSchema, e.opts.MaxTokens)
	req.Temperature = e.opts.Temperature

	var raw enhanceOutput
	if err := generate(ctx, e.provider, llm.PurposeEnhance, req, &raw); err != nil {
		return set, err
	}

	answers := make(map[string]string, len(qs))
	for _, q := range qs {
		answers[q.id] = q.answer
	}
	replacements := make(map[string][]string)
	for _, it := range raw.Items {
		answer, ok := answers[it.ID]
		if !ok || quality.CheckOptions(it.Options, answer) != "" {
			continue
		}
		replacements[it.ID] = it.Options
	}
	return applyReplacements(set, replacements), nil
}

func collectQuestions(set *exercise.Set) []question {
	var qs []question
	for _, list := range [][]exercise.MultipleChoice{set.FillBlank, set.GrammarChallenge} {
		for _, mc := range list {
			qs = append(qs, question{mc.ID, mc.Sentence, mc.CorrectAnswer, mc.Options})
		}
	}
	for _, c := range set.AdvancedCloze {
		for i, b := range c.Blanks {
			qs = append(qs, question{clozeQuestionID(c.ID, i), c.Sentence, b.Answer, b.Options})
		}
	}
	return qs
}

func clozeQuestionID(itemID string, blank int) string {
	return fmt.Sprintf("%s/%d", itemID, blank+1)
}

func enhancePrompt(qs []question) string {
	var b strings.Builder
	b.WriteString("Improve the options of these questions. Keep each id.\n")
	for _, q := range qs {
		fmt.Fprintf(&b, "\nid: %s\nsentence: %s\ncorrect answer: %s\ncurrent options: %s\n",
			q.id, q.sentence, q.answer, strings.Join(q.options, " | "))
	}
	return b.String()
}

// applyReplacements returns a copy of set with the replaced option lists.
// Untouched lists share their backing arrays with set.
func applyReplacements(set exercise.Set, repl map[string][]string) exercise.Set {
	if len(repl) == 0 {
		return set
	}
	replaceMC := func(list []exercise.MultipleChoice) []exercise.MultipleChoice {
		out := slices.Clone(list)
		for i := range out {
			if opts, ok := repl[out[i].ID]; ok {
				out[i].Options = slices.Clone(opts)
			}
		}
		return out
	}
	set.FillBlank = replaceMC(set.FillBlank)
	set.GrammarChallenge = replaceMC(set.GrammarChallenge)

	cloze := slices.Clone(set.AdvancedCloze)
	for i := range cloze {
		blanks := slices.Clone(cloze[i].Blanks)
		for j := range blanks {
			if opts, ok := repl[clozeQuestionID(cloze[i].ID, j)]; ok {
				blanks[j].Options = slices.Clone(opts)
			}
		}
		cloze[i].Blanks = blanks
	}
	set.AdvancedCloze = cloze
	return set
}
