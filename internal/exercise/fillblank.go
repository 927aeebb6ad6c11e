package exercise

import (
	"fmt"
	"strings"

	"github.com/abhisek/lingodrill/internal/distractor"
	"github.com/abhisek/lingodrill/internal/extract"
	"github.com/abhisek/lingodrill/internal/textnorm"
)

// FillBlank builds single-blank questions, first from mistakes and then, if
// still under the fill-blank limit, by blanking a known content word in clean
// transcript sentences. Mistakes that yield no usable question are skipped.
func (g *Generator) FillBlank(mistakes []extract.Mistake, sentences []string) []MultipleChoice {
	b := mcBuilder{g: g, kind: KindFillBlank, limit: g.limits.FillBlank, seen: make(map[string]bool)}

	for _, m := range mistakes {
		if b.full() {
			break
		}
		target := answerToken(m)
		if target == "" {
			continue
		}
		sentence, ok := blankWord(m.Context, target)
		if !ok && len(strings.Fields(m.Correct)) > 1 {
			sentence, ok = blankWord(asSentence(m.Correct), target)
		}
		if !ok {
			if strings.TrimSpace(m.Context) == "" {
				continue
			}
			sentence = Blank + " " + strings.TrimSpace(m.Context)
		}
		b.add(sentence, target, ConceptFor(m.Type), mistakeExplanation(m), SourceMistake)
	}

	for _, s := range sentences {
		if b.full() {
			break
		}
		if !isCleanSentence(s) {
			continue
		}
		words := textnorm.Words(s)
		for _, w := range words[1:] {
			if !distractor.IsContentWord(w) {
				continue
			}
			if blanked, ok := blankWord(s, w); ok {
				b.add(blanked, w, distractor.HintFor(w), "The original sentence: "+s, SourceTranscript)
			}
			break
		}
	}
	return b.out
}

func mistakeExplanation(m extract.Mistake) string {
	return fmt.Sprintf("%s Say %q, not %q.", m.Rule, m.Correct, m.Incorrect)
}

// mcBuilder accumulates multiple-choice items, dropping duplicate sentences
// and targets the synthesizer cannot serve.
type mcBuilder struct {
	g     *Generator
	kind  Kind
	limit int
	seen  map[string]bool
	out   []MultipleChoice
}

func (b *mcBuilder) full() bool { return len(b.out) >= b.limit }

func (b *mcBuilder) add(sentence, answer string, concept distractor.Hint, explanation string, src Source) {
	key := strings.ToLower(sentence)
	if b.full() || b.seen[key] || strings.Count(sentence, Blank) != 1 {
		return
	}
	options := b.g.synth.Options(answer, concept)
	if len(options) != distractor.OptionCount {
		return
	}
	b.seen[key] = true
	b.out = append(b.out, MultipleChoice{
		ID:            b.g.id(b.kind, len(b.out), sentence+"|"+answer),
		Sentence:      sentence,
		Options:       options,
		CorrectAnswer: answer,
		Concept:       concept,
		Hint:          conceptHints[concept],
		Explanation:   explanation,
		Difficulty:    sentenceDifficulty(sentence),
		Source:        src,
	})
}
