package exercise

import (
	"regexp"
	"slices"
	"strings"

	"github.com/abhisek/lingodrill/internal/distractor"
	"github.com/abhisek/lingodrill/internal/extract"
	"github.com/abhisek/lingodrill/internal/textnorm"
)

var tokenRe = regexp.MustCompile(`[A-Za-z0-9]+(?:'[A-Za-z]+)*|[.,!?;:]`)

// questionOpeners start sentences that read as questions.
var questionOpeners = map[string]bool{
	"what": true, "where": true, "when": true, "why": true, "how": true, "who": true,
	"which": true, "do": true, "does": true, "did": true, "is": true, "are": true,
	"can": true, "could": true, "would": true, "will": true, "should": true,
	"have": true, "has": true,
}

// Tokenize splits a sentence into word and punctuation tokens.
func Tokenize(s string) []string {
	return tokenRe.FindAllString(s, -1)
}

func isPunct(tok string) bool { return strings.ContainsAny(tok, ".,!?;:") && len(tok) == 1 }

func wordCount(tokens []string) int {
	n := 0
	for _, t := range tokens {
		if !isPunct(t) {
			n++
		}
	}
	return n
}

// hasMidCapital reports a capitalised word after the first token, which
// usually means a proper name. "I" and its contractions are allowed.
func hasMidCapital(tokens []string) bool {
	for _, t := range tokens[1:] {
		if isPunct(t) || t == "I" || strings.HasPrefix(t, "I'") {
			continue
		}
		if t[0] >= 'A' && t[0] <= 'Z' {
			return true
		}
	}
	return false
}

// JoinTokens rebuilds a sentence, attaching punctuation to the word before it.
func JoinTokens(tokens []string) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 && !isPunct(t) {
			b.WriteByte(' ')
		}
		b.WriteString(t)
	}
	return b.String()
}

// builderTokens normalises a sentence for the builder: capitalised first
// word, exactly one terminal mark, and a question mark when the sentence
// opens like a question. ok is false for sentences that cannot be used.
func builderTokens(sentence string) (tokens []string, ok bool) {
	tokens = Tokenize(sentence)
	if wordCount(tokens) < minBuilderWords || hasMidCapital(tokens) || isPunct(tokens[0]) {
		return nil, false
	}

	trailing := 0
	for i := len(tokens) - 1; i >= 0 && isPunct(tokens[i]); i-- {
		trailing++
	}
	switch {
	case trailing > 1:
		return nil, false
	case trailing == 0:
		tokens = append(tokens, ".")
	case !strings.ContainsAny(tokens[len(tokens)-1], ".!?"):
		return nil, false
	}

	tokens[0] = textnorm.Capitalize(tokens[0])
	if last := len(tokens) - 1; tokens[last] == "." && questionOpeners[strings.ToLower(tokens[0])] {
		tokens[last] = "?"
	}
	return tokens, true
}

// SentenceBuilder builds word-ordering exercises from practice sentences, up
// to the sentence builder limit.
func (g *Generator) SentenceBuilder(sentences []extract.PracticeSentence) []BuilderItem {
	var out []BuilderItem
	seen := make(map[string]bool)
	for _, p := range sentences {
		if len(out) >= g.limits.SentenceBuilder {
			break
		}
		tokens, ok := builderTokens(p.Sentence)
		if !ok {
			continue
		}
		sentence := JoinTokens(tokens)
		key := strings.ToLower(sentence)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, BuilderItem{
			ID:         g.id(KindSentenceBuilder, len(out), sentence),
			Sentence:   sentence,
			Tokens:     tokens,
			Scrambled:  g.scramble(tokens),
			Accepted:   [][]string{slices.Clone(tokens)},
			Type:       p.Type,
			Difficulty: p.Difficulty,
			Source:     SourceSentence,
		})
	}
	return out
}

// scramble returns a shuffled copy of tokens, retrying a few times so the
// learner is not shown the answer.
func (g *Generator) scramble(tokens []string) []string {
	out := slices.Clone(tokens)
	for range 5 {
		g.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		if !slices.Equal(out, tokens) {
			break
		}
	}
	return out
}

// clozeSkip are interior words too grammatical to make a good cloze gap.
var clozeSkip = map[string]bool{
	"that": true, "this": true, "with": true, "from": true, "have": true, "been": true,
	"were": true, "they": true, "them": true, "there": true, "their": true, "what": true,
	"when": true, "where": true, "which": true, "very": true, "just": true, "about": true,
	"would": true, "could": true, "should": true, "into": true, "than": true, "then": true,
	"some": true, "your": true, "will": true, "because": true,
}

// AdvancedCloze builds two-blank exercises from practice sentences with at
// least minClozeWords words and no proper names, up to the cloze limit. The
// two longest interior content words become the blanks.
func (g *Generator) AdvancedCloze(sentences []extract.PracticeSentence) []ClozeItem {
	var out []ClozeItem
	for _, p := range sentences {
		if len(out) >= g.limits.AdvancedCloze {
			break
		}
		tokens := Tokenize(p.Sentence)
		if wordCount(tokens) < minClozeWords || hasMidCapital(tokens) {
			continue
		}
		picks := clozePicks(tokens)
		if len(picks) != 2 {
			continue
		}

		blanked := slices.Clone(tokens)
		var blanks []ClozeBlank
		for _, i := range picks {
			answer := tokens[i]
			hint := distractor.HintFor(answer)
			opts := g.synth.Options(answer, hint)
			if len(opts) != distractor.OptionCount {
				break
			}
			blanks = append(blanks, ClozeBlank{Answer: answer, Options: opts, Concept: hint})
			blanked[i] = Blank
		}
		if len(blanks) != 2 {
			continue
		}
		original := JoinTokens(tokens)
		out = append(out, ClozeItem{
			ID:         g.id(KindAdvancedCloze, len(out), original),
			Sentence:   JoinTokens(blanked),
			Original:   original,
			Blanks:     blanks,
			Difficulty: p.Difficulty,
			Source:     SourceSentence,
		})
	}
	return out
}

// clozePicks returns the token indices of the two longest distinct interior
// words longer than three letters, in sentence order.
func clozePicks(tokens []string) []int {
	var words []int
	for i, t := range tokens {
		if !isPunct(t) {
			words = append(words, i)
		}
	}
	if len(words) < 3 {
		return nil
	}
	var cands []int
	for _, i := range words[1 : len(words)-1] {
		t := strings.ToLower(tokens[i])
		if len(t) > 3 && !clozeSkip[t] && !strings.ContainsRune(t, '\'') {
			cands = append(cands, i)
		}
	}
	slices.SortStableFunc(cands, func(a, b int) int { return len(tokens[b]) - len(tokens[a]) })

	var picks []int
	for _, i := range cands {
		if len(picks) == 1 && strings.EqualFold(tokens[picks[0]], tokens[i]) {
			continue
		}
		picks = append(picks, i)
		if len(picks) == 2 {
			break
		}
	}
	slices.Sort(picks)
	return picks
}
