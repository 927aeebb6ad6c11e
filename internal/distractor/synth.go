// Package distractor builds multiple-choice option sets from closed lists of
// real English words. It never invents word forms: every distractor comes
// from a word table or a fixed closed-class list.
package distractor

import (
	"math/rand/v2"
	"strings"

	"github.com/abhisek/lingodrill/internal/textnorm"
)

// Hint steers distractors toward a grammar concept.
type Hint string

const (
	HintNone        Hint = ""
	HintThirdPerson Hint = "third_person"
	HintVerbForms   Hint = "verb_forms"
	HintArticle     Hint = "article"
	HintPreposition Hint = "preposition"
	HintPlural      Hint = "plural"
)

// OptionCount is the size of every option set.
const OptionCount = 4

// defaultSample is how many candidates the default branch draws.
const defaultSample = 5

// Synthesizer produces option sets. It owns its random source, so give each
// concurrent pipeline run its own Synthesizer.
type Synthesizer struct {
	rng *rand.Rand
}

// New returns a Synthesizer drawing from rng.
func New(rng *rand.Rand) *Synthesizer {
	return &Synthesizer{rng: rng}
}

// NewSeeded returns a Synthesizer with a PCG source seeded from seed.
func NewSeeded(seed uint64) *Synthesizer {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Options returns exactly [OptionCount] distinct (case-insensitively)
// non-empty strings, one of which is target. It returns nil for an empty
// target.
func (s *Synthesizer) Options(target string, hint Hint) []string {
	target = strings.TrimSpace(target)
	if target == "" {
		return nil
	}
	lower := strings.ToLower(target)

	var cands []string
	switch {
	case hint == HintArticle:
		cands = articleCandidates(target)
	case hint == HintPreposition:
		cands = s.prepositionCandidates(lower)
	case hint == HintVerbForms:
		cands = s.verbFormCandidates(lower)
	case hint == HintPlural:
		cands = s.pluralCandidates(lower)
	case hint == HintThirdPerson, hint == HintNone && endsInSingleS(lower) && !isPluralNoun(lower):
		cands = s.thirdPersonCandidates(lower)
	}
	if len(cands) < OptionCount-1 {
		cands = append(cands, s.defaultCandidates(lower)...)
	}
	if isCapitalized(target) && !strings.Contains(target, " ") {
		for i, c := range cands {
			cands[i] = textnorm.Capitalize(c)
		}
	}
	return s.finalize(target, cands)
}

// finalize dedupes, puts target first, truncates or pads to OptionCount and
// shuffles.
func (s *Synthesizer) finalize(target string, cands []string) []string {
	out := []string{target}
	seen := map[string]bool{strings.ToLower(target): true}
	add := func(w string) {
		w = strings.TrimSpace(w)
		k := strings.ToLower(w)
		if w == "" || seen[k] || len(out) >= OptionCount {
			return
		}
		seen[k] = true
		out = append(out, w)
	}
	for _, c := range cands {
		add(c)
	}
	for _, p := range padWords {
		add(p)
	}

	s.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if !containsFold(out, target) {
		out[0] = target
	}
	return out
}

func (s *Synthesizer) thirdPersonCandidates(target string) []string {
	base := strings.TrimSuffix(target, "s")
	var out []string
	if ref, ok := verbIndex[target]; ok {
		v := verbs[ref.idx]
		base = v.base
		out = append(out, v.base)
	}
	if len(base) < 2 {
		return out
	}
	prefix := base[:2]

	var similar []string
	for _, v := range verbs {
		if v.third != target && strings.HasPrefix(v.base, prefix) {
			similar = append(similar, v.third)
		}
	}
	if len(similar) < 3 {
		var wide []string
		for _, v := range verbs {
			if v.third != target && abs(len(v.third)-len(target)) <= 2 {
				wide = append(wide, v.third)
			}
		}
		similar = append(similar, s.sample(wide, defaultSample)...)
	}
	return append(out, similar...)
}

func (s *Synthesizer) verbFormCandidates(target string) []string {
	if ref, ok := verbIndex[target]; ok {
		var out []string
		for _, f := range verbs[ref.idx].all() {
			if f != target {
				out = append(out, f)
			}
		}
		return out
	}
	var out []string
	if len(target) >= 2 {
		for _, v := range verbs {
			if v.base != target && strings.HasPrefix(v.base, target[:2]) {
				out = append(out, v.base)
			}
		}
	}
	if len(out) < 3 {
		var pool []string
		for _, v := range verbs {
			if v.base != target {
				pool = append(pool, v.base)
			}
		}
		out = append(out, s.sample(pool, defaultSample)...)
	}
	return out
}

// articleCandidates offers the same noun phrase under each article and bare.
func articleCandidates(target string) []string {
	fields := strings.Fields(target)
	if len(fields) == 1 {
		if isArticle(strings.ToLower(fields[0])) {
			return append(append([]string{}, articles...), "some")
		}
		return []string{"a " + target, "an " + target, "the " + target}
	}
	noun := target
	if isArticle(strings.ToLower(fields[0])) {
		noun = strings.Join(fields[1:], " ")
	}
	return []string{"a " + noun, "an " + noun, "the " + noun, noun}
}

func (s *Synthesizer) prepositionCandidates(target string) []string {
	var pool []string
	for _, p := range Prepositions {
		if p != target {
			pool = append(pool, p)
		}
	}
	return s.sample(pool, len(pool))
}

// pluralCandidates offers the other number of the same noun, then nouns of
// the same number.
func (s *Synthesizer) pluralCandidates(target string) []string {
	ref, ok := nounIndex[target]
	if !ok {
		return nil
	}
	n := nouns[ref.idx]
	out := []string{n.singular, n.plural}

	var pool []string
	for i, o := range nouns {
		if i == ref.idx {
			continue
		}
		w := o.singular
		if ref.plural {
			w = o.plural
		}
		if w[0] == target[0] || abs(len(w)-len(target)) <= 1 {
			pool = append(pool, w)
		}
	}
	return append(out, s.sample(pool, 2)...)
}

// defaultCandidates draws words of a similar shape from the list the target
// belongs to, or from all lists when the target is unknown.
func (s *Synthesizer) defaultCandidates(target string) []string {
	pool := partOfSpeechPool(target)
	var matches []string
	for _, w := range pool {
		if w == target {
			continue
		}
		if abs(len(w)-len(target)) <= 1 || w[0] == target[0] {
			matches = append(matches, w)
		}
	}
	if len(matches) < OptionCount-1 {
		matches = matches[:0]
		for _, w := range pool {
			if w != target {
				matches = append(matches, w)
			}
		}
	}
	return s.sample(matches, defaultSample)
}

func partOfSpeechPool(target string) []string {
	if adjIndex[target] {
		return adjectives
	}
	if ref, ok := nounIndex[target]; ok {
		pool := make([]string, 0, len(nouns))
		for _, n := range nouns {
			if ref.plural {
				pool = append(pool, n.plural)
			} else {
				pool = append(pool, n.singular)
			}
		}
		return pool
	}
	var pool []string
	if ref, ok := verbIndex[target]; ok {
		for _, v := range verbs {
			pool = append(pool, v.slot(ref.slot))
		}
		return pool
	}
	for _, n := range nouns {
		pool = append(pool, n.singular)
	}
	for _, v := range verbs {
		pool = append(pool, v.base)
	}
	return append(pool, adjectives...)
}

// sample returns up to k elements of pool in random order.
func (s *Synthesizer) sample(pool []string, k int) []string {
	if len(pool) == 0 || k <= 0 {
		return nil
	}
	out := make([]string, 0, min(k, len(pool)))
	for _, i := range s.rng.Perm(len(pool)) {
		if len(out) == k {
			break
		}
		out = append(out, pool[i])
	}
	return out
}

func isPluralNoun(w string) bool {
	ref, ok := nounIndex[w]
	return ok && ref.plural
}

func endsInSingleS(w string) bool {
	return len(w) > 2 && strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss")
}

func isArticle(w string) bool { return w == "a" || w == "an" || w == "the" }

func isCapitalized(w string) bool { return w != "" && w[0] >= 'A' && w[0] <= 'Z' }

func containsFold(list []string, w string) bool {
	for _, x := range list {
		if strings.EqualFold(x, w) {
			return true
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
