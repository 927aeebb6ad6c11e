package extract

import (
	"strings"

	"github.com/abhisek/lingodrill/internal/diagnosis"
	"github.com/abhisek/lingodrill/internal/dialogue"
	"github.com/abhisek/lingodrill/internal/textnorm"
)

// Overlap bounds for the adjacency pass. A teacher reply sharing more than
// MinOverlap and less than MaxOverlap of the student's words is taken as a
// correction of that student turn.
const (
	MinOverlap = 0.15
	MaxOverlap = 0.95

	minReplyLen = 6
	maxReplyLen = 150
)

var praiseOpeners = map[string]bool{
	"good": true, "nice": true, "great": true, "excellent": true, "perfect": true,
}

// Mistakes finds corrected student errors in utterances, returning at most
// limit records, pattern matches first.
//
// Teacher utterances are matched against the correction pattern cascade,
// using the most recent student utterance as the incorrect form when a
// pattern only names the correction. If that leaves room under limit, each
// student turn followed by a teacher turn no pattern matched is compared by
// word overlap.
func Mistakes(utterances []dialogue.Utterance, limit int) []Mistake {
	c := mistakeCollector{limit: limit, seen: make(map[string]bool)}

	var lastStudent string
	matched := make(map[int]bool)
	for i, u := range utterances {
		if c.full() {
			break
		}
		switch u.Speaker {
		case dialogue.SpeakerStudent:
			lastStudent = textnorm.Truncate(u.Text, MaxMistakeLen)
		case dialogue.SpeakerTeacher:
			context := lastStudent
			if context == "" {
				context = u.Text
			}
			corrections := FindCorrections(u.Text)
			if len(corrections) > 0 {
				matched[i] = true
			}
			for _, corr := range corrections {
				incorrect := corr.Incorrect
				if incorrect == "" {
					incorrect = lastStudent
				}
				c.add(incorrect, corr.Correct, context, SourcePattern)
			}
		}
	}

	for i := 0; i+1 < len(utterances) && !c.full(); i++ {
		s, t := utterances[i], utterances[i+1]
		if s.Speaker != dialogue.SpeakerStudent || t.Speaker != dialogue.SpeakerTeacher || matched[i+1] {
			continue
		}
		if correct, ok := adjacentCorrection(s.Text, t.Text); ok {
			c.add(s.Text, correct, s.Text, SourceAdjacency)
		}
	}
	return c.out
}

type mistakeCollector struct {
	limit int
	seen  map[string]bool
	out   []Mistake
}

func (c *mistakeCollector) full() bool { return len(c.out) >= c.limit }

// add cleans, validates, classifies and dedupes one candidate pair.
func (c *mistakeCollector) add(incorrect, correct, context string, src MistakeSource) {
	if c.full() {
		return
	}
	incorrect = textnorm.Truncate(CleanPhrase(incorrect), MaxMistakeLen)
	correct = textnorm.Truncate(CleanPhrase(correct), MaxMistakeLen)
	if incorrect == "" || correct == "" || strings.EqualFold(incorrect, correct) {
		return
	}
	key := dedupKey(incorrect, correct)
	if c.seen[key] {
		return
	}
	c.seen[key] = true

	res := diagnosis.Categorize(incorrect, correct)
	c.out = append(c.out, Mistake{
		Incorrect: incorrect,
		Correct:   correct,
		Type:      res.Tag,
		Context:   textnorm.Truncate(context, MaxMistakeLen),
		Rule:      res.Rule,
		Source:    src,
	})
}

func dedupKey(incorrect, correct string) string {
	return strings.ToLower(textnorm.Truncate(incorrect, dedupPrefix)) + "\x00" +
		strings.ToLower(textnorm.Truncate(correct, dedupPrefix))
}

// adjacentCorrection decides whether teacher reply t corrects student turn s.
// The reply as a whole must not be a question or praise, must have a sane
// length, and must overlap s within (MinOverlap, MaxOverlap). The corrected
// form is the reply sentence that overlaps s the most, so an opener such as
// "Careful!" is left out.
func adjacentCorrection(s, t string) (string, bool) {
	t = strings.TrimSpace(t)
	if len(t) < minReplyLen || len(t) > maxReplyLen || strings.HasSuffix(t, "?") {
		return "", false
	}
	if words := textnorm.LowerWords(t); len(words) == 0 || praiseOpeners[words[0]] {
		return "", false
	}

	studentWords := textnorm.WordSet(s)
	ratio := Overlap(studentWords, textnorm.WordSet(t))
	if ratio <= MinOverlap || ratio >= MaxOverlap {
		return "", false
	}

	best, bestRatio := "", -1.0
	for _, sent := range dialogue.SplitSentences(t) {
		if strings.HasSuffix(sent, "?") {
			continue
		}
		if r := Overlap(studentWords, textnorm.WordSet(sent)); r > bestRatio {
			best, bestRatio = sent, r
		}
	}
	if bestRatio <= 0 {
		return "", false
	}
	return best, true
}

// Overlap returns |a ∩ b| / |a|, or 0 when a is empty.
func Overlap(a, b map[string]struct{}) float64 {
	if len(a) == 0 {
		return 0
	}
	n := 0
	for w := range a {
		if _, ok := b[w]; ok {
			n++
		}
	}
	return float64(n) / float64(len(a))
}
