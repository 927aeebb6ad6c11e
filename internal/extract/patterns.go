package extract

import (
	"regexp"
	"strings"
)

// captureMode says how a correction pattern's groups map onto a pair.
type captureMode int

const (
	// capturePair: group 1 is the incorrect form, group 2 the correct one.
	capturePair captureMode = iota
	// captureReversed: group 1 is the correct form, group 2 the incorrect one.
	captureReversed
	// captureCorrectOnly: group 1 is the correct form; the incorrect form
	// comes from a "(not X)" aside or from what the student last said.
	captureCorrectOnly
)

// Correction is one teacher correction found by a pattern. Incorrect is empty
// for correct-only patterns that carried no "(not X)" aside.
type Correction struct {
	Pattern   string
	Incorrect string
	Correct   string
}

type correctionPattern struct {
	name string
	re   *regexp.Regexp
	mode captureMode
}

const (
	quoteChars = `"'‘’“”`
	// quoted captures text between any pair of quote characters. An
	// apostrophe between two letters (don't) stays inside the capture.
	quoted = `[` + quoteChars + `]((?:[^` + quoteChars + `\n]|\b['’]\b)+)[` + quoteChars + `]`
	// clause captures an unquoted correction up to the end of its sentence.
	clause = `([^.!?\n]+)`
)

// correctionPatterns are tried in order; the first pattern that matches an
// utterance supplies every correction taken from it.
var correctionPatterns = []correctionPattern{
	{"not-say", regexp.MustCompile(`(?i)\bnot\s+` + quoted + `.{0,40}?\bsay\s+` + quoted), capturePair},
	{"instead-of", regexp.MustCompile(`(?i)\binstead\s+of\s+` + quoted + `.{0,40}?\b(?:use|say)\s+` + quoted), capturePair},
	{"should-be", regexp.MustCompile(`(?i)` + quoted + `\s+should\s+be\s+` + quoted), capturePair},
	{"should-be-not", regexp.MustCompile(`(?i)\bshould\s+be\s+` + quoted + `\s*,?\s*(?:and\s+)?not\s+` + quoted), captureReversed},
	{"correction", regexp.MustCompile(`(?i)\bcorrection\s*:\s*` + clause), captureCorrectOnly},
	{"it-should-be", regexp.MustCompile(`(?i)\bit\s+should\s+be\s*:?\s+` + clause), captureCorrectOnly},
	{"better", regexp.MustCompile(`(?i)\bbetter\s*:\s*` + clause), captureCorrectOnly},
	{"careful", regexp.MustCompile(`(?i)\bcareful\s*:\s*` + clause), captureCorrectOnly},
}

// notAside recovers the incorrect form from "(not X)".
var notAside = regexp.MustCompile(`(?i)\(\s*not\s+([^)]+?)\s*\)`)

// FindCorrections runs the correction pattern cascade over one teacher
// utterance. Results are raw captures; callers clean them with CleanPhrase.
func FindCorrections(text string) []Correction {
	for _, p := range correctionPatterns {
		if out := p.match(text); len(out) > 0 {
			return out
		}
	}
	return nil
}

func (p correctionPattern) match(text string) []Correction {
	var out []Correction
	for _, m := range p.re.FindAllStringSubmatch(text, -1) {
		c := Correction{Pattern: p.name}
		switch p.mode {
		case capturePair:
			c.Incorrect, c.Correct = m[1], m[2]
		case captureReversed:
			c.Incorrect, c.Correct = m[2], m[1]
		case captureCorrectOnly:
			c.Correct = m[1]
			if a := notAside.FindStringSubmatch(c.Correct); a != nil {
				c.Incorrect = a[1]
				c.Correct = notAside.ReplaceAllString(c.Correct, "")
			}
		}
		out = append(out, c)
	}
	return out
}

var (
	spaceRun      = regexp.MustCompile(`\s+`)
	trailingPunct = regexp.MustCompile(`[\s.,!?;:]+$`)
)

// CleanPhrase strips quotes, collapses whitespace and removes trailing
// punctuation. In-word apostrophes survive.
func CleanPhrase(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case '"', '“', '”', '‘':
			return -1
		}
		return r
	}, s)
	s = spaceRun.ReplaceAllString(s, " ")
	s = strings.Trim(s, " '’")
	s = trailingPunct.ReplaceAllString(s, "")
	return strings.Trim(s, " '’")
}
