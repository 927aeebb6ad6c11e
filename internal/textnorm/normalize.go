// Package textnorm cleans raw lesson transcripts into plain text.
//
// Two entry points exist. [Normalize] produces a single line of plain prose
// with speaker prefixes removed, suitable for sentence and vocabulary
// scanning. [NormalizeLines] applies the same noise filters but keeps line
// breaks and speaker labels so the dialogue segmenter can still attribute
// turns.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	webvttHeader = regexp.MustCompile(`(?m)WEBVTT[^\n]*`)
	timingLine   = regexp.MustCompile(`(?m)^[ \t]*\d{1,2}:\d{2}(?::\d{2})?[.,]\d{1,3}[ \t]*-->[ \t]*\d{1,2}:\d{2}(?::\d{2})?[.,]\d{1,3}[^\n]*$`)
	cueNumber    = regexp.MustCompile(`(?m)^[ \t]*\d+[ \t]*$`)
	bracketed    = regexp.MustCompile(`\[[^\]\n]*\]`)
	url          = regexp.MustCompile(`(?i)\b(?:https?://|www\.)\S+`)
	speakerName  = regexp.MustCompile(`(?m)^[ \t]*[\w ]{1,50}:[ \t]*`)
	roleLabel    = regexp.MustCompile(`(?i)\b(?:teacher|student)[ \t]*:[ \t]*`)
	fillerRun    = regexp.MustCompile(`(?i)\b(um|uh|erm|ah|mm)\b(?:[\s,]+(?:um|uh|erm|ah|mm)\b)+`)
	horizontalWS = regexp.MustCompile(`[ \t\f\v\r]+`)
	anyWS        = regexp.MustCompile(`\s+`)
)

// Normalize strips cue-format artifacts, bracketed annotations, URLs and
// speaker prefixes, collapses repeated filler interjections, and collapses all
// whitespace to single spaces. Empty input yields an empty string.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	s := stripNoise(raw)
	s = speakerName.ReplaceAllString(s, "")
	s = roleLabel.ReplaceAllString(s, "")
	s = anyWS.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeLines applies the noise filters of [Normalize] but preserves line
// structure and speaker labels. Blank lines are dropped and horizontal
// whitespace inside each line is collapsed.
func NormalizeLines(raw string) string {
	if raw == "" {
		return ""
	}
	s := stripNoise(raw)

	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, l := range lines {
		l = strings.TrimSpace(horizontalWS.ReplaceAllString(l, " "))
		if l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}

func stripNoise(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = webvttHeader.ReplaceAllString(s, "")
	s = timingLine.ReplaceAllString(s, "")
	s = cueNumber.ReplaceAllString(s, "")
	s = bracketed.ReplaceAllString(s, "")
	s = url.ReplaceAllString(s, "")
	s = fillerRun.ReplaceAllStringFunc(s, firstWord)
	return s
}

// firstWord keeps the leading filler of a repeated run ("um, um um" -> "um").
func firstWord(run string) string {
	if i := strings.IndexAny(run, " \t\n,"); i > 0 {
		return run[:i]
	}
	return run
}
