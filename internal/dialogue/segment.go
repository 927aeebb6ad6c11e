// Package dialogue splits a cleaned lesson transcript into speaker-attributed
// utterances and sentences.
package dialogue

import (
	"regexp"
	"strings"
)

// Speaker is the role attributed to an utterance.
type Speaker string

const (
	SpeakerTeacher Speaker = "teacher"
	SpeakerStudent Speaker = "student"
	SpeakerUnknown Speaker = "unknown"
)

// Utterance is one speaker turn, in transcript order.
type Utterance struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

var (
	turnLabel   = regexp.MustCompile(`(?i)^(teacher|student)\s*:\s*(.*)$`)
	inlineLabel = regexp.MustCompile(`(?i)\s+((?:teacher|student)\s*:)`)
)

// Segment splits text into utterances. Lines starting with "Teacher:" or
// "Student:" (any case) open a new turn; other lines continue the previous
// turn, or open an unknown-speaker turn when nothing precedes them. Inline
// role labels also start a new line; text that still has no line breaks is
// split at sentence boundaries instead.
//
// A transcript with no role labels degrades to a single unknown utterance.
func Segment(text string) []Utterance {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	text = inlineLabel.ReplaceAllString(text, "\n$1")
	var lines []string
	if strings.Contains(text, "\n") {
		lines = strings.Split(text, "\n")
	} else {
		lines = SplitSentences(text)
	}

	var out []Utterance
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := turnLabel.FindStringSubmatch(line); m != nil {
			out = append(out, Utterance{
				Speaker: Speaker(strings.ToLower(m[1])),
				Text:    strings.TrimSpace(m[2]),
			})
			continue
		}
		if n := len(out); n > 0 {
			out[n-1].Text = joinText(out[n-1].Text, line)
			continue
		}
		out = append(out, Utterance{Speaker: SpeakerUnknown, Text: line})
	}
	return out
}

func joinText(a, b string) string {
	if a == "" {
		return b
	}
	return a + " " + b
}

// BySpeaker returns the utterances attributed to s, preserving order.
func BySpeaker(us []Utterance, s Speaker) []Utterance {
	var out []Utterance
	for _, u := range us {
		if u.Speaker == s {
			out = append(out, u)
		}
	}
	return out
}
