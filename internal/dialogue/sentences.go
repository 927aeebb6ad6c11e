package dialogue

import "strings"

// SplitSentences splits text after each run of terminal punctuation
// (. ! ?) that is followed by whitespace. Punctuation stays attached to the
// sentence it ends. Empty pieces are dropped.
func SplitSentences(text string) []string {
	var out []string
	start := 0
	for i := 0; i < len(text); i++ {
		if !isTerminal(text[i]) {
			continue
		}
		j := i
		for j+1 < len(text) && isTerminal(text[j+1]) {
			j++
		}
		if j+1 < len(text) && !isSpace(text[j+1]) {
			i = j
			continue
		}
		if s := strings.TrimSpace(text[start : j+1]); s != "" {
			out = append(out, s)
		}
		start = j + 1
		i = j
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		out = append(out, s)
	}
	return out
}

// SplitOnPeriods splits text on '.' only, trimming each piece. It mirrors the
// coarse split used for practice-sentence selection, where '!' and '?' stay
// inside candidates so questions can be recognised and rejected.
func SplitOnPeriods(text string) []string {
	var out []string
	for _, p := range strings.Split(text, ".") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isTerminal(b byte) bool { return b == '.' || b == '!' || b == '?' }

func isSpace(b byte) bool { return b == ' ' || b == '\n' || b == '\t' || b == '\r' }
