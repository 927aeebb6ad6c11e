package textnorm

import (
	"regexp"
	"strings"
)

var wordRe = regexp.MustCompile(`[A-Za-z]+(?:'[A-Za-z]+)?`)

// Words returns the alphabetic word tokens of s in their original case.
// Contractions such as "don't" stay a single token.
func Words(s string) []string {
	return wordRe.FindAllString(s, -1)
}

// LowerWords returns the word tokens of s lowercased.
func LowerWords(s string) []string {
	ws := Words(s)
	for i, w := range ws {
		ws[i] = strings.ToLower(w)
	}
	return ws
}

// WordSet returns the distinct lowercase word tokens of s.
func WordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range LowerWords(s) {
		set[w] = struct{}{}
	}
	return set
}

// Truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !isRuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func isRuneStart(b byte) bool { return b&0xC0 != 0x80 }

// Capitalize upper-cases the first ASCII letter of s.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	if c := s[0]; c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}
