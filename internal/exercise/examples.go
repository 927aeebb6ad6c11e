package exercise

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/abhisek/lingodrill/internal/textnorm"
)

// inflectionSimilarity is the Jaro-Winkler score above which a transcript
// token counts as an inflection of a vocabulary word (travel -> traveled).
const inflectionSimilarity = 0.9

// cleanExamples are hand-written example sentences for frequent lesson words.
var cleanExamples = map[string]string{
	"airport":    "We arrived at the airport two hours early.",
	"apple":      "She eats an apple every morning.",
	"beautiful":  "The view from the hill is beautiful.",
	"breakfast":  "I usually have breakfast at seven.",
	"brother":    "My brother lives in another city.",
	"children":   "The children are playing in the park.",
	"delicious":  "This soup is delicious.",
	"doctor":     "You should see a doctor about that cough.",
	"expensive":  "That restaurant is too expensive for me.",
	"family":     "My family eats dinner together on Sundays.",
	"friend":     "My best friend lives next door.",
	"holiday":    "We went to the beach on holiday.",
	"homework":   "I finish my homework before dinner.",
	"kitchen":    "Dad is cooking in the kitchen.",
	"language":   "English is a useful language to learn.",
	"luggage":    "Please keep your luggage with you.",
	"market":     "We buy fresh fruit at the market.",
	"morning":    "I drink coffee every morning.",
	"passport":   "Don't forget your passport at home.",
	"restaurant": "We had lunch at a small restaurant.",
	"school":     "My sister walks to school.",
	"teacher":    "Our teacher explains grammar very clearly.",
	"ticket":     "I bought a train ticket online.",
	"travel":     "I love to travel by train.",
	"weather":    "The weather is sunny today.",
	"weekend":    "We visit our grandparents at the weekend.",
	"went":       "Yesterday I went to the cinema.",
	"yesterday":  "I called my mother yesterday.",
}

var (
	fillerWord = regexp.MustCompile(`(?i)\b(?:um|uh|erm|ah|mm|hmm)\b`)
	noisyChars = regexp.MustCompile(`[0-9:;"\[\]()/@#]`)
)

// fallbackExample is used when no cleaner example exists.
func fallbackExample(word string) string {
	return fmt.Sprintf("I use the word '%s' in my English class.", word)
}

// resolveExample picks an example for word: a hand-written one, then a clean
// transcript sentence using the word, then the generic fallback.
func resolveExample(word string, sentences []string) string {
	if ex, ok := cleanExamples[strings.ToLower(word)]; ok {
		return ex
	}
	if ex := transcriptExample(word, sentences); ex != "" {
		return ex
	}
	return fallbackExample(word)
}

// transcriptExample returns the first clean sentence that uses word or an
// inflection of it, or "".
func transcriptExample(word string, sentences []string) string {
	for _, s := range sentences {
		if isCleanSentence(s) && mentions(s, word) {
			return s
		}
	}
	return ""
}

// sampleSentence is resolveExample without the generic fallback.
func sampleSentence(word string, sentences []string) string {
	if ex, ok := cleanExamples[strings.ToLower(word)]; ok {
		return ex
	}
	return transcriptExample(word, sentences)
}

func isCleanSentence(s string) bool {
	if len(s) > maxExampleLen || strings.Contains(s, "?") {
		return false
	}
	if n := len(textnorm.Words(s)); n < 4 || n > 20 {
		return false
	}
	return !fillerWord.MatchString(s) && !noisyChars.MatchString(s)
}

// mentions reports whether sentence contains word or, for words longer than
// three letters, a close inflection of it.
func mentions(sentence, word string) bool {
	word = strings.ToLower(word)
	for _, tok := range textnorm.LowerWords(sentence) {
		if tok == word {
			return true
		}
		if len(word) > 3 && strings.HasPrefix(tok, word[:len(word)-1]) &&
			matchr.JaroWinkler(tok, word, false) >= inflectionSimilarity {
			return true
		}
	}
	return false
}
