package exercise

import (
	"context"
	"strings"
)

// Translator looks a word up in the learner's language. Implementations
// return an error when the lookup is unavailable; callers treat that as no
// translation.
type Translator interface {
	Translate(ctx context.Context, word string) (string, error)
}

// senseOverrides pins translations of words whose most common dictionary
// sense is wrong for a language lesson. Keyed by lowercase language name.
var senseOverrides = map[string]map[string]string{
	"spanish": {
		"book":     "libro",
		"close":    "cerrar",
		"fair":     "justo",
		"fine":     "bien",
		"kind":     "amable",
		"last":     "último",
		"left":     "izquierda",
		"light":    "luz",
		"mean":     "significar",
		"miss":     "extrañar",
		"play":     "jugar",
		"present":  "regalo",
		"right":    "correcto",
		"ring":     "anillo",
		"spring":   "primavera",
		"watch":    "mirar",
		"well":     "bien",
		"patient":  "paciente",
		"bank":     "banco",
		"match":    "partido",
		"date":     "fecha",
		"train":    "tren",
		"park":     "parque",
		"bat":      "murciélago",
		"letter":   "carta",
		"glasses":  "gafas",
		"homework": "tarea",
	},
}

// OverrideFor returns the pinned translation of word in language, if any.
func OverrideFor(language, word string) (string, bool) {
	t, ok := senseOverrides[strings.ToLower(language)][strings.ToLower(word)]
	return t, ok
}

// translations resolves and memoises translations for one generator run.
type translations struct {
	language string
	tr       Translator
	memo     map[string]string
}

func newTranslations(language string, tr Translator) *translations {
	return &translations{language: language, tr: tr, memo: make(map[string]string)}
}

// lookup returns the override for word, else the collaborator's answer, else
// "". Each word reaches the collaborator at most once.
func (t *translations) lookup(ctx context.Context, word string) string {
	key := strings.ToLower(word)
	if v, ok := t.memo[key]; ok {
		return v
	}
	v, ok := OverrideFor(t.language, key)
	if !ok && t.tr != nil {
		if s, err := t.tr.Translate(ctx, key); err == nil {
			v = strings.TrimSpace(s)
		}
	}
	t.memo[key] = v
	return v
}
