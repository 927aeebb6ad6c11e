// Package exercise turns extracted vocabulary, mistakes and sentences into
// exercise items.
package exercise

import (
	"math/rand/v2"

	"github.com/abhisek/lingodrill/internal/distractor"
)

// Generator builds every exercise kind for one pipeline run. It holds the
// run's random source and translation memo, so it is not safe for
// concurrent use; create one per run.
type Generator struct {
	lesson int
	limits Limits
	rng    *rand.Rand
	synth  *distractor.Synthesizer
	tr     *translations
}

// Options configures a Generator.
type Options struct {
	Lesson int
	Limits Limits

	// Rand drives distractor shuffling, template choice and token
	// scrambling. Required.
	Rand *rand.Rand

	// Translator is optional. Language selects sense overrides.
	Translator Translator
	Language   string
}

// NewGenerator returns a Generator. The synthesizer shares opts.Rand.
func NewGenerator(opts Options) *Generator {
	return &Generator{
		lesson: opts.Lesson,
		limits: opts.Limits,
		rng:    opts.Rand,
		synth:  distractor.New(opts.Rand),
		tr:     newTranslations(opts.Language, opts.Translator),
	}
}

func (g *Generator) id(kind Kind, index int, payload string) string {
	return NewID(kind, g.lesson, index, payload)
}
