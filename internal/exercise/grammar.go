package exercise

import (
	"github.com/abhisek/lingodrill/internal/diagnosis"
	"github.com/abhisek/lingodrill/internal/distractor"
	"github.com/abhisek/lingodrill/internal/extract"
)

type grammarTemplate struct {
	sentence string
	answer   string
}

// agreementTemplates pad grammar challenges with subject-verb agreement
// practice when a lesson has too few usable mistakes.
var agreementTemplates = []grammarTemplate{
	{"She " + Blank + " to school every day.", "goes"},
	{"He " + Blank + " coffee every morning.", "drinks"},
	{"They " + Blank + " football on Sundays.", "play"},
	{"My brother " + Blank + " in London.", "lives"},
	{"We " + Blank + " English on Mondays.", "study"},
	{"The cat " + Blank + " on the sofa all afternoon.", "sleeps"},
	{"I " + Blank + " my homework after dinner.", "do"},
	{"My parents " + Blank + " dinner at seven.", "have"},
	{"The train " + Blank + " at nine o'clock.", "leaves"},
	{"Tom " + Blank + " the guitar very well.", "plays"},
}

// GrammarChallenge builds questions from mistakes whose context is at least
// minGrammarContext long and literally contains the answer, then pads with
// agreement templates in random order up to the grammar challenge limit.
func (g *Generator) GrammarChallenge(mistakes []extract.Mistake) []MultipleChoice {
	b := mcBuilder{g: g, kind: KindGrammarChallenge, limit: g.limits.GrammarChallenge, seen: make(map[string]bool)}

	for _, m := range mistakes {
		if b.full() {
			break
		}
		target := answerToken(m)
		if target == "" || len(m.Context) < minGrammarContext {
			continue
		}
		sentence, ok := blankWord(m.Context, target)
		if !ok {
			continue
		}
		b.add(sentence, target, ConceptFor(m.Type), mistakeExplanation(m), SourceMistake)
	}

	for _, i := range g.rng.Perm(len(agreementTemplates)) {
		if b.full() {
			break
		}
		t := agreementTemplates[i]
		b.add(t.sentence, t.answer, distractor.HintThirdPerson, diagnosis.Rule(diagnosis.TagSubjectVerb), SourceTemplate)
	}
	return b.out
}
