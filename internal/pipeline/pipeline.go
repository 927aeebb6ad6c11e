// Package pipeline turns a lesson transcript into an exercise bundle.
//
// A run normalizes and segments the transcript, runs the vocabulary, mistake
// and sentence extractors concurrently, feeds their output to the exercise
// generators, optionally lets an enhancer rewrite distractors, and finally
// runs the quality gate. Runs never return an error: the outcome is reported
// in [Metadata.Status].
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/lingodrill/internal/assist"
	"github.com/abhisek/lingodrill/internal/dialogue"
	"github.com/abhisek/lingodrill/internal/exercise"
	"github.com/abhisek/lingodrill/internal/extract"
	"github.com/abhisek/lingodrill/internal/observe"
	"github.com/abhisek/lingodrill/internal/quality"
	"github.com/abhisek/lingodrill/internal/textnorm"
)

// DefaultSeed seeds runs whose options leave Seed at zero.
const DefaultSeed uint64 = 42

// lessonMix spreads lesson numbers across the second PCG word.
const lessonMix uint64 = 0x9e3779b97f4a7c15

// Options configures a Pipeline. Every collaborator is optional.
type Options struct {
	// Seed makes runs reproducible. Zero means DefaultSeed.
	Seed uint64

	// ExtractLimits and Limits cap extractor and generator output. Zero
	// values mean the package defaults.
	ExtractLimits extract.Limits
	Limits        exercise.Limits

	// Language is the learner's language for translations.
	Language string

	Vocabulary extract.VocabularyAssistant
	Sentences  extract.SentenceAssistant
	Translator exercise.Translator
	Enhancer   assist.Enhancer

	// Gate defaults to quality.NewGate().
	Gate *quality.Gate

	Logger  *slog.Logger
	Metrics *observe.Metrics
}

// Pipeline runs lessons through the extractors and generators. It is safe
// for concurrent use as long as its collaborators are: every run builds its
// own random source and generator.
type Pipeline struct {
	opts      Options
	extractor *extract.Extractor
}

// New returns a Pipeline with opts, filling in defaults.
func New(opts Options) *Pipeline {
	if opts.Seed == 0 {
		opts.Seed = DefaultSeed
	}
	if opts.ExtractLimits == (extract.Limits{}) {
		opts.ExtractLimits = extract.DefaultLimits()
	}
	if opts.Limits == (exercise.Limits{}) {
		opts.Limits = exercise.DefaultLimits()
	}
	if opts.Language == "" {
		opts.Language = "Spanish"
	}
	if opts.Gate == nil {
		opts.Gate = quality.NewGate()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Pipeline{
		opts: opts,
		extractor: &extract.Extractor{
			Limits:     opts.ExtractLimits,
			Vocabulary: opts.Vocabulary,
			Sentences:  opts.Sentences,
			Logger:     opts.Logger,
			Metrics:    opts.Metrics,
		},
	}
}

// extraction holds the three extractor outputs of one run.
type extraction struct {
	vocabulary []extract.VocabularyItem
	mistakes   []extract.Mistake
	sentences  []extract.PracticeSentence
}

// Process converts transcript into a bundle for lesson. Identical
// (transcript, lesson, seed) input yields identical output, given
// deterministic collaborators.
func (p *Pipeline) Process(ctx context.Context, transcript string, lesson int) Bundle {
	start := time.Now()
	log := p.opts.Logger.With("lesson", lesson)

	b := p.process(ctx, transcript, lesson, log)

	p.opts.Metrics.RecordRun(ctx, string(b.Metadata.Status))
	p.opts.Metrics.RecordStage(ctx, "total", start)
	log.Info("pipeline run finished",
		"status", b.Metadata.Status,
		"exercises", b.Metadata.TotalExercises,
		"quality_passed", b.Metadata.QualityPassed,
		"elapsed", time.Since(start))
	return b
}

func (p *Pipeline) process(ctx context.Context, transcript string, lesson int, log *slog.Logger) Bundle {
	if strings.TrimSpace(transcript) == "" {
		return emptyBundle(lesson, StatusEmpty)
	}

	stage := time.Now()
	plain := textnorm.Normalize(transcript)
	if plain == "" {
		return emptyBundle(lesson, StatusEmpty)
	}
	utterances := dialogue.Segment(textnorm.NormalizeLines(transcript))
	p.opts.Metrics.RecordStage(ctx, "normalize", stage)
	log.Debug("transcript segmented", "utterances", len(utterances), "chars", len(plain))

	stage = time.Now()
	ex, err := p.extract(ctx, utterances, plain)
	p.opts.Metrics.RecordStage(ctx, "extract", stage)
	if err != nil {
		log.Error("extraction failed", "err", err)
		return errorBundle(lesson, err)
	}
	log.Debug("extraction done",
		"vocabulary", len(ex.vocabulary),
		"mistakes", len(ex.mistakes),
		"sentences", len(ex.sentences))

	stage = time.Now()
	var set exercise.Set
	err = safely("generate", func() error {
		set = p.generate(ctx, lesson, ex, dialogue.SplitSentences(plain))
		return nil
	})
	p.opts.Metrics.RecordStage(ctx, "generate", stage)
	if err != nil {
		log.Error("exercise generation failed", "err", err)
		return errorBundle(lesson, err)
	}

	if p.opts.Enhancer != nil {
		stage = time.Now()
		set = p.enhance(ctx, set, log)
		p.opts.Metrics.RecordStage(ctx, "enhance", stage)
	}

	stage = time.Now()
	report := p.opts.Gate.Check(&set)
	p.opts.Metrics.RecordStage(ctx, "quality", stage)
	p.opts.Metrics.RecordQualityIssues(ctx, string(quality.SeverityError), len(report.Errors))
	p.opts.Metrics.RecordQualityIssues(ctx, string(quality.SeverityWarning), len(report.Warnings))
	for _, issue := range report.Errors {
		log.Warn("quality gate error", "issue", issue.Error())
	}

	for kind, n := range set.Counts() {
		p.opts.Metrics.RecordExercises(ctx, string(kind), n)
	}

	mistakes := ex.mistakes
	if mistakes == nil {
		mistakes = []extract.Mistake{}
	}
	return Bundle{
		Set:      set.NonNil(),
		Mistakes: mistakes,
		Metadata: Metadata{
			LessonNumber:    lesson,
			Status:          StatusSuccess,
			QualityPassed:   report.Passed,
			VocabularyCount: len(ex.vocabulary),
			MistakesCount:   len(ex.mistakes),
			SentencesCount:  len(ex.sentences),
			TotalExercises:  set.Total(),
		},
		Quality: &report,
	}
}

// extract runs the three extractors concurrently. Any failure, including a
// panic, fails the whole extraction.
func (p *Pipeline) extract(ctx context.Context, utterances []dialogue.Utterance, plain string) (extraction, error) {
	var ex extraction
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return safely("vocabulary", func() error {
			ex.vocabulary = p.extractor.ExtractVocabulary(gctx, utterances, plain)
			return nil
		})
	})
	g.Go(func() error {
		return safely("mistakes", func() error {
			ex.mistakes = p.extractor.ExtractMistakes(gctx, utterances)
			return nil
		})
	})
	g.Go(func() error {
		return safely("sentences", func() error {
			ex.sentences = p.extractor.ExtractSentences(gctx, plain)
			return nil
		})
	})
	if err := g.Wait(); err != nil {
		return extraction{}, err
	}
	if err := ctx.Err(); err != nil {
		return extraction{}, fmt.Errorf("extraction cancelled: %w", err)
	}
	return ex, nil
}

// generate runs every generator against one run-local random source.
func (p *Pipeline) generate(ctx context.Context, lesson int, ex extraction, sentences []string) exercise.Set {
	gen := exercise.NewGenerator(exercise.Options{
		Lesson:     lesson,
		Limits:     p.opts.Limits,
		Rand:       p.rand(lesson),
		Translator: p.opts.Translator,
		Language:   p.opts.Language,
	})
	return exercise.Set{
		Flashcards:       gen.Flashcards(ctx, ex.vocabulary, sentences),
		Spelling:         gen.Spelling(ctx, ex.vocabulary, sentences),
		FillBlank:        gen.FillBlank(ex.mistakes, sentences),
		SentenceBuilder:  gen.SentenceBuilder(ex.sentences),
		GrammarChallenge: gen.GrammarChallenge(ex.mistakes),
		AdvancedCloze:    gen.AdvancedCloze(ex.sentences),
	}
}

func (p *Pipeline) rand(lesson int) *rand.Rand {
	return rand.New(rand.NewPCG(p.opts.Seed, uint64(lesson)*lessonMix))
}

// enhance applies the enhancer, keeping set when it fails.
func (p *Pipeline) enhance(ctx context.Context, set exercise.Set, log *slog.Logger) exercise.Set {
	var out exercise.Set
	err := safely("enhance", func() error {
		var err error
		out, err = p.opts.Enhancer.Enhance(ctx, set)
		return err
	})
	if err != nil {
		p.opts.Metrics.RecordFallback(ctx, "enhance")
		log.Warn("distractor enhancement unavailable, keeping generated options", "err", err)
		return set
	}
	return out
}

// safely runs fn, turning a panic into an error tagged with stage.
func safely(stage string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: panic: %v", stage, r)
		}
	}()
	if err := fn(); err != nil {
		return fmt.Errorf("%s: %w", stage, err)
	}
	return nil
}
