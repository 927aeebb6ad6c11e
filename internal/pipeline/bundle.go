package pipeline

import (
	"github.com/abhisek/lingodrill/internal/exercise"
	"github.com/abhisek/lingodrill/internal/extract"
	"github.com/abhisek/lingodrill/internal/quality"
)

// Status is the high-level outcome of a run.
type Status string

const (
	StatusSuccess Status = "success"
	StatusEmpty   Status = "empty"
	StatusError   Status = "error"
)

// Metadata summarises a run.
type Metadata struct {
	LessonNumber    int    `json:"lesson_number"`
	Status          Status `json:"status"`
	QualityPassed   bool   `json:"quality_passed"`
	VocabularyCount int    `json:"vocabulary_count"`
	MistakesCount   int    `json:"mistakes_count"`
	SentencesCount  int    `json:"sentences_count"`
	TotalExercises  int    `json:"total_exercises"`

	// Error is set only when Status is StatusError.
	Error string `json:"error,omitempty"`
}

// Bundle is everything one run produces. Every list is non-nil, so the JSON
// form always carries every key.
type Bundle struct {
	exercise.Set
	Mistakes []extract.Mistake `json:"mistakes"`
	Metadata Metadata          `json:"metadata"`

	// Quality is the gate report. Nil for empty and failed runs.
	Quality *quality.Report `json:"quality,omitempty"`
}

func emptyBundle(lesson int, status Status) Bundle {
	return Bundle{
		Set:      exercise.Set{}.NonNil(),
		Mistakes: []extract.Mistake{},
		Metadata: Metadata{LessonNumber: lesson, Status: status},
	}
}

func errorBundle(lesson int, err error) Bundle {
	b := emptyBundle(lesson, StatusError)
	b.Metadata.Error = err.Error()
	return b
}
