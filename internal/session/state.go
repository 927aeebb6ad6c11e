package session

import (
	"time"

	"github.com/abhisek/lingodrill/internal/exercise"
)

// SessionPhase represents the current phase of the drill.
type SessionPhase int

const (
	PhaseActive   SessionPhase = iota // Serving questions
	PhaseFeedback                     // Showing answer feedback
	PhaseEnding                       // Out of questions or quit confirmed
	PhaseSummary                      // Showing summary screen
)

// KindResult tracks per-kind stats for the summary screen.
type KindResult struct {
	Kind      exercise.Kind
	Attempted int
	Correct   int
}

// Accuracy returns Correct / Attempted, or 0 before any attempt.
func (r *KindResult) Accuracy() float64 {
	if r.Attempted == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Attempted)
}

// Miss is a wrongly answered question, kept for review.
type Miss struct {
	Question Question
	Given    string
}

// SessionState tracks the runtime state of a drill.
type SessionState struct {
	Lesson    int
	Questions []Question

	// Index points at the current question in Questions.
	Index int

	Phase SessionPhase

	TotalAnswered int
	TotalCorrect  int

	// PerKind tracks results per exercise kind.
	PerKind map[exercise.Kind]*KindResult

	Misses []Miss

	LastAnswer        string
	LastAnswerCorrect bool

	// ShowingFeedback is true when the feedback overlay is displayed.
	ShowingFeedback bool

	// ShowingQuitConfirm is true when the quit confirmation dialog is displayed.
	ShowingQuitConfirm bool

	// HintShown is true once the learner asked for the current hint.
	HintShown bool

	StartTime time.Time
	Elapsed   time.Duration
}

// NewSessionState creates a drill over questions. A drill with no
// questions starts in PhaseEnding.
func NewSessionState(lesson int, questions []Question, now time.Time) *SessionState {
	s := &SessionState{
		Lesson:    lesson,
		Questions: questions,
		PerKind:   make(map[exercise.Kind]*KindResult),
		StartTime: now,
	}
	for _, q := range questions {
		if s.PerKind[q.Kind] == nil {
			s.PerKind[q.Kind] = &KindResult{Kind: q.Kind}
		}
	}
	if len(questions) == 0 {
		s.Phase = PhaseEnding
	}
	return s
}
