package session

import (
	"time"
)

// SessionSummary holds the data displayed on the summary screen.
type SessionSummary struct {
	Lesson         int
	Duration       time.Duration
	TotalQuestions int
	TotalAnswered  int
	TotalCorrect   int
	Accuracy       float64
	KindResults    []KindResult
	Misses         []Miss
}

// BuildSummary creates a SessionSummary from the current drill state. Kind
// results follow DefaultOrder and omit kinds never attempted.
func BuildSummary(state *SessionState) *SessionSummary {
	var results []KindResult
	for _, k := range DefaultOrder {
		if r, ok := state.PerKind[k]; ok && r.Attempted > 0 {
			results = append(results, *r)
		}
	}

	var accuracy float64
	if state.TotalAnswered > 0 {
		accuracy = float64(state.TotalCorrect) / float64(state.TotalAnswered)
	}

	return &SessionSummary{
		Lesson:         state.Lesson,
		Duration:       state.Elapsed,
		TotalQuestions: len(state.Questions),
		TotalAnswered:  state.TotalAnswered,
		TotalCorrect:   state.TotalCorrect,
		Accuracy:       accuracy,
		KindResults:    results,
		Misses:         state.Misses,
	}
}
