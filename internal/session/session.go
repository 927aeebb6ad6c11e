package session

import (
	"strings"
	"time"
)

// CurrentQuestion returns the question being asked, or nil when the drill
// is over.
func CurrentQuestion(state *SessionState) *Question {
	if state.Index < 0 || state.Index >= len(state.Questions) {
		return nil
	}
	return &state.Questions[state.Index]
}

// HandleAnswer grades answer against the current question, updates the
// tallies and switches to feedback. Blank answers are ignored and reported
// as incorrect without counting.
func HandleAnswer(state *SessionState, answer string) bool {
	q := CurrentQuestion(state)
	if q == nil || state.Phase != PhaseActive || strings.TrimSpace(answer) == "" {
		return false
	}

	correct := q.Check(answer)
	state.LastAnswer = answer
	state.LastAnswerCorrect = correct
	state.TotalAnswered++
	if correct {
		state.TotalCorrect++
	} else {
		state.Misses = append(state.Misses, Miss{Question: *q, Given: answer})
	}

	if r := state.PerKind[q.Kind]; r != nil {
		r.Attempted++
		if correct {
			r.Correct++
		}
	}

	state.ShowingFeedback = true
	state.Phase = PhaseFeedback
	return correct
}

// Advance moves past the feedback to the next question. It returns false
// and enters PhaseEnding when no question is left.
func Advance(state *SessionState) bool {
	state.ShowingFeedback = false
	state.HintShown = false
	state.Index++
	if state.Index >= len(state.Questions) {
		state.Phase = PhaseEnding
		return false
	}
	state.Phase = PhaseActive
	return true
}

// Skip counts the current question as missed without an answer and moves
// on.
func Skip(state *SessionState) bool {
	if q := CurrentQuestion(state); q != nil && state.Phase == PhaseActive {
		state.TotalAnswered++
		state.Misses = append(state.Misses, Miss{Question: *q})
		if r := state.PerKind[q.Kind]; r != nil {
			r.Attempted++
		}
	}
	return Advance(state)
}

// Tick updates the elapsed time.
func Tick(state *SessionState, now time.Time) {
	state.Elapsed = now.Sub(state.StartTime)
}
