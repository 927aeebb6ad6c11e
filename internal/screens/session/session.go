// Package session is the drill screen: it asks the questions of a
// session.SessionState one at a time and hands off to the summary screen.
package session

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/lingodrill/internal/router"
	"github.com/abhisek/lingodrill/internal/screens/summary"
	sess "github.com/abhisek/lingodrill/internal/session"
	"github.com/abhisek/lingodrill/internal/store"
	"github.com/abhisek/lingodrill/internal/ui/components"
	"github.com/abhisek/lingodrill/internal/ui/layout"
)

// SessionScreen implements router.Screen for an active drill.
type SessionScreen struct {
	state   *sess.SessionState
	drills  store.DrillRepo
	drillID string

	choice components.MultiChoice
	input  components.TextInput
}

var _ router.Screen = (*SessionScreen)(nil)
var _ router.KeyHinter = (*SessionScreen)(nil)

// New creates a drill over state. drills may be nil, in which case the
// result is not recorded.
func New(state *sess.SessionState, drills store.DrillRepo) *SessionScreen {
	s := &SessionScreen{
		state:   state,
		drills:  drills,
		drillID: uuid.New().String(),
	}
	s.prepareQuestion()
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	return tea.Batch(s.input.Init(), tickCmd())
}

func (s *SessionScreen) Title() string {
	return "Drill"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.state.ShowingQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End drill"},
			{Key: "N", Description: "Keep going"},
		}
	case s.state.ShowingFeedback:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case s.state.Phase != sess.PhaseActive:
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}

	hints := []layout.KeyHint{{Key: "Enter", Description: "Submit"}}
	if q := sess.CurrentQuestion(s.state); q != nil && q.Format == sess.FormatChoice {
		hints = []layout.KeyHint{{Key: "1-4", Description: "Answer"}}
	}
	return append(hints,
		layout.KeyHint{Key: "Tab", Description: "Hint"},
		layout.KeyHint{Key: "Ctrl+S", Description: "Skip"},
		layout.KeyHint{Key: "Esc", Description: "Quit"},
	)
}

func (s *SessionScreen) View(width, height int) string {
	switch {
	case s.state.ShowingQuitConfirm:
		return renderQuitConfirm(width)
	case s.state.ShowingFeedback:
		return s.renderFeedback(width)
	case len(s.state.Questions) == 0:
		return renderNothingToDrill(width)
	}
	return s.renderQuestionView(width)
}

func (s *SessionScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if s.state.Phase == sess.PhaseEnding || s.state.Phase == sess.PhaseSummary {
			return s, nil
		}
		sess.Tick(s.state, time.Time(msg))
		return s, tickCmd()

	case feedbackDoneMsg:
		if !sess.Advance(s.state) {
			return s, endCmd
		}
		s.prepareQuestion()
		return s, nil

	case sessionEndMsg:
		return s.handleSessionEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.typing() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (router.Screen, tea.Cmd) {
	key := msg.String()

	if len(s.state.Questions) == 0 {
		return s, router.Pop
	}

	if s.state.ShowingQuitConfirm {
		switch key {
		case "y", "Y":
			s.state.ShowingQuitConfirm = false
			return s, endCmd
		case "n", "N", "esc":
			s.state.ShowingQuitConfirm = false
		}
		return s, nil
	}

	// Feedback: any key dismisses.
	if s.state.ShowingFeedback {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	if s.state.Phase != sess.PhaseActive {
		return s, nil
	}

	switch key {
	case "esc":
		s.state.ShowingQuitConfirm = true
		return s, nil
	case "tab":
		s.state.HintShown = true
		return s, nil
	case "ctrl+s":
		if !sess.Skip(s.state) {
			return s, endCmd
		}
		s.prepareQuestion()
		return s, nil
	}

	q := sess.CurrentQuestion(s.state)
	if q.Format == sess.FormatChoice {
		s.choice, _ = s.choice.Update(msg)
		if s.choice.Submitted {
			sess.HandleAnswer(s.state, s.choice.Chosen())
		}
		return s, nil
	}

	if key == "enter" {
		if answer, ok := s.input.Answer(); ok {
			s.input.Grade(sess.HandleAnswer(s.state, answer))
		}
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SessionScreen) handleSessionEnd() (router.Screen, tea.Cmd) {
	s.state.Phase = sess.PhaseSummary
	sum := sess.BuildSummary(s.state)

	if s.drills != nil && sum.TotalAnswered > 0 {
		_ = s.drills.RecordDrill(context.Background(), store.DrillRecord{
			DrillID:      s.drillID,
			LessonNumber: sum.Lesson,
			Questions:    sum.TotalQuestions,
			Answered:     sum.TotalAnswered,
			Correct:      sum.TotalCorrect,
			Duration:     sum.Duration,
		})
	}

	return s, router.Replace(summary.New(sum))
}

// prepareQuestion resets the answer widgets for the current question.
func (s *SessionScreen) prepareQuestion() {
	q := sess.CurrentQuestion(s.state)
	if q == nil {
		return
	}
	s.choice = components.NewMultiChoice(q.Choices)
	s.input = components.NewTextInput("Type your answer...", 200)
}

func (s *SessionScreen) typing() bool {
	q := sess.CurrentQuestion(s.state)
	return q != nil && q.Format == sess.FormatTyped &&
		s.state.Phase == sess.PhaseActive && !s.state.ShowingQuitConfirm
}

func endCmd() tea.Msg { return sessionEndMsg{} }

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
