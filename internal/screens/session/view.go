package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/lingodrill/internal/session"
	"github.com/abhisek/lingodrill/internal/ui/components"
	"github.com/abhisek/lingodrill/internal/ui/layout"
	"github.com/abhisek/lingodrill/internal/ui/theme"
)

// renderQuestionView renders the active question.
func (s *SessionScreen) renderQuestionView(width int) string {
	state := s.state
	q := sess.CurrentQuestion(state)
	if q == nil {
		return layout.Centered("\n\n  Wrapping up...", width, theme.TextDim)
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(q, width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(0, width-4))))
	b.WriteString("\n\n")

	prompt := theme.Prompt.Width(min(width-8, 72)).Render(q.Prompt)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	b.WriteString("\n\n")

	if q.Format == sess.FormatChoice {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View(q.Answer)))
		b.WriteString("\n")
		b.WriteString(layout.Centered("Select (1-4) or use arrows + Enter", width, theme.TextDim))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, "Answer: "+s.input.View()))
	}

	if state.HintShown && q.Hint != "" {
		b.WriteString("\n\n")
		b.WriteString(layout.Centered("Hint: "+q.Hint, width, theme.Accent))
	}
	return b.String()
}

func (s *SessionScreen) renderInfoLine(q *sess.Question, width int) string {
	state := s.state
	mins := int(state.Elapsed.Minutes())
	secs := int(state.Elapsed.Seconds()) % 60

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + q.Kind.DisplayName())

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %d  %d:%02d",
			state.Index+1, len(state.Questions),
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			state.TotalCorrect, mins, secs))

	line := left
	if pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}

	bar := components.NewProgressBar("", state.Index, len(state.Questions), min(width-8, 60))
	return line + "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View())
}

// renderFeedback renders the verdict for the last answer.
func (s *SessionScreen) renderFeedback(width int) string {
	state := s.state
	q := sess.CurrentQuestion(state)

	var b strings.Builder
	b.WriteString("\n\n")

	if state.LastAnswerCorrect {
		b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).Render("Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render("Not quite"))
		if q != nil {
			b.WriteString("\n")
			b.WriteString(layout.Centered("You answered: "+state.LastAnswer, width, theme.TextDim))
			b.WriteString("\n")
			b.WriteString(layout.Centered("Correct answer: "+q.Answer, width, theme.Text))
		}
	}
	b.WriteString("\n\n")

	if q != nil && q.Format == sess.FormatChoice {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View(q.Answer)))
		b.WriteString("\n")
	}

	if q != nil && q.Explanation != "" {
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	b.WriteString(layout.Centered("Press any key to continue...", width, theme.TextDim))
	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Foreground(theme.Text).Bold(true).Render("End drill early?"))
	b.WriteString("\n")
	b.WriteString(layout.Centered("Unanswered questions are left out of the score.", width, theme.TextDim))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered("[Y] Yes, end drill", width, theme.Success))
	b.WriteString("\n")
	b.WriteString(layout.Centered("[N] No, keep going", width, theme.Primary))
	return b.String()
}

func renderNothingToDrill(width int) string {
	return layout.Centered("\n\n\n  Nothing to drill in this lesson.\n\n  Press any key to go back.", width, theme.TextDim)
}
