package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingodrill/internal/router"
	"github.com/abhisek/lingodrill/internal/session"
	"github.com/abhisek/lingodrill/internal/ui/components"
	"github.com/abhisek/lingodrill/internal/ui/layout"
	"github.com/abhisek/lingodrill/internal/ui/theme"
)

// maxMisses caps the review list so the screen fits a normal terminal.
const maxMisses = 6

// SummaryScreen displays the results of a finished drill.
type SummaryScreen struct {
	summary *session.SessionSummary
}

var _ router.Screen = (*SummaryScreen)(nil)
var _ router.KeyHinter = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.SessionSummary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Drill Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, router.Pop
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Lesson %d drill complete!", sum.Lesson)))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(layout.Centered(fmt.Sprintf("Duration: %d:%02d", mins, secs), width, theme.TextDim))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Answered: %d/%d        Correct: %d        Accuracy: %.0f%%",
		sum.TotalAnswered, sum.TotalQuestions, sum.TotalCorrect, sum.Accuracy*100)
	b.WriteString(layout.Centered(statsLine, width, theme.Text))
	b.WriteString("\n\n")

	if len(sum.KindResults) > 0 {
		b.WriteString(layout.Centered("Exercises", width, theme.TextDim))
		b.WriteString("\n")
		b.WriteString(layout.Divider(width, 60))
		b.WriteString("\n\n")

		for _, kr := range sum.KindResults {
			bar := components.NewProgressBar(fmt.Sprintf("%-18s", kr.Kind.DisplayName()),
				kr.Correct, kr.Attempted, min(width-8, 60))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
			b.WriteString("\n")
		}
	}

	if len(sum.Misses) > 0 {
		b.WriteString("\n")
		b.WriteString(layout.Centered("Review", width, theme.TextDim))
		b.WriteString("\n")
		b.WriteString(layout.Divider(width, 60))
		b.WriteString("\n\n")

		for i, m := range sum.Misses {
			if i == maxMisses {
				b.WriteString(layout.Centered(
					fmt.Sprintf("...and %d more", len(sum.Misses)-maxMisses), width, theme.TextDim))
				b.WriteString("\n")
				break
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderMiss(m)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderMiss(m session.Miss) string {
	given := m.Given
	if given == "" {
		given = "skipped"
	}
	return theme.Correction(given, m.Question.Answer)
}
