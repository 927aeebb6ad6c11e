// Package history lists past drills recorded in the store.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingodrill/internal/router"
	"github.com/abhisek/lingodrill/internal/store"
	"github.com/abhisek/lingodrill/internal/ui/layout"
	"github.com/abhisek/lingodrill/internal/ui/theme"
)

const historyLimit = 50

type historyLoadedMsg struct {
	Drills []store.DrillRecord
	Err    error
}

// HistoryScreen displays past drills, newest first.
type HistoryScreen struct {
	drillRepo store.DrillRepo
	drills    []store.DrillRecord
	selected  int
	loaded    bool
	errMsg    string
}

var _ router.Screen = (*HistoryScreen)(nil)
var _ router.KeyHinter = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(drillRepo store.DrillRepo) *HistoryScreen {
	return &HistoryScreen{drillRepo: drillRepo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		drills, err := s.drillRepo.RecentDrills(context.Background(), historyLimit)
		return historyLoadedMsg{Drills: drills, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.drills = msg.Drills
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, router.Pop
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.drills)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.Centered(fmt.Sprintf("\n\nError: %s", s.errMsg), width, theme.Error)
	}
	if !s.loaded {
		return layout.Centered("\n\n  Loading history...", width, theme.TextDim)
	}
	if len(s.drills) == 0 {
		return layout.Centered("\n\n  No drills yet. Start practising!", width, theme.TextDim)
	}

	var b strings.Builder
	b.WriteString("\n")

	// Keep the selection visible when the list is taller than the screen.
	rows := max(1, height-2)
	first := max(0, s.selected-rows+1)

	for i := first; i < len(s.drills) && i < first+rows; i++ {
		d := s.drills[i]
		mins := int(d.Duration.Minutes())
		secs := int(d.Duration.Seconds()) % 60

		var accuracy float64
		if d.Answered > 0 {
			accuracy = float64(d.Correct) / float64(d.Answered) * 100
		}

		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		line := fmt.Sprintf("%s%s  Lesson %-3d  %d:%02d  %d/%d answered  %.0f%% accuracy",
			prefix, d.Timestamp.Local().Format("Jan 02, 2006"), d.LessonNumber,
			mins, secs, d.Answered, d.Questions, accuracy)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
