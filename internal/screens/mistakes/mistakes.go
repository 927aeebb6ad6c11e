// Package mistakes shows the corrections found in a lesson, with the rule
// behind each one.
package mistakes

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingodrill/internal/extract"
	"github.com/abhisek/lingodrill/internal/router"
	"github.com/abhisek/lingodrill/internal/ui/layout"
	"github.com/abhisek/lingodrill/internal/ui/theme"
)

// MistakesScreen lists mistakes; Enter expands the selected one.
type MistakesScreen struct {
	mistakes []extract.Mistake
	selected int
	expanded map[int]bool
}

var _ router.Screen = (*MistakesScreen)(nil)
var _ router.KeyHinter = (*MistakesScreen)(nil)

// New creates a MistakesScreen.
func New(mistakes []extract.Mistake) *MistakesScreen {
	return &MistakesScreen{mistakes: mistakes, expanded: make(map[int]bool)}
}

func (s *MistakesScreen) Init() tea.Cmd { return nil }

func (s *MistakesScreen) Title() string { return "Mistakes" }

func (s *MistakesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Rule"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *MistakesScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "esc":
		return s, router.Pop
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.mistakes)-1 {
			s.selected++
		}
	case "enter":
		s.expanded[s.selected] = !s.expanded[s.selected]
	}
	return s, nil
}

func (s *MistakesScreen) View(width, height int) string {
	if len(s.mistakes) == 0 {
		return layout.Centered("\n\n  No corrections in this lesson.", width, theme.TextDim)
	}

	textWidth := min(width-8, 76)
	var b strings.Builder
	b.WriteString("\n")

	for i, m := range s.mistakes {
		prefix := "  "
		label := theme.Dim
		if i == s.selected {
			prefix = "> "
			label = theme.Selected
		}

		line := label.Render(fmt.Sprintf("%s%2d. ", prefix, i+1)) + theme.Correction(m.Incorrect, m.Correct)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(textWidth).Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("      %s\n      %s", tagLabel(m), m.Rule)
			if m.Context != "" && m.Context != m.Incorrect {
				detail += fmt.Sprintf("\n      Said: %q", m.Context)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Width(textWidth).Foreground(theme.Secondary).Render(detail)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// tagLabel turns "grammar_verb_tense" into "Grammar: verb tense".
func tagLabel(m extract.Mistake) string {
	area, topic, ok := strings.Cut(string(m.Type), "_")
	if !ok {
		return string(m.Type)
	}
	return strings.ToUpper(area[:1]) + area[1:] + ": " + strings.ReplaceAll(topic, "_", " ")
}
