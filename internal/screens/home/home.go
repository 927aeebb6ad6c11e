// Package home is the lesson menu: it offers a full drill, a drill per
// exercise kind, the mistake review and past drills.
package home

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingodrill/internal/exercise"
	"github.com/abhisek/lingodrill/internal/pipeline"
	"github.com/abhisek/lingodrill/internal/router"
	"github.com/abhisek/lingodrill/internal/screens/history"
	"github.com/abhisek/lingodrill/internal/screens/mistakes"
	sessionscreen "github.com/abhisek/lingodrill/internal/screens/session"
	"github.com/abhisek/lingodrill/internal/session"
	"github.com/abhisek/lingodrill/internal/store"
	"github.com/abhisek/lingodrill/internal/ui/components"
	"github.com/abhisek/lingodrill/internal/ui/layout"
	"github.com/abhisek/lingodrill/internal/ui/theme"
)

// HomeScreen is the main menu for one processed lesson.
type HomeScreen struct {
	bundle pipeline.Bundle
	menu   components.Menu
}

var _ router.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen over bundle. drills may be nil, which disables
// the history entry and skips recording results.
func New(bundle pipeline.Bundle, drills store.DrillRepo) *HomeScreen {
	lesson := bundle.Metadata.LessonNumber
	drill := func(kinds ...exercise.Kind) func() tea.Cmd {
		return func() tea.Cmd {
			qs := session.FromSet(bundle.Set, kinds...)
			state := session.NewSessionState(lesson, qs, time.Now())
			return router.Push(sessionscreen.New(state, drills))
		}
	}

	all := len(session.FromSet(bundle.Set))
	items := []components.MenuItem{{
		Label:    "Start drill",
		Detail:   plural(all, "question"),
		Action:   drill(),
		Disabled: all == 0,
	}}
	for _, k := range session.DefaultOrder {
		n := len(session.FromSet(bundle.Set, k))
		items = append(items, components.MenuItem{
			Label:    k.DisplayName(),
			Detail:   plural(n, "question"),
			Action:   drill(k),
			Disabled: n == 0,
		})
	}
	items = append(items,
		components.MenuItem{
			Label:    "Review mistakes",
			Detail:   plural(len(bundle.Mistakes), "correction"),
			Action:   func() tea.Cmd { return router.Push(mistakes.New(bundle.Mistakes)) },
			Disabled: len(bundle.Mistakes) == 0,
		},
		components.MenuItem{
			Label:    "Drill history",
			Action:   func() tea.Cmd { return router.Push(history.New(drills)) },
			Disabled: drills == nil,
		},
		components.MenuItem{
			Label:  "Quit",
			Action: func() tea.Cmd { return tea.Quit },
		},
	)

	return &HomeScreen{bundle: bundle, menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	md := h.bundle.Metadata

	var sections []string
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Lesson %d", md.LessonNumber)))

	stats := fmt.Sprintf("%s · %s · %s",
		plural(md.VocabularyCount, "word"),
		plural(md.MistakesCount, "mistake"),
		plural(md.SentencesCount, "sentence"))
	if !layout.IsCompactWidth(width) {
		stats += fmt.Sprintf(" · %s", plural(md.TotalExercises, "exercise"))
	}
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.TextDim).Render(stats))

	if md.Status == pipeline.StatusSuccess && !md.QualityPassed {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).
			Render("Some exercises did not pass the quality checks."))
	}
	if md.Error != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).
			Render("Processing failed: "+md.Error))
	}

	sections = append(sections, components.Panel(h.menu.View(cw-4), cw))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
