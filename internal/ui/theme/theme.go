// Package theme holds the drill's colours and shared lipgloss styles.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette
var (
	Primary   = lipgloss.Color("#2563EB") // Blue
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

var (
	// Prompt renders question text in the drill.
	Prompt = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)

	Dim = lipgloss.NewStyle().
		Foreground(TextDim)

	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)

var (
	said  = lipgloss.NewStyle().Foreground(Error)
	fixed = lipgloss.NewStyle().Foreground(Success)
	arrow = Dim.Render("  →  ")
)

// Correction renders a learner's wording next to its fix.
func Correction(wrong, right string) string {
	return said.Render(wrong) + arrow + fixed.Render(right)
}
