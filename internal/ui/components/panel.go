package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingodrill/internal/ui/theme"
)

// ContentWidth returns the inner width shared by stacked panels so their
// borders line up.
func ContentWidth(frameWidth int) int {
	return max(20, min(frameWidth-6, 64))
}

// Panel wraps content in a rounded border at content width cw.
func Panel(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw-2).
		Padding(0, 1).
		Render(content)
}
