// Package layout draws the frame around every screen: a header bar with the
// app name, screen title and lesson status, and a footer of key hints.
package layout

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingodrill/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	CompactWidthThreshold = 100
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactWidth returns true if the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small for a drill.\n\nNeed %d x %d, have %d x %d.",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(msg))
}

var (
	brand      = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	titleStyle = lipgloss.NewStyle().Foreground(theme.Text)
	status     = lipgloss.NewStyle().Foreground(theme.Accent)
	hintKey    = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
)

// RenderHeader renders the header bar: app name on the left, title in the
// middle and status (the lesson number) on the right.
func RenderHeader(title, statusText string, width int) string {
	left := brand.Render("  Lingodrill")
	center := titleStyle.Render(title)
	right := status.Render(statusText)

	inner := max(0, width-4)
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	leftGap := max(1, (inner-cw)/2-lw)
	rightGap := max(1, inner-lw-leftGap-cw-rw)

	return bar(left+strings.Repeat(" ", leftGap)+center+strings.Repeat(" ", rightGap)+right, width)
}

// RenderFooter renders the key hints. Hints that would overflow the bar are
// dropped from the end.
func RenderFooter(hints []KeyHint, width int) string {
	budget := max(0, width-6)
	parts := make([]string, 0, len(hints))
	used := 0
	for _, h := range hints {
		part := hintKey.Render(h.Key) + " " + theme.Dim.Render(h.Description)
		w := lipgloss.Width(part)
		if len(parts) > 0 {
			w += 3
		}
		if used+w > budget {
			break
		}
		parts = append(parts, part)
		used += w
	}
	return bar("  "+strings.Join(parts, "   "), width)
}

func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// ContentHeight returns the rows left for a screen between header and
// footer.
func ContentHeight(header, footer string, height int) int {
	return max(0, height-lipgloss.Height(header)-lipgloss.Height(footer))
}

// RenderFrame stacks header, content and footer, padding content to fill
// the terminal.
func RenderFrame(header, content, footer string, width, height int) string {
	body := lipgloss.NewStyle().
		Width(width).
		Height(ContentHeight(header, footer, height)).
		Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// Centered renders text centred across width in the given colour.
func Centered(text string, width int, fg color.Color) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(fg).
		Render(text)
}

// Divider renders a centred horizontal rule at most maxWidth wide.
func Divider(width, maxWidth int) string {
	rule := lipgloss.NewStyle().Foreground(theme.Border).
		Render(strings.Repeat("─", max(0, min(width-8, maxWidth))))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, rule)
}
