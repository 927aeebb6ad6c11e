// Package router keeps the stack of TUI screens: home at the bottom, then
// whatever the learner opened from it (a drill, its summary, the mistake
// list, drill history).
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingodrill/internal/ui/layout"
)

// Screen is one page of the app.
type Screen interface {
	// Init returns an initial command when the screen is first shown.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen body; the app draws header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHinter is implemented by screens that supply their own footer hints.
type KeyHinter interface {
	KeyHints() []layout.KeyHint
}

// PushScreenMsg opens Screen on top of the current one.
type PushScreenMsg struct {
	Screen Screen
}

// PopScreenMsg closes the current screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the current screen for another, so that popping
// the new screen skips the old one. A finished drill replaces itself with
// its summary this way.
type ReplaceScreenMsg struct {
	Screen Screen
}

// Push returns a command that opens s.
func Push(s Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: s} }
}

// Pop is a command that closes the current screen.
func Pop() tea.Msg { return PopScreenMsg{} }

// Replace returns a command that swaps the current screen for s.
func Replace(s Screen) tea.Cmd {
	return func() tea.Msg { return ReplaceScreenMsg{Screen: s} }
}

// Router holds the screen stack. The bottom screen is never popped.
type Router struct {
	stack []Screen
}

func New(home Screen) *Router {
	return &Router{stack: []Screen{home}}
}

// Active returns the top screen.
func (r *Router) Active() Screen {
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int {
	return len(r.stack)
}

// Update applies navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	top := len(r.stack) - 1
	switch msg := msg.(type) {
	case PushScreenMsg:
		r.stack = append(r.stack, msg.Screen)
		return msg.Screen.Init()
	case PopScreenMsg:
		if top > 0 {
			r.stack = r.stack[:top]
		}
		return nil
	case ReplaceScreenMsg:
		r.stack[top] = msg.Screen
		return msg.Screen.Init()
	}

	updated, cmd := r.stack[top].Update(msg)
	r.stack[top] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
