package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingodrill/internal/ui/theme"
)

// TextInput is the answer box for typed questions (spelling, gap fills,
// sentence building). It freezes once graded and shows the verdict.
type TextInput struct {
	Model  textinput.Model
	graded bool
	right  bool
}

// NewTextInput creates a focused input. charLimit of 0 means no limit.
func NewTextInput(placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = charLimit
	ti.Focus()
	return TextInput{Model: ti}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update forwards keystrokes until the answer is graded.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.graded {
		return t, nil
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) View() string {
	view := t.Model.View()
	switch {
	case !t.graded:
	case t.right:
		view += " " + theme.Correct.Render("✓")
	default:
		view += " " + theme.Incorrect.Render("✗")
	}
	return view
}

// Answer returns the trimmed input and whether there is anything to grade.
func (t TextInput) Answer() (string, bool) {
	a := strings.TrimSpace(t.Model.Value())
	return a, a != "" && !t.graded
}

// Grade freezes the input and records the verdict shown next to it.
func (t *TextInput) Grade(right bool) {
	t.graded = true
	t.right = right
}
