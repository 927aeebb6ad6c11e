package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScreen struct {
	title   string
	inits   int
	updates []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	s.updates = append(s.updates, msg)
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestNavigation(t *testing.T) {
	home := &stubScreen{title: "home"}
	drill := &stubScreen{title: "drill"}
	sum := &stubScreen{title: "summary"}
	r := New(home)

	r.Update(Push(drill)())
	require.Equal(t, 2, r.Depth())
	assert.Equal(t, "drill", r.View(80, 24))
	assert.Equal(t, 1, drill.inits)

	r.Update(Replace(sum)())
	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "summary", r.Active().Title())
	assert.Equal(t, 1, sum.inits)

	r.Update(Pop())
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "home", r.Active().Title())
}

func TestPopKeepsHome(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Update(Pop())
	r.Update(Pop())
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "home", r.Active().Title())
}

func TestReplaceAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Update(Replace(&stubScreen{title: "other"})())
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "other", r.Active().Title())
}

func TestUpdateForwardsToActiveOnly(t *testing.T) {
	home := &stubScreen{title: "home"}
	drill := &stubScreen{title: "drill"}
	r := New(home)
	r.Update(Push(drill)())

	key := tea.KeyPressMsg{Code: 'a', Text: "a"}
	r.Update(key)
	assert.Empty(t, home.updates)
	assert.Equal(t, []tea.Msg{key}, drill.updates)
}
