package session

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingodrill/internal/exercise"
	"github.com/abhisek/lingodrill/internal/router"
	sess "github.com/abhisek/lingodrill/internal/session"
	"github.com/abhisek/lingodrill/internal/store"
)

// mockDrillRepo implements store.DrillRepo for testing.
type mockDrillRepo struct {
	records []store.DrillRecord
}

func (m *mockDrillRepo) RecordDrill(_ context.Context, rec store.DrillRecord) error {
	m.records = append(m.records, rec)
	return nil
}

func (m *mockDrillRepo) RecentDrills(_ context.Context, _ int) ([]store.DrillRecord, error) {
	return m.records, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(scr router.Screen, text string) router.Screen {
	for _, r := range text {
		scr, _ = scr.Update(keyPress(r))
	}
	return scr
}

func testSet() exercise.Set {
	return exercise.Set{
		Spelling: []exercise.SpellingItem{
			{ID: "s1", Word: "museum", Hint: "3 syllables", Sentence: "We visited the museum."},
		},
		FillBlank: []exercise.MultipleChoice{
			{ID: "b1", Sentence: "I ____ home.", Options: []string{"go", "went", "gone", "goes"}, CorrectAnswer: "went", Explanation: "Past tense."},
		},
	}
}

// testSessionScreen drills fill-blank first, then spelling.
func testSessionScreen() (*SessionScreen, *mockDrillRepo) {
	qs := sess.FromSet(testSet(), exercise.KindFillBlank, exercise.KindSpelling)
	repo := &mockDrillRepo{}
	return New(sess.NewSessionState(3, qs, time.Now()), repo), repo
}

// run executes cmd and feeds plain messages back into scr. Router messages
// are returned instead.
func run(scr router.Screen, cmd tea.Cmd) (router.Screen, tea.Msg) {
	for cmd != nil {
		msg := cmd()
		switch msg.(type) {
		case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
			return scr, msg
		case feedbackDoneMsg, sessionEndMsg:
			scr, cmd = scr.Update(msg)
		default:
			return scr, nil
		}
	}
	return scr, nil
}

func TestSessionScreen_Title(t *testing.T) {
	s, _ := testSessionScreen()
	if s.Title() != "Drill" {
		t.Errorf("Title = %q, want %q", s.Title(), "Drill")
	}
}

func TestSessionScreen_View_Question(t *testing.T) {
	s, _ := testSessionScreen()
	view := s.View(80, 24)
	if !strings.Contains(view, "I ____ home.") {
		t.Errorf("question not rendered:\n%s", view)
	}
	if !strings.Contains(view, "Q 1/2") {
		t.Errorf("progress not rendered:\n%s", view)
	}
}

func TestSessionScreen_ChoiceAnswer(t *testing.T) {
	s, _ := testSessionScreen()

	var scr router.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	ss := scr.(*SessionScreen)
	if !ss.state.ShowingFeedback || !ss.state.LastAnswerCorrect {
		t.Fatalf("expected correct feedback, got %+v", ss.state)
	}
	if !strings.Contains(ss.View(80, 24), "Correct!") {
		t.Error("expected Correct! in feedback view")
	}

	// Any key dismisses the feedback and moves to the next question.
	scr, cmd := scr.Update(keyPress('x'))
	scr, _ = run(scr, cmd)
	ss = scr.(*SessionScreen)
	if ss.state.ShowingFeedback || ss.state.Index != 1 {
		t.Errorf("expected next question, index=%d feedback=%v", ss.state.Index, ss.state.ShowingFeedback)
	}
}

func TestSessionScreen_WrongChoiceShowsAnswer(t *testing.T) {
	s, _ := testSessionScreen()
	s.Update(keyPress('1'))
	if s.state.LastAnswerCorrect {
		t.Fatal("expected wrong answer")
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Correct answer: went") || !strings.Contains(view, "Past tense.") {
		t.Errorf("feedback view missing answer or explanation:\n%s", view)
	}
}

func TestSessionScreen_TypedAnswerAndSummary(t *testing.T) {
	s, repo := testSessionScreen()

	var scr router.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	scr, cmd := scr.Update(keyPress(' '))
	scr, _ = run(scr, cmd)

	scr = typeText(scr, "MUSEUM")
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)
	if !ss.state.LastAnswerCorrect {
		t.Fatalf("expected typed answer to be accepted, got %q", ss.state.LastAnswer)
	}

	// Dismissing the last feedback ends the drill and swaps in the summary.
	scr, cmd = scr.Update(keyPress(' '))
	_, msg := run(scr, cmd)
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if replace.Screen.Title() != "Drill Summary" {
		t.Errorf("replacement title = %q", replace.Screen.Title())
	}

	if len(repo.records) != 1 {
		t.Fatalf("expected 1 drill record, got %d", len(repo.records))
	}
	rec := repo.records[0]
	if rec.LessonNumber != 3 || rec.Questions != 2 || rec.Answered != 2 || rec.Correct != 2 {
		t.Errorf("drill record = %+v", rec)
	}
}

func TestSessionScreen_BlankTypedAnswerIgnored(t *testing.T) {
	s, _ := testSessionScreen()
	s.Update(keyPress('2'))
	s.Update(feedbackDoneMsg{})

	s.Update(specialKey(tea.KeyEnter))
	if s.state.ShowingFeedback {
		t.Error("blank answer should not be graded")
	}
}

func TestSessionScreen_Hint(t *testing.T) {
	s, _ := testSessionScreen()
	s.Update(keyPress('2'))
	s.Update(feedbackDoneMsg{})

	if strings.Contains(s.View(80, 24), "Hint: 6 letters") {
		t.Fatal("hint shown before it was asked for")
	}
	s.Update(specialKey(tea.KeyTab))
	if !strings.Contains(s.View(80, 24), "Hint: 6 letters") {
		t.Error("expected hint after Tab")
	}
}

func TestSessionScreen_Skip(t *testing.T) {
	s, _ := testSessionScreen()
	s.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	if s.state.Index != 1 || len(s.state.Misses) != 1 {
		t.Errorf("expected skip to record a miss and advance, index=%d misses=%d", s.state.Index, len(s.state.Misses))
	}
}

func TestSessionScreen_QuitConfirm(t *testing.T) {
	s, _ := testSessionScreen()

	var scr router.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*SessionScreen)
	if !ss.state.ShowingQuitConfirm {
		t.Error("expected quit confirmation dialog")
	}

	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*SessionScreen)
	if ss.state.ShowingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestSessionScreen_QuitConfirm_Yes(t *testing.T) {
	s, repo := testSessionScreen()

	var scr router.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	scr, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	if _, msg := run(scr, cmd); msg == nil {
		t.Error("expected navigation to the summary")
	}
	if len(repo.records) != 0 {
		t.Error("a drill with no answers should not be recorded")
	}
}

func TestSessionScreen_Empty(t *testing.T) {
	s := New(sess.NewSessionState(1, nil, time.Now()), nil)
	if !strings.Contains(s.View(80, 24), "Nothing to drill") {
		t.Error("expected empty drill message")
	}
	_, cmd := s.Update(keyPress('x'))
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s, _ := testSessionScreen()
	if hints := s.KeyHints(); len(hints) == 0 || hints[0].Key != "1-4" {
		t.Errorf("choice hints = %+v", hints)
	}
	s.state.ShowingQuitConfirm = true
	if hints := s.KeyHints(); hints[0].Key != "Y" {
		t.Errorf("quit hints = %+v", hints)
	}
}
