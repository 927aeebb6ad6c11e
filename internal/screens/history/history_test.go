package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingodrill/internal/router"
	"github.com/abhisek/lingodrill/internal/store"
)

type stubDrillRepo struct {
	drills []store.DrillRecord
	err    error
}

func (r *stubDrillRepo) RecordDrill(context.Context, store.DrillRecord) error { return nil }

func (r *stubDrillRepo) RecentDrills(context.Context, int) ([]store.DrillRecord, error) {
	return r.drills, r.err
}

func load(t *testing.T, repo store.DrillRepo) *HistoryScreen {
	t.Helper()
	s := New(repo)
	s.Update(s.Init()())
	return s
}

func TestHistoryScreen_Lists(t *testing.T) {
	s := load(t, &stubDrillRepo{drills: []store.DrillRecord{
		{Timestamp: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), LessonNumber: 4, Questions: 10, Answered: 8, Correct: 6, Duration: 90 * time.Second},
		{Timestamp: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), LessonNumber: 3, Questions: 5, Answered: 5, Correct: 5},
	}})
	view := s.View(100, 20)
	for _, want := range []string{"Lesson 4", "1:30", "8/10 answered", "75% accuracy", "Lesson 3"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
}

func TestHistoryScreen_EmptyAndError(t *testing.T) {
	if v := load(t, &stubDrillRepo{}).View(80, 20); !strings.Contains(v, "No drills yet") {
		t.Errorf("empty view = %q", v)
	}
	if v := load(t, &stubDrillRepo{err: errors.New("disk gone")}).View(80, 20); !strings.Contains(v, "disk gone") {
		t.Errorf("error view = %q", v)
	}
	if v := New(&stubDrillRepo{}).View(80, 20); !strings.Contains(v, "Loading") {
		t.Errorf("loading view = %q", v)
	}
}

func TestHistoryScreen_Back(t *testing.T) {
	_, cmd := New(&stubDrillRepo{}).Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
