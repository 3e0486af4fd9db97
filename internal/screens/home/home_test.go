package home

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/router"
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/screens/about"
	"github.com/abhisek/careerfit/internal/screens/assessment"
	"github.com/abhisek/careerfit/internal/screens/results"
	"github.com/abhisek/careerfit/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

type errStore struct{}

func (errStore) Load(context.Context) (*store.Record, error) {
	return nil, errors.New("database is locked")
}
func (errStore) Save(context.Context, catalog.AnswerMap) (*store.Record, error) { return nil, nil }
func (errStore) Clear(context.Context) error                                    { return nil }

func newTestHome(st store.AnswerStore) *HomeScreen {
	return New(screen.Env{Catalog: catalog.Default(), Store: st, Log: zap.NewNop()})
}

// pushed runs cmd and returns the screen it asks the router to push.
func pushed(t *testing.T, cmd tea.Cmd) screen.Screen {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	got := cmd()
	msg, ok := got.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", got)
	}
	return msg.Screen
}

func TestResultsDisabledWithoutRecord(t *testing.T) {
	h := newTestHome(store.New(store.NewMemory(), zap.NewNop()))

	h.Update(h.Init()())

	if h.hasRecord {
		t.Error("no record should be reported")
	}
	if !h.menu.Items[itemResults].Disabled {
		t.Error("View Results should be disabled")
	}

	// Moving down skips the disabled item.
	h.Update(specialKey(tea.KeyDown))
	if h.menu.Selected != itemAbout {
		t.Errorf("selected = %d, want %d", h.menu.Selected, itemAbout)
	}
}

func TestResumeRechecksRecord(t *testing.T) {
	st := store.New(store.NewMemory(), zap.NewNop())
	h := newTestHome(st)
	h.Update(h.Init()())

	if _, err := st.Save(context.Background(), catalog.AnswerMap{"psychometric_0": "5"}); err != nil {
		t.Fatal(err)
	}

	_, cmd := h.Update(router.ResumeMsg{})
	if cmd == nil {
		t.Fatal("resume should re-check the store")
	}
	h.Update(cmd())

	if !h.hasRecord || h.menu.Items[itemResults].Disabled {
		t.Error("View Results should be enabled once a record exists")
	}
	if !strings.Contains(h.View(120, 40), "last results are saved") {
		t.Error("expected the saved-results note")
	}

	h.Update(specialKey(tea.KeyDown))
	_, cmd = h.Update(specialKey(tea.KeyEnter))
	if got := pushed(t, cmd); !isResults(got) {
		t.Error("View Results should push the results screen")
	}
}

func TestStartPushesAssessment(t *testing.T) {
	h := newTestHome(nil)

	if cmd := h.Init(); cmd != nil {
		t.Error("no store means nothing to check")
	}

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if _, ok := pushed(t, cmd).(*assessment.AssessmentScreen); !ok {
		t.Error("Start Assessment should push the assessment screen")
	}
}

func TestAboutPushesAbout(t *testing.T) {
	h := newTestHome(nil)

	h.Update(specialKey(tea.KeyDown)) // skips disabled View Results
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if _, ok := pushed(t, cmd).(*about.AboutScreen); !ok {
		t.Error("About the Role should push the about screen")
	}
}

func TestQuit(t *testing.T) {
	h := newTestHome(nil)

	_, cmd := h.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestLoadErrorShown(t *testing.T) {
	h := newTestHome(errStore{})
	h.Update(h.Init()())

	if !strings.Contains(h.View(120, 40), "database is locked") {
		t.Error("load error should be shown")
	}
	if !h.menu.Items[itemResults].Disabled {
		t.Error("View Results stays disabled on error")
	}
}

func TestCompactViewHidesIntro(t *testing.T) {
	h := newTestHome(nil)

	full := h.View(120, 40)
	if !strings.Contains(full, "questions") {
		t.Error("full view should show stats")
	}
	compact := h.View(60, 14)
	if strings.Contains(compact, "WISCAR dimensions") {
		t.Error("compact view should hide stats")
	}
	if !strings.Contains(compact, "Start Assessment") {
		t.Error("compact view keeps the menu")
	}
}

func isResults(s screen.Screen) bool {
	_, ok := s.(*results.ResultsScreen)
	return ok
}
