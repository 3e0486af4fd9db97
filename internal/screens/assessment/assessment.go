// Package assessment is the screen that pages through the question catalog
// and records one answer per question.
package assessment

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	collect "github.com/abhisek/careerfit/internal/assessment"
	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/router"
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/store"
	"github.com/abhisek/careerfit/internal/ui/components"
	"github.com/abhisek/careerfit/internal/ui/layout"
)

// AssessmentScreen collects answers and hands the saved record to the
// results screen.
type AssessmentScreen struct {
	env        screen.Env
	state      *collect.State
	choice     components.MultiChoice
	onComplete func(*store.Record) screen.Screen

	// sectionChanged is set for the first question of a new section.
	sectionChanged bool
	saving         bool
	err            error
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)
var _ screen.StatusProvider = (*AssessmentScreen)(nil)

// New creates an assessment positioned at the first question. onComplete
// builds the screen shown after the answers are saved.
func New(env screen.Env, onComplete func(*store.Record) screen.Screen) *AssessmentScreen {
	cat := env.Catalog
	if cat == nil {
		cat = catalog.Default()
		env.Catalog = cat
	}
	s := &AssessmentScreen{
		env:        env,
		state:      collect.New(cat),
		onComplete: onComplete,
	}
	s.loadQuestion()
	return s
}

func (s *AssessmentScreen) Init() tea.Cmd {
	s.env.Logger().Info("assessment started", zap.Int("questions", s.state.Total()))
	return nil
}

func (s *AssessmentScreen) Title() string {
	return "Assessment"
}

func (s *AssessmentScreen) Status() string {
	return fmt.Sprintf("%d/%d answered", s.state.Answered(), s.state.Total())
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	if s.err != nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Retry save"},
			{Key: "Esc", Description: "Abandon"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter/1-5", Description: "Choose"},
		{Key: "→/n", Description: "Next"},
		{Key: "←/p", Description: "Previous"},
		{Key: "Esc", Description: "Abandon"},
	}
}

// loadQuestion rebuilds the selector for the current position, restoring
// any answer already recorded there.
func (s *AssessmentScreen) loadQuestion() {
	q := s.state.Current()

	labels := make([]string, len(q.Options))
	chosen := -1
	selected, hasAnswer := s.state.Selected()
	for i, o := range q.Options {
		labels[i] = o.Text
		if hasAnswer && o.Value == selected {
			chosen = i
		}
	}
	s.choice = components.NewMultiChoice(q.Prompt, labels, chosen)
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		return s.handleSaved(msg)
	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *AssessmentScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.saving {
		return s, nil
	}
	if s.err != nil {
		if msg.String() == "enter" {
			return s, s.save()
		}
		return s, nil
	}

	switch msg.String() {
	case "right", "n", "tab":
		return s.next()
	case "left", "p", "shift+tab":
		s.prev()
		return s, nil
	case "enter":
		// Enter on the option already chosen confirms it.
		if s.choice.HasChoice() && s.choice.Cursor == s.choice.Chosen {
			return s.next()
		}
	}

	prevChosen := s.choice.Chosen
	s.choice, _ = s.choice.Update(msg)
	if s.choice.Chosen != prevChosen && s.choice.HasChoice() {
		s.record(s.choice.Chosen)
	}
	return s, nil
}

// record stores the option at index i as the current answer.
func (s *AssessmentScreen) record(i int) {
	q := s.state.Current()
	if i < 0 || i >= len(q.Options) {
		return
	}
	if err := s.state.Select(q.Options[i].Value); err != nil {
		s.env.Logger().Warn("rejected answer",
			zap.String("question", q.ID), zap.Error(err))
	}
}

func (s *AssessmentScreen) next() (screen.Screen, tea.Cmd) {
	tr, err := s.state.Next()
	if err != nil {
		// Unanswered: stay put, the Next button shows as disabled.
		return s, nil
	}

	switch tr {
	case collect.TransitionComplete:
		s.env.Logger().Info("assessment completed", zap.Int("answered", s.state.Answered()))
		return s, s.save()
	case collect.TransitionSection:
		s.sectionChanged = true
	default:
		s.sectionChanged = false
	}
	s.loadQuestion()
	return s, nil
}

func (s *AssessmentScreen) prev() {
	if s.state.Prev() {
		s.sectionChanged = false
		s.loadQuestion()
	}
}

// save persists the answers off the update loop.
func (s *AssessmentScreen) save() tea.Cmd {
	s.saving = true
	s.err = nil
	st := s.env.Store
	answers := s.state.Answers()
	return func() tea.Msg {
		if st == nil {
			return savedMsg{owner: s, Record: &store.Record{Version: store.RecordVersion, Answers: answers}}
		}
		rec, err := st.Save(context.Background(), answers)
		return savedMsg{owner: s, Record: rec, Err: err}
	}
}

func (s *AssessmentScreen) handleSaved(msg savedMsg) (screen.Screen, tea.Cmd) {
	// A reply from an abandoned attempt must not complete this one.
	if msg.owner != s || !s.saving {
		s.env.Logger().Debug("dropping save result from another attempt")
		return s, nil
	}
	s.saving = false
	if msg.Err != nil {
		s.err = msg.Err
		s.env.Logger().Error("save answers", zap.Error(msg.Err))
		return s, nil
	}
	if s.onComplete == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	next := s.onComplete(msg.Record)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// Complete reports whether every question has been answered and advanced past.
func (s *AssessmentScreen) Complete() bool {
	return s.state.Phase() == collect.PhaseComplete
}
