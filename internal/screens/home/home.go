package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/router"
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/screens/about"
	"github.com/abhisek/careerfit/internal/screens/flow"
	"github.com/abhisek/careerfit/internal/ui/components"
	"github.com/abhisek/careerfit/internal/ui/layout"
)

// Menu item positions.
const (
	itemStart = iota
	itemResults
	itemAbout
	itemExit
)

// recordStatusMsg reports whether a completed assessment is stored.
type recordStatusMsg struct {
	Found bool
	Err   error
}

// HomeScreen is the start state: an introduction and the main menu.
type HomeScreen struct {
	env       screen.Env
	menu      components.Menu
	hasRecord bool
	err       error
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. View Results stays disabled until a stored
// record is found.
func New(env screen.Env) *HomeScreen {
	h := &HomeScreen{env: env}

	items := []components.MenuItem{
		itemStart: {Label: "Start Assessment", Action: func() tea.Cmd {
			return push(flow.Assessment(env))
		}},
		itemResults: {Label: "View Results", Disabled: true, Action: func() tea.Cmd {
			return push(flow.Results(env))
		}},
		itemAbout: {Label: "About the Role", Action: func() tea.Cmd {
			return push(about.New())
		}},
		itemExit: {Label: "Exit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.checkRecord()
}

// checkRecord looks for a stored record off the update loop.
func (h *HomeScreen) checkRecord() tea.Cmd {
	st := h.env.Store
	if st == nil {
		return nil
	}
	return func() tea.Msg {
		rec, err := st.Load(context.Background())
		return recordStatusMsg{Found: rec != nil, Err: err}
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "q", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case recordStatusMsg:
		h.err = msg.Err
		if msg.Err != nil {
			h.env.Logger().Error("check stored results", zap.Error(msg.Err))
		}
		h.hasRecord = msg.Found
		h.menu.SetDisabled(itemResults, !msg.Found)
		return h, nil

	case router.ResumeMsg:
		return h, h.checkRecord()

	case tea.KeyPressMsg:
		if msg.String() == "q" {
			return h, tea.Quit
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) ||
		layout.IsCompactWidth(width)
	cw := layout.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw))
	if !compact {
		sections = append(sections, renderIntro(cw), renderStats(h.env, cw))
	}
	if h.err != nil {
		sections = append(sections, renderError(h.err, cw))
	} else if h.hasRecord {
		sections = append(sections, renderResumeNote(cw))
	}
	sections = append(sections, renderMenu(h.menu, cw))

	return renderPanel(strings.Join(sections, "\n\n"), width, height)
}
