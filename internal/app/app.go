// Package app holds the root Bubble Tea model.
package app

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/router"
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/screens/flow"
	"github.com/abhisek/careerfit/internal/screens/home"
	"github.com/abhisek/careerfit/internal/screens/welcome"
	"github.com/abhisek/careerfit/internal/ui/layout"
)

// Start selects the first screen shown.
type Start int

const (
	// StartWelcome plays the intro animation, then shows the home menu.
	StartWelcome Start = iota
	// StartHome opens directly on the home menu.
	StartHome
	// StartAssessment opens on the first question, with home underneath.
	StartAssessment
)

// Options configures the application.
type Options struct {
	Env   screen.Env
	Start Start

	// ProgramOptions are passed through to tea.NewProgram.
	ProgramOptions []tea.ProgramOption
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	log    *zap.Logger
	init   []tea.Cmd
	width  int
	height int
}

// newAppModel builds the screen stack for the requested start screen.
func newAppModel(opts Options) AppModel {
	env := opts.Env
	newHome := func() screen.Screen { return home.New(env) }

	m := AppModel{log: env.Logger().Named("app")}
	switch opts.Start {
	case StartHome:
		h := newHome()
		m.router = router.New(h)
		m.init = append(m.init, h.Init())
	case StartAssessment:
		h := newHome()
		m.router = router.New(h)
		m.init = append(m.init, h.Init(), m.router.Push(flow.Assessment(env)))
	default:
		w := welcome.New(newHome)
		m.router = router.New(w)
		m.init = append(m.init, w.Init())
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.init...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				m.log.Debug("back", zap.String("from", m.router.Active().Title()))
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// footerHints prefers the active screen's hints, then adds the global keys.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	} else if m.router.Depth() > 1 {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the header, active screen and footer.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if p, ok := active.(screen.StatusProvider); ok {
			status = p.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	log := opts.Env.Logger()
	popts := append([]tea.ProgramOption{tea.WithContext(ctx)}, opts.ProgramOptions...)

	p := tea.NewProgram(newAppModel(opts), popts...)
	log.Info("starting ui", zap.Int("start", int(opts.Start)))

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		log.Error("ui exited", zap.Error(err))
		return fmt.Errorf("run ui: %w", err)
	}
	log.Info("ui exited")
	return nil
}
