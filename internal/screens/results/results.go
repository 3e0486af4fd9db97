// Package results is the screen that scores the stored answers and shows
// the report.
package results

import (
	"context"
	"fmt"
	"path/filepath"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/report"
	"github.com/abhisek/careerfit/internal/router"
	"github.com/abhisek/careerfit/internal/scoring"
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/store"
	"github.com/abhisek/careerfit/internal/ui/layout"
	"github.com/abhisek/careerfit/internal/ui/theme"
)

// ReportFileName is the base name for saved Markdown reports.
const ReportFileName = "careerfit-report"

// ResultsScreen renders the report for the stored record.
type ResultsScreen struct {
	env    screen.Env
	retake func() screen.Screen

	loading bool
	record  *store.Record
	report  *scoring.Report
	err     error
	notice  string

	vp viewport.Model
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen. If rec is nil the record is loaded from
// the store; when none exists the screen steps back to where it came from.
// retake builds a fresh assessment screen.
func New(env screen.Env, rec *store.Record, retake func() screen.Screen) *ResultsScreen {
	if env.Catalog == nil {
		env.Catalog = catalog.Default()
	}
	r := &ResultsScreen{
		env:    env,
		retake: retake,
		vp:     viewport.New(),
	}
	if rec != nil {
		r.setRecord(rec)
	} else {
		r.loading = true
	}
	return r
}

func (r *ResultsScreen) setRecord(rec *store.Record) {
	r.record = rec
	r.report = scoring.Calculate(rec.Answers, r.env.Catalog)
	r.loading = false
	r.env.Logger().Info("scored assessment",
		zap.String("attempt_id", rec.AttemptID),
		zap.Int("overall", r.report.OverallScore),
		zap.String("recommendation", string(r.report.Recommendation)))
}

func (r *ResultsScreen) Init() tea.Cmd {
	if !r.loading {
		return nil
	}
	st := r.env.Store
	return func() tea.Msg {
		if st == nil {
			return loadedMsg{}
		}
		rec, err := st.Load(context.Background())
		return loadedMsg{Record: rec, Err: err}
	}
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "r", Description: "Retake"},
		{Key: "s", Description: "Save report"},
		{Key: "Esc", Description: "Home"},
	}
}

// Report returns the computed report, or nil while loading.
func (r *ResultsScreen) Report() *scoring.Report {
	return r.report
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		return r.handleLoaded(msg)

	case exportedMsg:
		if msg.Err != nil {
			r.notice = "⚠ " + msg.Err.Error()
			r.env.Logger().Error("save report", zap.Error(msg.Err))
		} else {
			r.notice = "✓ Report saved to " + msg.Path
			r.env.Logger().Info("saved report", zap.String("path", msg.Path))
		}
		return r, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "r":
			if r.retake != nil {
				next := r.retake()
				return r, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
			}
			return r, nil
		case "s":
			return r, r.export()
		}
	}

	var cmd tea.Cmd
	r.vp, cmd = r.vp.Update(msg)
	return r, cmd
}

func (r *ResultsScreen) handleLoaded(msg loadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		r.loading = false
		r.err = msg.Err
		r.env.Logger().Error("load answers", zap.Error(msg.Err))
		return r, nil
	}
	if msg.Record == nil {
		// Nothing to score: go back to the start.
		r.env.Logger().Warn("no stored answers, returning to start")
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	}
	r.setRecord(msg.Record)
	return r, nil
}

// export writes the Markdown report into the report directory.
func (r *ResultsScreen) export() tea.Cmd {
	if r.report == nil {
		return nil
	}
	rep := r.report
	meta := report.Meta{AttemptID: r.record.AttemptID, CompletedAt: r.record.CompletedAt}
	dir := r.env.ReportDir
	if dir == "" {
		dir = "."
	}
	name := ReportFileName + ".md"
	if !meta.CompletedAt.IsZero() {
		name = fmt.Sprintf("%s-%s.md", ReportFileName, meta.CompletedAt.UTC().Format("20060102-150405"))
	}
	path := filepath.Join(dir, name)

	return func() tea.Msg {
		return exportedMsg{Path: path, Err: report.WriteMarkdown(path, rep, meta)}
	}
}

func (r *ResultsScreen) View(width, height int) string {
	switch {
	case r.err != nil:
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render("⚠ Could not load your answers: "+r.err.Error()))
	case r.report == nil:
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Calculating your results..."))
	}

	vpHeight := height
	var notice string
	if r.notice != "" {
		notice = theme.Hint.Render(r.notice)
		vpHeight -= lipgloss.Height(notice)
	}

	cw := layout.ContentWidth(width)
	r.vp.SetWidth(width)
	r.vp.SetHeight(vpHeight)
	r.vp.SetContent(lipgloss.PlaceHorizontal(width, lipgloss.Center, report.Render(r.report, cw)))

	if notice == "" {
		return r.vp.View()
	}
	return r.vp.View() + "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, notice)
}
