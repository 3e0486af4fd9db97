package assessment

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	collect "github.com/abhisek/careerfit/internal/assessment"
	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/ui/components"
	"github.com/abhisek/careerfit/internal/ui/layout"
	"github.com/abhisek/careerfit/internal/ui/theme"
)

func (s *AssessmentScreen) View(width, height int) string {
	cw := layout.ContentWidth(width)

	if s.saving || (s.state.Phase() == collect.PhaseComplete && s.err == nil) {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Calculating your results..."))
	}

	var sections []string
	sections = append(sections, s.renderHeader(cw))
	if s.err != nil {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Width(cw).
			Render("⚠ Could not save your answers: "+s.err.Error()+"\nPress Enter to try again."))
	} else {
		sections = append(sections, s.renderQuestion(cw), s.renderNav())
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		lipgloss.NewStyle().Width(cw).Render(content))
}

func (s *AssessmentScreen) renderHeader(cw int) string {
	pos := s.state.Position()
	sections := catalog.AllSections()
	sectionNo := 1
	for i, sec := range sections {
		if sec == pos.Section {
			sectionNo = i + 1
		}
	}

	title := theme.Heading.Render(fmt.Sprintf("Section %d of %d: %s",
		sectionNo, len(sections), pos.Section.DisplayName()))
	if s.sectionChanged {
		title += "  " + lipgloss.NewStyle().Foreground(theme.Accent).Render("new section")
	}

	barWidth := cw - 30
	counter := theme.Hint.Render(fmt.Sprintf("%d of %d questions completed",
		s.state.Answered(), s.state.Total()))

	return title + "\n" +
		components.ProgressBar(s.state.Answered(), s.state.Total(), barWidth) + "  " + counter
}

func (s *AssessmentScreen) renderQuestion(cw int) string {
	pos := s.state.Position()
	q := s.state.Current()

	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Question %d of %d · %s", pos.Index+1, s.state.SectionLen(), q.Category))

	choice := s.choice
	choice.Width = cw - 6

	return theme.Card.Width(cw).Render(label + "\n\n" + strings.TrimRight(choice.View(), "\n"))
}

func (s *AssessmentScreen) renderNav() string {
	nextLabel := "Next →"
	if s.state.IsLast() {
		nextLabel = "View Results →"
	}
	return components.ButtonRow(
		components.Button{Label: "← Previous", Disabled: !s.state.CanGoBack()},
		components.Button{Label: nextLabel, Focused: s.state.CanAdvance(), Disabled: !s.state.CanAdvance()},
	)
}
