package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/ui/components"
	"github.com/abhisek/careerfit/internal/ui/theme"
)

const intro = "Discover your potential for a career in compliance automation. " +
	"Get personalized insights, career recommendations, and a tailored " +
	"learning roadmap based on the WISCAR framework."

// renderTitle returns the two-line product heading.
func renderTitle(cw int) string {
	return theme.Title.Width(cw).Render("Compliance Automation Specialist") + "\n" +
		theme.Subtitle.Width(cw).Render("Readiness Assessment")
}

func renderIntro(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(cw).
		Align(lipgloss.Center).
		Render(intro)
}

// renderStats renders the at-a-glance facts in a double-bordered box.
func renderStats(env screen.Env, cw int) string {
	questions := 0
	if env.Catalog != nil {
		questions = env.Catalog.Len()
	}

	value := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	label := lipgloss.NewStyle().Foreground(theme.TextDim)

	stat := func(v, l string) string {
		return value.Render(v) + " " + label.Render(l)
	}

	line := stat(fmt.Sprintf("%d", questions), "questions") + "   " +
		stat(fmt.Sprintf("%d", len(catalog.AllSections())), "sections") + "   " +
		stat("6", "WISCAR dimensions") + "   " +
		stat("~10", "minutes")

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw).
		Align(lipgloss.Center).
		Render(line)
}

func renderResumeNote(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Success).
		Width(cw).
		Align(lipgloss.Center).
		Render("✓ Your last results are saved. Pick View Results to see them again.")
}

func renderError(err error, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Error).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Could not read saved results: " + err.Error())
}

// menuWidth is the fixed width of the menu block so items left-align.
const menuWidth = 24

func renderMenu(m components.Menu, cw int) string {
	block := lipgloss.NewStyle().Width(menuWidth).Render(m.View())
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, block)
}

// renderPanel centers content in a rounded frame filling the content area.
func renderPanel(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
