// Package report renders a scored assessment for the terminal and as a
// Markdown document.
package report

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerfit/internal/scoring"
	"github.com/abhisek/careerfit/internal/ui/components"
	"github.com/abhisek/careerfit/internal/ui/theme"
)

const (
	Heading    = "Your Assessment Results"
	SubHeading = "Compliance Automation Specialist Readiness Report"
)

// RecommendationColor returns the badge color for a recommendation.
func RecommendationColor(r scoring.Recommendation) color.Color {
	switch r {
	case scoring.RecommendAffirmative:
		return theme.Success
	case scoring.RecommendConditional:
		return theme.Warning
	case scoring.RecommendNegative:
		return theme.Error
	default:
		return theme.TextDim
	}
}

// Render lays out the full report at the given width.
func Render(r *scoring.Report, width int) string {
	if r == nil {
		return ""
	}

	sections := []string{
		renderTitle(width),
		renderOverall(r, width),
		renderWISCAR(r, width),
		renderBreakdown(r, width),
		renderCareers(r, width),
		renderLearningPath(r, width),
		renderInsights(r, width),
	}
	return strings.Join(sections, "\n\n")
}

func renderTitle(width int) string {
	return theme.Title.Width(width).Render(Heading) + "\n" +
		theme.Subtitle.Width(width).Render(SubHeading)
}

func sectionHeader(title string, width int) string {
	divider := lipgloss.NewStyle().Foreground(theme.Border).
		Render(strings.Repeat("─", max(width-lipgloss.Width(title)-1, 0)))
	return theme.Heading.Render(title) + " " + divider
}

func wrap(s string, width int) string {
	return theme.Body.Width(width).Render(s)
}

func renderOverall(r *scoring.Report, width int) string {
	badge := lipgloss.NewStyle().
		Background(RecommendationColor(r.Recommendation)).
		Foreground(theme.BgDark).
		Bold(true).
		Padding(0, 2).
		Render(r.Recommendation.Label())
	headline := lipgloss.NewStyle().
		Foreground(RecommendationColor(r.Recommendation)).
		Bold(true).
		Render(r.Recommendation.Headline())

	var b strings.Builder
	b.WriteString(sectionHeader("Overall Recommendation", width))
	b.WriteString("\n\n")
	b.WriteString(badge + "  " + headline)
	b.WriteString("\n\n")
	b.WriteString(components.ScoreBar("Overall Confidence Score", r.OverallScore, width))
	b.WriteString("\n\n")
	b.WriteString(wrap(r.Summary, width))
	return b.String()
}

func renderWISCAR(r *scoring.Report, width int) string {
	lines := []string{sectionHeader("WISCAR Framework Analysis", width), ""}
	for _, d := range r.WISCAR {
		lines = append(lines, components.ScoreBar(string(d.Dimension), d.Score, width))
	}
	return strings.Join(lines, "\n")
}

func renderBreakdown(r *scoring.Report, width int) string {
	lines := []string{sectionHeader("Score Breakdown", width), ""}
	for _, c := range r.Breakdown {
		lines = append(lines, components.ScoreBar(c.Category, c.Score, width))
	}
	return strings.Join(lines, "\n")
}

func renderCareers(r *scoring.Report, width int) string {
	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim).Width(width - 4)

	lines := []string{sectionHeader("Top Career Paths", width), ""}
	for _, p := range r.CareerPaths {
		match := lipgloss.NewStyle().
			Foreground(theme.ScoreColor(p.Match)).
			Bold(true).
			Render(fmt.Sprintf("%d%% match", p.Match))
		lines = append(lines,
			title.Render(p.Title)+"  "+match,
			"  "+desc.Render(p.Description),
			"")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func renderLearningPath(r *scoring.Report, width int) string {
	step := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	phase := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	skill := lipgloss.NewStyle().Foreground(theme.TextDim)

	lines := []string{sectionHeader("Recommended Learning Path", width), ""}
	for i, p := range r.LearningPath {
		lines = append(lines, step.Render(fmt.Sprintf("%d.", i+1))+" "+phase.Render(p.Phase))
		for _, s := range p.Skills {
			lines = append(lines, skill.Render("     • "+s))
		}
		lines = append(lines, "")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func renderInsights(r *scoring.Report, width int) string {
	good := lipgloss.NewStyle().Foreground(theme.Success)
	warn := lipgloss.NewStyle().Foreground(theme.Warning)
	sub := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	lines := []string{sectionHeader("Detailed Insights & Next Steps", width), ""}

	lines = append(lines, sub.Render("Strengths"))
	for _, s := range r.Strengths {
		lines = append(lines, good.Render("  ✓ ")+theme.Body.Render(s))
	}

	lines = append(lines, "", sub.Render("Areas for Improvement"))
	for _, s := range r.Improvements {
		lines = append(lines, warn.Render("  ! ")+theme.Body.Render(s))
	}

	lines = append(lines, "", sub.Render("Next Steps"), wrap(r.NextSteps, width))
	return strings.Join(lines, "\n")
}
