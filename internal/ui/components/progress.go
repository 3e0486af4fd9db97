package components

import (
	"fmt"

	"charm.land/bubbles/v2/progress"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerfit/internal/ui/theme"
)

// labelWidth is the fixed column reserved for score labels so bars align.
const labelWidth = 26

// ScoreBar renders a labelled 0-100 score as a solid bar colored by band.
func ScoreBar(label string, score, width int) string {
	barWidth := width - labelWidth - 6
	if barWidth < 4 {
		barWidth = 4
	}

	bar := progress.New(
		progress.WithWidth(barWidth),
		progress.WithColors(theme.ScoreColor(score)),
		progress.WithoutPercentage(),
	)

	name := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(labelWidth).
		Render(label)
	pct := lipgloss.NewStyle().
		Foreground(theme.ScoreColor(score)).
		Bold(true).
		Render(fmt.Sprintf("%4d%%", score))

	return name + bar.ViewAs(clampPercent(float64(score)/100)) + " " + pct
}

// ProgressBar renders completion of a task, e.g. answered questions.
func ProgressBar(done, total, width int) string {
	if width < 10 {
		width = 10
	}
	bar := progress.New(
		progress.WithWidth(width),
		progress.WithColors(theme.Primary, theme.Secondary),
		progress.WithoutPercentage(),
	)

	pct := 0.0
	if total > 0 {
		pct = float64(done) / float64(total)
	}
	return bar.ViewAs(clampPercent(pct))
}

func clampPercent(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
