package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abhisek/careerfit/internal/scoring"
)

// Meta identifies the attempt a report was generated from.
type Meta struct {
	AttemptID   string
	CompletedAt time.Time
}

// Markdown renders the report as a standalone Markdown document.
func Markdown(r *scoring.Report, meta Meta) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", Heading)
	fmt.Fprintf(&b, "_%s_\n\n", SubHeading)
	if !meta.CompletedAt.IsZero() {
		fmt.Fprintf(&b, "Completed: %s\n", meta.CompletedAt.UTC().Format(time.RFC1123))
	}
	if meta.AttemptID != "" {
		fmt.Fprintf(&b, "Attempt: `%s`\n", meta.AttemptID)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Recommendation: %s (%s)\n\n", r.Recommendation.Label(), r.Recommendation.Headline())
	fmt.Fprintf(&b, "**Overall Confidence Score: %d%%**\n\n", r.OverallScore)
	fmt.Fprintf(&b, "%s\n\n", r.Summary)

	b.WriteString("## WISCAR Framework Analysis\n\n")
	b.WriteString("| Dimension | Score |\n|---|---|\n")
	for _, d := range r.WISCAR {
		fmt.Fprintf(&b, "| %s | %d%% |\n", d.Dimension, d.Score)
	}
	b.WriteString("\n")

	b.WriteString("## Score Breakdown\n\n")
	b.WriteString("| Category | Score |\n|---|---|\n")
	for _, c := range r.Breakdown {
		fmt.Fprintf(&b, "| %s | %d%% |\n", c.Category, c.Score)
	}
	b.WriteString("\n")

	b.WriteString("## Top Career Paths\n\n")
	for _, p := range r.CareerPaths {
		fmt.Fprintf(&b, "- **%s** (%d%% match): %s\n", p.Title, p.Match, p.Description)
	}
	b.WriteString("\n")

	b.WriteString("## Recommended Learning Path\n\n")
	for i, p := range r.LearningPath {
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, p.Phase)
		for _, s := range p.Skills {
			fmt.Fprintf(&b, "   - %s\n", s)
		}
	}
	b.WriteString("\n")

	b.WriteString("## Strengths\n\n")
	for _, s := range r.Strengths {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	b.WriteString("\n## Areas for Improvement\n\n")
	for _, s := range r.Improvements {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	fmt.Fprintf(&b, "\n## Next Steps\n\n%s\n", r.NextSteps)

	return b.String()
}

// WriteMarkdown writes the Markdown report to path, creating parent
// directories as needed.
func WriteMarkdown(path string, r *scoring.Report, meta Meta) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(Markdown(r, meta)), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
