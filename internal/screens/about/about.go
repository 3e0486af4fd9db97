// Package about shows a description of the Compliance Automation
// Specialist role and what the assessment measures.
package about

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/ui/layout"
	"github.com/abhisek/careerfit/internal/ui/theme"
)

const roleSummary = "Compliance Automation Specialists are at the forefront of regulatory " +
	"technology, combining deep compliance knowledge with automation expertise to " +
	"streamline regulatory processes, reduce manual errors, and enhance " +
	"organizational efficiency."

var responsibilities = []string{
	"Automate compliance monitoring and reporting",
	"Develop risk assessment automation tools",
	"Implement GRC software solutions",
	"Design compliance workflow automation",
}

var industries = []string{
	"Financial Services & Banking",
	"Healthcare & Life Sciences",
	"Technology & Software",
	"Manufacturing & Energy",
}

type feature struct {
	title, description string
}

var features = []feature{
	{"Psychometric Analysis", "Comprehensive personality and cognitive style assessment"},
	{"Technical Aptitude", "Evaluate logical reasoning, programming, and domain knowledge"},
	{"WISCAR Framework", "Will, Interest, Skill, Cognitive readiness, Ability to learn, Real-world alignment"},
	{"Career Guidance", "Personalized recommendations and learning pathways"},
}

// AboutScreen is a scrollable description of the role.
type AboutScreen struct {
	vp viewport.Model
}

var _ screen.Screen = (*AboutScreen)(nil)
var _ screen.KeyHintProvider = (*AboutScreen)(nil)

// New creates the about screen.
func New() *AboutScreen {
	return &AboutScreen{vp: viewport.New()}
}

func (a *AboutScreen) Init() tea.Cmd {
	return nil
}

func (a *AboutScreen) Title() string {
	return "About the Role"
}

func (a *AboutScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (a *AboutScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	a.vp, cmd = a.vp.Update(msg)
	return a, cmd
}

func (a *AboutScreen) View(width, height int) string {
	cw := layout.ContentWidth(width)
	a.vp.SetWidth(width)
	a.vp.SetHeight(height)
	a.vp.SetContent(lipgloss.PlaceHorizontal(width, lipgloss.Center, Content(cw)))
	return a.vp.View()
}

// Content renders the about text at width cw.
func Content(cw int) string {
	check := lipgloss.NewStyle().Foreground(theme.Success).Render("✓ ")
	list := func(items []string) string {
		lines := make([]string, len(items))
		for i, it := range items {
			lines[i] = "  " + check + theme.Body.Render(it)
		}
		return strings.Join(lines, "\n")
	}

	var b strings.Builder
	b.WriteString(theme.Heading.Render("About the Role"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Width(cw).Render(roleSummary))
	b.WriteString("\n\n")
	b.WriteString(theme.Heading.Render("Key Responsibilities"))
	b.WriteString("\n")
	b.WriteString(list(responsibilities))
	b.WriteString("\n\n")
	b.WriteString(theme.Heading.Render("Industries"))
	b.WriteString("\n")
	b.WriteString(list(industries))
	b.WriteString("\n\n")
	b.WriteString(theme.Heading.Render("What the Assessment Covers"))
	b.WriteString("\n")
	for _, f := range features {
		b.WriteString("  ")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(f.title))
		b.WriteString("\n    ")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw - 4).Render(f.description))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Width(cw).Render(b.String())
}
