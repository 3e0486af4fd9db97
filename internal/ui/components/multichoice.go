package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerfit/internal/ui/theme"
)

// MultiChoice is a single-select radio list. Moving the cursor does not
// change the choice; enter, space or a digit key does.
type MultiChoice struct {
	Prompt  string
	Options []string
	Cursor  int
	Chosen  int // -1 when nothing is chosen
	Width   int
}

// NewMultiChoice creates a selector. chosen is the index of a previously
// recorded answer, or -1. The cursor starts on it.
func NewMultiChoice(prompt string, options []string, chosen int) MultiChoice {
	if chosen < -1 || chosen >= len(options) {
		chosen = -1
	}
	cursor := chosen
	if cursor < 0 {
		cursor = 0
	}
	return MultiChoice{
		Prompt:  prompt,
		Options: options,
		Cursor:  cursor,
		Chosen:  chosen,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// HasChoice reports whether an option has been chosen.
func (m MultiChoice) HasChoice() bool {
	return m.Chosen >= 0
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "enter", "space":
		if len(m.Options) > 0 {
			m.Chosen = m.Cursor
		}
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Options) {
			m.Cursor = n - 1
			m.Chosen = n - 1
		}
	}

	return m, nil
}

// View renders the prompt and options.
func (m MultiChoice) View() string {
	var b strings.Builder

	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if m.Width > 0 {
		promptStyle = promptStyle.Width(m.Width)
	}
	b.WriteString(promptStyle.Render(m.Prompt))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		mark := "○"
		if i == m.Chosen {
			mark = "●"
		}

		line := cursor + mark + " " + strconv.Itoa(i+1) + ". " + opt

		style := theme.Unselected
		switch {
		case i == m.Chosen:
			style = theme.Chosen
		case i == m.Cursor:
			style = theme.Selected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}
