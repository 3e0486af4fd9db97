package about

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestContent(t *testing.T) {
	c := Content(76)
	for _, want := range []string{
		"About the Role",
		"Implement GRC software solutions",
		"Financial Services & Banking",
		"WISCAR Framework",
	} {
		if !strings.Contains(c, want) {
			t.Errorf("content missing %q", want)
		}
	}
}

func TestScrolls(t *testing.T) {
	a := New()
	first := a.View(80, 5)

	a.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	a.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	if a.View(80, 5) == first {
		t.Error("expected view to change after scrolling")
	}
}
