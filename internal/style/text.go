package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Text is a lipgloss style plus the hidden attribute, which lipgloss lacks
type Text struct {
	Style  lipgloss.Style
	Hidden bool
}

// Render renders s, blanking it out when hidden
func (t Text) Render(s string) string {
	if t.Hidden {
		s = blank(s)
	}
	return t.Style.Render(s)
}

// Mask blanks s when hidden and returns it unstyled otherwise, for
// content another component styles itself
func (t Text) Mask(s string) string {
	if t.Hidden {
		return blank(s)
	}
	return s
}

// Bold returns a copy with bold enabled
func (t Text) Bold() Text {
	t.Style = t.Style.Bold(true)
	return t
}

// Reverse returns a copy with reverse video enabled
func (t Text) Reverse() Text {
	t.Style = t.Style.Reverse(true)
	return t
}

func blank(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.Repeat(" ", lipgloss.Width(line))
	}
	return strings.Join(lines, "\n")
}
