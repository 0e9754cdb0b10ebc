package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/nibble/internal/style"
)

// button is a bordered box with a centered label. The selected button is
// drawn in reverse video.
type button struct {
	label    string
	selected bool
}

// render draws the button width x height. Buttons lower than three lines
// have no room for a border and show the label only.
func (b button) render(th style.Theme, width, height int) string {
	text := th.Text
	if b.selected {
		text = text.Reverse()
	}

	s := text.Style.
		Align(lipgloss.Center, lipgloss.Center)

	if height < 3 {
		return s.Width(width).Height(height).Render(b.label)
	}

	border := lipgloss.NormalBorder()
	if th.Border.Visible() {
		border = th.Border.Lipgloss()
	}

	return s.
		Border(border).
		Width(max(width-BorderWidth, 1)).
		Height(height - BorderWidth).
		Render(b.label)
}

// buttonWidth fits the longer of two labels plus a margin, so both
// buttons are the same size
func buttonWidth(a, b string) int {
	return max(lipgloss.Width(a), lipgloss.Width(b)) + ButtonMargin + BorderWidth
}
