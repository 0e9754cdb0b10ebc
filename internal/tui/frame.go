package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/studiowebux/nibble/internal/style"
	"github.com/studiowebux/nibble/internal/terminal"
)

// renderFrame draws content inside a width x height box with the title set
// into the top border. Without a border the title, if any, takes the first
// line and content gets the rest.
func renderFrame(th style.Theme, title, content string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	if !th.Border.Visible() {
		if title != "" {
			content = th.BorderStyle.Render(ansi.Truncate(title, width, "")) + "\n" + content
		}
		return terminal.Fit(content, width, height)
	}

	if width < BorderWidth || height < BorderWidth {
		return terminal.Fit("", width, height)
	}

	b := th.Border.Lipgloss()
	innerW, innerH := frameInner(th, width, height)
	paint := th.BorderStyle.Render

	title = ansi.Truncate(title, innerW, "")
	fill := innerW - lipgloss.Width(title)
	top := paint(b.TopLeft+title+strings.Repeat(b.Top, fill)+b.TopRight)
	bottom := paint(b.BottomLeft + strings.Repeat(b.Bottom, innerW) + b.BottomRight)

	lines := make([]string, 0, height)
	lines = append(lines, top)
	if innerH > 0 {
		for _, line := range strings.Split(terminal.Fit(content, innerW, innerH), "\n") {
			lines = append(lines, paint(b.Left)+line+paint(b.Right))
		}
	}
	lines = append(lines, bottom)

	return strings.Join(lines, "\n")
}

// frameInner returns the content size of a frame
func frameInner(th style.Theme, width, height int) (int, int) {
	if !th.Border.Visible() {
		return width, height
	}
	return max(width-BorderWidth, 0), max(height-BorderWidth, 0)
}

// frameContentHeight is the number of content lines a frame leaves,
// accounting for a borderless title line
func frameContentHeight(th style.Theme, title string, height int) int {
	_, h := frameInner(th, 0, height)
	if !th.Border.Visible() && title != "" {
		h--
	}
	return max(h, 0)
}

// padContent surrounds content with pad blank cells on every side and
// returns a block of exactly width x height
func padContent(content string, pad, width, height int) string {
	innerW, innerH := width-2*pad, height-2*pad
	if pad <= 0 {
		return terminal.Fit(content, width, height)
	}
	if innerW < 1 || innerH < 1 {
		return terminal.Fit("", width, height)
	}

	margin := strings.Repeat(" ", pad)
	blank := strings.Repeat(" ", width)

	lines := make([]string, 0, height)
	for range pad {
		lines = append(lines, blank)
	}
	for _, line := range strings.Split(terminal.Fit(content, innerW, innerH), "\n") {
		lines = append(lines, margin+line+margin)
	}
	for range pad {
		lines = append(lines, blank)
	}
	return strings.Join(lines, "\n")
}
