package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Fit truncates and pads rendered content to exactly width x height cells.
// Lines keep their styling; truncation is ANSI-aware. A non-positive
// width or height leaves that dimension untouched.
func Fit(content string, width, height int) string {
	lines := strings.Split(content, "\n")

	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}

	if width > 0 {
		for i, line := range lines {
			if lipgloss.Width(line) > width {
				line = ansi.Truncate(line, width, "")
			}
			if pad := width - lipgloss.Width(line); pad > 0 {
				line += strings.Repeat(" ", pad)
			}
			lines[i] = line
		}
	}

	return strings.Join(lines, "\n")
}

// PercentOf returns percent% of total, at least 1 when total is positive.
// Zero percent means the whole width.
func PercentOf(total, percent int) int {
	if percent <= 0 || percent >= 100 {
		return total
	}
	w := total * percent / 100
	if w < 1 && total > 0 {
		w = 1
	}
	return w
}
