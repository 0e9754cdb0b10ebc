package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/nibble/internal/style"
)

// Fixed styles that do not follow the user's style flags
var (
	// placeholderStyle is used for input placeholders and counters
	placeholderStyle = lipgloss.NewStyle().Foreground(style.DarkGray.Lipgloss())

	// placeholderCursorStyle marks the cursor in front of a placeholder
	placeholderCursorStyle = placeholderStyle.Reverse(true)
)

// Layout constants
const (
	BorderWidth   = 2 // Columns or rows taken by a visible border
	ButtonGap     = 2 // Columns between confirm buttons
	ButtonMargin  = 2 // Padding columns around a button label
	ConfirmChrome = 2 // Question line and spacer above the buttons
)
