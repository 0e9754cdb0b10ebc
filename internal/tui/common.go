package tui

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/nibble/internal/keybinds"
	"github.com/studiowebux/nibble/internal/style"
	"github.com/studiowebux/nibble/internal/terminal"
)

// Widget outcomes that are not failures. The CLI maps them to exit codes.
var (
	// ErrAborted means the user aborted a prompt (ctrl+c, or esc on confirm)
	ErrAborted = errors.New("aborted")
	// ErrDeclined means the negative confirm button was chosen
	ErrDeclined = errors.New("declined")
	// ErrCancelled means the input was dismissed without a value
	ErrCancelled = errors.New("cancelled")
)

// Common holds the settings every widget shares
type Common struct {
	Theme      style.Theme
	Keys       *keybinds.Registry
	Fullscreen bool
	// Height is the inline viewport height in lines
	Height int

	// Input and Output override the terminal, mainly for tests
	Input  io.Reader
	Output io.Writer
}

func (c Common) withDefaults() Common {
	if c.Keys == nil {
		c.Keys = keybinds.NewDefaultRegistry()
	}
	return c
}

// terminalOptions builds the run options for an inline viewport of the
// given height
func (c Common) terminalOptions(height int) terminal.Options {
	return terminal.Options{
		Viewport: terminal.Viewport{Fullscreen: c.Fullscreen, Height: height},
		Input:    c.Input,
		Output:   c.Output,
	}
}

// outcome records how a widget loop ended
type outcome int

const (
	outcomeRunning outcome = iota
	outcomeDone
	outcomeCancelled
	outcomeDeclined
	outcomeAborted
)

func (o outcome) err() error {
	switch o {
	case outcomeAborted:
		return ErrAborted
	case outcomeDeclined:
		return ErrDeclined
	case outcomeCancelled:
		return ErrCancelled
	}
	return nil
}

// screen tracks the drawable area. Inline widgets keep their configured
// height; fullscreen widgets follow the window.
type screen struct {
	width  int
	height int
	ready  bool
}

func (s *screen) resize(msg tea.WindowSizeMsg, fullscreen bool, inlineHeight int) {
	s.width = msg.Width
	s.height = inlineHeight
	if fullscreen {
		s.height = msg.Height
	}
	s.ready = true
}

// finish stores the outcome and stops the program
func finish(o *outcome, result outcome) tea.Cmd {
	*o = result
	return tea.Quit
}
