// Package terminal owns the lifecycle of the single terminal handle a
// widget draws into: inline or alternate-screen viewport, raw mode and
// cursor visibility (delegated to Bubble Tea), and sizing helpers.
package terminal

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/studiowebux/nibble/internal/types"
	"golang.org/x/term"
)

// Viewport describes where a widget is drawn
type Viewport struct {
	// Fullscreen draws on the alternate screen instead of inline
	Fullscreen bool
	// Height is the number of lines reserved for an inline viewport
	Height int
}

// Validate rejects an inline viewport without lines
func (v Viewport) Validate() error {
	if !v.Fullscreen && v.Height <= 0 {
		return types.New(types.KindInvalidDimensions, "height must be greater than 0")
	}
	return nil
}

// Options configures a program run
type Options struct {
	Viewport Viewport
	Input    io.Reader
	Output   io.Writer
}

// ProgramOptions translates Options into Bubble Tea options
func (o Options) ProgramOptions(ctx context.Context) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if o.Viewport.Fullscreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if o.Input != nil {
		opts = append(opts, tea.WithInput(o.Input))
	}
	if o.Output != nil {
		opts = append(opts, tea.WithOutput(o.Output))
	}
	return opts
}

// Run draws model until it quits and restores the terminal. Raw mode,
// cursor hiding and the alternate screen are all undone by Bubble Tea
// before Run returns, including on error.
func Run(ctx context.Context, model tea.Model, opts Options) (tea.Model, error) {
	if err := opts.Viewport.Validate(); err != nil {
		return nil, err
	}

	p := tea.NewProgram(model, opts.ProgramOptions(ctx)...)
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return final, ctx.Err()
		}
		return final, types.Wrap(types.KindTerminalInit, "", err)
	}
	return final, nil
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// RequireTTY fails when f is not a terminal
func RequireTTY(f *os.File) error {
	if !IsTerminal(f) {
		return types.Newf(types.KindTerminalInit, "%s is not a terminal", f.Name())
	}
	return nil
}

// DrawTarget returns the file widgets draw on. When stdout is captured,
// e.g. name=$(nibble input), drawing moves to stderr so stdout only
// carries the result.
func DrawTarget() *os.File {
	if !IsTerminal(os.Stdout) && IsTerminal(os.Stderr) {
		return os.Stderr
	}
	return os.Stdout
}

// UseOutput points the default lipgloss renderer at f so the color
// profile is detected on the file actually drawn on
func UseOutput(f *os.File) {
	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(f))
}

// DisableColor forces the ASCII color profile for all lipgloss rendering
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ColorDisabledByEnv reports whether NO_COLOR is set
func ColorDisabledByEnv() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}
