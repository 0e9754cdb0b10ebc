package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/nibble/internal/applog"
	"github.com/studiowebux/nibble/internal/keybinds"
	"github.com/studiowebux/nibble/internal/terminal"
)

// InputOptions configures the text input widget
type InputOptions struct {
	Common
	Title       string
	Prompt      string
	Placeholder string
	Value       string
	Password    bool
	// MaxLength limits the value length in characters; 0 means unlimited
	MaxLength int
	ShowCount bool
	// Clipboard copies the submitted value to the system clipboard
	Clipboard bool
}

// InputModel is a single line text field
type InputModel struct {
	opts    InputOptions
	input   textinput.Model
	screen  screen
	outcome outcome
}

// NewInput creates an input model with the cursor at the end of the
// initial value
func NewInput(opts InputOptions) *InputModel {
	opts.Common = opts.Common.withDefaults()

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = opts.MaxLength
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.SetValue(opts.Value)
	ti.CursorEnd()
	ti.Focus()

	return &InputModel{opts: opts, input: ti}
}

// Value returns the current text
func (m *InputModel) Value() string {
	return m.input.Value()
}

func (m *InputModel) Init() tea.Cmd {
	return nil
}

func (m *InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.screen.resize(msg, m.opts.Fullscreen, m.opts.Height)
		return m, nil

	case tea.KeyMsg:
		action, ok := m.opts.Keys.Match(keybinds.ContextInput, msg.String())
		if ok {
			switch action {
			case keybinds.ActionSubmit:
				return m, finish(&m.outcome, outcomeDone)
			case keybinds.ActionCancel:
				return m, finish(&m.outcome, outcomeCancelled)
			case keybinds.ActionQuitForce:
				return m, finish(&m.outcome, outcomeAborted)
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *InputModel) View() string {
	if !m.screen.ready || m.outcome != outcomeRunning {
		return ""
	}

	th := m.opts.Theme
	width, height := m.screen.width, m.screen.height

	var promptCol string
	if m.opts.Prompt != "" {
		promptW := min(lipgloss.Width(m.opts.Prompt)+2, width)
		promptCol = terminal.Fit(th.Text.Bold().Render(m.opts.Prompt+" "), promptW, height)
		width -= promptW
	}

	field := m.renderLine()
	if th.Border.Visible() || m.opts.Title != "" {
		field = renderFrame(th, m.opts.Title, field, width, height)
	} else {
		field = terminal.Fit(field, width, height)
	}

	if promptCol == "" {
		return field
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, promptCol, field)
}

// renderLine draws the value with a reverse-video block cursor, or the
// placeholder when empty
func (m *InputModel) renderLine() string {
	text := m.opts.Theme.Text
	value := []rune(m.input.Value())

	var sb strings.Builder
	if len(value) == 0 && m.opts.Placeholder != "" {
		sb.WriteString(placeholderCursorStyle.Render(" "))
		sb.WriteString(placeholderStyle.Render(m.opts.Placeholder))
	} else {
		if m.opts.Password {
			value = []rune(strings.Repeat("*", len(value)))
		}
		pos := m.input.Position()
		cursorStyle := text.Reverse()

		sb.WriteString(text.Render(string(value[:min(pos, len(value))])))
		if pos < len(value) {
			sb.WriteString(cursorStyle.Render(string(value[pos])))
			sb.WriteString(text.Render(string(value[pos+1:])))
		} else {
			sb.WriteString(cursorStyle.Render(" "))
		}
	}

	if m.opts.ShowCount {
		n := len([]rune(m.input.Value()))
		count := fmt.Sprintf(" (%d)", n)
		if m.opts.MaxLength > 0 {
			count = fmt.Sprintf(" (%d/%d)", n, m.opts.MaxLength)
		}
		sb.WriteString(placeholderStyle.Render(count))
	}

	return sb.String()
}

// RunInput reads a line of text. The viewport is cleared on exit.
// ErrCancelled is returned for esc and ErrAborted for ctrl+c.
func RunInput(ctx context.Context, opts InputOptions) (string, error) {
	final, err := terminal.Run(ctx, NewInput(opts), opts.terminalOptions(opts.Height))
	if err != nil {
		return "", err
	}

	m := final.(*InputModel)
	if err := m.outcome.err(); err != nil {
		return "", err
	}

	value := m.Value()
	if opts.Clipboard && !opts.Password {
		if err := clipboard.WriteAll(value); err != nil {
			applog.Error("clipboard copy failed", err)
		}
	}
	applog.Event("widget", "input submitted", "length", len([]rune(value)))
	return value, nil
}
