package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/nibble/internal/applog"
	"github.com/studiowebux/nibble/internal/keybinds"
	"github.com/studiowebux/nibble/internal/terminal"
	"github.com/studiowebux/nibble/internal/types"
)

// BlockOptions configures the block widget
type BlockOptions struct {
	Common
	Title string
	Text  string
	Align lipgloss.Position
	// Width is a percentage of the terminal width; 0 means full width
	Width   int
	Padding int
}

// Validate checks dimensions before the terminal is touched
func (o BlockOptions) Validate() error {
	if o.Width < 0 || o.Width > 100 {
		return types.New(types.KindInvalidDimensions, "width must be between 0 and 100")
	}
	if o.Padding < 0 {
		return types.New(types.KindInvalidDimensions, "padding must not be negative")
	}
	return terminal.Viewport{Fullscreen: o.Fullscreen, Height: o.Height}.Validate()
}

// BlockModel draws a bordered box until dismissed
type BlockModel struct {
	opts    BlockOptions
	screen  screen
	outcome outcome
}

// NewBlock creates a block model
func NewBlock(opts BlockOptions) *BlockModel {
	opts.Common = opts.Common.withDefaults()
	return &BlockModel{opts: opts}
}

func (m *BlockModel) Init() tea.Cmd {
	return nil
}

func (m *BlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.screen.resize(msg, m.opts.Fullscreen, m.opts.Height)

	case tea.KeyMsg:
		action, _ := m.opts.Keys.Match(keybinds.ContextBlock, msg.String())
		switch action {
		case keybinds.ActionQuit:
			return m, finish(&m.outcome, outcomeDone)
		case keybinds.ActionQuitForce:
			return m, finish(&m.outcome, outcomeAborted)
		}
	}

	return m, nil
}

func (m *BlockModel) View() string {
	if !m.screen.ready {
		return ""
	}

	th := m.opts.Theme
	width := terminal.PercentOf(m.screen.width, m.opts.Width)
	height := m.screen.height

	innerW, _ := frameInner(th, width, height)
	innerH := frameContentHeight(th, m.opts.Title, height)

	body := ""
	if m.opts.Text != "" {
		textW := max(innerW-2*m.opts.Padding, 1)
		body = lipgloss.NewStyle().
			Width(textW).
			Align(m.opts.Align).
			Render(th.Text.Render(m.opts.Text))
	}

	return renderFrame(th, m.opts.Title, padContent(body, m.opts.Padding, innerW, innerH), width, height)
}

// RunBlock shows a block until q, esc or enter is pressed. The last frame
// stays on screen.
func RunBlock(ctx context.Context, opts BlockOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	final, err := terminal.Run(ctx, NewBlock(opts), opts.terminalOptions(opts.Height))
	if err != nil {
		return err
	}

	m := final.(*BlockModel)
	applog.Event("widget", "block closed", "outcome", int(m.outcome))
	return m.outcome.err()
}
