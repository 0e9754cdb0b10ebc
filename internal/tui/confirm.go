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

// ConfirmOptions configures the confirm widget. Common.Height is the
// height of the buttons; the question and a spacer line come on top.
type ConfirmOptions struct {
	Common
	Text        string
	Affirmative string
	Negative    string
	// Default selects the affirmative button initially
	Default bool
}

// Validate checks dimensions before the terminal is touched
func (o ConfirmOptions) Validate() error {
	if o.Height <= 0 {
		return types.New(types.KindInvalidDimensions, "height must be greater than 0")
	}
	return nil
}

// ConfirmModel asks a yes/no question with two buttons
type ConfirmModel struct {
	opts        ConfirmOptions
	affirmative bool
	screen      screen
	outcome     outcome
}

// NewConfirm creates a confirm model
func NewConfirm(opts ConfirmOptions) *ConfirmModel {
	opts.Common = opts.Common.withDefaults()
	return &ConfirmModel{opts: opts, affirmative: opts.Default}
}

// Affirmative reports whether the affirmative button is selected
func (m *ConfirmModel) Affirmative() bool {
	return m.affirmative
}

func (m *ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.screen.resize(msg, m.opts.Fullscreen, m.opts.Height+ConfirmChrome)

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *ConfirmModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	action, _ := m.opts.Keys.Match(keybinds.ContextConfirm, msg.String())

	switch action {
	case keybinds.ActionToggle:
		m.affirmative = !m.affirmative
	case keybinds.ActionSelectLeft:
		m.affirmative = true
	case keybinds.ActionSelectRight:
		m.affirmative = false
	case keybinds.ActionAffirm:
		m.affirmative = true
		return m.submit()
	case keybinds.ActionDeny:
		m.affirmative = false
		return m.submit()
	case keybinds.ActionSubmit:
		return m.submit()
	case keybinds.ActionCancel, keybinds.ActionQuitForce:
		return finish(&m.outcome, outcomeAborted)
	}
	return nil
}

func (m *ConfirmModel) submit() tea.Cmd {
	if m.affirmative {
		return finish(&m.outcome, outcomeDone)
	}
	return finish(&m.outcome, outcomeDeclined)
}

func (m *ConfirmModel) View() string {
	if !m.screen.ready || m.outcome != outcomeRunning {
		return ""
	}

	th := m.opts.Theme
	width := m.screen.width

	question := lipgloss.PlaceHorizontal(width, lipgloss.Center, th.Text.Render(m.opts.Text))

	bw := buttonWidth(m.opts.Affirmative, m.opts.Negative)
	bh := m.opts.Height
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		button{label: m.opts.Affirmative, selected: m.affirmative}.render(th, bw, bh),
		lipgloss.NewStyle().Width(ButtonGap).Render(""),
		button{label: m.opts.Negative, selected: !m.affirmative}.render(th, bw, bh),
	)
	buttons = lipgloss.PlaceHorizontal(width, lipgloss.Center, buttons)

	return terminal.Fit(question+"\n\n"+buttons, width, m.screen.height)
}

// RunConfirm asks the question. It returns nil for the affirmative
// answer, ErrDeclined for the negative one and ErrAborted when dismissed.
// The viewport is cleared on exit.
func RunConfirm(ctx context.Context, opts ConfirmOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	final, err := terminal.Run(ctx, NewConfirm(opts), opts.terminalOptions(opts.Height+ConfirmChrome))
	if err != nil {
		return err
	}

	m := final.(*ConfirmModel)
	applog.Event("widget", "confirm answered", "affirmative", m.affirmative, "outcome", int(m.outcome))
	return m.outcome.err()
}
