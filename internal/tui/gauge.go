package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/studiowebux/nibble/internal/applog"
	"github.com/studiowebux/nibble/internal/keybinds"
	"github.com/studiowebux/nibble/internal/style"
	"github.com/studiowebux/nibble/internal/terminal"
	"github.com/studiowebux/nibble/internal/types"
)

// GaugeOptions configures the gauge widget
type GaugeOptions struct {
	Common
	Title string
	Label string
	// Value is the target percentage the gauge animates to
	Value int
	// Interval is the delay between two +1 steps
	Interval       time.Duration
	Percentage     bool
	ExitOnComplete bool
}

// Validate checks the target and timing before the terminal is touched
func (o GaugeOptions) Validate() error {
	if o.Value < 0 || o.Value > 100 {
		return types.New(types.KindInvalidDimensions, "value must be between 0 and 100")
	}
	if o.Interval <= 0 {
		return types.New(types.KindInvalidDimensions, "time must be greater than 0")
	}
	return terminal.Viewport{Fullscreen: o.Fullscreen, Height: o.Height}.Validate()
}

type gaugeTickMsg time.Time

// GaugeModel animates a progress bar from 0 to the target value
type GaugeModel struct {
	opts    GaugeOptions
	current int
	screen  screen
	outcome outcome
}

// NewGauge creates a gauge model
func NewGauge(opts GaugeOptions) *GaugeModel {
	opts.Common = opts.Common.withDefaults()
	return &GaugeModel{opts: opts}
}

// Current returns the value currently displayed
func (m *GaugeModel) Current() int {
	return m.current
}

// Complete reports whether the target has been reached
func (m *GaugeModel) Complete() bool {
	return m.current >= m.opts.Value
}

func (m *GaugeModel) tick() tea.Cmd {
	return tea.Tick(m.opts.Interval, func(t time.Time) tea.Msg {
		return gaugeTickMsg(t)
	})
}

func (m *GaugeModel) Init() tea.Cmd {
	if !m.Complete() {
		return m.tick()
	}
	if m.opts.ExitOnComplete {
		return finish(&m.outcome, outcomeDone)
	}
	return nil
}

func (m *GaugeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.screen.resize(msg, m.opts.Fullscreen, m.opts.Height)

	case gaugeTickMsg:
		if m.outcome != outcomeRunning || m.Complete() {
			return m, nil
		}
		m.current = min(m.current+1, m.opts.Value)
		if !m.Complete() {
			return m, m.tick()
		}
		if m.opts.ExitOnComplete {
			return m, finish(&m.outcome, outcomeDone)
		}

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *GaugeModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	action, _ := m.opts.Keys.Match(keybinds.ContextGauge, msg.String())

	switch action {
	case keybinds.ActionQuitForce:
		return finish(&m.outcome, outcomeAborted)
	case keybinds.ActionCancel:
		// Stops the animation early or closes a finished gauge
		return finish(&m.outcome, outcomeDone)
	case keybinds.ActionQuit:
		if m.Complete() {
			return finish(&m.outcome, outcomeDone)
		}
	}
	return nil
}

// label returns the text drawn in the middle of the bar
func (m *GaugeModel) label() string {
	value := fmt.Sprintf("%d/100", m.current)
	if m.opts.Percentage {
		value = fmt.Sprintf("%d%%", m.current)
	}
	if m.opts.Label != "" {
		return m.opts.Label + " " + value
	}
	return value
}

func (m *GaugeModel) View() string {
	if !m.screen.ready {
		return ""
	}

	th := m.opts.Theme
	width, height := m.screen.width, m.screen.height
	innerW, _ := frameInner(th, width, height)
	innerH := frameContentHeight(th, m.opts.Title, height)

	bar := renderGaugeBar(th, m.label(), m.current, innerW, innerH)
	return renderFrame(th, m.opts.Title, bar, width, height)
}

// renderGaugeBar fills percent% of a width x height area with the gauge
// color and centers label on the middle line. Label glyphs over the filled
// part use the inverted color so they stay readable.
func renderGaugeBar(th style.Theme, label string, percent, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	filled := width * percent / 100
	filledStyle := th.GaugeStyle.Background(th.GaugeColor.Lipgloss()).Foreground(style.InvertColor(th.GaugeColor).Lipgloss())
	emptyStyle := th.GaugeStyle

	label = ansi.Truncate(label, width, "")
	labelRow := height / 2
	offset := (width - lipgloss.Width(label)) / 2

	lines := make([]string, height)
	for y := range lines {
		row := strings.Repeat(" ", width)
		if y == labelRow {
			row = strings.Repeat(" ", offset) + label + strings.Repeat(" ", width-offset-lipgloss.Width(label))
		}
		left := ansi.Truncate(row, filled, "")
		right := ansi.TruncateLeft(row, filled, "")
		lines[y] = paintIf(filledStyle, left) + paintIf(emptyStyle, right)
	}
	return strings.Join(lines, "\n")
}

func paintIf(s lipgloss.Style, text string) string {
	if text == "" {
		return ""
	}
	return s.Render(text)
}

// RunGauge animates the gauge and waits for the user (or completion with
// ExitOnComplete)
func RunGauge(ctx context.Context, opts GaugeOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	final, err := terminal.Run(ctx, NewGauge(opts), opts.terminalOptions(opts.Height))
	if err != nil {
		return err
	}

	m := final.(*GaugeModel)
	applog.Event("widget", "gauge closed", "value", m.current, "target", m.opts.Value)
	return m.outcome.err()
}
