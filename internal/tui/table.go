package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/nibble/internal/applog"
	"github.com/studiowebux/nibble/internal/keybinds"
	"github.com/studiowebux/nibble/internal/tabledata"
	"github.com/studiowebux/nibble/internal/terminal"
	"github.com/studiowebux/nibble/internal/types"
)

// cellPadding is the horizontal padding bubbles/table cells get from our styles
const cellPadding = 2

// TableOptions configures the table widget
type TableOptions struct {
	Common
	Title  string
	Header []string
	Rows   [][]string
	// Widths are column widths in percent of the table width
	Widths          []int
	HighlightHeader bool
	// Select lets the user pick a row with enter
	Select bool
}

// Validate checks dimensions and data before the terminal is touched
func (o TableOptions) Validate() error {
	if len(o.Rows) == 0 && len(o.Header) == 0 {
		return types.New(types.KindConfig, "table data is empty")
	}
	return terminal.Viewport{Fullscreen: o.Fullscreen, Height: o.Height}.Validate()
}

// TableModel shows rows in a scrollable table. In select mode the
// bubbles/table cursor picks a row; otherwise there is no cursor and the
// navigation keys move the visible window, starting at offset.
type TableModel struct {
	opts TableOptions
	// data holds the padded rows, display the same rows as drawn
	data     []table.Row
	display  []table.Row
	table    table.Model
	numCols  int
	offset   int
	screen   screen
	outcome  outcome
	selected []string
}

// NewTable creates a table model
func NewTable(opts TableOptions) *TableModel {
	opts.Common = opts.Common.withDefaults()

	numCols := tabledata.TableColumns(opts.Header, opts.Rows)
	if len(opts.Widths) != numCols {
		opts.Widths = tabledata.EqualWidths(numCols)
	}

	text := opts.Theme.Text
	data := make([]table.Row, len(opts.Rows))
	display := make([]table.Row, len(opts.Rows))
	for i, r := range opts.Rows {
		row := make(table.Row, numCols)
		copy(row, r)
		data[i] = row

		shown := make(table.Row, numCols)
		for j, cell := range row {
			shown[j] = text.Mask(cell)
		}
		display[i] = shown
	}

	header := make([]string, len(opts.Header))
	for i, h := range opts.Header {
		header[i] = text.Mask(h)
	}
	opts.Header = header

	t := table.New(
		table.WithColumns(buildColumns(opts.Header, opts.Widths, numCols, 0)),
		table.WithRows(display),
		table.WithFocused(true),
		table.WithStyles(tableStyles(opts)),
	)

	return &TableModel{opts: opts, data: data, display: display, table: t, numCols: numCols}
}

func tableStyles(opts TableOptions) table.Styles {
	text := opts.Theme.Text.Style
	header := text
	if opts.HighlightHeader {
		header = header.Bold(true)
	}

	selected := lipgloss.NewStyle()
	if opts.Select {
		selected = selected.Reverse(true)
	}

	return table.Styles{
		Header:   header.Padding(0, 1),
		Cell:     text.Padding(0, 1),
		Selected: selected,
	}
}

// buildColumns turns percentage widths into character widths for a table
// that is tableWidth cells wide
func buildColumns(header []string, widths []int, numCols, tableWidth int) []table.Column {
	cols := make([]table.Column, numCols)
	for i := range cols {
		if i < len(header) {
			cols[i].Title = header[i]
		}
		pct := 0
		if i < len(widths) {
			pct = widths[i]
		}
		cols[i].Width = max(tableWidth*pct/100-cellPadding, 1)
	}
	return cols
}

// Selected returns the row picked with enter in select mode
func (m *TableModel) Selected() []string {
	return m.selected
}

// Cursor returns the highlighted row index in select mode
func (m *TableModel) Cursor() int {
	return m.table.Cursor()
}

// Offset returns the index of the first visible row
func (m *TableModel) Offset() int {
	if m.opts.Select {
		return 0
	}
	return m.offset
}

// scrollTo shows the window of rows starting at offset
func (m *TableModel) scrollTo(offset int) {
	page := m.bodyHeight()
	m.offset = max(min(offset, len(m.display)-page), 0)
	end := min(m.offset+page, len(m.display))
	m.table.SetRows(m.display[m.offset:end])
	m.table.SetCursor(0)
}

func (m *TableModel) Init() tea.Cmd {
	return nil
}

// bodyHeight is the number of data rows visible at once
func (m *TableModel) bodyHeight() int {
	h := frameContentHeight(m.opts.Theme, m.opts.Title, m.screen.height) - 1 // header row
	return max(h, 1)
}

func (m *TableModel) layout() {
	innerW, _ := frameInner(m.opts.Theme, m.screen.width, m.screen.height)
	m.table.SetColumns(buildColumns(m.opts.Header, m.opts.Widths, m.numCols, innerW))
	m.table.SetWidth(innerW)
	m.table.SetHeight(m.bodyHeight() + 1)
	if !m.opts.Select {
		m.scrollTo(m.offset)
	}
}

func (m *TableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.screen.resize(msg, m.opts.Fullscreen, m.opts.Height)
		m.layout()

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *TableModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	action, complete, partial := m.opts.Keys.MatchMultiKey(keybinds.ContextTable, msg.String())
	if partial || !complete {
		return nil
	}

	page := m.bodyHeight()
	if !m.opts.Select {
		if m.scroll(action, page) {
			return nil
		}
	}

	switch action {
	case keybinds.ActionQuitForce:
		return finish(&m.outcome, outcomeAborted)
	case keybinds.ActionQuit:
		return finish(&m.outcome, outcomeDone)
	case keybinds.ActionSubmit:
		if c := m.table.Cursor(); m.opts.Select && c >= 0 && c < len(m.data) {
			m.selected = []string(m.data[c])
		}
		return finish(&m.outcome, outcomeDone)
	case keybinds.ActionNavigateUp:
		m.table.MoveUp(1)
	case keybinds.ActionNavigateDown:
		m.table.MoveDown(1)
	case keybinds.ActionPageUp:
		m.table.MoveUp(page)
	case keybinds.ActionPageDown:
		m.table.MoveDown(page)
	case keybinds.ActionHalfPageUp:
		m.table.MoveUp(max(page/2, 1))
	case keybinds.ActionHalfPageDown:
		m.table.MoveDown(max(page/2, 1))
	case keybinds.ActionGoToTop:
		m.table.GotoTop()
	case keybinds.ActionGoToBottom:
		m.table.GotoBottom()
	}
	return nil
}

// scroll moves the window for a navigation action and reports whether
// action was one
func (m *TableModel) scroll(action keybinds.Action, page int) bool {
	switch action {
	case keybinds.ActionNavigateUp:
		m.scrollTo(m.offset - 1)
	case keybinds.ActionNavigateDown:
		m.scrollTo(m.offset + 1)
	case keybinds.ActionPageUp:
		m.scrollTo(m.offset - page)
	case keybinds.ActionPageDown:
		m.scrollTo(m.offset + page)
	case keybinds.ActionHalfPageUp:
		m.scrollTo(m.offset - max(page/2, 1))
	case keybinds.ActionHalfPageDown:
		m.scrollTo(m.offset + max(page/2, 1))
	case keybinds.ActionGoToTop:
		m.scrollTo(0)
	case keybinds.ActionGoToBottom:
		m.scrollTo(len(m.display))
	default:
		return false
	}
	return true
}

func (m *TableModel) View() string {
	if !m.screen.ready {
		return ""
	}

	th := m.opts.Theme
	innerW, _ := frameInner(th, m.screen.width, m.screen.height)
	innerH := frameContentHeight(th, m.opts.Title, m.screen.height)

	body := terminal.Fit(m.table.View(), innerW, innerH)
	return renderFrame(th, m.opts.Title, body, m.screen.width, m.screen.height)
}

// RunTable shows the table. In select mode it returns the row chosen with
// enter, or nil when the table was closed without choosing.
func RunTable(ctx context.Context, opts TableOptions) ([]string, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	final, err := terminal.Run(ctx, NewTable(opts), opts.terminalOptions(opts.Height))
	if err != nil {
		return nil, err
	}

	m := final.(*TableModel)
	applog.Event("widget", "table closed", "rows", len(m.data), "selected", m.selected != nil)
	return m.selected, m.outcome.err()
}
