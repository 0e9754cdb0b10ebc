package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/nibble/internal/types"
)

func newTestBlock(opts BlockOptions) *BlockModel {
	if opts.Height == 0 {
		opts.Common = testCommon(5)
	}
	return NewBlock(opts)
}

func TestBlock_ViewBeforeSize(t *testing.T) {
	m := newTestBlock(BlockOptions{Width: 50})
	AssertModelField(t, "View()", m.View(), "")
}

func TestBlock_View(t *testing.T) {
	m := newTestBlock(BlockOptions{Title: "Hello", Width: 50, Padding: 1, Text: "body"})
	resize(m, 80, 24)

	view := m.View()
	AssertSize(t, view, 40, 5)

	lines := viewLines(view)
	if !strings.HasPrefix(lines[0], "╭Hello─") {
		t.Errorf("top line = %q", lines[0])
	}
	// Padding of one line and one column around the text
	AssertModelField(t, "padding line", strings.Trim(lines[1], "│ "), "")
	AssertModelField(t, "text line", lines[2][:len("│ body")], "│ body")
}

func TestBlock_ZeroWidthIsFullWidth(t *testing.T) {
	m := newTestBlock(BlockOptions{Width: 0})
	resize(m, 30, 10)
	AssertSize(t, m.View(), 30, 5)
}

func TestBlock_AlignCenter(t *testing.T) {
	m := newTestBlock(BlockOptions{Width: 100, Text: "hi", Align: lipgloss.Center})
	resize(m, 12, 10)

	line := viewLines(m.View())[1]
	AssertModelField(t, "centered", line, "│    hi    │")
}

func TestBlock_Fullscreen(t *testing.T) {
	opts := BlockOptions{Width: 100}
	opts.Common = testCommon(5)
	opts.Fullscreen = true
	m := NewBlock(opts)

	resize(m, 20, 12)
	AssertSize(t, m.View(), 20, 12)
}

func TestBlock_Keys(t *testing.T) {
	tests := []struct {
		key     string
		quit    bool
		wantErr error
	}{
		{"q", true, nil},
		{"esc", true, nil},
		{"enter", true, nil},
		{"ctrl+c", true, ErrAborted},
		{"x", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := newTestBlock(BlockOptions{Width: 50})
			cmd := press(t, m, tt.key)

			AssertModelField(t, "quit", isQuit(cmd), tt.quit)
			if !errors.Is(m.outcome.err(), tt.wantErr) {
				t.Errorf("outcome error = %v, want %v", m.outcome.err(), tt.wantErr)
			}
		})
	}
}

func TestBlockOptions_Validate(t *testing.T) {
	tests := []struct {
		name string
		opts BlockOptions
		ok   bool
	}{
		{"defaults", BlockOptions{Common: testCommon(5), Width: 50, Padding: 1}, true},
		{"width over 100", BlockOptions{Common: testCommon(5), Width: 101}, false},
		{"negative padding", BlockOptions{Common: testCommon(5), Padding: -1}, false},
		{"zero height", BlockOptions{Common: testCommon(0), Width: 50}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.ok && err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if !tt.ok && !errors.Is(err, types.ErrInvalidDimensions) {
				t.Errorf("Validate() error = %v, want invalid dimensions", err)
			}
		})
	}
}

func TestRunBlock_QuitsOnKey(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := BlockOptions{Width: 50}
	opts.Common = testCommon(5)
	opts.Input = strings.NewReader("q")
	opts.Output = &bytes.Buffer{}

	if err := RunBlock(ctx, opts); err != nil {
		t.Fatalf("RunBlock() error = %v", err)
	}
}
