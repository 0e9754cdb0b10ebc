package terminal

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/nibble/internal/types"
)

func TestViewport_Validate(t *testing.T) {
	tests := []struct {
		name    string
		vp      Viewport
		wantErr bool
	}{
		{"inline with height", Viewport{Height: 3}, false},
		{"inline zero height", Viewport{Height: 0}, true},
		{"fullscreen ignores height", Viewport{Fullscreen: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.vp.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, types.ErrInvalidDimensions) {
				t.Errorf("expected ErrInvalidDimensions, got %v", err)
			}
		})
	}
}

func TestOptions_ProgramOptions(t *testing.T) {
	inline := Options{Viewport: Viewport{Height: 3}}
	full := Options{Viewport: Viewport{Fullscreen: true}}

	ctx := context.Background()
	if got, want := len(inline.ProgramOptions(ctx)), 1; got != want {
		t.Errorf("inline options = %d, want %d", got, want)
	}
	if got, want := len(full.ProgramOptions(ctx)), 2; got != want {
		t.Errorf("fullscreen options = %d, want %d", got, want)
	}

	withIO := Options{Viewport: Viewport{Height: 1}, Input: strings.NewReader(""), Output: &strings.Builder{}}
	if got, want := len(withIO.ProgramOptions(ctx)), 3; got != want {
		t.Errorf("options with io = %d, want %d", got, want)
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name    string
		content string
		width   int
		height  int
		want    []string
	}{
		{
			name:    "pads lines and width",
			content: "ab",
			width:   4,
			height:  2,
			want:    []string{"ab  ", "    "},
		},
		{
			name:    "truncates lines and width",
			content: "abcdef\nline2\nline3",
			width:   3,
			height:  2,
			want:    []string{"abc", "lin"},
		},
		{
			name:    "zero width keeps line lengths",
			content: "abc\nd",
			width:   0,
			height:  2,
			want:    []string{"abc", "d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Split(Fit(tt.content, tt.width, tt.height), "\n")
			if len(got) != len(tt.want) {
				t.Fatalf("Fit() lines = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFit_KeepsStyledWidth(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("hello world")
	got := Fit(styled, 5, 1)
	if w := lipgloss.Width(got); w != 5 {
		t.Errorf("width = %d, want 5", w)
	}
}

func TestPercentOf(t *testing.T) {
	tests := []struct {
		total, percent, want int
	}{
		{80, 50, 40},
		{80, 0, 80},
		{80, 100, 80},
		{80, 1, 1},
		{10, 5, 1},
		{0, 50, 0},
	}

	for _, tt := range tests {
		if got := PercentOf(tt.total, tt.percent); got != tt.want {
			t.Errorf("PercentOf(%d, %d) = %d, want %d", tt.total, tt.percent, got, tt.want)
		}
	}
}
