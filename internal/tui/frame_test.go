package tui

import (
	"strings"
	"testing"

	"github.com/studiowebux/nibble/internal/style"
)

func TestRenderFrame(t *testing.T) {
	th := style.DefaultTheme()

	view := renderFrame(th, "Title", "hello", 12, 4)
	AssertSize(t, view, 12, 4)

	lines := viewLines(view)
	AssertModelField(t, "top", lines[0], "╭Title─────╮")
	AssertModelField(t, "first content line", lines[1], "│hello     │")
	AssertModelField(t, "bottom", lines[3], "╰──────────╯")
}

func TestRenderFrame_LongTitleIsTruncated(t *testing.T) {
	view := renderFrame(style.DefaultTheme(), "a very long title", "", 8, 3)
	AssertSize(t, view, 8, 3)
	AssertModelField(t, "top", viewLines(view)[0], "╭a very╮")
}

func TestRenderFrame_DoubleBorder(t *testing.T) {
	th := style.DefaultTheme()
	th.Border = style.BorderDouble

	view := renderFrame(th, "", "", 4, 3)
	AssertModelField(t, "frame", view, "╔══╗\n║  ║\n╚══╝")
}

func TestRenderFrame_NoBorder(t *testing.T) {
	th := borderlessTheme()

	view := renderFrame(th, "Title", "body", 6, 3)
	AssertSize(t, view, 6, 3)
	AssertModelField(t, "frame", view, "Title \nbody  \n      ")

	AssertModelField(t, "without title", renderFrame(th, "", "body", 4, 1), "body")
}

func TestRenderFrame_TooSmall(t *testing.T) {
	AssertModelField(t, "zero", renderFrame(style.DefaultTheme(), "t", "x", 0, 3), "")
	AssertSize(t, renderFrame(style.DefaultTheme(), "t", "x", 1, 1), 1, 1)
}

func TestPadContent(t *testing.T) {
	got := padContent("ab", 1, 5, 3)
	AssertModelField(t, "padded", got, "     \n ab  \n     ")

	// Not enough room for padding leaves an empty area
	got = padContent("ab", 2, 3, 3)
	AssertModelField(t, "too small", strings.TrimSpace(got), "")
	AssertSize(t, got, 3, 3)
}

func TestFrameContentHeight(t *testing.T) {
	AssertModelField(t, "bordered", frameContentHeight(style.DefaultTheme(), "t", 5), 3)
	AssertModelField(t, "borderless with title", frameContentHeight(borderlessTheme(), "t", 5), 4)
	AssertModelField(t, "borderless without title", frameContentHeight(borderlessTheme(), "", 5), 5)
}
