/*
Package tui implements the widgets nibble can draw.

# Architecture

Every widget is a small Bubble Tea model (Model-Update-View):
  - block.go: bordered box with a title and optional text
  - gauge.go: progress bar animated by tea.Tick
  - table.go: scrollable table on top of bubbles/table
  - input.go: single line text field on top of bubbles/textinput
  - confirm.go: question with two buttons (button.go)

Shared drawing lives in frame.go, which sets the title into the top border
the way the block widget shows it, and pads content to an exact size so an
inline viewport keeps its height between frames.

# Keys

Widgets never compare key strings directly. Each key press is resolved to a
keybinds.Action through the registry for the widget's context, so user
overrides from keybinds.json apply everywhere.

# Outcomes

RunX functions start the program through internal/terminal and translate
how the loop ended into ErrAborted, ErrDeclined or ErrCancelled. The CLI
maps those to exit codes.
*/
package tui
