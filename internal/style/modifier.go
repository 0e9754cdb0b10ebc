package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/nibble/internal/types"
)

// Modifier is a set of text attributes
type Modifier uint16

const (
	ModBold Modifier = 1 << iota
	ModItalic
	ModUnderline
	ModDim
	ModCrossedOut
	ModSlowBlink
	ModRapidBlink
	ModReversed
	ModHidden
)

// ModifierNames lists the accepted modifier names
var ModifierNames = []string{
	"bold", "italic", "underline", "dim", "crossed_out", "blink", "rapid_blink", "reversed", "hidden",
}

var modifierNames = map[string]Modifier{
	"bold":        ModBold,
	"italic":      ModItalic,
	"underline":   ModUnderline,
	"underlined":  ModUnderline,
	"dim":         ModDim,
	"crossed_out": ModCrossedOut,
	"crossed":     ModCrossedOut,
	"slow_blink":  ModSlowBlink,
	"blink":       ModSlowBlink,
	"rapid_blink": ModRapidBlink,
	"reversed":    ModReversed,
	"reverse":     ModReversed,
	"hidden":      ModHidden,
}

// ParseModifier resolves a modifier name, case-insensitively
func ParseModifier(name string) (Modifier, error) {
	if m, ok := modifierNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return m, nil
	}
	return 0, types.Newf(types.KindConfig,
		"unknown modifier '%s'. Valid modifiers: bold, italic, underline, dim, crossed_out, blink, reversed, hidden%s",
		name, suggest(name, ModifierNames))
}

// Has reports whether all bits of o are set in m
func (m Modifier) Has(o Modifier) bool {
	return m&o == o
}

// Apply sets the matching lipgloss attributes. Terminals have a single
// blink attribute so both blink speeds map to it; hidden is handled by Text.
func (m Modifier) Apply(s lipgloss.Style) lipgloss.Style {
	if m.Has(ModBold) {
		s = s.Bold(true)
	}
	if m.Has(ModItalic) {
		s = s.Italic(true)
	}
	if m.Has(ModUnderline) {
		s = s.Underline(true)
	}
	if m.Has(ModDim) {
		s = s.Faint(true)
	}
	if m.Has(ModCrossedOut) {
		s = s.Strikethrough(true)
	}
	if m.Has(ModSlowBlink) || m.Has(ModRapidBlink) {
		s = s.Blink(true)
	}
	if m.Has(ModReversed) {
		s = s.Reverse(true)
	}
	return s
}
