package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/nibble/internal/types"
)

// Border is a named border type
type Border int

const (
	BorderRounded Border = iota
	BorderDouble
	BorderThick
	BorderPlain
	BorderNone
)

// BorderNames lists the accepted border names
var BorderNames = []string{"rounded", "double", "thick", "plain", "none"}

// ParseBorder resolves a border name, case-insensitively
func ParseBorder(name string) (Border, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rounded":
		return BorderRounded, nil
	case "double":
		return BorderDouble, nil
	case "thick":
		return BorderThick, nil
	case "plain":
		return BorderPlain, nil
	case "none":
		return BorderNone, nil
	}
	return 0, types.Newf(types.KindInvalidBorderType,
		"unknown border type '%s'. Valid types: rounded, double, thick, plain, none%s",
		name, suggest(name, BorderNames))
}

// Lipgloss returns the glyph set for the border. BorderNone maps to the
// plain set so a caller that ignores Visible still gets sane glyphs.
func (b Border) Lipgloss() lipgloss.Border {
	switch b {
	case BorderDouble:
		return lipgloss.DoubleBorder()
	case BorderThick:
		return lipgloss.ThickBorder()
	case BorderPlain, BorderNone:
		return lipgloss.NormalBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// Visible reports whether the border is drawn at all
func (b Border) Visible() bool {
	return b != BorderNone
}

func (b Border) String() string {
	if int(b) >= 0 && int(b) < len(BorderNames) {
		return BorderNames[b]
	}
	return "rounded"
}
