package style

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/nibble/internal/types"
)

// Color is one of the sixteen named ANSI colors. The value is the palette index.
type Color int

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	Gray
	DarkGray
	LightRed
	LightGreen
	LightYellow
	LightBlue
	LightMagenta
	LightCyan
	White
)

var colorNames = map[string]Color{
	"black":         Black,
	"red":           Red,
	"green":         Green,
	"yellow":        Yellow,
	"blue":          Blue,
	"magenta":       Magenta,
	"cyan":          Cyan,
	"gray":          Gray,
	"grey":          Gray,
	"dark_gray":     DarkGray,
	"dark_grey":     DarkGray,
	"light_red":     LightRed,
	"light_green":   LightGreen,
	"light_yellow":  LightYellow,
	"light_blue":    LightBlue,
	"light_magenta": LightMagenta,
	"light_cyan":    LightCyan,
	"white":         White,
}

// ColorNames lists the accepted color names in documentation order
var ColorNames = []string{
	"red", "green", "blue", "yellow", "cyan", "magenta", "white", "black",
	"gray", "dark_gray", "light_red", "light_green", "light_blue",
	"light_yellow", "light_cyan", "light_magenta",
}

// Lipgloss returns the ANSI palette color
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(int(c)))
}

func (c Color) String() string {
	for _, name := range ColorNames {
		if colorNames[name] == c {
			return name
		}
	}
	return "color(" + strconv.Itoa(int(c)) + ")"
}

// ParseColor resolves a color name, case-insensitively
func ParseColor(name string) (Color, error) {
	if c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c, nil
	}
	return 0, types.Newf(types.KindInvalidColor,
		"unknown color '%s'. Valid colors: red, green, blue, yellow, cyan, magenta, white, black, gray, dark_gray, light_*%s",
		name, suggest(name, ColorNames))
}

// InvertColor returns a label color that stays readable on top of c
func InvertColor(c Color) Color {
	switch c {
	case White, LightRed, LightGreen, LightBlue, LightYellow, LightCyan, LightMagenta:
		return Black
	case Black, DarkGray:
		return White
	case Red, Blue, Magenta:
		return White
	case Green, Yellow, Cyan, Gray:
		return Black
	default:
		return Black
	}
}
