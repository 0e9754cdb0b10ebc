package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultGaugeColor is used when neither --fg nor --border-color is set
const DefaultGaugeColor = Cyan

// Config holds the raw style flags shared by every widget
type Config struct {
	Border      string
	BorderColor string
	Fg          string
	Bg          string
	Modifiers   []string
}

// DefaultConfig returns the flag defaults
func DefaultConfig() Config {
	return Config{Border: "rounded"}
}

// BorderType parses the border name; an empty name means rounded
func (c Config) BorderType() (Border, error) {
	if strings.TrimSpace(c.Border) == "" {
		return BorderRounded, nil
	}
	return ParseBorder(c.Border)
}

// BorderStyle returns the style applied to border glyphs and titles
func (c Config) BorderStyle() (lipgloss.Style, error) {
	s := lipgloss.NewStyle()
	if c.BorderColor != "" {
		color, err := ParseColor(c.BorderColor)
		if err != nil {
			return s, err
		}
		s = s.Foreground(color.Lipgloss())
	}
	return s, nil
}

// TextStyle returns the style for widget content
func (c Config) TextStyle() (Text, error) {
	s := lipgloss.NewStyle()
	if c.Fg != "" {
		color, err := ParseColor(c.Fg)
		if err != nil {
			return Text{}, err
		}
		s = s.Foreground(color.Lipgloss())
	}
	if c.Bg != "" {
		color, err := ParseColor(c.Bg)
		if err != nil {
			return Text{}, err
		}
		s = s.Background(color.Lipgloss())
	}

	var mods Modifier
	for _, name := range c.Modifiers {
		m, err := ParseModifier(name)
		if err != nil {
			return Text{}, err
		}
		mods |= m
	}

	return Text{Style: mods.Apply(s), Hidden: mods.Has(ModHidden)}, nil
}

// GaugeColor falls back from --fg to --border-color to cyan
func (c Config) GaugeColor() (Color, error) {
	switch {
	case c.Fg != "":
		return ParseColor(c.Fg)
	case c.BorderColor != "":
		return ParseColor(c.BorderColor)
	default:
		return DefaultGaugeColor, nil
	}
}

// GaugeStyle returns the bold style in the gauge color
func (c Config) GaugeStyle() (lipgloss.Style, error) {
	color, err := c.GaugeColor()
	if err != nil {
		return lipgloss.NewStyle(), err
	}
	return lipgloss.NewStyle().Foreground(color.Lipgloss()).Bold(true), nil
}

// Theme is a fully parsed Config
type Theme struct {
	Border      Border
	BorderStyle lipgloss.Style
	Text        Text
	GaugeColor  Color
	GaugeStyle  lipgloss.Style
}

// Resolve parses every field so that bad flags are reported before the
// terminal is touched
func (c Config) Resolve() (Theme, error) {
	var th Theme
	var err error

	if th.Border, err = c.BorderType(); err != nil {
		return Theme{}, err
	}
	if th.BorderStyle, err = c.BorderStyle(); err != nil {
		return Theme{}, err
	}
	if th.Text, err = c.TextStyle(); err != nil {
		return Theme{}, err
	}
	if th.GaugeColor, err = c.GaugeColor(); err != nil {
		return Theme{}, err
	}
	if th.GaugeStyle, err = c.GaugeStyle(); err != nil {
		return Theme{}, err
	}
	return th, nil
}

// DefaultTheme is the theme produced by DefaultConfig
func DefaultTheme() Theme {
	th, _ := DefaultConfig().Resolve()
	return th
}
