package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/studiowebux/nibble/internal/style"
	"github.com/studiowebux/nibble/internal/tui"
)

// Style flags shared by every widget command
var (
	flagBorder      string
	flagBorderColor string
	flagFg          string
	flagBg          string
	flagModifiers   []string
)

func addStyleFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagBorder, "border", "rounded", "Border type ("+strings.Join(style.BorderNames, "|")+")")
	cmd.Flags().StringVar(&flagBorderColor, "border-color", "", "Border color")
	cmd.Flags().StringVar(&flagFg, "fg", "", "Foreground color")
	cmd.Flags().StringVar(&flagBg, "bg", "", "Background color")
	cmd.Flags().StringArrayVar(&flagModifiers, "modifier", nil, "Text modifier, can be repeated (bold, italic, underline, ...)")
}

// styleConfig merges the style flags with configured defaults. A flag
// given on the command line always wins.
func styleConfig(cmd *cobra.Command) style.Config {
	cfg := style.Config{
		Border:      flagBorder,
		BorderColor: flagBorderColor,
		Fg:          flagFg,
		Bg:          flagBg,
		Modifiers:   flagModifiers,
	}

	defaults := settings.Style
	if !cmd.Flags().Changed("border") && defaults.Border != "" {
		cfg.Border = defaults.Border
	}
	if !cmd.Flags().Changed("border-color") {
		cfg.BorderColor = defaults.BorderColor
	}
	if !cmd.Flags().Changed("fg") {
		cfg.Fg = defaults.Fg
	}
	if !cmd.Flags().Changed("bg") {
		cfg.Bg = defaults.Bg
	}
	if !cmd.Flags().Changed("modifier") {
		cfg.Modifiers = defaults.Modifiers
	}
	return cfg
}

// common resolves the style and builds the settings every widget shares.
// Bad style values fail here, before the terminal is touched.
func common(cmd *cobra.Command, height int) (tui.Common, error) {
	theme, err := styleConfig(cmd).Resolve()
	if err != nil {
		return tui.Common{}, err
	}

	c := tui.Common{
		Theme:      theme,
		Keys:       keys,
		Fullscreen: flagFullscreen,
		Height:     height,
	}
	if drawTarget != nil {
		c.Output = drawTarget
	}
	return c, nil
}
