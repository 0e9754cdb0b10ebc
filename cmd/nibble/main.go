package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/studiowebux/nibble/internal/applog"
	"github.com/studiowebux/nibble/internal/config"
	"github.com/studiowebux/nibble/internal/keybinds"
	"github.com/studiowebux/nibble/internal/terminal"
	"github.com/studiowebux/nibble/internal/tui"
	"github.com/studiowebux/nibble/internal/version"
)

// Exit codes
const (
	exitOK      = 0
	exitFailure = 1
	exitAborted = 130
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	applog.Close()

	code := exitCode(err)
	if code == exitFailure && !errors.Is(err, tui.ErrDeclined) && !errors.Is(err, tui.ErrCancelled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(code)
}

// exitCode maps a command error to the process exit status. Declines and
// cancelled input are failures for the calling script but print nothing.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, tui.ErrAborted), errors.Is(err, context.Canceled):
		return exitAborted
	default:
		return exitFailure
	}
}

var rootCmd = &cobra.Command{
	Use:   "nibble",
	Short: "A tool for glamorous shell scripts",
	Long: `nibble draws a single terminal widget from command-line flags and exits,
so shell scripts can show a box, a progress bar, a table, ask for a line of
text or a confirmation.

Examples:
  nibble block --title "Deploy" --text "All green" --border double
  nibble gauge --value 80 --percentage --label Build --exit-on-complete
  nibble table --file users.json --query "[?active]" --select
  name=$(nibble input --prompt "Name:" --placeholder "Jane")
  nibble confirm --text "Continue ?" && echo yes`,
	Version:           version.String(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Root flags
var (
	flagFullscreen bool
	flagNoColor    bool
	flagConfig     string
)

// State shared by the widget commands, filled in by setup
var (
	settings   config.Settings
	keys       *keybinds.Registry
	drawTarget *os.File
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagFullscreen, "fullscreen", false, "Draw on the alternate screen instead of inline")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colors")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ~/.nibble/config.toml)")

	rootCmd.AddCommand(blockCmd)
	rootCmd.AddCommand(gaugeCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(inputCmd)
	rootCmd.AddCommand(confirmCmd)
	rootCmd.AddCommand(keybindsCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration, logging and key bindings before any command
func setup(cmd *cobra.Command, args []string) error {
	if err := loadSettings(cmd); err != nil {
		return err
	}

	var err error
	keys, err = keybinds.LoadOrDefault(settings.Keybinds.File)
	return err
}

// loadSettings reads the config file and applies the root flags. Unlike
// setup it does not load key bindings, so a broken keybinds file can still
// be inspected with the keybinds commands.
func loadSettings(cmd *cobra.Command) error {
	if err := config.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	var err error
	settings, err = config.Load(flagConfig)
	if err != nil {
		return err
	}

	if err := applog.Init(settings.Log.File, settings.Log.Level); err != nil {
		return fmt.Errorf("failed to initialize log: %w", err)
	}
	applog.Info("command started", "command", cmd.Name(), "version", version.String())

	if !cmd.Flags().Changed("fullscreen") {
		flagFullscreen = settings.UI.Fullscreen
	}
	if !cmd.Flags().Changed("no-color") {
		flagNoColor = settings.UI.NoColor
	}
	drawTarget = terminal.DrawTarget()
	if drawTarget != os.Stdout {
		terminal.UseOutput(drawTarget)
	}
	if flagNoColor || terminal.ColorDisabledByEnv() {
		terminal.DisableColor()
	}

	return nil
}
