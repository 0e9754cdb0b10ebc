package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/studiowebux/nibble/internal/config"
	"github.com/studiowebux/nibble/internal/keybinds"
	"github.com/studiowebux/nibble/internal/types"
)

var keybindsCmd = &cobra.Command{
	Use:   "keybinds",
	Short: "Manage key bindings",
	Long: `Key bindings are read from ~/.nibble/keybinds.json (or keybinds.file in
the config). The file is JSON with comments; each widget section maps an
action to a comma-separated list of keys.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadSettings(cmd)
	},
}

var keybindsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default key bindings to the keybinds file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := keybindsPath()
		if _, err := os.Stat(path); err == nil && !keybindsForce {
			return types.Newf(types.KindConfig, "%s already exists (use --force to overwrite)", path)
		}

		if err := keybinds.CreateExampleConfig(path); err != nil {
			return types.Wrap(types.KindIO, "failed to write keybinds", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote default key bindings to %s\n", path)
		return nil
	},
}

var keybindsValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a keybinds file for problems",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := keybindsPath()
		if len(args) > 0 {
			path = args[0]
		}

		cfg, err := keybinds.LoadConfig(path)
		if err != nil {
			return err
		}

		result := keybinds.NewValidator().ValidateConfig(cfg)
		fmt.Fprint(cmd.OutOrStdout(), result.String())
		if result.HasErrors() {
			return types.Newf(types.KindConfig, "%s has %d error(s)", path, len(result.Errors))
		}
		return nil
	},
}

var keybindsShowCmd = &cobra.Command{
	Use:   "show [context]",
	Short: "List the active key bindings",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := keybinds.LoadOrDefault(keybindsPath())
		if err != nil {
			return err
		}

		contexts := keybinds.Contexts
		if len(args) > 0 {
			ctx, err := parseContext(args[0])
			if err != nil {
				return err
			}
			contexts = []keybinds.Context{ctx}
		}

		out := cmd.OutOrStdout()
		for i, ctx := range contexts {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "[%s]\n", ctx)
			for _, b := range registry.ListBindings(ctx) {
				if b.Context != ctx {
					continue
				}
				fmt.Fprintf(out, "  %-16s %s\n", b.Key, b.Action)
			}
		}
		return nil
	},
}

var keybindsForce bool

func init() {
	keybindsInitCmd.Flags().BoolVarP(&keybindsForce, "force", "f", false, "Overwrite an existing file")

	keybindsCmd.AddCommand(keybindsInitCmd)
	keybindsCmd.AddCommand(keybindsValidateCmd)
	keybindsCmd.AddCommand(keybindsShowCmd)
}

func keybindsPath() string {
	if settings.Keybinds.File != "" {
		return settings.Keybinds.File
	}
	return config.KeybindsFile
}

func parseContext(name string) (keybinds.Context, error) {
	for _, ctx := range keybinds.Contexts {
		if string(ctx) == strings.ToLower(name) {
			return ctx, nil
		}
	}

	names := make([]string, len(keybinds.Contexts))
	for i, ctx := range keybinds.Contexts {
		names[i] = string(ctx)
	}
	return "", types.Newf(types.KindConfig, "unknown context '%s'. Valid contexts: %s", name, strings.Join(names, ", "))
}
