package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/studiowebux/nibble/internal/version"
)

var versionCheck bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current := version.String()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "nibble %s\n", current)

		if !versionCheck {
			return nil
		}

		update, err := version.NewChecker().Check(cmd.Context(), current)
		if err != nil {
			return fmt.Errorf("update check failed: %w", err)
		}
		if update.Available {
			fmt.Fprintf(out, "A new version is available: %s\n%s\n", update.Latest, update.URL)
		} else {
			fmt.Fprintln(out, "You are running the latest version")
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "Check for a newer release")
}
