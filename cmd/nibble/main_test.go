package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/studiowebux/nibble/internal/applog"
	"github.com/studiowebux/nibble/internal/config"
	"github.com/studiowebux/nibble/internal/tui"
	"github.com/studiowebux/nibble/internal/types"
)

// executeCommand runs the root command with a throwaway home directory
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() {
		applog.Close()
		keybindsForce = false
		versionCheck = false
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, exitOK},
		{"aborted", tui.ErrAborted, exitAborted},
		{"wrapped abort", fmt.Errorf("run: %w", tui.ErrAborted), exitAborted},
		{"interrupted", context.Canceled, exitAborted},
		{"declined", tui.ErrDeclined, exitFailure},
		{"cancelled input", tui.ErrCancelled, exitFailure},
		{"config error", types.New(types.KindConfig, "bad"), exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestParseAlign(t *testing.T) {
	tests := []struct {
		in      string
		want    lipgloss.Position
		wantErr bool
	}{
		{"", lipgloss.Left, false},
		{"left", lipgloss.Left, false},
		{"Center", lipgloss.Center, false},
		{"right", lipgloss.Right, false},
		{"justify", lipgloss.Left, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseAlign(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseAlign(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseAlign(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseContext(t *testing.T) {
	ctx, err := parseContext("TABLE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx != "table" {
		t.Errorf("context = %q, want table", ctx)
	}

	_, err = parseContext("modal")
	if err == nil || !strings.Contains(err.Error(), "Valid contexts: global, block") {
		t.Errorf("expected list of valid contexts, got %v", err)
	}
}

func TestStyleConfig_FlagsWinOverSettings(t *testing.T) {
	settings = config.Settings{Style: config.StyleSettings{
		Border:    "double",
		Fg:        "blue",
		Bg:        "black",
		Modifiers: []string{"italic"},
	}}
	t.Cleanup(func() { settings = config.Settings{} })

	cmd := &cobra.Command{Use: "test"}
	addStyleFlags(cmd)
	if err := cmd.ParseFlags([]string{"--fg", "red", "--modifier", "bold"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}

	cfg := styleConfig(cmd)
	if cfg.Fg != "red" {
		t.Errorf("Fg = %q, want red from the flag", cfg.Fg)
	}
	if len(cfg.Modifiers) != 1 || cfg.Modifiers[0] != "bold" {
		t.Errorf("Modifiers = %v, want [bold]", cfg.Modifiers)
	}
	if cfg.Border != "double" {
		t.Errorf("Border = %q, want double from settings", cfg.Border)
	}
	if cfg.Bg != "black" {
		t.Errorf("Bg = %q, want black from settings", cfg.Bg)
	}
}

func TestCommon_RejectsBadStyle(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	addStyleFlags(cmd)
	if err := cmd.ParseFlags([]string{"--border", "wavy"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}

	_, err := common(cmd, 3)
	if !errors.Is(err, types.ErrInvalidBorderType) {
		t.Errorf("expected invalid border type error, got %v", err)
	}
}

func TestWidgetFlagDefaults(t *testing.T) {
	tests := []struct {
		cmd  *cobra.Command
		flag string
		want string
	}{
		{blockCmd, "height", "5"},
		{blockCmd, "width", "50"},
		{blockCmd, "padding", "1"},
		{blockCmd, "border", "rounded"},
		{gaugeCmd, "height", "3"},
		{gaugeCmd, "time", "50"},
		{tableCmd, "height", "10"},
		{tableCmd, "row-separator", ";"},
		{tableCmd, "col-separator", ","},
		{inputCmd, "height", "3"},
		{confirmCmd, "text", "Are you sure ?"},
		{confirmCmd, "affirmative", "Yes"},
		{confirmCmd, "negative", "No"},
		{confirmCmd, "default", "true"},
	}

	for _, tt := range tests {
		t.Run(tt.cmd.Name()+"/"+tt.flag, func(t *testing.T) {
			f := tt.cmd.Flags().Lookup(tt.flag)
			if f == nil {
				t.Fatalf("flag --%s not defined", tt.flag)
			}
			if f.DefValue != tt.want {
				t.Errorf("--%s default = %q, want %q", tt.flag, f.DefValue, tt.want)
			}
		})
	}
}

func TestTableCommand_RequiresData(t *testing.T) {
	_, err := executeCommand(t, "table")
	if err == nil {
		t.Fatal("expected error without --data or --file")
	}
}

func TestTableCommand_DataAndFileExclusive(t *testing.T) {
	_, err := executeCommand(t, "table", "--data", "a,b", "--file", "x.csv")
	if err == nil {
		t.Fatal("expected error with both --data and --file")
	}
	tableData, tableFile = "", ""
}

func TestLoadTableRows_QueryNeedsFile(t *testing.T) {
	tableData, tableQuery = "a,b;1,2", "[0]"
	t.Cleanup(func() { tableData, tableQuery = "", "" })

	_, err := loadTableRows(tableCmd)
	if !errors.Is(err, types.ErrConfig) {
		t.Errorf("expected config error, got %v", err)
	}
}

func TestLoadTableRows_Inline(t *testing.T) {
	tableData = "Name,Age;Alice,30"
	t.Cleanup(func() { tableData = "" })

	rows, err := loadTableRows(tableCmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 || rows[1][0] != "Alice" {
		t.Errorf("rows = %v", rows)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "nibble ") {
		t.Errorf("output = %q, want nibble <version>", out)
	}
}

func TestKeybindsCommands(t *testing.T) {
	out, err := executeCommand(t, "keybinds", "init")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out, "keybinds.json") {
		t.Errorf("init output = %q", out)
	}
	path := config.KeybindsFile
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("keybinds file not written: %v", err)
	}

	rootCmd.SetArgs([]string{"keybinds", "init"})
	if err := rootCmd.Execute(); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("expected refusal to overwrite, got %v", err)
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"keybinds", "validate"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(buf.String(), "No issues found") {
		t.Errorf("validate output = %q", buf.String())
	}

	buf.Reset()
	rootCmd.SetArgs([]string{"keybinds", "show", "confirm"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("show: %v", err)
	}
	for _, want := range []string{"[confirm]", "toggle", "affirm"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("show output missing %q:\n%s", want, buf.String())
		}
	}
	if strings.Contains(buf.String(), "[table]") {
		t.Errorf("show confirm should not list other contexts:\n%s", buf.String())
	}
}

func TestKeybindsValidate_ReportsErrors(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "keybinds.json")
	if err := os.WriteFile(bad, []byte(`{"table": {"explode": "x"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := executeCommand(t, "keybinds", "validate", bad)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(out, "unknown action 'explode'") {
		t.Errorf("output = %q", out)
	}
}

func TestLoadTableRows_InvalidQueryFailsBeforeReading(t *testing.T) {
	tableFile, tableQuery = filepath.Join(t.TempDir(), "absent.json"), "items[?"
	t.Cleanup(func() { tableFile, tableQuery = "", "" })

	_, err := loadTableRows(tableCmd)
	if !errors.Is(err, types.ErrConfig) {
		t.Fatalf("expected config error, got %v", err)
	}
	if !strings.Contains(err.Error(), "invalid JMESPath expression") {
		t.Errorf("error = %v", err)
	}
}

func TestPrepareTable_WidthsCountHeaderColumns(t *testing.T) {
	tableData, tableHeaders = "1,2;3,4", "A,B,C"
	t.Cleanup(func() { tableData, tableHeaders, tableWidths = "", "", "" })

	tableWidths = "50,25,25"
	header, body, widths, err := prepareTable(tableCmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(header) != 3 || len(body) != 2 {
		t.Errorf("header = %v, body = %v", header, body)
	}
	if len(widths) != 3 || widths[0] != 50 {
		t.Errorf("widths = %v, want [50 25 25]", widths)
	}

	tableWidths = "50,50"
	if _, _, _, err := prepareTable(tableCmd); err == nil {
		t.Error("expected error for two widths with three header columns")
	}
}
