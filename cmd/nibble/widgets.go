package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/studiowebux/nibble/internal/filter"
	"github.com/studiowebux/nibble/internal/tabledata"
	"github.com/studiowebux/nibble/internal/terminal"
	"github.com/studiowebux/nibble/internal/tui"
	"github.com/studiowebux/nibble/internal/types"
)

var blockCmd = &cobra.Command{
	Use:   "block",
	Short: "Render a block with borders and title",
	Args:  cobra.NoArgs,
	RunE:  runBlock,
}

var gaugeCmd = &cobra.Command{
	Use:   "gauge",
	Short: "Render a gauge/progress bar",
	Args:  cobra.NoArgs,
	RunE:  runGauge,
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Render a table",
	Long: `Render a table from inline data or a file.

Files ending in .json, .jsonc, .yaml/.yml and .tsv are decoded by extension;
anything else is read as CSV. Use --file - to read from stdin.

--query filters structured files with a JMESPath expression before the
table is built, e.g. --query "items[?enabled]". A query of the form
$(command) pipes the raw file through a shell command instead.`,
	Args: cobra.NoArgs,
	RunE: runTable,
}

var inputCmd = &cobra.Command{
	Use:   "input",
	Short: "Render user input",
	Long: `Read a line of text. The submitted value is printed on stdout, except in
password mode where nothing is printed.

esc exits with status 1 and ctrl+c with status 130.`,
	Args: cobra.NoArgs,
	RunE: runInput,
}

var confirmCmd = &cobra.Command{
	Use:   "confirm",
	Short: "Render confirmation buttons",
	Long: `Ask a yes/no question. The answer is the exit status: 0 for the
affirmative button, 1 for the negative one and 130 when dismissed.`,
	Args: cobra.NoArgs,
	RunE: runConfirm,
}

// Flags for block
var (
	blockTitle   string
	blockHeight  int
	blockWidth   int
	blockPadding int
	blockText    string
	blockAlign   string
)

// Flags for gauge
var (
	gaugeValue          int
	gaugeLabel          string
	gaugeTitle          string
	gaugeHeight         int
	gaugeTime           int
	gaugePercentage     bool
	gaugeExitOnComplete bool
)

// Flags for table
var (
	tableData            string
	tableFile            string
	tableHeaders         string
	tableTitle           string
	tableHeight          int
	tableWidths          string
	tableRowSeparator    string
	tableColSeparator    string
	tableHighlightHeader bool
	tableQuery           string
	tableSelect          bool
)

// Flags for input
var (
	inputPlaceholder string
	inputValue       string
	inputPrompt      string
	inputTitle       string
	inputHeight      int
	inputPassword    bool
	inputMaxLength   int
	inputShowCount   bool
	inputClipboard   bool
)

// Flags for confirm
var (
	confirmText        string
	confirmAffirmative string
	confirmNegative    string
	confirmHeight      int
	confirmDefault     bool
)

func init() {
	blockCmd.Flags().StringVarP(&blockTitle, "title", "t", "", "Block title")
	blockCmd.Flags().IntVar(&blockHeight, "height", 5, "Height in lines")
	blockCmd.Flags().IntVarP(&blockWidth, "width", "w", 50, "Width in percent of the terminal (0 = full width)")
	blockCmd.Flags().IntVarP(&blockPadding, "padding", "p", 1, "Padding inside the border")
	blockCmd.Flags().StringVar(&blockText, "text", "", "Text shown inside the block")
	blockCmd.Flags().StringVar(&blockAlign, "align", "left", "Text alignment (left|center|right)")
	addStyleFlags(blockCmd)

	gaugeCmd.Flags().IntVarP(&gaugeValue, "value", "v", 0, "Target value (0-100)")
	gaugeCmd.Flags().StringVarP(&gaugeLabel, "label", "l", "", "Label shown before the value")
	gaugeCmd.Flags().StringVarP(&gaugeTitle, "title", "t", "", "Gauge title")
	gaugeCmd.Flags().IntVar(&gaugeHeight, "height", 3, "Height in lines")
	gaugeCmd.Flags().IntVar(&gaugeTime, "time", 50, "Milliseconds between increments")
	gaugeCmd.Flags().BoolVarP(&gaugePercentage, "percentage", "p", false, "Show the value as a percentage")
	gaugeCmd.Flags().BoolVar(&gaugeExitOnComplete, "exit-on-complete", false, "Exit as soon as the target is reached")
	addStyleFlags(gaugeCmd)

	tableCmd.Flags().StringVarP(&tableData, "data", "d", "", "Inline data, e.g. \"Name,Age;Alice,30\"")
	tableCmd.Flags().StringVarP(&tableFile, "file", "f", "", "Data file (CSV, TSV, JSON, JSONC, YAML), - for stdin")
	tableCmd.Flags().StringVar(&tableHeaders, "headers", "", "Comma-separated headers (default: first row)")
	tableCmd.Flags().StringVarP(&tableTitle, "title", "t", "", "Table title")
	tableCmd.Flags().IntVar(&tableHeight, "height", 10, "Height in lines")
	tableCmd.Flags().StringVarP(&tableWidths, "widths", "w", "", "Comma-separated column widths in percent")
	tableCmd.Flags().StringVar(&tableRowSeparator, "row-separator", ";", "Row separator for inline data")
	tableCmd.Flags().StringVar(&tableColSeparator, "col-separator", ",", "Column separator for inline data and selected output")
	tableCmd.Flags().BoolVar(&tableHighlightHeader, "highlight-header", false, "Draw the header in bold")
	tableCmd.Flags().StringVarP(&tableQuery, "query", "q", "", "JMESPath expression or $(command) applied to --file")
	tableCmd.Flags().BoolVar(&tableSelect, "select", false, "Pick a row with enter and print it")
	tableCmd.MarkFlagsMutuallyExclusive("data", "file")
	tableCmd.MarkFlagsOneRequired("data", "file")
	addStyleFlags(tableCmd)

	inputCmd.Flags().StringVarP(&inputPlaceholder, "placeholder", "p", "", "Placeholder shown while empty")
	inputCmd.Flags().StringVarP(&inputValue, "value", "v", "", "Initial value")
	inputCmd.Flags().StringVarP(&inputPrompt, "prompt", "r", "", "Prompt shown before the field")
	inputCmd.Flags().StringVarP(&inputTitle, "title", "t", "", "Input title")
	inputCmd.Flags().IntVar(&inputHeight, "height", 3, "Height in lines")
	inputCmd.Flags().BoolVar(&inputPassword, "password", false, "Mask the value and do not print it")
	inputCmd.Flags().IntVarP(&inputMaxLength, "max-length", "m", 0, "Maximum number of characters (0 = unlimited)")
	inputCmd.Flags().BoolVarP(&inputShowCount, "show-count", "c", false, "Show the character count")
	inputCmd.Flags().BoolVar(&inputClipboard, "clipboard", false, "Copy the submitted value to the clipboard")
	addStyleFlags(inputCmd)

	confirmCmd.Flags().StringVarP(&confirmText, "text", "t", "Are you sure ?", "Question")
	confirmCmd.Flags().StringVarP(&confirmAffirmative, "affirmative", "a", "Yes", "Affirmative button label")
	confirmCmd.Flags().StringVarP(&confirmNegative, "negative", "n", "No", "Negative button label")
	confirmCmd.Flags().IntVar(&confirmHeight, "height", 3, "Button height in lines")
	confirmCmd.Flags().BoolVarP(&confirmDefault, "default", "d", true, "Select the affirmative button initially")
	addStyleFlags(confirmCmd)
}

func parseAlign(s string) (lipgloss.Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return lipgloss.Left, nil
	case "center", "centre":
		return lipgloss.Center, nil
	case "right":
		return lipgloss.Right, nil
	}
	return lipgloss.Left, types.Newf(types.KindConfig, "unknown alignment '%s'. Valid alignments: left, center, right", s)
}

func runBlock(cmd *cobra.Command, args []string) error {
	c, err := common(cmd, blockHeight)
	if err != nil {
		return err
	}
	align, err := parseAlign(blockAlign)
	if err != nil {
		return err
	}

	return tui.RunBlock(cmd.Context(), tui.BlockOptions{
		Common:  c,
		Title:   blockTitle,
		Text:    blockText,
		Align:   align,
		Width:   blockWidth,
		Padding: blockPadding,
	})
}

func runGauge(cmd *cobra.Command, args []string) error {
	c, err := common(cmd, gaugeHeight)
	if err != nil {
		return err
	}

	return tui.RunGauge(cmd.Context(), tui.GaugeOptions{
		Common:         c,
		Title:          gaugeTitle,
		Label:          gaugeLabel,
		Value:          gaugeValue,
		Interval:       time.Duration(gaugeTime) * time.Millisecond,
		Percentage:     gaugePercentage,
		ExitOnComplete: gaugeExitOnComplete,
	})
}

// loadTableRows reads the rows from --data or --file. A bad --query
// fails before the file is read.
func loadTableRows(cmd *cobra.Command) ([][]string, error) {
	if tableQuery != "" {
		if tableFile == "" {
			return nil, types.New(types.KindConfig, "--query needs --file")
		}
		if !filter.IsShellCommand(tableQuery) && !filter.IsValidJMESPath(tableQuery) {
			return nil, types.Newf(types.KindConfig, "invalid JMESPath expression '%s'", tableQuery)
		}
	}

	if tableFile != "" {
		return tabledata.LoadFile(cmd.Context(), tableFile, cmd.InOrStdin(), tableQuery)
	}
	return tabledata.ParseInline(tableData, tableRowSeparator, tableColSeparator)
}

// prepareTable loads the rows, splits off the header and checks --widths
// against the columns the table will show
func prepareTable(cmd *cobra.Command) (header []string, body [][]string, widths []int, err error) {
	rows, err := loadTableRows(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, nil, types.New(types.KindConfig, "table data is empty")
	}

	header, body = tabledata.SplitHeaders(rows, tableHeaders)

	if tableWidths != "" {
		widths, err = tabledata.ParseWidths(tableWidths, tabledata.TableColumns(header, body))
		if err != nil {
			return nil, nil, nil, err
		}
	}
	return header, body, widths, nil
}

func runTable(cmd *cobra.Command, args []string) error {
	c, err := common(cmd, tableHeight)
	if err != nil {
		return err
	}

	header, body, widths, err := prepareTable(cmd)
	if err != nil {
		return err
	}

	selected, err := tui.RunTable(cmd.Context(), tui.TableOptions{
		Common:          c,
		Title:           tableTitle,
		Header:          header,
		Rows:            body,
		Widths:          widths,
		HighlightHeader: tableHighlightHeader,
		Select:          tableSelect,
	})
	if err != nil {
		return err
	}

	if selected != nil {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(selected, tableColSeparator))
	}
	return nil
}

func runInput(cmd *cobra.Command, args []string) error {
	c, err := common(cmd, inputHeight)
	if err != nil {
		return err
	}
	if err := terminal.RequireTTY(drawTarget); err != nil {
		return err
	}
	if inputMaxLength < 0 {
		return types.New(types.KindInvalidDimensions, "max length must not be negative")
	}

	value, err := tui.RunInput(cmd.Context(), tui.InputOptions{
		Common:      c,
		Title:       inputTitle,
		Prompt:      inputPrompt,
		Placeholder: inputPlaceholder,
		Value:       inputValue,
		Password:    inputPassword,
		MaxLength:   inputMaxLength,
		ShowCount:   inputShowCount,
		Clipboard:   inputClipboard,
	})
	if err != nil {
		return err
	}

	if !inputPassword {
		fmt.Fprintln(cmd.OutOrStdout(), value)
	}
	return nil
}

func runConfirm(cmd *cobra.Command, args []string) error {
	c, err := common(cmd, confirmHeight)
	if err != nil {
		return err
	}
	if err := terminal.RequireTTY(drawTarget); err != nil {
		return err
	}

	return tui.RunConfirm(cmd.Context(), tui.ConfirmOptions{
		Common:      c,
		Text:        confirmText,
		Affirmative: confirmAffirmative,
		Negative:    confirmNegative,
		Default:     confirmDefault,
	})
}
