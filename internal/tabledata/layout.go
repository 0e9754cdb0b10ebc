package tabledata

import (
	"strconv"
	"strings"

	"github.com/studiowebux/nibble/internal/types"
)

// SplitHeaders separates the header row from the body. Explicit headers
// (comma-separated) leave every data row in the body; otherwise the first
// row is the header when there is more than one row.
func SplitHeaders(rows [][]string, headers string) ([]string, [][]string) {
	if headers != "" {
		var header []string
		for _, h := range strings.Split(headers, ",") {
			header = append(header, strings.TrimSpace(h))
		}
		return header, rows
	}

	if len(rows) > 1 {
		return rows[0], rows[1:]
	}
	return nil, rows
}

// ColumnCount is the length of the longest row.
func ColumnCount(rows [][]string) int {
	n := 0
	for _, row := range rows {
		n = max(n, len(row))
	}
	return n
}

// TableColumns is the number of columns a table with this header and body
// shows: the longest row or the header, whichever is wider.
func TableColumns(header []string, rows [][]string) int {
	return max(ColumnCount(rows), len(header))
}

// ParseWidths parses comma-separated column widths in percent. There must
// be one per column and they may not add up to more than 100.
func ParseWidths(s string, numCols int) ([]int, error) {
	parts := strings.Split(s, ",")
	widths := make([]int, 0, len(parts))

	for _, p := range parts {
		w, err := strconv.ParseUint(strings.TrimSpace(p), 10, 16)
		if err != nil {
			return nil, types.Newf(types.KindConfig, "invalid width value: %s", p)
		}
		widths = append(widths, int(w))
	}

	if len(widths) != numCols {
		return nil, types.Newf(types.KindConfig, "number of widths (%d) doesn't match number of columns (%d)", len(widths), numCols)
	}

	sum := 0
	for _, w := range widths {
		sum += w
	}
	if sum > 100 {
		return nil, types.Newf(types.KindConfig, "column widths sum to %d%%, must be 100%% or less", sum)
	}

	return widths, nil
}

// EqualWidths splits 100% evenly across n columns, at least 1% each.
func EqualWidths(n int) []int {
	widths := make([]int, n)
	for i := range widths {
		widths[i] = max(100/n, 1)
	}
	return widths
}
