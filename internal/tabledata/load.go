package tabledata

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/studiowebux/nibble/internal/applog"
	"github.com/studiowebux/nibble/internal/filter"
	"github.com/studiowebux/nibble/internal/types"
	"github.com/tidwall/jsonc"
)

// Stdin is the file name that reads table data from standard input.
const Stdin = "-"

// Format identifies how a table file is decoded.
type Format int

const (
	FormatCSV Format = iota
	FormatTSV
	FormatJSON
	FormatJSONC
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTSV:
		return "tsv"
	case FormatJSON:
		return "json"
	case FormatJSONC:
		return "jsonc"
	case FormatYAML:
		return "yaml"
	}
	return "csv"
}

// Structured reports whether the format decodes into arrays and objects.
func (f Format) Structured() bool {
	return f == FormatJSON || f == FormatJSONC || f == FormatYAML
}

// DetectFormat picks a format from the file extension. Unknown extensions
// are read as CSV. Data read from stdin is sniffed instead: a leading '['
// means JSON (comments allowed), anything else CSV.
func DetectFormat(path string, data []byte) Format {
	if path == Stdin {
		if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
			return FormatJSONC
		}
		return FormatCSV
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv":
		return FormatTSV
	case ".json":
		return FormatJSON
	case ".jsonc":
		return FormatJSONC
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatCSV
}

// Parse decodes data in the given format.
func Parse(format Format, data []byte) ([][]string, error) {
	switch format {
	case FormatTSV:
		return ParseCSV(bytes.NewReader(data), '\t')
	case FormatJSON:
		return ParseJSON(data)
	case FormatJSONC:
		return ParseJSONC(data)
	case FormatYAML:
		return ParseYAML(data)
	}
	return ParseCSV(bytes.NewReader(data), ',')
}

// LoadFile reads and parses a table file, or stdin when path is "-".
//
// A non-empty query is applied before the rows are built. A $(command)
// query receives the raw file on stdin and its output is parsed in the
// same format. Any other query is a JMESPath expression, which needs a
// structured format; its result is parsed as JSON.
func LoadFile(ctx context.Context, path string, stdin io.Reader, query string) ([][]string, error) {
	data, err := readSource(path, stdin)
	if err != nil {
		return nil, err
	}

	format := DetectFormat(path, data)
	applog.Debug("table file read", "path", path, "format", format.String(), "bytes", len(data))

	if query == "" {
		return Parse(format, data)
	}

	if filter.IsShellCommand(query) {
		out, err := filter.Apply(ctx, data, query)
		if err != nil {
			return nil, types.Wrap(types.KindConfig, "query failed", err)
		}
		return Parse(format, out)
	}

	if !format.Structured() {
		return nil, types.Newf(types.KindConfig, "JMESPath queries need a JSON, JSONC or YAML file, got %s", format)
	}

	body, err := toJSON(format, data)
	if err != nil {
		return nil, err
	}

	out, err := filter.Apply(ctx, body, query)
	if err != nil {
		return nil, types.Wrap(types.KindConfig, "query failed", err)
	}
	return ParseJSON(out)
}

func readSource(path string, stdin io.Reader) ([]byte, error) {
	if path == Stdin {
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, types.Wrap(types.KindIO, "failed to read stdin", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.Wrap(types.KindIO, "failed to read file", err)
	}
	return data, nil
}

// toJSON normalizes a structured document to plain JSON for querying.
func toJSON(format Format, data []byte) ([]byte, error) {
	switch format {
	case FormatJSON:
		return data, nil
	case FormatJSONC:
		return jsonc.ToJSON(data), nil
	}

	value, err := decodeYAML(data)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(value)
	if err != nil {
		return nil, types.Wrap(types.KindConfig, "failed to convert YAML", err)
	}
	return out, nil
}
