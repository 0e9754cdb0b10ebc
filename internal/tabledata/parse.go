package tabledata

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/studiowebux/nibble/internal/types"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ParseInline splits data into rows and cells. Blank rows are skipped and
// cells are trimmed.
func ParseInline(data, rowSep, colSep string) ([][]string, error) {
	var rows [][]string

	for _, line := range strings.Split(data, rowSep) {
		if strings.TrimSpace(line) == "" {
			continue
		}

		cells := strings.Split(line, colSep)
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		rows = append(rows, cells)
	}

	if len(rows) == 0 {
		return nil, types.New(types.KindConfig, "inline data is empty")
	}
	return rows, nil
}

// ParseCSV reads delimiter separated records. Quoted fields are honored,
// rows may have different lengths and blank lines are skipped.
func ParseCSV(r io.Reader, comma rune) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, types.Wrap(types.KindConfig, "invalid CSV", err)
		}

		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		if len(record) == 1 && record[0] == "" {
			continue
		}
		rows = append(rows, record)
	}

	if len(rows) == 0 {
		return nil, types.New(types.KindConfig, "CSV file is empty")
	}
	return rows, nil
}

// ParseJSON decodes a JSON array of arrays or array of objects.
func ParseJSON(data []byte) ([][]string, error) {
	value, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	return FromValue(value)
}

// ParseJSONC is ParseJSON with comments and trailing commas allowed.
func ParseJSONC(data []byte) ([][]string, error) {
	return ParseJSON(jsonc.ToJSON(data))
}

// ParseYAML decodes a YAML sequence of sequences or sequence of mappings.
func ParseYAML(data []byte) ([][]string, error) {
	value, err := decodeYAML(data)
	if err != nil {
		return nil, err
	}
	return FromValue(value)
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, types.Wrap(types.KindConfig, "invalid JSON", err)
	}
	return value, nil
}

func decodeYAML(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, types.Wrap(types.KindConfig, "invalid YAML", err)
	}
	if doc.Kind == 0 {
		return nil, nil
	}
	return nodeValue(&doc), nil
}

// nodeValue converts a YAML node into the same shapes decodeJSON produces.
// Numbers become json.Number so they keep their source form.
func nodeValue(n *yaml.Node) any {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil
		}
		return nodeValue(n.Content[0])
	case yaml.AliasNode:
		return nodeValue(n.Alias)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			out = append(out, nodeValue(c))
		}
		return out
	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			out[n.Content[i].Value] = nodeValue(n.Content[i+1])
		}
		return out
	}

	switch n.ShortTag() {
	case "!!int", "!!float":
		return json.Number(n.Value)
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return n.Value
		}
		return b
	case "!!null":
		return nil
	}
	return n.Value
}

// FromValue converts decoded structured data into rows. An array of objects
// yields a header row made of the first object's keys in sorted order.
func FromValue(value any) ([][]string, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, types.New(types.KindConfig, "JSON root must be an array")
	}
	if len(items) == 0 {
		return nil, types.New(types.KindConfig, "JSON array is empty")
	}

	switch first := items[0].(type) {
	case []any:
		var rows [][]string
		for _, item := range items {
			cells, ok := item.([]any)
			if !ok {
				continue
			}
			row := make([]string, len(cells))
			for i, c := range cells {
				row[i] = stringify(c)
			}
			rows = append(rows, row)
		}
		return rows, nil

	case map[string]any:
		headers := make([]string, 0, len(first))
		for k := range first {
			headers = append(headers, k)
		}
		sort.Strings(headers)

		rows := [][]string{headers}
		for _, item := range items {
			obj, ok := item.(map[string]any)
			if !ok {
				continue
			}
			row := make([]string, len(headers))
			for i, h := range headers {
				if v, ok := obj[h]; ok {
					row[i] = stringify(v)
				}
			}
			rows = append(rows, row)
		}
		return rows, nil
	}

	return nil, types.New(types.KindConfig, "JSON must be array of arrays or array of objects")
}

func stringify(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}
