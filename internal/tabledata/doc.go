// Package tabledata turns inline strings and CSV, TSV, JSON, JSONC or YAML
// files into rows of strings for the table widget.
package tabledata
