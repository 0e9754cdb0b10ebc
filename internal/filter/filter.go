package filter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/jmespath/go-jmespath"
)

const (
	// QueryShellTimeout is the maximum time allowed for query shell command execution
	QueryShellTimeout = 30 * time.Second
)

var (
	// Shell command pattern: $(command)
	shellPattern = regexp.MustCompile(`^\$\((.+)\)$`)
)

// Search applies a JMESPath expression to already decoded data
// (maps, slices and scalars as produced by encoding/json or yaml.v3).
func Search(data any, expression string) (any, error) {
	jp, err := jmespath.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid JMESPath expression '%s': %w", expression, err)
	}

	result, err := jp.Search(data)
	if err != nil {
		return nil, fmt.Errorf("JMESPath search failed: %w", err)
	}

	return result, nil
}

// Apply runs query against a JSON document and returns the result as JSON.
// If query is of the form $(...), it is executed as a shell command with
// body piped to stdin and its stdout returned as is.
func Apply(ctx context.Context, body []byte, query string) ([]byte, error) {
	if query == "" {
		return body, nil
	}

	if matches := shellPattern.FindStringSubmatch(query); len(matches) > 1 {
		out, err := executeShellCommand(ctx, body, matches[1])
		if err != nil {
			return nil, fmt.Errorf("failed to execute query shell command: %w", err)
		}
		return out, nil
	}

	data, err := decodeJSON(body)
	if err != nil {
		return nil, err
	}

	result, err := Search(data, query)
	if err != nil {
		return nil, fmt.Errorf("failed to apply query: %w", err)
	}

	output, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return output, nil
}

// decodeJSON decodes body keeping every number in its source form.
// Numbers that float64 represents exactly (30, 2.5) are handed to
// JMESPath as float64 so comparisons and functions work on them; the
// others (1e3, 1.0, ids past 2^53) stay json.Number and marshal back
// unchanged.
func decodeJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var data any
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return searchable(data), nil
}

func searchable(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, item := range v {
			v[k] = searchable(item)
		}
	case []any:
		for i, item := range v {
			v[i] = searchable(item)
		}
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return v
		}
		if out, err := json.Marshal(f); err == nil && string(out) == v.String() {
			return f
		}
	}
	return v
}

// executeShellCommand executes a shell command with the body piped to stdin
func executeShellCommand(ctx context.Context, body []byte, command string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryShellTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Stdin = bytes.NewReader(body)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		errMsg := err.Error()
		if stderr.Len() > 0 {
			errMsg = strings.TrimSpace(stderr.String())
		}
		return nil, fmt.Errorf("command '%s' failed: %s", command, errMsg)
	}

	return stdout.Bytes(), nil
}

// IsValidJMESPath checks if an expression is valid JMESPath syntax
func IsValidJMESPath(expression string) bool {
	_, err := jmespath.Compile(expression)
	return err == nil
}

// IsShellCommand checks if a query is a shell command (starts with $(...))
func IsShellCommand(query string) bool {
	return shellPattern.MatchString(query)
}
