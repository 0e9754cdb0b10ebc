package keybinds

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
)

// Config represents the user's keybinding configuration. Each section maps
// an action name to a comma-separated list of keys, e.g. "quit": "q,esc".
type Config struct {
	Version string            `json:"version"`
	Global  map[string]string `json:"global,omitempty"`
	Block   map[string]string `json:"block,omitempty"`
	Gauge   map[string]string `json:"gauge,omitempty"`
	Table   map[string]string `json:"table,omitempty"`
	Input   map[string]string `json:"input,omitempty"`
	Confirm map[string]string `json:"confirm,omitempty"`
}

// sections maps contexts to their config section
func (c *Config) sections() map[Context]map[string]string {
	return map[Context]map[string]string{
		ContextGlobal:  c.Global,
		ContextBlock:   c.Block,
		ContextGauge:   c.Gauge,
		ContextTable:   c.Table,
		ContextInput:   c.Input,
		ContextConfirm: c.Confirm,
	}
}

// LoadConfig loads keybinding configuration from a JSON file.
// Comments and trailing commas are allowed.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &config); err != nil {
		return nil, fmt.Errorf("invalid %s format: %w", filepath.Base(path), err)
	}

	return &config, nil
}

// SaveConfig saves keybinding configuration to a JSON file
func SaveConfig(config *Config, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// SplitKeys splits a comma-separated key list. A lone "," binds the comma key.
func SplitKeys(keys string) []string {
	if strings.TrimSpace(keys) == "," {
		return []string{","}
	}
	var out []string
	for _, k := range strings.Split(keys, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

// ApplyConfig applies user configuration to a registry.
// An action listed in the config loses its default keys in that context.
func ApplyConfig(registry *Registry, config *Config) error {
	for _, context := range Contexts {
		section := config.sections()[context]

		actions := make([]string, 0, len(section))
		for action := range section {
			actions = append(actions, action)
		}
		sort.Strings(actions)

		for _, actionStr := range actions {
			action := Action(actionStr)
			if err := ValidateAction(actionStr); err != nil {
				return fmt.Errorf("context '%s': %w", context, err)
			}

			keys := SplitKeys(section[actionStr])
			for _, key := range keys {
				if err := ValidateKey(key); err != nil {
					return fmt.Errorf("context '%s', action '%s': %w", context, action, err)
				}
			}

			registry.UnbindAction(context, action)
			registry.RegisterMultiple(context, keys, action)
		}
	}

	return nil
}

// LoadOrDefault loads user config if it exists, otherwise returns default registry
func LoadOrDefault(configPath string) (*Registry, error) {
	registry := NewDefaultRegistry()

	if configPath == "" {
		return registry, nil
	}

	if _, err := os.Stat(configPath); err == nil {
		config, err := LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load keybinds: %w", err)
		}

		if err := ApplyConfig(registry, config); err != nil {
			return nil, fmt.Errorf("failed to apply keybinds config: %w", err)
		}
	}

	return registry, nil
}

// ExportConfig converts a registry back into the file format
func ExportConfig(registry *Registry) *Config {
	config := &Config{Version: "1.0"}
	out := map[Context]map[string]string{}

	for _, context := range Contexts {
		grouped := map[Action][]string{}
		for _, b := range registry.contextBindings(context) {
			grouped[b.Action] = append(grouped[b.Action], b.Key)
		}
		if len(grouped) == 0 {
			continue
		}
		section := make(map[string]string, len(grouped))
		for action, keys := range grouped {
			section[string(action)] = strings.Join(keys, ",")
		}
		out[context] = section
	}

	config.Global = out[ContextGlobal]
	config.Block = out[ContextBlock]
	config.Gauge = out[ContextGauge]
	config.Table = out[ContextTable]
	config.Input = out[ContextInput]
	config.Confirm = out[ContextConfirm]
	return config
}

// CreateExampleConfig writes the default bindings to path so users can
// see what can be customized
func CreateExampleConfig(path string) error {
	return SaveConfig(ExportConfig(NewDefaultRegistry()), path)
}
