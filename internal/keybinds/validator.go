package keybinds

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError represents a keybinding validation error
type ValidationError struct {
	Type    string // "conflict", "invalid", "warning"
	Context Context
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s in context '%s': %s", e.Type, e.Key, e.Context, e.Message)
}

// ValidationResult contains all validation errors and warnings
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any errors
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any warnings
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// String returns a human-readable summary of validation results
func (r *ValidationResult) String() string {
	var sb strings.Builder

	if len(r.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("Errors (%d):\n", len(r.Errors)))
		for _, err := range r.Errors {
			sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
		}
	}

	if len(r.Warnings) > 0 {
		sb.WriteString(fmt.Sprintf("Warnings (%d):\n", len(r.Warnings)))
		for _, warn := range r.Warnings {
			sb.WriteString(fmt.Sprintf("  - %s\n", warn.Error()))
		}
	}

	if !r.HasErrors() && !r.HasWarnings() {
		sb.WriteString("No issues found")
	}

	return sb.String()
}

// Validator validates keybinding configurations
type Validator struct {
	// reservedKeys are keys that should not be rebound, with the action they must keep
	reservedKeys map[string]Action

	// required lists actions every widget context needs to be usable
	required map[Context][]Action
}

// NewValidator creates a new keybinding validator
func NewValidator() *Validator {
	return &Validator{
		reservedKeys: map[string]Action{
			"ctrl+c": ActionQuitForce, // Abort should always work
		},
		required: map[Context][]Action{
			ContextBlock:   {ActionQuit},
			ContextGauge:   {ActionQuit},
			ContextTable:   {ActionQuit},
			ContextInput:   {ActionSubmit},
			ContextConfirm: {ActionSubmit},
		},
	}
}

// ValidateRegistry validates an entire registry
func (v *Validator) ValidateRegistry(registry *Registry) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	v.checkReservedKeys(registry, result)
	v.checkRequiredActions(registry, result)
	v.checkShadowing(registry, result)

	return result
}

// ValidateConfig validates a configuration applied over the defaults
func (v *Validator) ValidateConfig(config *Config) *ValidationResult {
	registry := NewDefaultRegistry()
	if err := ApplyConfig(registry, config); err != nil {
		return &ValidationResult{
			Errors: []ValidationError{{
				Type:    "invalid",
				Message: err.Error(),
			}},
			Warnings: []ValidationError{},
		}
	}

	return v.ValidateRegistry(registry)
}

// checkReservedKeys checks if any reserved keys have been rebound
func (v *Validator) checkReservedKeys(registry *Registry, result *ValidationResult) {
	for _, context := range Contexts {
		for _, b := range registry.contextBindings(context) {
			want, reserved := v.reservedKeys[b.Key]
			if reserved && b.Action != want {
				result.Warnings = append(result.Warnings, ValidationError{
					Type:    "warning",
					Context: context,
					Key:     b.Key,
					Message: "reserved key rebound (may cause issues)",
				})
			}
		}
	}
}

// checkRequiredActions reports widgets left without a way out
func (v *Validator) checkRequiredActions(registry *Registry, result *ValidationResult) {
	contexts := make([]string, 0, len(v.required))
	for context := range v.required {
		contexts = append(contexts, string(context))
	}
	sort.Strings(contexts)

	for _, name := range contexts {
		context := Context(name)
		for _, action := range v.required[context] {
			if len(registry.GetBinding(context, action)) == 0 {
				result.Errors = append(result.Errors, ValidationError{
					Type:    "invalid",
					Context: context,
					Message: fmt.Sprintf("action '%s' has no key", action),
				})
			}
		}
	}
}

// checkShadowing checks for context-specific bindings that shadow global bindings
func (v *Validator) checkShadowing(registry *Registry, result *ValidationResult) {
	globalBindings := registry.bindings[ContextGlobal]
	if globalBindings == nil {
		return
	}

	for _, context := range Contexts {
		if context == ContextGlobal {
			continue
		}

		for _, b := range registry.contextBindings(context) {
			if globalAction, hasGlobal := globalBindings[b.Key]; hasGlobal && b.Action != globalAction {
				result.Warnings = append(result.Warnings, ValidationError{
					Type:    "warning",
					Context: context,
					Key:     b.Key,
					Message: fmt.Sprintf("shadows global binding (%s -> %s)", globalAction, b.Action),
				})
			}
		}
	}
}

// ValidateKey checks if a key string is valid
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	for _, mod := range []string{"ctrl+", "alt+", "shift+", "super+"} {
		if key == mod {
			return fmt.Errorf("modifier without key: %s", key)
		}
	}

	return nil
}

// ValidateAction checks if an action string is valid
func ValidateAction(actionStr string) error {
	if actionStr == "" {
		return fmt.Errorf("action cannot be empty")
	}
	if !knownActions[Action(actionStr)] {
		return fmt.Errorf("unknown action '%s'", actionStr)
	}
	return nil
}
