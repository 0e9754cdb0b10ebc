package keybinds

import (
	"strings"
	"testing"
)

func TestNewValidator(t *testing.T) {
	v := NewValidator()

	if v == nil {
		t.Fatal("NewValidator returned nil")
	}

	if v.reservedKeys["ctrl+c"] != ActionQuitForce {
		t.Error("Expected ctrl+c to be reserved for quit_force")
	}

	if len(v.required) == 0 {
		t.Error("Expected required actions to be initialized")
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      ValidationError
		expected string
	}{
		{
			name: "invalid error",
			err: ValidationError{
				Type:    "invalid",
				Context: ContextTable,
				Key:     "",
				Message: "action 'quit' has no key",
			},
			expected: "[invalid]  in context 'table': action 'quit' has no key",
		},
		{
			name: "warning",
			err: ValidationError{
				Type:    "warning",
				Context: ContextConfirm,
				Key:     "ctrl+c",
				Message: "reserved key rebound (may cause issues)",
			},
			expected: "[warning] ctrl+c in context 'confirm': reserved key rebound (may cause issues)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestValidationResult_HasErrorsAndWarnings(t *testing.T) {
	empty := &ValidationResult{}
	if empty.HasErrors() || empty.HasWarnings() {
		t.Error("empty result should have no errors or warnings")
	}

	withBoth := &ValidationResult{
		Errors:   []ValidationError{{Type: "invalid", Message: "bad key"}},
		Warnings: []ValidationError{{Type: "warning", Message: "shadowing"}},
	}
	if !withBoth.HasErrors() {
		t.Error("expected HasErrors() to be true")
	}
	if !withBoth.HasWarnings() {
		t.Error("expected HasWarnings() to be true")
	}
}

func TestValidationResult_String(t *testing.T) {
	tests := []struct {
		name     string
		result   *ValidationResult
		contains []string
	}{
		{
			name:     "no issues",
			result:   &ValidationResult{},
			contains: []string{"No issues found"},
		},
		{
			name: "both errors and warnings",
			result: &ValidationResult{
				Errors: []ValidationError{
					{Type: "invalid", Context: ContextInput, Message: "action 'submit' has no key"},
				},
				Warnings: []ValidationError{
					{Type: "warning", Context: ContextTable, Key: "ctrl+c", Message: "shadows"},
				},
			},
			contains: []string{"Errors (1)", "Warnings (1)", "input", "table", "ctrl+c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.result.String()
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("String() output missing %q, got:\n%s", want, got)
				}
			}
		})
	}
}

func TestValidateRegistry_DefaultsAreClean(t *testing.T) {
	result := NewValidator().ValidateRegistry(NewDefaultRegistry())

	if result.HasErrors() || result.HasWarnings() {
		t.Errorf("default registry should validate cleanly:\n%s", result.String())
	}
}

func TestCheckReservedKeys(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name           string
		setupRegistry  func() *Registry
		expectWarnings int
	}{
		{
			name: "reserved key with correct action",
			setupRegistry: func() *Registry {
				r := NewRegistry()
				r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
				return r
			},
			expectWarnings: 0,
		},
		{
			name: "reserved key rebound globally",
			setupRegistry: func() *Registry {
				r := NewRegistry()
				r.Register(ContextGlobal, "ctrl+c", ActionQuit)
				return r
			},
			expectWarnings: 1,
		},
		{
			name: "reserved key rebound in a widget",
			setupRegistry: func() *Registry {
				r := NewRegistry()
				r.Register(ContextInput, "ctrl+c", ActionSubmit)
				return r
			},
			expectWarnings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := &ValidationResult{}
			v.checkReservedKeys(tt.setupRegistry(), result)

			if len(result.Warnings) != tt.expectWarnings {
				t.Errorf("Expected %d warnings, got %d", tt.expectWarnings, len(result.Warnings))
			}
		})
	}
}

func TestCheckRequiredActions(t *testing.T) {
	v := NewValidator()

	r := NewDefaultRegistry()
	r.UnbindAction(ContextBlock, ActionQuit)

	result := &ValidationResult{}
	v.checkRequiredActions(r, result)

	if len(result.Errors) != 1 {
		t.Fatalf("Expected 1 error, got %d", len(result.Errors))
	}
	if result.Errors[0].Context != ContextBlock {
		t.Errorf("Context = %q, want %q", result.Errors[0].Context, ContextBlock)
	}
}

func TestCheckShadowing(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name           string
		setupRegistry  func() *Registry
		expectWarnings int
	}{
		{
			name: "no shadowing",
			setupRegistry: func() *Registry {
				r := NewRegistry()
				r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
				r.Register(ContextBlock, "q", ActionQuit)
				return r
			},
			expectWarnings: 0,
		},
		{
			name: "context shadows global with different action",
			setupRegistry: func() *Registry {
				r := NewRegistry()
				r.Register(ContextGlobal, "q", ActionQuit)
				r.Register(ContextInput, "q", ActionSubmit)
				return r
			},
			expectWarnings: 1,
		},
		{
			name: "context uses same action as global (no warning)",
			setupRegistry: func() *Registry {
				r := NewRegistry()
				r.Register(ContextGlobal, "q", ActionQuit)
				r.Register(ContextBlock, "q", ActionQuit)
				return r
			},
			expectWarnings: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := &ValidationResult{}
			v.checkShadowing(tt.setupRegistry(), result)

			if len(result.Warnings) != tt.expectWarnings {
				t.Errorf("Expected %d warnings, got %d", tt.expectWarnings, len(result.Warnings))
				for _, w := range result.Warnings {
					t.Logf("  Warning: %s", w.Error())
				}
			}
		})
	}
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		key     string
		wantErr bool
	}{
		{"q", false},
		{"ctrl+c", false},
		{"shift+tab", false},
		{"", true},
		{"ctrl+", true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			err := ValidateKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAction(t *testing.T) {
	if err := ValidateAction("quit"); err != nil {
		t.Errorf("ValidateAction(quit) returned error: %v", err)
	}
	if err := ValidateAction(""); err == nil {
		t.Error("expected error for empty action")
	}
	if err := ValidateAction("launch_rockets"); err == nil {
		t.Error("expected error for unknown action")
	}
}
