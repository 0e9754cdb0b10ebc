package keybinds

import (
	"sort"
	"strings"
)

// Binding represents a keybinding mapping
type Binding struct {
	Key     string
	Action  Action
	Context Context
}

// Registry manages keybinding mappings and matching
type Registry struct {
	// bindings maps context -> key -> action
	bindings map[Context]map[string]Action

	// multiKeyState tracks multi-key sequences (like 'gg' in vim)
	multiKeyState map[Context]string
}

// NewRegistry creates a new keybinding registry
func NewRegistry() *Registry {
	return &Registry{
		bindings:      make(map[Context]map[string]Action),
		multiKeyState: make(map[Context]string),
	}
}

// Register adds a keybinding to the registry
func (r *Registry) Register(context Context, key string, action Action) {
	if r.bindings[context] == nil {
		r.bindings[context] = make(map[string]Action)
	}
	r.bindings[context][key] = action
}

// RegisterMultiple registers multiple keybindings for the same action
func (r *Registry) RegisterMultiple(context Context, keys []string, action Action) {
	for _, key := range keys {
		r.Register(context, key, action)
	}
}

// UnbindAction removes every key bound to action in context
func (r *Registry) UnbindAction(context Context, action Action) {
	for key, act := range r.bindings[context] {
		if act == action {
			delete(r.bindings[context], key)
		}
	}
}

// Match attempts to match a key to an action in the given context
// Returns the action and whether a match was found
// Contexts are checked in priority order: specific context -> global
func (r *Registry) Match(context Context, key string) (Action, bool) {
	if contextBindings, ok := r.bindings[context]; ok {
		if action, ok := contextBindings[key]; ok {
			return action, true
		}
	}

	if globalBindings, ok := r.bindings[ContextGlobal]; ok {
		if action, ok := globalBindings[key]; ok {
			return action, true
		}
	}

	return "", false
}

// MatchMultiKey handles multi-key sequences like 'gg' for go-to-top
// Returns the action, whether it's a complete match, and whether it's a partial match
func (r *Registry) MatchMultiKey(context Context, key string) (Action, bool, bool) {
	if prevKey, hasPending := r.multiKeyState[context]; hasPending {
		delete(r.multiKeyState, context)

		if action, ok := r.Match(context, prevKey+key); ok {
			return action, true, false
		}

		// Not a sequence after all, treat the new key on its own
		return r.matchSingle(context, key)
	}

	return r.matchSingle(context, key)
}

func (r *Registry) matchSingle(context Context, key string) (Action, bool, bool) {
	if r.startsSequence(context, key) {
		r.multiKeyState[context] = key
		return "", false, true
	}

	action, ok := r.Match(context, key)
	return action, ok, false
}

// startsSequence reports whether key is the prefix of a longer
// non-modifier binding in context
func (r *Registry) startsSequence(context Context, key string) bool {
	if strings.Contains(key, "+") {
		return false
	}
	for bound := range r.bindings[context] {
		if len(bound) > len(key) && !strings.Contains(bound, "+") && strings.HasPrefix(bound, key) && isSequence(bound) {
			return true
		}
	}
	return false
}

// isSequence reports whether key is a run of printable single characters
// such as "gg" rather than a named key such as "enter"
func isSequence(key string) bool {
	if len(key) < 2 {
		return false
	}
	for i := 1; i < len(key); i++ {
		if key[i] != key[0] {
			return false
		}
	}
	return true
}

// ClearMultiKeyState clears any pending multi-key state for a context
func (r *Registry) ClearMultiKeyState(context Context) {
	delete(r.multiKeyState, context)
}

// GetBinding returns the key(s) bound to an action in a context, sorted
func (r *Registry) GetBinding(context Context, action Action) []string {
	var keys []string

	for key, act := range r.bindings[context] {
		if act == action {
			keys = append(keys, key)
		}
	}

	if len(keys) == 0 {
		for key, act := range r.bindings[ContextGlobal] {
			if act == action {
				keys = append(keys, key)
			}
		}
	}

	sort.Strings(keys)
	return keys
}

// GetBindingString returns a human-readable string of keys bound to an action
func (r *Registry) GetBindingString(context Context, action Action) string {
	keys := r.GetBinding(context, action)
	if len(keys) == 0 {
		return "unbound"
	}
	return strings.Join(keys, ", ")
}

// ListBindings returns all bindings for a context followed by the global
// ones, each group sorted by key
func (r *Registry) ListBindings(context Context) []Binding {
	bindings := r.contextBindings(context)
	if context != ContextGlobal {
		bindings = append(bindings, r.contextBindings(ContextGlobal)...)
	}
	return bindings
}

func (r *Registry) contextBindings(context Context) []Binding {
	var bindings []Binding
	for key, action := range r.bindings[context] {
		bindings = append(bindings, Binding{Key: key, Action: action, Context: context})
	}
	sort.Slice(bindings, func(i, j int) bool { return bindings[i].Key < bindings[j].Key })
	return bindings
}

// HasBinding checks if a key is bound in a context
func (r *Registry) HasBinding(context Context, key string) bool {
	_, ok := r.Match(context, key)
	return ok
}

// Clone creates a deep copy of the registry
func (r *Registry) Clone() *Registry {
	clone := NewRegistry()
	clone.Merge(r)
	return clone
}

// Merge combines bindings from another registry, with other taking precedence
func (r *Registry) Merge(other *Registry) {
	for context, contextBindings := range other.bindings {
		for key, action := range contextBindings {
			r.Register(context, key, action)
		}
	}
}
