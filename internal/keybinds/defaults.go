package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerBlockBindings(r)
	registerGaugeBindings(r)
	registerTableBindings(r)
	registerInputBindings(r)
	registerConfirmBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available in all widgets
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
}

func registerBlockBindings(r *Registry) {
	r.RegisterMultiple(ContextBlock, []string{"q", "esc", "enter"}, ActionQuit)
}

// registerGaugeBindings: enter only quits once the target is reached,
// which the gauge model enforces itself
func registerGaugeBindings(r *Registry) {
	r.RegisterMultiple(ContextGauge, []string{"q", "esc"}, ActionCancel)
	r.Register(ContextGauge, "enter", ActionQuit)
}

func registerTableBindings(r *Registry) {
	r.RegisterMultiple(ContextTable, []string{"q", "esc"}, ActionQuit)
	r.Register(ContextTable, "enter", ActionSubmit)
	r.RegisterMultiple(ContextTable, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextTable, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextTable, "pgup", ActionPageUp)
	r.Register(ContextTable, "pgdown", ActionPageDown)
	r.Register(ContextTable, "ctrl+u", ActionHalfPageUp)
	r.Register(ContextTable, "ctrl+d", ActionHalfPageDown)
	r.Register(ContextTable, "g", ActionGoToTopPrepare)
	r.Register(ContextTable, "gg", ActionGoToTop)
	r.Register(ContextTable, "G", ActionGoToBottom)
	r.Register(ContextTable, "home", ActionGoToTop)
	r.Register(ContextTable, "end", ActionGoToBottom)
}

// registerInputBindings: every other key is handed to the text input
func registerInputBindings(r *Registry) {
	r.Register(ContextInput, "enter", ActionSubmit)
	r.Register(ContextInput, "esc", ActionCancel)
}

func registerConfirmBindings(r *Registry) {
	r.RegisterMultiple(ContextConfirm, []string{"tab", "shift+tab"}, ActionToggle)
	r.RegisterMultiple(ContextConfirm, []string{"left", "h"}, ActionSelectLeft)
	r.RegisterMultiple(ContextConfirm, []string{"right", "l"}, ActionSelectRight)
	r.RegisterMultiple(ContextConfirm, []string{"y", "Y"}, ActionAffirm)
	r.RegisterMultiple(ContextConfirm, []string{"n", "N"}, ActionDeny)
	r.Register(ContextConfirm, "enter", ActionSubmit)
	r.RegisterMultiple(ContextConfirm, []string{"esc", "q"}, ActionCancel)
}
