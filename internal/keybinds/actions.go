package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the widget in which keybindings are active
type Context string

const (
	// Contexts define where keybindings are active
	ContextGlobal  Context = "global"  // Available in every widget
	ContextBlock   Context = "block"   // Block widget
	ContextGauge   Context = "gauge"   // Gauge widget
	ContextTable   Context = "table"   // Table widget
	ContextInput   Context = "input"   // Text input widget
	ContextConfirm Context = "confirm" // Confirmation buttons
)

// Contexts lists every known context in display order
var Contexts = []Context{
	ContextGlobal,
	ContextBlock,
	ContextGauge,
	ContextTable,
	ContextInput,
	ContextConfirm,
}

const (
	// Lifecycle actions
	ActionQuit      Action = "quit"       // Close the widget normally
	ActionQuitForce Action = "quit_force" // Abort (ctrl+c)
	ActionSubmit    Action = "submit"     // Accept the current value/selection
	ActionCancel    Action = "cancel"     // Dismiss without a value

	// Navigation actions
	ActionNavigateUp     Action = "navigate_up"       // Move up one row
	ActionNavigateDown   Action = "navigate_down"     // Move down one row
	ActionPageUp         Action = "page_up"           // Move up one page
	ActionPageDown       Action = "page_down"         // Move down one page
	ActionHalfPageUp     Action = "half_page_up"      // Move up half a page
	ActionHalfPageDown   Action = "half_page_down"    // Move down half a page
	ActionGoToTop        Action = "go_to_top"         // Jump to first row
	ActionGoToBottom     Action = "go_to_bottom"      // Jump to last row
	ActionGoToTopPrepare Action = "go_to_top_prepare" // First 'g' in 'gg' sequence

	// Confirm actions
	ActionToggle      Action = "toggle"       // Switch between the two buttons
	ActionSelectLeft  Action = "select_left"  // Select the affirmative button
	ActionSelectRight Action = "select_right" // Select the negative button
	ActionAffirm      Action = "affirm"       // Choose affirmative and submit
	ActionDeny        Action = "deny"         // Choose negative and submit
)

// knownActions is the whitelist used by ValidateAction
var knownActions = map[Action]bool{
	ActionQuit:           true,
	ActionQuitForce:      true,
	ActionSubmit:         true,
	ActionCancel:         true,
	ActionNavigateUp:     true,
	ActionNavigateDown:   true,
	ActionPageUp:         true,
	ActionPageDown:       true,
	ActionHalfPageUp:     true,
	ActionHalfPageDown:   true,
	ActionGoToTop:        true,
	ActionGoToBottom:     true,
	ActionGoToTopPrepare: true,
	ActionToggle:         true,
	ActionSelectLeft:     true,
	ActionSelectRight:    true,
	ActionAffirm:         true,
	ActionDeny:           true,
}
