/*
Package keybinds provides customizable keyboard binding management for the
widgets.

# Contexts

Each widget has its own context (block, gauge, table, input, confirm).
Keys are looked up in the widget's context first and then in the global
context, so a widget binding shadows a global one.

# Configuration File Format

Bindings are read from a JSON file that may contain comments. Each section
maps an action to a comma-separated list of keys:

	{
	  "version": "1.0",
	  // vim-style exit for blocks
	  "block": { "quit": "q,esc,enter,ctrl+q" },
	  "confirm": { "affirm": "y,o" }
	}

Listing an action replaces its default keys in that context. Unlisted
actions keep their defaults.

# Multi-Key Sequences

Table navigation supports "gg" for go-to-top. A lone "g" is held as a
pending prefix; any other key that follows is matched on its own.

# Validation

The validator reports:
  - unknown action names and malformed keys (errors)
  - widgets left without a way to finish (errors)
  - ctrl+c bound to anything but quit_force (warning)
  - widget bindings that shadow a global key (warning)
*/
package keybinds
