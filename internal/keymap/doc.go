// Package keymap stores key bindings and looks them up against
// partially entered key sequences.
//
// A Keymap is a named set of bindings for one mode (normal, insert,
// command, ...). The Registry aggregates keymaps and answers the one
// question a key dispatcher asks: given what the user has typed so far,
// is there an exact match, could more keys still complete a binding, or
// is the chain dead?
//
// Lookup applies the user's key mappings and falls back to a
// keypad-stripped variant of the entered sequence, so numpad digits hit
// the same bindings as the main row unless bound separately.
package keymap
