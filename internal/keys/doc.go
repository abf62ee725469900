// Package keys implements key-sequence parsing and matching for
// keyboard-driven browsing.
//
// This package defines the canonical types for keyboard input:
//
//   - Key: Identifies a keyboard key (a printable codepoint or a named
//     special key such as Escape or Backtab)
//   - Modifier: A bitset of modifier keys (Shift, Ctrl, Alt, Meta,
//     Keypad, AltGr)
//   - KeyInfo: A single key press with its modifiers
//   - Sequence: An ordered chord sequence like "gg" or "<Ctrl+x><Ctrl+s>"
//
// # Key strings
//
// Sequences are written as a run of characters where <...> delimits one
// special chord ("<Ctrl-x>gg"). Uppercase letters imply Shift. Parsing
// and rendering round-trip: every sequence renders to a single canonical
// string ("<Control-x>" becomes "<Ctrl+x>") which parses back to an
// equal sequence.
//
// # Matching
//
// A partially entered sequence is compared against configured bindings
// with Matches, which reports NoMatch, PartialMatch, or ExactMatch. The
// caller keeps appending key events until the match is decided.
package keys
