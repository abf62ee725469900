package keys

import "strings"

// Modifier is a bitset of keyboard modifier keys.
//
// The bits occupy a range disjoint from every Key value, so a value
// holding both a key and modifiers can always be detected as corrupt.
type Modifier uint32

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 0x02000000

	// ModCtrl indicates the Control key.
	ModCtrl Modifier = 0x04000000

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt Modifier = 0x08000000

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta Modifier = 0x10000000

	// ModKeypad indicates a key on the numeric keypad.
	ModKeypad Modifier = 0x20000000

	// ModGroupSwitch indicates the AltGr group-switch modifier.
	ModGroupSwitch Modifier = 0x40000000

	// ModMask covers every valid modifier bit.
	ModMask Modifier = 0x7e000000
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns a readable representation like "Ctrl+Shift".
func (m Modifier) String() string {
	assertPlainModifier(m)
	if m == ModNone {
		return ""
	}
	return strings.TrimSuffix(m.prefix(), "+")
}

// prefix renders the modifiers in canonical order, each followed by a
// "+", ready to be prepended to a key name in bracket syntax. AltGr
// comes first because it has no place in the regular modifier order.
func (m Modifier) prefix() string {
	assertPlainModifier(m)

	var sb strings.Builder
	if m.Has(ModGroupSwitch) {
		sb.WriteString("AltGr+")
	}
	if m.Has(ModMeta) {
		sb.WriteString("Meta+")
	}
	if m.Has(ModCtrl) {
		sb.WriteString("Ctrl+")
	}
	if m.Has(ModAlt) {
		sb.WriteString("Alt+")
	}
	if m.Has(ModShift) {
		sb.WriteString("Shift+")
	}
	if m.Has(ModKeypad) {
		sb.WriteString("Num+")
	}
	return sb.String()
}

// modifierNames maps modifier names usable in special tokens to their
// bit. Aliases like "control" or "windows" are rewritten before this
// table is consulted.
var modifierNames = map[string]Modifier{
	"ctrl":  ModCtrl,
	"meta":  ModMeta,
	"alt":   ModAlt,
	"shift": ModShift,
	"num":   ModKeypad,
}
