package keys

import (
	"strings"
)

// KeyInfo is a single key with optional modifiers. It is an immutable
// value type: two KeyInfo values compare equal iff key and modifiers
// both match, and it can be used directly as a map key.
type KeyInfo struct {
	// Key identifies the pressed key.
	Key Key

	// Mods contains the active modifiers.
	Mods Modifier
}

// NewKeyInfo creates a KeyInfo, panicking if key and modifier bits are
// mixed into the wrong field.
func NewKeyInfo(key Key, mods Modifier) KeyInfo {
	assertPlainKey(key)
	assertPlainModifier(mods)
	return KeyInfo{Key: key, Mods: mods}
}

// KeyInfoFromEvent builds a KeyInfo from a raw key event. The raw code
// is validated, and misreported surrogate key codes are remapped to the
// real codepoint taken from the event text.
func KeyInfoFromEvent(ev Event) (KeyInfo, error) {
	if err := checkCode(ev.Code); err != nil {
		return KeyInfo{}, err
	}
	key, err := remapSurrogate(ev.Code, ev.Text)
	if err != nil {
		return KeyInfo{}, err
	}
	return NewKeyInfo(key, ev.Mods), nil
}

// IsSpecial reports whether this combination requires bracket syntax.
// Only a printable key with no modifiers, or with Shift alone, renders
// as a bare character.
func (i KeyInfo) IsSpecial() bool {
	return !(i.Key.IsPrintable() && (i.Mods == ModNone || i.Mods == ModShift))
}

// String renders the canonical form used for display and for key
// strings: "a", "A", "<Ctrl+x>", "<AltGr+Shift>", ...
func (i KeyInfo) String() string {
	keyString := i.Key.String()
	mods := i.Mods

	if selfMod, ok := modifierKeys[i.Key]; ok {
		// Don't render e.g. <Shift+Shift>.
		mods = mods.Without(selfMod)
	} else if i.Key.IsPrintable() {
		switch i.Mods {
		case ModShift:
			return strings.ToUpper(keyString)
		case ModNone:
			return strings.ToLower(keyString)
		}
		// Bracket syntax, but <Ctrl+a> rather than <Ctrl+A>.
		keyString = strings.ToLower(keyString)
	}

	return "<" + mods.prefix() + keyString + ">"
}

// controlText maps keys to the control character they insert.
var controlText = map[Key]string{
	KeySpace:     " ",
	KeyTab:       "\t",
	KeyBackspace: "\b",
	KeyReturn:    "\r",
	KeyEnter:     "\r",
	KeyEscape:    "\x1b",
}

// Text returns the text this key press would insert, independent of how
// it renders: a control character for the fixed control keys, nothing
// for other non-printable keys, and otherwise the glyph, lowercased
// unless Shift is held.
func (i KeyInfo) Text() string {
	if text, ok := controlText[i.Key]; ok {
		return text
	}
	if !i.Key.IsPrintable() {
		return ""
	}
	text := string(rune(i.Key))
	if !i.Mods.Has(ModShift) {
		text = strings.ToLower(text)
	}
	return text
}

// ToEvent converts back to a raw event. For any KeyInfo built from a
// valid non-surrogate event, KeyInfoFromEvent(info.ToEvent()) == info.
func (i KeyInfo) ToEvent() Event {
	return Event{Code: i.Key, Mods: i.Mods, Text: i.Text()}
}

// WithStrippedModifiers returns a copy with the given modifier bits
// cleared.
func (i KeyInfo) WithStrippedModifiers(mods Modifier) KeyInfo {
	return NewKeyInfo(i.Key, i.Mods.Without(mods))
}

// packed folds key and modifiers into one comparable value. The bit
// ranges are disjoint, so this is lossless.
func (i KeyInfo) packed() uint32 {
	return uint32(i.Key) | uint32(i.Mods)
}

// Compare gives a total order over KeyInfo values, consistent with
// equality. It exists so configured bindings can be sorted
// deterministically.
func (i KeyInfo) Compare(other KeyInfo) int {
	switch a, b := i.packed(), other.packed(); {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
