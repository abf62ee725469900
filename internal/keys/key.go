package keys

import (
	"fmt"
	"strings"
	"unicode"
)

// Key identifies a keyboard key.
//
// Printable keys are stored as the uppercase codepoint of their
// character ('a' and 'A' are both KeyA). Named special keys live in a
// reserved range starting at 0x01000000, well clear of any codepoint a
// platform can report, and clear of the Modifier bit range.
type Key uint32

// Reserved values. Both are invalid inside a finalized Sequence.
const (
	// KeyNil represents the absence of a key.
	KeyNil Key = 0

	// KeyUnknown is reported by platforms for keys they cannot identify.
	KeyUnknown Key = 0x01ffffff
)

// KeySpace is the space bar. It is a codepoint key but is never
// rendered bare: it always uses bracket syntax ("<Space>").
const KeySpace Key = 0x20

// Named special keys.
const (
	KeyEscape    Key = 0x01000000
	KeyTab       Key = 0x01000001
	KeyBacktab   Key = 0x01000002
	KeyBackspace Key = 0x01000003
	KeyReturn    Key = 0x01000004
	KeyEnter     Key = 0x01000005
	KeyInsert    Key = 0x01000006
	KeyDelete    Key = 0x01000007
	KeyPause     Key = 0x01000008
	KeyPrint     Key = 0x01000009
	KeySysReq    Key = 0x0100000a
	KeyClear     Key = 0x0100000b

	KeyHome     Key = 0x01000010
	KeyEnd      Key = 0x01000011
	KeyLeft     Key = 0x01000012
	KeyUp       Key = 0x01000013
	KeyRight    Key = 0x01000014
	KeyDown     Key = 0x01000015
	KeyPageUp   Key = 0x01000016
	KeyPageDown Key = 0x01000017

	// Modifier keys as keys in their own right, as reported when a
	// modifier is pressed alone.
	KeyShift      Key = 0x01000020
	KeyControl    Key = 0x01000021
	KeyMeta       Key = 0x01000022
	KeyAlt        Key = 0x01000023
	KeyCapsLock   Key = 0x01000024
	KeyNumLock    Key = 0x01000025
	KeyScrollLock Key = 0x01000026

	KeyF1  Key = 0x01000030
	KeyF2  Key = 0x01000031
	KeyF3  Key = 0x01000032
	KeyF4  Key = 0x01000033
	KeyF5  Key = 0x01000034
	KeyF6  Key = 0x01000035
	KeyF7  Key = 0x01000036
	KeyF8  Key = 0x01000037
	KeyF9  Key = 0x01000038
	KeyF10 Key = 0x01000039
	KeyF11 Key = 0x0100003a
	KeyF12 Key = 0x0100003b

	KeySuperL     Key = 0x01000053
	KeySuperR     Key = 0x01000054
	KeyMenu       Key = 0x01000055
	KeyHyperL     Key = 0x01000056
	KeyHyperR     Key = 0x01000057
	KeyHelp       Key = 0x01000058
	KeyDirectionL Key = 0x01000059
	KeyDirectionR Key = 0x01000060

	KeyAltGr           Key = 0x01001103
	KeyMultiKey        Key = 0x01001120
	KeySingleCandidate Key = 0x0100113d
	KeyModeSwitch      Key = 0x0100117e

	// Dead/combining keys. Rendered as the corresponding non-combining
	// character so they can be written in a config file.
	KeyDeadGrave      Key = 0x01001250
	KeyDeadAcute      Key = 0x01001251
	KeyDeadCircumflex Key = 0x01001252
	KeyDeadTilde      Key = 0x01001253
	KeyDeadMacron     Key = 0x01001254
	KeyDeadBreve      Key = 0x01001255
	KeyDeadAbovedot   Key = 0x01001256
	KeyDeadDiaeresis  Key = 0x01001257
	KeyDeadAbovering  Key = 0x01001258
	KeyDeadCaron      Key = 0x0100125a
	KeyDeadCedilla    Key = 0x0100125b
	KeyDeadOgonek     Key = 0x0100125c
	KeyDeadIota       Key = 0x0100125d
)

// IsPrintable reports whether the key renders as a bare single
// character. The space bar and the nil key are deliberately excluded.
func (k Key) IsPrintable() bool {
	assertPlainKey(k)
	return k <= 0xff && k != KeySpace && k != KeyNil
}

// IsModifierKey reports whether the key is itself a modifier -- the kind
// of key which would interrupt a chord chain like "yY" if handled.
func (k Key) IsModifierKey() bool {
	assertPlainKey(k)
	_, ok := modifierKeys[k]
	return ok
}

// modifierKeys maps modifier keys to their Modifier bit.
var modifierKeys = map[Key]Modifier{
	KeyShift:      ModShift,
	KeyControl:    ModCtrl,
	KeyAlt:        ModAlt,
	KeyMeta:       ModMeta,
	KeyAltGr:      ModGroupSwitch,
	KeyModeSwitch: ModGroupSwitch,
}

// specialNames overrides the generic rendering for keys the generic path
// handles badly: pure modifiers, dead/combining keys, and a few
// platform oddities. Dead keys map to the non-combining character so
// they are typeable in a config file.
var specialNames = map[Key]string{
	KeySuperL:     "Super L",
	KeySuperR:     "Super R",
	KeyHyperL:     "Hyper L",
	KeyHyperR:     "Hyper R",
	KeyDirectionL: "Direction L",
	KeyDirectionR: "Direction R",

	KeyShift:   "Shift",
	KeyControl: "Control",
	KeyMeta:    "Meta",
	KeyAlt:     "Alt",

	KeyAltGr:           "AltGr",
	KeyMultiKey:        "Multi key",
	KeySingleCandidate: "Single Candidate",
	KeyModeSwitch:      "Mode switch",

	KeyDeadGrave:      "`",
	KeyDeadAcute:      "´",
	KeyDeadCircumflex: "^",
	KeyDeadTilde:      "~",
	KeyDeadMacron:     "¯",
	KeyDeadBreve:      "˘",
	KeyDeadAbovedot:   "˙",
	KeyDeadDiaeresis:  "¨",
	KeyDeadAbovering:  "˚",
	KeyDeadCaron:      "ˇ",
	KeyDeadCedilla:    "¸",
	KeyDeadOgonek:     "˛",
	KeyDeadIota:       "Iota",

	KeyUnknown: "Unknown",
	KeyEscape:  "Escape",
	KeyNil:     "nil",
}

// namedKeys gives the generic display name for named special keys not
// covered by specialNames.
var namedKeys = map[Key]string{
	KeyTab:        "Tab",
	KeyBacktab:    "Backtab",
	KeyBackspace:  "Backspace",
	KeyReturn:     "Return",
	KeyEnter:      "Enter",
	KeyInsert:     "Ins",
	KeyDelete:     "Del",
	KeyPause:      "Pause",
	KeyPrint:      "Print",
	KeySysReq:     "SysReq",
	KeyClear:      "Clear",
	KeyHome:       "Home",
	KeyEnd:        "End",
	KeyLeft:       "Left",
	KeyUp:         "Up",
	KeyRight:      "Right",
	KeyDown:       "Down",
	KeyPageUp:     "PgUp",
	KeyPageDown:   "PgDown",
	KeyCapsLock:   "CapsLock",
	KeyNumLock:    "NumLock",
	KeyScrollLock: "ScrollLock",
	KeyF1:         "F1",
	KeyF2:         "F2",
	KeyF3:         "F3",
	KeyF4:         "F4",
	KeyF5:         "F5",
	KeyF6:         "F6",
	KeyF7:         "F7",
	KeyF8:         "F8",
	KeyF9:         "F9",
	KeyF10:        "F10",
	KeyF11:        "F11",
	KeyF12:        "F12",
	KeyMenu:       "Menu",
	KeyHelp:       "Help",
	KeySpace:      "Space",
}

// keyNames maps lowercase key names accepted in key strings to keys.
var keyNames = map[string]Key{
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"tab":       KeyTab,
	"backtab":   KeyBacktab,
	"backspace": KeyBackspace,
	"return":    KeyReturn,
	"enter":     KeyEnter,
	"insert":    KeyInsert,
	"ins":       KeyInsert,
	"delete":    KeyDelete,
	"del":       KeyDelete,
	"pause":     KeyPause,
	"print":     KeyPrint,
	"sysreq":    KeySysReq,
	"clear":     KeyClear,
	"home":      KeyHome,
	"end":       KeyEnd,
	"left":      KeyLeft,
	"up":        KeyUp,
	"right":     KeyRight,
	"down":      KeyDown,
	"pgup":      KeyPageUp,
	"pageup":    KeyPageUp,
	"pgdown":    KeyPageDown,
	"pagedown":  KeyPageDown,

	// Modifiers pressed alone round-trip through their rendered form.
	"shift":      KeyShift,
	"ctrl":       KeyControl,
	"meta":       KeyMeta,
	"alt":        KeyAlt,
	"altgr":      KeyAltGr,
	"capslock":   KeyCapsLock,
	"numlock":    KeyNumLock,
	"scrolllock": KeyScrollLock,

	"f1":  KeyF1,
	"f2":  KeyF2,
	"f3":  KeyF3,
	"f4":  KeyF4,
	"f5":  KeyF5,
	"f6":  KeyF6,
	"f7":  KeyF7,
	"f8":  KeyF8,
	"f9":  KeyF9,
	"f10": KeyF10,
	"f11": KeyF11,
	"f12": KeyF12,

	"menu":  KeyMenu,
	"help":  KeyHelp,
	"space": KeySpace,
}

// String returns the display name for the key: the special-name
// override if there is one, the generic name for named keys, or the
// character itself (in its stored uppercase form) for codepoint keys.
func (k Key) String() string {
	assertPlainKey(k)

	if name, ok := specialNames[k]; ok {
		return name
	}
	if name, ok := namedKeys[k]; ok {
		return name
	}
	if k < 0x01000000 {
		return string(rune(k))
	}
	return fmt.Sprintf("Key(0x%x)", uint32(k))
}

// KeyFromRune returns the key a character is stored as: its uppercase
// codepoint. The handful of Latin-1 characters whose uppercase lies
// outside Latin-1 (µ and ÿ) keep their lowercase codepoint instead, so
// their key stays in the printable range and both cases of ÿ name the
// same key.
func KeyFromRune(r rune) Key {
	u := unicode.ToUpper(r)
	if u > 0xff {
		if l := unicode.ToLower(r); l <= 0xff {
			return Key(l)
		}
	}
	return Key(u)
}

// KeyFromName returns the key for a given name (case-insensitive).
// Returns KeyNil if the name is not recognized.
func KeyFromName(name string) Key {
	if k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k
	}
	return KeyNil
}
