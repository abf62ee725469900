package keys

// Event is a raw key-press event as delivered by the platform: the
// reported key code, the reported modifier bits, and the text the press
// would insert.
//
// Events are the boundary between the platform input layer and the
// canonical KeyInfo representation. They carry whatever the platform
// said, including misreported surrogate key codes; KeyInfoFromEvent and
// Sequence.AppendEvent do the cleanup.
type Event struct {
	// Code is the raw key code.
	Code Key

	// Mods contains the raw modifier bits.
	Mods Modifier

	// Text is what the platform says this keypress would insert.
	Text string
}

// NewEvent creates a raw event.
func NewEvent(code Key, mods Modifier, text string) Event {
	return Event{Code: code, Mods: mods, Text: text}
}

// surrogateLow and surrogateHigh delimit the UTF-16 surrogate range.
// Some platforms report keys above the Basic Multilingual Plane as a
// bare high surrogate, with the real character only in the event text.
const (
	surrogateLow  Key = 0xd800
	surrogateHigh Key = 0xdfff
)

func isSurrogate(k Key) bool {
	assertPlainKey(k)
	return k >= surrogateLow && k <= surrogateHigh
}

// remapSurrogate recovers the true codepoint for a surrogate key code
// from the event text. The text must be exactly one character;
// anything else (empty text, multi-codepoint grapheme clusters) is
// unrecoverable and must fail rather than produce a wrong binding.
func remapSurrogate(k Key, text string) (Key, error) {
	assertPlainKey(k)
	if !isSurrogate(k) {
		return k, nil
	}
	runes := []rune(text)
	if len(runes) != 1 {
		return KeyNil, parseError(text,
			"expected 1 character for surrogate, but got %d", len(runes))
	}
	return Key(runes[0]), nil
}

// checkCode rejects raw key codes which cannot name any key: codes with
// modifier bits mixed in and codes beyond the key range.
func checkCode(code Key) error {
	if Modifier(code)&ModMask != 0 {
		return parseErrorNoInput("got key code 0x%x with modifier bits set", uint32(code))
	}
	if code > KeyUnknown {
		return parseErrorNoInput("got invalid key code 0x%x", uint32(code))
	}
	return nil
}
